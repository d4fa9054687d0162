// cmd/sequniq/main.go
package main

import (
	"sequniq/internal/appshell"
	"sequniq/internal/dedupapp"
)

func main() { appshell.Main(dedupapp.RunContext) }
