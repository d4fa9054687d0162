// cmd/sequniq-ids/main.go
package main

import (
	"sequniq/internal/appshell"
	"sequniq/internal/idsapp"
)

func main() { appshell.Main(idsapp.RunContext) }
