// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// The record core (fastx, seqhash, dedup) must not know about the CLI,
// the writers or the applications built on top of it.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "sequniq/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	apps := []string{
		"sequniq/internal/appshell", "sequniq/internal/dedupapp", "sequniq/internal/idsapp",
		"sequniq/internal/cli", "sequniq/internal/cliutil", "sequniq/internal/config",
		"sequniq/cmd/",
	}
	bans := map[string][]string{
		"sequniq/internal/fastx":   append([]string{"sequniq/internal/seqhash", "sequniq/internal/dedup", "sequniq/internal/writers", "sequniq/internal/metrics"}, apps...),
		"sequniq/internal/seqhash": append([]string{"sequniq/internal/dedup", "sequniq/internal/writers", "sequniq/internal/metrics"}, apps...),
		"sequniq/internal/dedup":   append([]string{"sequniq/internal/writers", "sequniq/internal/metrics"}, apps...),
		"sequniq/internal/writers": append([]string{"sequniq/internal/dedup"}, apps...),
		"sequniq/internal/metrics": apps,
		"sequniq/internal/logger":  append([]string{"sequniq/internal/fastx", "sequniq/internal/dedup"}, apps...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "sequniq/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
