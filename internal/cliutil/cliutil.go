// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals on fs,
// keeping argument order. "-" (stdin) passes through untouched.
func ExpandPositionals(fs afero.Fs, posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := afero.Glob(fs, a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}
