package writers

import (
	"fmt"
	"io"
	"sort"
)

// ReportFunc writes identifier groups in one format.
type ReportFunc func(w io.Writer, groups [][]string) error

// Report writers by format name. Registered in init() blocks; last wins.
var reportWriters = map[string]ReportFunc{}

func RegisterReport(format string, fn ReportFunc) { reportWriters[format] = fn }

// ReportFormats lists registered formats, sorted.
func ReportFormats() []string {
	out := make([]string, 0, len(reportWriters))
	for f := range reportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func WriteReport(format string, w io.Writer, groups [][]string) error {
	fn, ok := reportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, groups)
}
