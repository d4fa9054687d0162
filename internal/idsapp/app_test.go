package idsapp

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequniq/internal/appshell"
)

const contigs = ">c1 len=4\nAAAA\n>c2\nCCCC\n>c3 rc of c1\nTTTT\n>c4\nAAAA\n>c5\nGGTT\n"

func setup(t *testing.T) {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "contigs.fa", []byte(contigs), 0o644))
	require.NoError(t, afero.WriteFile(mem, "bad.fa", []byte(">x\nAC-GT\n"), 0o644))
	orig := fsys
	fsys = mem
	t.Cleanup(func() { fsys = orig })
}

func runApp(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunReports(t *testing.T) {
	setup(t)

	t.Run("Should report duplicate groups with trimmed ids", func(t *testing.T) {
		code, out, _ := runApp("contigs.fa")
		assert.Equal(t, appshell.ExitOK, code)
		assert.Equal(t, "c1\tc3\tc4\n", out)
	})

	t.Run("Should report singleton groups for --report uniq", func(t *testing.T) {
		_, out, _ := runApp("--report", "uniq", "contigs.fa")
		assert.Equal(t, "c2\nc5\n", out)
	})

	t.Run("Should keep strands apart with --no-revcomp", func(t *testing.T) {
		_, out, _ := runApp("--no-revcomp", "--no-trim", "--report", "all", "contigs.fa")
		assert.Equal(t, ">c1 len=4\t>c4\n>c2\n>c3 rc of c1\n>c5\n", out)
	})

	t.Run("Should emit JSON", func(t *testing.T) {
		_, out, _ := runApp("--format", "json", "--report", "all", "contigs.fa")
		var got [][]string
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, [][]string{{"c1", "c3", "c4"}, {"c2"}, {"c5"}}, got)
	})

	t.Run("Should fail on symbols that cannot be complemented", func(t *testing.T) {
		code, out, errOut := runApp("-q", "bad.fa")
		assert.Equal(t, appshell.ExitFailure, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "unknown nucleotide symbol")
	})

	t.Run("Should reject unknown formats", func(t *testing.T) {
		code, _, _ := runApp("--format", "xml", "contigs.fa")
		assert.Equal(t, appshell.ExitUsage, code)
	})
}
