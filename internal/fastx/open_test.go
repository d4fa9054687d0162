package fastx

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, fs afero.Fs, paths ...string) string {
	t.Helper()
	rc, err := Open(fs, paths...)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestOpenChainsFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.fq", []byte("@r1\nACGT\n+\nIIII"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "b.fq", []byte("@r2\nGGGG\n+\nJJJJ\n"), 0o644))

	t.Run("Should insert a line break between unterminated files", func(t *testing.T) {
		got := readAll(t, fs, "a.fq", "b.fq")
		assert.Equal(t, "@r1\nACGT\n+\nIIII\n@r2\nGGGG\n+\nJJJJ\n", got)
	})

	t.Run("Should parse chained files as one stream", func(t *testing.T) {
		rc, err := Open(fs, "a.fq", "b.fq")
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()
		recs, err := drain(t, NewParser(rc, Config{Format: FormatFastq}))
		require.NoError(t, err)
		assert.Len(t, recs, 2)
	})

	t.Run("Should report a missing file before reading", func(t *testing.T) {
		_, err := Open(fs, "a.fq", "missing.fq")
		assert.Error(t, err)
	})

	t.Run("Should require at least one path", func(t *testing.T) {
		_, err := Open(fs)
		assert.Error(t, err)
	})
}

func TestOpenEmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "empty.fa", nil, 0o644))
	assert.Equal(t, "", readAll(t, fs, "empty.fa"))
}

func TestOpenGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.fa.gz")
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(">seq1\nACGT\n>seq2\nNNnn\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got := readAll(t, afero.NewOsFs(), path)
	assert.Equal(t, ">seq1\nACGT\n>seq2\nNNnn\n", got)
}

func TestOpenStdin(t *testing.T) {
	orig := Stdin
	Stdin = strings.NewReader(">s\nACGT\n")
	defer func() { Stdin = orig }()

	assert.Equal(t, ">s\nACGT\n", readAll(t, afero.NewMemMapFs(), "-"))
}
