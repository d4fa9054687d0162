package appshell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequniq/internal/cli"
	"sequniq/internal/fastx"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"broken pipe", fmt.Errorf("write: %w", syscall.EPIPE), ExitOK},
		{"canceled", context.Canceled, ExitCanceled},
		{"usage", cli.Usage(errors.New("bad flag")), ExitUsage},
		{"format", &fastx.FormatError{Line: 3, Reason: "odd"}, ExitFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tc.want, ExitCode(tc.err, "sequniq", &stderr))
		})
	}

	t.Run("Should point to --help on usage errors", func(t *testing.T) {
		var stderr bytes.Buffer
		ExitCode(cli.Usage(errors.New("bad flag")), "sequniq", &stderr)
		assert.Contains(t, stderr.String(), "sequniq --help")
	})
}

func TestOpenOutput(t *testing.T) {
	fs := afero.NewMemMapFs()

	t.Run("Should use stdout for dash", func(t *testing.T) {
		var stdout bytes.Buffer
		w, closeFn, err := OpenOutput(fs, "-", &stdout)
		require.NoError(t, err)
		_, _ = w.Write([]byte("x"))
		require.NoError(t, closeFn())
		assert.Equal(t, "x", stdout.String())
	})

	t.Run("Should create the named file", func(t *testing.T) {
		w, closeFn, err := OpenOutput(fs, "out.fa", nil)
		require.NoError(t, err)
		_, _ = w.Write([]byte(">a\nA\n"))
		require.NoError(t, closeFn())
		b, err := afero.ReadFile(fs, "out.fa")
		require.NoError(t, err)
		assert.Equal(t, ">a\nA\n", string(b))
	})
}
