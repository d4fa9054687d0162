package appshell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"sequniq/internal/cli"
	"sequniq/internal/config"
	"sequniq/internal/logger"
	"sequniq/internal/metrics"
	"sequniq/internal/writers"
)

// Exit statuses shared by all tools.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitFailure  = 3
	ExitCanceled = 130
)

func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == ExitOK {
		code = ExitCanceled
	}

	stop()
	os.Exit(code)
}

// Execute loads configuration, builds the command and runs it with argv,
// mapping the outcome to an exit status.
func Execute(
	parent context.Context,
	argv []string,
	stdout, stderr io.Writer,
	build func(config.Config) *cobra.Command,
) int {
	cfg, err := config.Load(nil)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	cmd := build(cfg)
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return ExitCode(cmd.ExecuteContext(parent), cmd.Name(), stderr)
}

// ExitCode reports err on stderr and returns the matching exit status.
// A broken pipe on output counts as success.
func ExitCode(err error, name string, stderr io.Writer) int {
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case cli.IsUsage(err):
		_, _ = fmt.Fprintf(stderr, "error: %v\nRun '%s --help' for usage.\n", err, name)
		return ExitUsage
	default:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitFailure
	}
}

// OpenOutput returns stdout for "-", else creates path on fs. The returned
// close func must be called once writing is done.
func OpenOutput(fs afero.Fs, path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "-" {
		return stdout, func() error { return nil }, nil
	}
	fh, err := fs.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, fh.Close, nil
}

// WriteMetrics exports one pass's metrics to path; an empty path is a no-op.
func WriteMetrics(ctx context.Context, path, tool string, observe func(*metrics.Pass)) error {
	if path == "" {
		return nil
	}
	p := metrics.New(tool)
	observe(p)
	if err := p.WriteTextfile(path); err != nil {
		logger.FromContext(ctx).Error("writing metrics failed", "path", path, "err", err)
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}
