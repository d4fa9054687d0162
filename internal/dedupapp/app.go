// Package dedupapp implements the sequniq command: it streams Fasta/Fastq
// records and keeps the first record of each distinct sequence.
package dedupapp

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"sequniq/internal/appshell"
	"sequniq/internal/cli"
	"sequniq/internal/cliutil"
	"sequniq/internal/config"
	"sequniq/internal/dedup"
	"sequniq/internal/fastx"
	"sequniq/internal/logger"
	"sequniq/internal/metrics"
)

// fsys is the filesystem inputs and outputs are resolved on.
var fsys afero.Fs = afero.NewOsFs()

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return appshell.Execute(parent, argv, stdout, stderr, func(cfg config.Config) *cobra.Command {
		return cli.NewDedupCommand(cfg, func(cmd *cobra.Command, o *cli.DedupOptions) error {
			return run(cmd.Context(), o, stdout, stderr)
		})
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, o *cli.DedupOptions, stdout, stderr io.Writer) (err error) {
	lc := o.LoggerConfig()
	lc.Output = stderr
	log := logger.NewLogger(lc).With("tool", "sequniq")
	ctx = logger.ContextWithLogger(ctx, log)

	inputs, err := cliutil.ExpandPositionals(fsys, o.Inputs)
	if err != nil {
		return cli.Usage(err)
	}
	in, err := fastx.Open(fsys, inputs...)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, closeOut, err := appshell.OpenOutput(fsys, o.Output, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriterSize(out, 64<<10)

	format := fastx.FormatFastq
	if o.Fasta {
		format = fastx.FormatFasta
	}
	parser := fastx.NewParser(in, fastx.Config{Format: format, Paired: o.Paired}, fastx.WithLogger(log))
	pc := parser.Config()
	log.Debug("reading input", "format", pc.Format.String(), "paired", pc.Paired, "inputs", len(inputs))
	if o.MaxFingerprints > 0 {
		log.Warn("fingerprint memory is bounded; duplicates of forgotten sequences will pass", "max_fingerprints", o.MaxFingerprints)
	}
	filter := dedup.Unique(parser, dedup.Options{Canonical: o.Revcomp, MaxFingerprints: o.MaxFingerprints})

	werr := fastx.ForEach(ctx, filter, func(rec fastx.Record) error {
		return fastx.Write(bw, rec)
	})
	// Records already written stay valid output even when the pass failed.
	ferr := bw.Flush()

	st := filter.Stats()
	log.Info("dedup finished",
		"records", st.Records, "emitted", st.Emitted,
		"duplicates", st.Duplicates, "revcomp_duplicates", st.ReverseHits,
		"dangling_lines", parser.Dangling())

	merr := appshell.WriteMetrics(ctx, o.MetricsFile, "sequniq", func(p *metrics.Pass) {
		p.ObserveFilter(st, parser.Dangling())
	})
	return errors.Join(werr, ferr, merr)
}
