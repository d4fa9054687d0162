// Package idsapp implements sequniq-ids: it groups record identifiers by
// sequence content and reports duplicate (or singleton) groups.
package idsapp

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
	"sequniq/internal/writers"
)

var fsys afero.Fs = afero.NewOsFs()

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return appshell.Execute(parent, argv, stdout, stderr, func(cfg config.Config) *cobra.Command {
		return cli.NewIDsCommand(cfg, func(cmd *cobra.Command, o *cli.IDsOptions) error {
			return run(cmd.Context(), o, stdout, stderr)
		})
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// selectGroups maps a --report value onto the groups to print.
func selectGroups(g *dedup.Groups, report string) [][]string {
	switch report {
	case cli.ReportUniq:
		return g.Singletons()
	case cli.ReportAll:
		return g.All()
	default:
		return g.Duplicates()
	}
}

func run(ctx context.Context, o *cli.IDsOptions, stdout, stderr io.Writer) (err error) {
	lc := o.LoggerConfig()
	lc.Output = stderr
	log := logger.NewLogger(lc).With("tool", "sequniq-ids")
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

	format := fastx.FormatFasta
	if o.Fastq {
		format = fastx.FormatFastq
	}
	parser := fastx.NewParser(in, fastx.Config{Format: format, Paired: o.Paired}, fastx.WithLogger(log))
	pc := parser.Config()
	log.Debug("reading input", "format", pc.Format.String(), "paired", pc.Paired, "inputs", len(inputs))
	groups, err := dedup.GroupIDs(ctx, parser, dedup.Options{
		Canonical:   !o.NoRevcomp,
		TrimDefline: !o.NoTrim,
	})
	if err != nil {
		// A by-id report is all-or-nothing; nothing is written on failure.
		return err
	}
	log.Info("grouping finished",
		"ids", groups.IDs(), "groups", groups.Len(),
		"dangling_lines", parser.Dangling())

	out, closeOut, err := appshell.OpenOutput(fsys, o.Output, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(out)
	werr := writers.WriteReport(o.Format, bw, selectGroups(groups, o.Report))
	ferr := bw.Flush()

	merr := appshell.WriteMetrics(ctx, o.MetricsFile, "sequniq-ids", func(p *metrics.Pass) {
		p.ObserveGroups(groups, parser.Dangling())
	})
	return errors.Join(werr, ferr, merr)
}
