// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sequniq/internal/config"
	"sequniq/internal/version"
)

// DedupOptions configures the sequniq record filter.
type DedupOptions struct {
	Common

	Fasta           bool
	Revcomp         bool
	MaxFingerprints int
}

// IDsOptions configures the sequniq-ids group report.
type IDsOptions struct {
	Common

	Fastq     bool
	NoRevcomp bool
	NoTrim    bool
	Report    string // dup | uniq | all
	Format    string
}

// Report selections for sequniq-ids.
const (
	ReportDup  = "dup"
	ReportUniq = "uniq"
	ReportAll  = "all"
)

func newRoot(use, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return Usage(err) })
	return cmd
}

// NewDedupCommand builds the sequniq command; run is called with validated
// options.
func NewDedupCommand(cfg config.Config, run func(*cobra.Command, *DedupOptions) error) *cobra.Command {
	o := &DedupOptions{}
	cmd := newRoot("sequniq [flags] FILE...",
		"Remove duplicate sequences (such as PCR duplicates) from Fasta/Fastq input",
		`Reads one or more Fasta/Fastq files ('-' = stdin, gzip detected), treats
them as one stream, and writes the first record of each distinct sequence
in input order. Paired input is deduplicated on both mates' sequences.`)
	fs := cmd.Flags()
	o.Register(fs, cfg)
	fs.BoolVar(&o.Fasta, "fasta", false, "data are in Fasta format (default Fastq)")
	fs.BoolVar(&o.Revcomp, "revcomp", false, "treat reverse-complement sequences as duplicates")
	fs.IntVar(&o.MaxFingerprints, "max-fingerprints", cfg.MaxFingerprints,
		"bound memory to N fingerprints; older ones are forgotten (0 = exact)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		o.Inputs = args
		if err := o.Validate(); err != nil {
			return Usage(err)
		}
		return run(cmd, o)
	}
	return cmd
}

func (o *DedupOptions) Validate() error {
	if err := o.Common.Validate(); err != nil {
		return err
	}
	if o.MaxFingerprints < 0 {
		return errors.New("--max-fingerprints must be >= 0")
	}
	return nil
}

// NewIDsCommand builds the sequniq-ids command.
func NewIDsCommand(cfg config.Config, run func(*cobra.Command, *IDsOptions) error) *cobra.Command {
	o := &IDsOptions{}
	cmd := newRoot("sequniq-ids [flags] FILE...",
		"Report identifiers of records that share sequence content",
		`Groups record identifiers by sequence content (and, by default, by
reverse complement) and reports the groups. Deflines are trimmed to the
bare accession unless --no-trim is given.`)
	fs := cmd.Flags()
	o.Register(fs, cfg)
	fs.BoolVar(&o.Fastq, "fastq", false, "data are in Fastq format (default Fasta)")
	fs.BoolVar(&o.NoRevcomp, "no-revcomp", false, "keep a sequence and its reverse complement apart")
	fs.BoolVar(&o.NoTrim, "no-trim", false, "report ids verbatim instead of the bare accession")
	fs.StringVar(&o.Report, "report", ReportDup, "groups to report: dup | uniq | all")
	fs.StringVar(&o.Format, "format", "text", "report format: text | json | jsonl | yaml")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		o.Inputs = args
		if err := o.Validate(); err != nil {
			return Usage(err)
		}
		return run(cmd, o)
	}
	return cmd
}

func (o *IDsOptions) Validate() error {
	if err := o.Common.Validate(); err != nil {
		return err
	}
	switch o.Report {
	case ReportDup, ReportUniq, ReportAll:
	default:
		return fmt.Errorf("invalid --report %q", o.Report)
	}
	switch o.Format {
	case "text", "json", "jsonl", "yaml":
	default:
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	return nil
}
