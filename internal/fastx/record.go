// Package fastx parses and writes Fasta/Fastq records, unpaired or as
// interleaved mate pairs.
package fastx

// Format selects the on-disk record layout.
type Format int

const (
	FormatFastq Format = iota
	FormatFasta
)

func (f Format) String() string {
	switch f {
	case FormatFasta:
		return "fasta"
	case FormatFastq:
		return "fastq"
	default:
		return "unknown"
	}
}

// Config is fixed for a whole parsing session.
type Config struct {
	Format Format
	Paired bool
}

// Record is one of *Fasta, *Fastq, *PairedFasta or *PairedFastq.
// All records produced by one Parser share the same concrete type.
type Record interface {
	record()
}

// Fasta is an unpaired Fasta record. ID keeps the leading '>'.
type Fasta struct {
	ID  string
	Seq string
}

// Fastq is an unpaired Fastq record. ID keeps the leading '@'.
type Fastq struct {
	ID   string
	Seq  string
	Qual string
}

type PairedFasta struct {
	Read1, Read2 Fasta
}

type PairedFastq struct {
	Read1, Read2 Fastq
}

func (*Fasta) record()       {}
func (*Fastq) record()       {}
func (*PairedFasta) record() {}
func (*PairedFastq) record() {}

// ID returns the identifier of r (the first mate's for pairs).
func ID(r Record) string {
	switch v := r.(type) {
	case *Fasta:
		return v.ID
	case *Fastq:
		return v.ID
	case *PairedFasta:
		return v.Read1.ID
	case *PairedFastq:
		return v.Read1.ID
	default:
		return ""
	}
}
