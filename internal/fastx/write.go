package fastx

import (
	"fmt"
	"io"
)

// Write serializes rec followed by a newline. Fastq separator lines are
// always written as a bare "+".
func Write(w io.Writer, rec Record) error {
	var err error
	switch v := rec.(type) {
	case *Fasta:
		_, err = fmt.Fprintf(w, "%s\n%s\n", v.ID, v.Seq)
	case *Fastq:
		_, err = fmt.Fprintf(w, "%s\n%s\n+\n%s\n", v.ID, v.Seq, v.Qual)
	case *PairedFasta:
		_, err = fmt.Fprintf(w, "%s\n%s\n%s\n%s\n", v.Read1.ID, v.Read1.Seq, v.Read2.ID, v.Read2.Seq)
	case *PairedFastq:
		_, err = fmt.Fprintf(w, "%s\n%s\n+\n%s\n%s\n%s\n+\n%s\n",
			v.Read1.ID, v.Read1.Seq, v.Read1.Qual, v.Read2.ID, v.Read2.Seq, v.Read2.Qual)
	default:
		return fmt.Errorf("%w: %T", ErrInvalidRecordShape, rec)
	}
	return err
}
