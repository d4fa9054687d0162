// Package seqhash computes fixed-size content fingerprints of sequence
// records, optionally for the reverse-complement strand.
package seqhash

import (
	"crypto/sha1"
	"encoding/hex"

	"sequniq/internal/fastx"
)

// Fingerprint is the SHA-1 digest of a record's sequence content.
type Fingerprint [sha1.Size]byte

func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// Subject is the hashed text: the sequence, or both mates' sequences
// concatenated with no separator.
func Subject(rec fastx.Record) []byte {
	switch v := rec.(type) {
	case *fastx.Fasta:
		return []byte(v.Seq)
	case *fastx.Fastq:
		return []byte(v.Seq)
	case *fastx.PairedFasta:
		return concat(v.Read1.Seq, v.Read2.Seq)
	case *fastx.PairedFastq:
		return concat(v.Read1.Seq, v.Read2.Seq)
	default:
		return nil
	}
}

func concat(a, b string) []byte {
	out := make([]byte, 0, len(a)+len(b))
	return append(append(out, a...), b...)
}

func Sum(subject []byte) Fingerprint { return sha1.Sum(subject) }

func Forward(rec fastx.Record) Fingerprint { return Sum(Subject(rec)) }

// Reverse fingerprints the reverse complement of rec's subject.
func Reverse(rec fastx.Record) (Fingerprint, error) {
	rc, err := RevComp(Subject(rec))
	if err != nil {
		return Fingerprint{}, err
	}
	return Sum(rc), nil
}
