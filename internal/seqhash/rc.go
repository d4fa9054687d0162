package seqhash

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol is matched by *UnknownSymbolError.
var ErrUnknownSymbol = errors.New("unknown nucleotide symbol")

// UnknownSymbolError reports a byte outside the IUPAC nucleotide alphabet.
type UnknownSymbolError struct {
	Symbol byte
	Offset int // 0-based offset in the forward subject
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%v %q at offset %d", ErrUnknownSymbol, e.Symbol, e.Offset)
}

func (e *UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }

var complement [256]byte

func init() {
	const from, to = "ACGTUBDHKMNRSVWYacgtubdhkmnrsvwy", "TGCAAVHDMKNYSBWRtgcaavhdmknysbwr"
	for i := 0; i < len(from); i++ {
		complement[from[i]] = to[i]
	}
}

// RevComp returns the reverse complement of seq. U complements to A, so the
// result of an RNA input is DNA.
func RevComp(seq []byte) ([]byte, error) {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		c := complement[b]
		if c == 0 {
			return nil, &UnknownSymbolError{Symbol: b, Offset: n - 1 - i}
		}
		out[i] = c
	}
	return out, nil
}
