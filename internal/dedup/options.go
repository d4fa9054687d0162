// Package dedup removes records whose sequence content was already seen,
// and groups record identifiers by sequence content.
//
// Content identity is the SHA-1 fingerprint of the sequence (both mates'
// sequences for pairs). With Canonical set, a record also matches an
// earlier record whose sequence is its reverse complement.
package dedup

import (
	"fmt"
	"strings"

	"sequniq/internal/fastx"
	"sequniq/internal/seqhash"
)

type Options struct {
	// Canonical treats a sequence and its reverse complement as equal.
	Canonical bool
	// TrimDefline reduces ids to the bare accession (group mode only).
	TrimDefline bool
	// MaxFingerprints bounds the record filter's memory; 0 means exact.
	MaxFingerprints int
}

func (o Options) newSeenSet() SeenSet {
	if o.MaxFingerprints > 0 {
		return NewBoundedSet(o.MaxFingerprints)
	}
	return NewExactSet()
}

// TrimDefline drops the leading marker character ('>' or '@') and
// everything from the first space.
func TrimDefline(id string) string {
	if id == "" {
		return ""
	}
	id = id[1:]
	if i := strings.IndexByte(id, ' '); i >= 0 {
		id = id[:i]
	}
	return id
}

type match struct {
	key     seqhash.Fingerprint
	found   bool
	reverse bool
}

// lookup resolves rec's group key. The forward fingerprint is tried first;
// the reverse-complement fingerprint is only computed when that misses.
func lookup(rec fastx.Record, canonical bool, has func(seqhash.Fingerprint) bool) (match, error) {
	fwd := seqhash.Forward(rec)
	if has(fwd) {
		return match{key: fwd, found: true}, nil
	}
	if canonical {
		rev, err := seqhash.Reverse(rec)
		if err != nil {
			return match{}, fmt.Errorf("record %q: %w", fastx.ID(rec), err)
		}
		if has(rev) {
			return match{key: rev, found: true, reverse: true}, nil
		}
	}
	return match{key: fwd}, nil
}
