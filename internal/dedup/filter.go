package dedup

import (
	"sequniq/internal/fastx"
)

// Stats summarizes one pass.
type Stats struct {
	Records      int // records read from the source
	Emitted      int // records passed through
	Duplicates   int // records dropped on a forward match
	ReverseHits  int // records dropped on a reverse-complement match
	Fingerprints int // fingerprints held when the pass finished
}

// Filter passes through the first record of each distinct sequence, in
// input order. It owns its SeenSet; run independent passes on separate
// Filters.
type Filter struct {
	src       fastx.Source
	seen      SeenSet
	canonical bool

	stats Stats
	done  bool
	err   error
}

var _ fastx.Source = (*Filter)(nil)

// Unique starts a by-record pass over src.
func Unique(src fastx.Source, opts Options) *Filter {
	return UniqueWith(src, opts.newSeenSet(), opts)
}

// UniqueWith starts a by-record pass using a caller-supplied SeenSet.
func UniqueWith(src fastx.Source, seen SeenSet, opts Options) *Filter {
	return &Filter{src: src, seen: seen, canonical: opts.Canonical}
}

// Next returns the next first-occurrence record, or the source's terminal
// error (io.EOF at the end). After that the Filter is done and keeps
// returning the same error.
func (f *Filter) Next() (fastx.Record, error) {
	if f.done {
		return nil, f.err
	}
	for {
		rec, err := f.src.Next()
		if err != nil {
			return nil, f.finish(err)
		}
		f.stats.Records++
		m, err := lookup(rec, f.canonical, f.seen.Contains)
		if err != nil {
			return nil, f.finish(err)
		}
		if m.found {
			if m.reverse {
				f.stats.ReverseHits++
			} else {
				f.stats.Duplicates++
			}
			continue
		}
		f.seen.Add(m.key)
		f.stats.Emitted++
		return rec, nil
	}
}

func (f *Filter) finish(err error) error {
	f.done, f.err = true, err
	f.stats.Fingerprints = f.seen.Len()
	return err
}

// Done reports whether the source has been exhausted or failed.
func (f *Filter) Done() bool { return f.done }

// Stats is final once Done reports true.
func (f *Filter) Stats() Stats {
	s := f.stats
	if !f.done {
		s.Fingerprints = f.seen.Len()
	}
	return s
}
