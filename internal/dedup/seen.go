package dedup

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"sequniq/internal/seqhash"
)

// SeenSet records forward fingerprints already emitted in one pass.
// Implementations are not safe for concurrent use by several passes.
type SeenSet interface {
	Contains(fp seqhash.Fingerprint) bool
	Add(fp seqhash.Fingerprint)
	Len() int
}

var (
	_ SeenSet = (*ExactSet)(nil)
	_ SeenSet = (*BoundedSet)(nil)
)

// ExactSet keeps every fingerprint for the life of the pass.
type ExactSet struct {
	m map[seqhash.Fingerprint]struct{}
}

func NewExactSet() *ExactSet {
	return &ExactSet{m: make(map[seqhash.Fingerprint]struct{})}
}

func (s *ExactSet) Contains(fp seqhash.Fingerprint) bool {
	_, ok := s.m[fp]
	return ok
}

func (s *ExactSet) Add(fp seqhash.Fingerprint) { s.m[fp] = struct{}{} }
func (s *ExactSet) Len() int                   { return len(s.m) }

// BoundedSet holds at most a fixed number of fingerprints, evicting the
// least recently seen. A duplicate whose original was evicted is emitted
// again, so output is only approximately unique.
type BoundedSet struct {
	c *lru.Cache[seqhash.Fingerprint, struct{}]
}

const defaultBoundedCap = 200_000

func NewBoundedSet(capacity int) *BoundedSet {
	if capacity <= 0 {
		capacity = defaultBoundedCap
	}
	c, err := lru.New[seqhash.Fingerprint, struct{}](capacity)
	if err != nil {
		// lru.New only fails for non-positive sizes.
		panic(err)
	}
	return &BoundedSet{c: c}
}

// Contains refreshes fp's recency on a hit.
func (s *BoundedSet) Contains(fp seqhash.Fingerprint) bool {
	_, ok := s.c.Get(fp)
	return ok
}

func (s *BoundedSet) Add(fp seqhash.Fingerprint) { s.c.Add(fp, struct{}{}) }
func (s *BoundedSet) Len() int                   { return s.c.Len() }
