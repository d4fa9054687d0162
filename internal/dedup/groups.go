package dedup

import (
	"context"

	"sequniq/internal/fastx"
	"sequniq/internal/seqhash"
)

// Groups maps fingerprints to the ids that share them. Groups keep the
// order in which their first member arrived; ids keep arrival order.
type Groups struct {
	order []seqhash.Fingerprint
	ids   map[seqhash.Fingerprint][]string
	total int
}

func newGroups() *Groups {
	return &Groups{ids: make(map[seqhash.Fingerprint][]string)}
}

func (g *Groups) has(fp seqhash.Fingerprint) bool {
	_, ok := g.ids[fp]
	return ok
}

func (g *Groups) add(fp seqhash.Fingerprint, id string) {
	if _, ok := g.ids[fp]; !ok {
		g.order = append(g.order, fp)
	}
	g.ids[fp] = append(g.ids[fp], id)
	g.total++
}

// GroupIDs consumes src and groups record ids by content. The returned
// Groups is the only output; src is exhausted afterwards.
func GroupIDs(ctx context.Context, src fastx.Source, opts Options) (*Groups, error) {
	g := newGroups()
	err := fastx.ForEach(ctx, src, func(rec fastx.Record) error {
		id := fastx.ID(rec)
		if opts.TrimDefline {
			id = TrimDefline(id)
		}
		m, err := lookup(rec, opts.Canonical, g.has)
		if err != nil {
			return err
		}
		g.add(m.key, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Len is the number of distinct groups.
func (g *Groups) Len() int { return len(g.order) }

// IDs is the number of ids across all groups.
func (g *Groups) IDs() int { return g.total }

func (g *Groups) Lookup(fp seqhash.Fingerprint) ([]string, bool) {
	ids, ok := g.ids[fp]
	return ids, ok
}

func (g *Groups) filter(keep func(n int) bool) [][]string {
	var out [][]string
	for _, fp := range g.order {
		if ids := g.ids[fp]; keep(len(ids)) {
			out = append(out, append([]string(nil), ids...))
		}
	}
	return out
}

// All returns every group.
func (g *Groups) All() [][]string { return g.filter(func(int) bool { return true }) }

// Duplicates returns the groups with two or more ids.
func (g *Groups) Duplicates() [][]string { return g.filter(func(n int) bool { return n > 1 }) }

// Singletons returns the groups with exactly one id: the records whose
// content occurs once.
func (g *Groups) Singletons() [][]string { return g.filter(func(n int) bool { return n == 1 }) }
