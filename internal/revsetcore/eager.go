package revsetcore

import (
	"sort"

	"github.com/palisade-vcs/palisade/internal/base"
)

// eagerSet holds a pre-materialized slice of entries, sorted descending by
// position with duplicates removed.
type eagerSet struct {
	entries []base.IndexEntry
}

// NewEager builds an Eager set from an arbitrary, possibly unsorted,
// possibly duplicate-containing slice of entries. It never retains the
// caller's backing array.
func NewEager(entries []base.IndexEntry) Set {
	sorted := append([]base.IndexEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Position() > sorted[j].Position()
	})

	deduped := sorted[:0]
	haveLast := false
	var lastPos base.IndexPosition
	for _, e := range sorted {
		if haveLast && e.Position() == lastPos {
			continue
		}
		deduped = append(deduped, e)
		lastPos = e.Position()
		haveLast = true
	}
	return &eagerSet{entries: deduped}
}

func (s *eagerSet) Iter() base.EntryIterator {
	i := 0
	return iterFunc(func() (base.IndexEntry, bool) {
		if i >= len(s.entries) {
			return nil, false
		}
		e := s.entries[i]
		i++
		return e, true
	})
}

func (s *eagerSet) ToPredicateFn() PredicateFn {
	return newIteratorProbe(s.Iter())
}
