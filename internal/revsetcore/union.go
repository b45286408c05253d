package revsetcore

import (
	"github.com/palisade-vcs/palisade/internal/base"
	"github.com/palisade-vcs/palisade/internal/predicate"
)

// unionSet merges two descending streams, deduplicating on equal position.
type unionSet struct {
	a, b Set
}

// NewUnion builds a Union set.
func NewUnion(a, b Set) Set {
	return &unionSet{a: a, b: b}
}

func (s *unionSet) Iter() base.EntryIterator {
	ai, bi := s.a.Iter(), s.b.Iter()
	aEntry, aOk := ai.Next()
	bEntry, bOk := bi.Next()
	return iterFunc(func() (base.IndexEntry, bool) {
		switch {
		case !aOk && !bOk:
			return nil, false
		case !aOk:
			e := bEntry
			bEntry, bOk = bi.Next()
			return e, true
		case !bOk:
			e := aEntry
			aEntry, aOk = ai.Next()
			return e, true
		case aEntry.Position() == bEntry.Position():
			e := aEntry
			aEntry, aOk = ai.Next()
			bEntry, bOk = bi.Next()
			return e, true
		case aEntry.Position() > bEntry.Position():
			e := aEntry
			aEntry, aOk = ai.Next()
			return e, true
		default:
			e := bEntry
			bEntry, bOk = bi.Next()
			return e, true
		}
	})
}

func (s *unionSet) ToPredicateFn() PredicateFn {
	ap, bp := s.a.ToPredicateFn(), s.b.ToPredicateFn()
	return func(e base.IndexEntry) predicate.Result {
		return predicate.Or(ap(e), bp(e))
	}
}
