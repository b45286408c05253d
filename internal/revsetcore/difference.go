package revsetcore

import (
	"github.com/palisade-vcs/palisade/internal/base"
	"github.com/palisade-vcs/palisade/internal/predicate"
)

// differenceSet walks two descending streams in parallel, emitting from a
// wherever it isn't matched by an equal position in b.
type differenceSet struct {
	a, b Set
}

// NewDifference builds a Difference set: a minus b.
func NewDifference(a, b Set) Set {
	return &differenceSet{a: a, b: b}
}

func (s *differenceSet) Iter() base.EntryIterator {
	ai, bi := s.a.Iter(), s.b.Iter()
	aEntry, aOk := ai.Next()
	bEntry, bOk := bi.Next()
	return iterFunc(func() (base.IndexEntry, bool) {
		for {
			if !aOk {
				return nil, false
			}
			if !bOk {
				e := aEntry
				aEntry, aOk = ai.Next()
				return e, true
			}
			switch {
			case aEntry.Position() > bEntry.Position():
				e := aEntry
				aEntry, aOk = ai.Next()
				return e, true
			case aEntry.Position() == bEntry.Position():
				aEntry, aOk = ai.Next()
				bEntry, bOk = bi.Next()
			default:
				bEntry, bOk = bi.Next()
			}
		}
	})
}

func (s *differenceSet) ToPredicateFn() PredicateFn {
	ap, bp := s.a.ToPredicateFn(), s.b.ToPredicateFn()
	return func(e base.IndexEntry) predicate.Result {
		return predicate.AndNot(ap(e), bp(e))
	}
}
