package revsetcore

import (
	"github.com/palisade-vcs/palisade/internal/base"
	"github.com/palisade-vcs/palisade/internal/predicate"
)

// filterSet keeps the candidates for which predicate matches. It is used
// both for content filtering (predicate is a ParentCount/Description/...
// builder) and for intersection, by supplying another Set as predicate —
// a deliberate reuse that exploits the iterator/predicate duality.
type filterSet struct {
	candidates Set
	predicate  Predicate
}

// NewFilter builds a Filter set.
func NewFilter(candidates Set, predicate Predicate) Set {
	return &filterSet{candidates: candidates, predicate: predicate}
}

func (s *filterSet) Iter() base.EntryIterator {
	cand := s.candidates.Iter()
	probe := s.predicate.ToPredicateFn()
	return iterFunc(func() (base.IndexEntry, bool) {
		for {
			e, ok := cand.Next()
			if !ok {
				return nil, false
			}
			switch probe(e) {
			case predicate.Match:
				return e, true
			case predicate.NotThisOne:
				continue
			default: // predicate.NeverAgain
				return nil, false
			}
		}
	})
}

func (s *filterSet) ToPredicateFn() PredicateFn {
	candProbe := s.candidates.ToPredicateFn()
	predProbe := s.predicate.ToPredicateFn()
	return func(e base.IndexEntry) predicate.Result {
		return predicate.And(candProbe(e), predProbe(e))
	}
}
