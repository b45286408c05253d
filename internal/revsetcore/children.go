package revsetcore

import "github.com/palisade-vcs/palisade/internal/base"

// childrenSet holds the roots whose children are being asked for, and the
// candidate pool to filter them out of.
type childrenSet struct {
	roots      Set
	candidates Set
}

// NewChildren builds a Children set: every candidate with a parent among
// roots's positions.
func NewChildren(roots, candidates Set) Set {
	return &childrenSet{roots: roots, candidates: candidates}
}

func (s *childrenSet) Iter() base.EntryIterator {
	rootPositions := make(map[base.IndexPosition]struct{})
	it := s.roots.Iter()
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		rootPositions[e.Position()] = struct{}{}
	}

	cand := s.candidates.Iter()
	return iterFunc(func() (base.IndexEntry, bool) {
		for {
			e, ok := cand.Next()
			if !ok {
				return nil, false
			}
			for _, p := range e.ParentPositions() {
				if _, isRoot := rootPositions[p]; isRoot {
					return e, true
				}
			}
		}
	})
}

func (s *childrenSet) ToPredicateFn() PredicateFn {
	return newIteratorProbe(s.Iter())
}
