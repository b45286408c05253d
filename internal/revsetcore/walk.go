package revsetcore

import "github.com/palisade-vcs/palisade/internal/base"

// walkSet wraps an external, cloneable RevWalk that already emits entries
// in descending position, optionally constrained by generation.
type walkSet struct {
	walk base.RevWalk
}

// NewWalk builds a Walk set from an already-constructed, already
// generation-filtered RevWalk.
func NewWalk(walk base.RevWalk) Set {
	return &walkSet{walk: walk}
}

func (s *walkSet) Iter() base.EntryIterator {
	return s.walk.Clone()
}

func (s *walkSet) ToPredicateFn() PredicateFn {
	return newIteratorProbe(s.Iter())
}
