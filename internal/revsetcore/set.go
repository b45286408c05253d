// Package revsetcore implements the internal set abstraction and its
// concrete kinds: the dual iterator/predicate representation every compiled
// expression node is built from, plus the content predicate builders and
// Latest-k selection.
package revsetcore

import (
	"github.com/palisade-vcs/palisade/internal/base"
	"github.com/palisade-vcs/palisade/internal/predicate"
)

// PredicateFn is a stateful, position-ordered probe: a fresh one is
// returned by Set.ToPredicateFn, and successive calls must be made with
// entries of strictly decreasing position.
type PredicateFn func(base.IndexEntry) predicate.Result

// Predicate is anything offering a predicate probe: a content predicate
// (ParentCount, Description, ...) or another Set reused as a predicate —
// the latter is how Filter doubles as intersection.
type Predicate interface {
	ToPredicateFn() PredicateFn
}

// Set is the capability every concrete set kind implements: a lazy,
// cloneable-on-reconstruction descending stream, and a stateful probe over
// the same logical membership. Every Set is also trivially a Predicate.
type Set interface {
	// Iter returns a fresh stream. Every emission has strictly lower
	// position than the previous one; there are no duplicates.
	Iter() base.EntryIterator

	// ToPredicateFn returns a fresh probe, independent of any previously
	// returned one.
	ToPredicateFn() PredicateFn
}

// iterFunc adapts a plain closure to base.EntryIterator.
type iterFunc func() (base.IndexEntry, bool)

func (f iterFunc) Next() (base.IndexEntry, bool) { return f() }

// newIteratorProbe builds the shared iterator-backed probe used by every
// set kind that can test membership by walking its own iterator: it
// advances the iterator while the pending entry's position is strictly
// greater than the probe's argument, then compares for equality.
func newIteratorProbe(it base.EntryIterator) PredicateFn {
	entry, ok := it.Next()
	return func(e base.IndexEntry) predicate.Result {
		for ok && entry.Position() > e.Position() {
			entry, ok = it.Next()
		}
		if !ok {
			return predicate.NeverAgain
		}
		if entry.Position() == e.Position() {
			entry, ok = it.Next()
			return predicate.Match
		}
		return predicate.NotThisOne
	}
}
