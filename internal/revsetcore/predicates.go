package revsetcore

import (
	"strings"

	"github.com/palisade-vcs/palisade/internal/base"
	"github.com/palisade-vcs/palisade/internal/predicate"
)

// contentPredicate wraps a boolean per-entry test as a Predicate. It never
// returns NeverAgain: that value is reserved for stream exhaustion, which a
// content test has no notion of.
type contentPredicate struct {
	test func(base.IndexEntry) bool
}

func (p *contentPredicate) ToPredicateFn() PredicateFn {
	return func(e base.IndexEntry) predicate.Result {
		return predicate.FromBool(p.test(e))
	}
}

// ParentCountRange is an inclusive range of parent counts. Max < 0 means
// unbounded above.
type ParentCountRange struct {
	Min, Max int
}

// Contains reports whether n falls within the range.
func (r ParentCountRange) Contains(n int) bool {
	if n < r.Min {
		return false
	}
	if r.Max >= 0 && n > r.Max {
		return false
	}
	return true
}

// ParentCount builds a predicate matching entries whose parent count falls
// in rng.
func ParentCount(rng ParentCountRange) Predicate {
	return &contentPredicate{test: func(e base.IndexEntry) bool {
		return rng.Contains(e.NumParents())
	}}
}

// mustCommit fetches a commit from store, treating absence or a store
// failure as a fatal precondition breach: the index promised this commit
// exists, so the store disagreeing is a bug upstream of this engine, not a
// condition a caller can recover from.
func mustCommit(store base.Store, id base.CommitId) base.Commit {
	commit, err := store.Commit(id)
	if err != nil {
		panic(&base.FatalStoreInconsistency{Err: err})
	}
	return commit
}

// Description builds a predicate matching entries whose commit description
// contains needle.
func Description(store base.Store, needle string) Predicate {
	return &contentPredicate{test: func(e base.IndexEntry) bool {
		return strings.Contains(mustCommit(store, e.CommitID()).Description(), needle)
	}}
}

// Author builds a predicate matching entries whose author name or email
// contains needle.
func Author(store base.Store, needle string) Predicate {
	return &contentPredicate{test: func(e base.IndexEntry) bool {
		sig := mustCommit(store, e.CommitID()).Author()
		return strings.Contains(sig.Name, needle) || strings.Contains(sig.Email, needle)
	}}
}

// Committer builds a predicate matching entries whose committer name or
// email contains needle.
func Committer(store base.Store, needle string) Predicate {
	return &contentPredicate{test: func(e base.IndexEntry) bool {
		sig := mustCommit(store, e.CommitID()).Committer()
		return strings.Contains(sig.Name, needle) || strings.Contains(sig.Email, needle)
	}}
}

// File builds a predicate matching entries whose commit tree differs from
// its merged-parent tree under a matcher: a PrefixMatcher over paths if any
// were given, otherwise EverythingMatcher.
func File(store base.Store, paths []string) Predicate {
	var matcher base.Matcher = base.EverythingMatcher{}
	if len(paths) > 0 {
		matcher = base.NewPrefixMatcher(paths)
	}
	return &contentPredicate{test: func(e base.IndexEntry) bool {
		commit := mustCommit(store, e.CommitID())
		parentTree, err := store.MergedParentTree(commit.Parents())
		if err != nil {
			panic(&base.FatalStoreInconsistency{Err: err})
		}
		_, differs := commit.Tree().Diff(parentTree, matcher).Next()
		return differs
	}}
}
