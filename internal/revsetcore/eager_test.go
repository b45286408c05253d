package revsetcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palisade-vcs/palisade/internal/base"
	"github.com/palisade-vcs/palisade/internal/predicate"
	"github.com/palisade-vcs/palisade/internal/revsetcore"
)

func TestEagerSortsAndDedups(t *testing.T) {
	entries := chain(5)
	s := revsetcore.NewEager(pick(entries, 2, 4, 2, 0, 4))
	assert.Equal(t, []base.IndexPosition{4, 2, 0}, positionsOf(iterAll(s.Iter())))
}

func TestEagerProbeMatchesNonMembersWithNotThisOne(t *testing.T) {
	entries := chain(5)
	s := revsetcore.NewEager(pick(entries, 4, 3, 2, 0))

	probe := s.ToPredicateFn()
	var got []predicate.Result
	for _, p := range []int{4, 3, 2, 1, 0} {
		got = append(got, probe(entries[p]))
	}
	assert.Equal(t, []predicate.Result{
		predicate.Match, predicate.Match, predicate.Match, predicate.NotThisOne, predicate.Match,
	}, got)

	// a fresh probe, skipping positions, still gets the right answers.
	probe2 := s.ToPredicateFn()
	var got2 []predicate.Result
	for _, p := range []int{3, 1, 0} {
		got2 = append(got2, probe2(entries[p]))
	}
	assert.Equal(t, []predicate.Result{
		predicate.Match, predicate.NotThisOne, predicate.Match,
	}, got2)
}

func TestEagerIterIsFreshEachTime(t *testing.T) {
	entries := chain(3)
	s := revsetcore.NewEager(pick(entries, 2, 1, 0))
	assert.Equal(t, positionsOf(iterAll(s.Iter())), positionsOf(iterAll(s.Iter())))
}
