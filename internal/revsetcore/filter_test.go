package revsetcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palisade-vcs/palisade/internal/base"
	"github.com/palisade-vcs/palisade/internal/predicate"
	"github.com/palisade-vcs/palisade/internal/revsetcore"
)

func TestFilterAsIntersectionKeepsOnlySharedPositions(t *testing.T) {
	entries := chain(5)
	a := revsetcore.NewEager(pick(entries, 4, 2, 0))
	b := revsetcore.NewEager(pick(entries, 3, 2, 1))

	inter := revsetcore.NewFilter(a, b)
	assert.Equal(t, []base.IndexPosition{2}, positionsOf(iterAll(inter.Iter())))

	probe := inter.ToPredicateFn()
	var got []predicate.Result
	for _, p := range []int{4, 3, 2, 1, 0} {
		got = append(got, probe(entries[p]))
	}
	assert.Equal(t, []predicate.Result{
		predicate.NotThisOne, predicate.NotThisOne, predicate.Match, predicate.NotThisOne, predicate.NeverAgain,
	}, got)
}

func TestFilterAsIntersectionProbeGoesNeverAgainOnceCandidatesExhausted(t *testing.T) {
	entries := chain(5)
	a := revsetcore.NewEager(pick(entries, 4, 3))
	b := revsetcore.NewEager(pick(entries, 3, 2))

	inter := revsetcore.NewFilter(a, b)
	assert.Equal(t, []base.IndexPosition{3}, positionsOf(iterAll(inter.Iter())))

	probe := inter.ToPredicateFn()
	var got []predicate.Result
	for _, p := range []int{4, 3, 2, 1, 0} {
		got = append(got, probe(entries[p]))
	}
	assert.Equal(t, []predicate.Result{
		predicate.NotThisOne, predicate.Match, predicate.NeverAgain, predicate.NeverAgain, predicate.NeverAgain,
	}, got)
}

func TestFilterWithContentPredicate(t *testing.T) {
	entries := chain(5)
	all := revsetcore.NewEager(pick(entries, 4, 3, 2, 1, 0))
	evenParents := revsetcore.NewFilter(all, revsetcore.ParentCount(revsetcore.ParentCountRange{Min: 0, Max: 0}))
	assert.Equal(t, []base.IndexPosition{0}, positionsOf(iterAll(evenParents.Iter())))
}
