package revsetcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palisade-vcs/palisade/internal/base"
	"github.com/palisade-vcs/palisade/internal/predicate"
	"github.com/palisade-vcs/palisade/internal/revsetcore"
)

func TestUnionMergesAndDedupsOverlappingPositions(t *testing.T) {
	entries := chain(5)
	a := revsetcore.NewEager(pick(entries, 4, 2))
	b := revsetcore.NewEager(pick(entries, 3, 2, 1))

	u := revsetcore.NewUnion(a, b)
	assert.Equal(t, []base.IndexPosition{4, 3, 2, 1}, positionsOf(iterAll(u.Iter())))

	probe := u.ToPredicateFn()
	var got []predicate.Result
	for _, p := range []int{4, 3, 2, 1, 0} {
		got = append(got, probe(entries[p]))
	}
	assert.Equal(t, []predicate.Result{
		predicate.Match, predicate.Match, predicate.Match, predicate.Match, predicate.NeverAgain,
	}, got)
}

func TestUnionSelfIsSelf(t *testing.T) {
	entries := chain(5)
	s := revsetcore.NewEager(pick(entries, 4, 3, 1))
	u := revsetcore.NewUnion(s, s)
	assert.Equal(t, positionsOf(iterAll(s.Iter())), positionsOf(iterAll(u.Iter())))
}
