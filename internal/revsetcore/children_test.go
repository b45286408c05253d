package revsetcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palisade-vcs/palisade/internal/base"
	"github.com/palisade-vcs/palisade/internal/revsetcore"
)

func TestChildren(t *testing.T) {
	entries := chain(5)
	roots := revsetcore.NewEager(pick(entries, 1))
	candidates := revsetcore.NewEager(pick(entries, 4, 3, 2, 1, 0))

	children := revsetcore.NewChildren(roots, candidates)
	assert.Equal(t, []base.IndexPosition{2}, positionsOf(iterAll(children.Iter())))
}

func TestChildrenOfMultipleRoots(t *testing.T) {
	entries := chain(5)
	roots := revsetcore.NewEager(pick(entries, 0, 2))
	candidates := revsetcore.NewEager(pick(entries, 4, 3, 2, 1, 0))

	children := revsetcore.NewChildren(roots, candidates)
	assert.Equal(t, []base.IndexPosition{3, 1}, positionsOf(iterAll(children.Iter())))
}
