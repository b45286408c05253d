package revsetcore_test

import "github.com/palisade-vcs/palisade/internal/base"

// fakeEntry is a minimal base.IndexEntry for tests.
type fakeEntry struct {
	pos     base.IndexPosition
	commit  base.CommitId
	change  base.ChangeId
	parents []base.IndexPosition
}

func (e fakeEntry) Position() base.IndexPosition          { return e.pos }
func (e fakeEntry) CommitID() base.CommitId               { return e.commit }
func (e fakeEntry) ChangeID() base.ChangeId               { return e.change }
func (e fakeEntry) NumParents() int                       { return len(e.parents) }
func (e fakeEntry) ParentPositions() []base.IndexPosition { return e.parents }

// chain builds n entries at positions 0..n-1 forming a linear history:
// id_0 <- id_1 <- ... <- id_{n-1}.
func chain(n int) map[int]base.IndexEntry {
	entries := make(map[int]base.IndexEntry, n)
	for i := 0; i < n; i++ {
		var parents []base.IndexPosition
		if i > 0 {
			parents = []base.IndexPosition{base.IndexPosition(i - 1)}
		}
		entries[i] = fakeEntry{
			pos:     base.IndexPosition(i),
			commit:  base.CommitId{byte(i)},
			change:  base.ChangeId{byte(i)},
			parents: parents,
		}
	}
	return entries
}

func pick(entries map[int]base.IndexEntry, positions ...int) []base.IndexEntry {
	result := make([]base.IndexEntry, len(positions))
	for i, p := range positions {
		result[i] = entries[p]
	}
	return result
}

func iterAll(it base.EntryIterator) []base.IndexEntry {
	var out []base.IndexEntry
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, e)
	}
	return out
}

func positionsOf(entries []base.IndexEntry) []base.IndexPosition {
	out := make([]base.IndexPosition, len(entries))
	for i, e := range entries {
		out[i] = e.Position()
	}
	return out
}
