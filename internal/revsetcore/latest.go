package revsetcore

import (
	"container/heap"

	"github.com/palisade-vcs/palisade/internal/base"
)

// latestItem is one candidate retained in the selection heap.
type latestItem struct {
	entry base.IndexEntry
	ts    int64
}

// lessItem orders items by (timestamp, position) ascending: IndexPosition
// breaks timestamp ties.
func lessItem(a, b latestItem) bool {
	if a.ts != b.ts {
		return a.ts < b.ts
	}
	return a.entry.Position() < b.entry.Position()
}

// latestHeap is a min-heap over latestItem: the weakest kept candidate
// always sits at the root, so a stronger newcomer can replace it in
// O(log k).
type latestHeap []latestItem

func (h latestHeap) Len() int            { return len(h) }
func (h latestHeap) Less(i, j int) bool  { return lessItem(h[i], h[j]) }
func (h latestHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *latestHeap) Push(x interface{}) { *h = append(*h, x.(latestItem)) }
func (h *latestHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Latest selects the count candidates with the greatest (committer
// timestamp, position) and returns them as an Eager set, descending by
// position. It is O(n log k) where n is the candidate count.
//
// A candidate the index reports but the store can't produce a commit for is
// the same index/store inconsistency mustCommit guards against elsewhere in
// this package, and is handled the same way: panic, not a returned error.
func Latest(candidates Set, count int, store base.Store) Set {
	if count <= 0 {
		return NewEager(nil)
	}

	h := &latestHeap{}
	it := candidates.Iter()
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		commit := mustCommit(store, e.CommitID())
		item := latestItem{entry: e, ts: commit.Committer().TimestampMillis}

		if h.Len() < count {
			heap.Push(h, item)
			continue
		}
		if lessItem((*h)[0], item) {
			heap.Pop(h)
			heap.Push(h, item)
		}
	}

	entries := make([]base.IndexEntry, len(*h))
	for i, item := range *h {
		entries[i] = item.entry
	}
	return NewEager(entries)
}
