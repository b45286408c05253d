package revset

import (
	"sync"

	"github.com/palisade-vcs/palisade/internal/base"
	"github.com/palisade-vcs/palisade/internal/idindex"
	"github.com/palisade-vcs/palisade/internal/revsetcore"
)

// Revset is the public facade (C7): a compiled expression plus the index
// handle it was compiled against. It owns the compiled set tree; nothing
// about it can be mutated after construction.
type Revset struct {
	set   revsetcore.Set
	index base.Index

	changeIdIndexOnce sync.Once
	changeIdIndex     *idindex.IdIndex[base.ChangeId, base.IndexPosition]
}

// New compiles expr against index and store and returns the resulting
// Revset. visibleHeads is the context's externally supplied list of
// non-hidden tip commits, used by All and VisibleHeads.
func New(expr Expr, index base.Index, store base.Store, visibleHeads []base.CommitId) (*Revset, error) {
	set, err := Compile(expr, index, store, visibleHeads)
	if err != nil {
		return nil, err
	}
	return &Revset{set: set, index: index}, nil
}

// CommitIdIterator is a descending stream of commit ids.
type CommitIdIterator struct {
	it base.EntryIterator
}

// Next returns the next commit id, or ok=false once exhausted.
func (i *CommitIdIterator) Next() (id base.CommitId, ok bool) {
	e, ok := i.it.Next()
	if !ok {
		return nil, false
	}
	return e.CommitID(), true
}

// Iter returns a fresh commit-id stream in descending position order.
func (r *Revset) Iter() *CommitIdIterator {
	return &CommitIdIterator{it: r.set.Iter()}
}

// IterGraph returns a fresh stream of (commit, graph edges), delegating the
// edge computation to the external index's GraphIterator.
func (r *Revset) IterGraph() base.GraphIterator {
	return r.index.NewGraphIterator(r.set.Iter())
}

// ChangeIdIndex materializes (ChangeId, IndexPosition) pairs for every
// member into an IdIndex, memoized for the lifetime of this Revset value.
// The "no caching across evaluations" constraint on this engine concerns
// caching across separate evaluations, not within one already-compiled
// Revset, so memoizing this index for as long as the Revset itself lives is
// in scope.
func (r *Revset) ChangeIdIndex() *idindex.IdIndex[base.ChangeId, base.IndexPosition] {
	r.changeIdIndexOnce.Do(func() {
		var pairs []idindex.Entry[base.ChangeId, base.IndexPosition]
		it := r.set.Iter()
		for {
			e, ok := it.Next()
			if !ok {
				break
			}
			pairs = append(pairs, idindex.Entry[base.ChangeId, base.IndexPosition]{
				Key:   e.ChangeID(),
				Value: e.Position(),
			})
		}
		r.changeIdIndex = idindex.New(pairs, func(id base.ChangeId) []byte { return id.Bytes() })
	})
	return r.changeIdIndex
}

// ResolveChangeIdPosition re-hydrates a CommitId from an IndexPosition
// returned by a ChangeIdIndex lookup.
func (r *Revset) ResolveChangeIdPosition(pos base.IndexPosition) base.CommitId {
	return r.index.EntryByPosition(pos).CommitID()
}

// ResolveChangeIdPrefix resolves prefix against this revset's ChangeIdIndex
// and rehydrates every matching position straight back into a CommitId, so
// callers never have to thread ResolveChangeIdPosition through
// idindex.ResolvePrefixWith themselves.
func (r *Revset) ResolveChangeIdPrefix(prefix base.HexPrefix) idindex.Resolution[base.CommitId] {
	return idindex.ResolvePrefixWith(r.ChangeIdIndex(), prefix, r.ResolveChangeIdPosition)
}

// IsEmpty reports whether the revset has no members.
func (r *Revset) IsEmpty() bool {
	_, ok := r.set.Iter().Next()
	return !ok
}
