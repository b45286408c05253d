package base

// IndexEntry is an opaque handle supplied by the external index for a
// single commit. It is cheap to pass around by value or interface handle;
// nothing in this module retains it beyond the lifetime of the set that
// produced it.
type IndexEntry interface {
	Position() IndexPosition
	CommitID() CommitId
	ChangeID() ChangeId
	NumParents() int
	ParentPositions() []IndexPosition
}

// EntryIterator is the minimal pull-based iteration capability shared
// between the external index's own iterators (RevWalk) and every internal
// set in internal/revsetcore: a single Next that returns the next entry in
// strictly descending position order, or ok=false once exhausted.
type EntryIterator interface {
	Next() (entry IndexEntry, ok bool)
}
