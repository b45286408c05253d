package base

// PathDiff is a single differing path produced by Tree.Diff.
type PathDiff struct {
	Path string
}

// PathDiffIter is a lazy stream of differing paths.
type PathDiffIter interface {
	Next() (PathDiff, bool)
}

// Tree is a commit's snapshot of the working copy. Diff yields the paths
// that differ between it and other, restricted to whatever the matcher
// selects.
type Tree interface {
	Diff(other Tree, matcher Matcher) PathDiffIter
}

// Commit is a single commit object as fetched from the store.
type Commit interface {
	Author() Signature
	Committer() Signature
	Description() string
	Parents() []CommitId
	Tree() Tree
}

// Store is the external commit object store this engine reads through for
// content predicates and Latest-k.
type Store interface {
	// Commit fetches a commit by id. A missing id that the index claims to
	// have is a fatal inconsistency between index and store; callers inside
	// a predicate probe are expected to panic rather than hide it.
	Commit(id CommitId) (Commit, error)

	// MergedParentTree computes the tree a diff against "the merged
	// parents" of a commit should be compared to: the merge result of
	// parents' trees (or the single parent's tree, or the empty tree for a
	// root commit). The merge algorithm itself belongs to the store.
	MergedParentTree(parents []CommitId) (Tree, error)
}
