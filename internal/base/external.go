package base

import "strings"

// GenerationRange constrains a walk to commits within [Start, End) parent
// edges of the walk's heads. Full bypasses the bound entirely and is the
// zero-cost default every operator reaches for when no generation
// constraint was requested.
type GenerationRange struct {
	Full       bool
	Start, End uint64
}

// FullGenerationRange is the unconstrained generation range: no filtering.
var FullGenerationRange = GenerationRange{Full: true}

// RevWalk is a cloneable, descending-position iterator over reachable
// commits, produced by Index.WalkRevs. Clone gives independent cursors over
// the same underlying walk so a single Walk set can be iterated more than
// once without sharing state between callers.
type RevWalk interface {
	EntryIterator
	Clone() RevWalk
	FilterByGeneration(gen GenerationRange) RevWalk
}

// GraphEdgeType categorizes an edge produced by a GraphIterator as direct
// (the target is itself a member of the set being iterated) or indirect
// (the nearest ancestor member, reached by skipping over commits that are
// not).
type GraphEdgeType int

const (
	GraphEdgeDirect GraphEdgeType = iota
	GraphEdgeIndirect
)

// GraphEdge is one edge from an entry to a nearer-root entry, as computed
// by a GraphIterator.
type GraphEdge struct {
	Target IndexPosition
	Type   GraphEdgeType
}

// GraphIterator is supplied by the external index (Index.NewGraphIterator):
// given an underlying stream of set members in descending position order,
// it computes each member's edges to the nearest ancestor members, skipping
// over intermediate commits that are not themselves part of the set.
type GraphIterator interface {
	Next() (entry IndexEntry, edges []GraphEdge, ok bool)
}

// Index is the external, already-built commit index this engine reads
// through. It owns no engine-side mutable state; every method here is
// read-only from the engine's point of view.
type Index interface {
	// Entry looks up a commit by id. ok is false if the id is not present.
	Entry(id CommitId) (IndexEntry, bool)

	// EntryByPosition looks up a commit by its index position. The
	// position must have come from an IndexEntry this same Index produced;
	// passing any other value is a precondition violation.
	EntryByPosition(pos IndexPosition) IndexEntry

	// WalkRevs returns a descending walk of everything reachable from
	// heads that is not reachable from roots, without the root commits
	// themselves. An empty roots slice walks all the way to the graph's
	// own roots.
	WalkRevs(heads, roots []CommitId) RevWalk

	// Heads filters ids down to those with no descendant also present in
	// ids.
	Heads(ids []CommitId) []CommitId

	// CommonHexLen returns the number of leading hex digits a and b share.
	CommonHexLen(a, b CommitId) int

	// NewGraphIterator wraps members (already descending by position) with
	// graph-edge computation for Revset.IterGraph.
	NewGraphIterator(members EntryIterator) GraphIterator
}

// Signature is a commit's author or committer identity and timestamp.
type Signature struct {
	Name            string
	Email           string
	TimestampMillis int64
}

// Matcher tests whether a path is selected. The path-matcher implementation
// itself (glob syntax, gitignore-style rules, and so on) lives outside this
// engine; File predicates only ever need to ask "does this path match".
type Matcher interface {
	Matches(path string) bool
}

// EverythingMatcher matches every path. It is the File predicate's default
// when no path arguments were given.
type EverythingMatcher struct{}

func (EverythingMatcher) Matches(string) bool { return true }

// PrefixMatcher matches any path that has one of a fixed set of paths as a
// path-component prefix.
type PrefixMatcher struct {
	prefixes []string
}

// NewPrefixMatcher builds a PrefixMatcher over the given path prefixes.
func NewPrefixMatcher(prefixes []string) PrefixMatcher {
	return PrefixMatcher{prefixes: prefixes}
}

func (m PrefixMatcher) Matches(path string) bool {
	for _, p := range m.prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
