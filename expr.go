// Package revset implements the revset evaluation engine: it compiles an
// already-parsed, already-name-resolved expression tree (Expr) into a
// lazily-enumerable, deduplicated sequence of commits, and exposes that
// sequence plus a change-id prefix index through the Revset facade.
package revset

// Expr is a resolved expression-tree node. Name resolution — turning a
// typed symbol, branch name, or similar into Commits(ids) — is the
// caller's responsibility and must have already happened by the time an
// Expr reaches Compile; the symbolic variants below exist only so Compile
// can fail loudly if that contract was violated.
type Expr interface {
	isExpr()
}

// None denotes the empty set.
type None struct{}

func (None) isExpr() {}

// All denotes every commit reachable from VisibleHeads. This silently
// excludes hidden commits, a deliberately accepted limitation: see
// DESIGN.md's Open Question decisions.
type All struct{}

func (All) isExpr() {}

// Commits denotes an explicit, already-resolved list of commit ids.
type Commits struct {
	Ids []string // hex CommitId; converted to base.CommitId at compile time
}

func (Commits) isExpr() {}

// VisibleHeads denotes the context's externally supplied visible heads.
type VisibleHeads struct{}

func (VisibleHeads) isExpr() {}

// Children denotes the direct children of Roots.
type Children struct {
	Roots Expr
}

func (Children) isExpr() {}

// Generation constrains a walk to commits within [Start, End) parent edges
// of its heads. Full bypasses the constraint.
type Generation struct {
	Full       bool
	Start, End uint64
}

// Ancestors denotes everything reachable from Heads within Generation,
// equivalent to Range{Roots: None{}, Heads: Heads, Generation: Generation}.
type Ancestors struct {
	Heads      Expr
	Generation Generation
}

func (Ancestors) isExpr() {}

// Range denotes everything reachable from Heads that is not reachable from
// Roots, within Generation.
type Range struct {
	Roots, Heads Expr
	Generation   Generation
}

func (Range) isExpr() {}

// DagRange denotes commits reachable from Heads that are also descendants
// of some member of Roots (inclusive of both).
type DagRange struct {
	Roots, Heads Expr
}

func (DagRange) isExpr() {}

// Heads denotes the tips of Candidates: members with no descendant also in
// Candidates.
type Heads struct {
	Candidates Expr
}

func (Heads) isExpr() {}

// Roots denotes the members of Candidates with no parent also in
// Candidates's connected closure.
type Roots struct {
	Candidates Expr
}

func (Roots) isExpr() {}

// Latest denotes the Count members of Candidates with the greatest
// (committer timestamp, position).
type Latest struct {
	Candidates Expr
	Count      int
}

func (Latest) isExpr() {}

// ContentPredicateKind selects which of the C5 content predicates Filter
// applies.
type ContentPredicateKind int

const (
	PredicateParentCount ContentPredicateKind = iota
	PredicateDescription
	PredicateAuthor
	PredicateCommitter
	PredicateFile
)

// Filter denotes All restricted to a single content predicate. Exactly one
// of the fields relevant to Kind is meaningful.
type Filter struct {
	Kind           ContentPredicateKind
	Needle         string   // Description, Author, Committer
	Paths          []string // File
	ParentCountMin int      // ParentCount
	ParentCountMax int      // ParentCount; negative means unbounded
}

func (Filter) isExpr() {}

// AsFilter is transparent at evaluation time; it exists to let an upstream
// optimizer mark a subexpression as filter-shaped without changing its
// meaning.
type AsFilter struct {
	Inner Expr
}

func (AsFilter) isExpr() {}

// Present evaluates Inner, substituting the empty set if evaluation fails
// with NoSuchRevision. Any other error still propagates.
type Present struct {
	Inner Expr
}

func (Present) isExpr() {}

// NotIn denotes All minus Inner.
type NotIn struct {
	Inner Expr
}

func (NotIn) isExpr() {}

// Union denotes A union B.
type Union struct {
	A, B Expr
}

func (Union) isExpr() {}

// Intersection denotes A intersected with B.
type Intersection struct {
	A, B Expr
}

func (Intersection) isExpr() {}

// Difference denotes A minus B.
type Difference struct {
	A, B Expr
}

func (Difference) isExpr() {}

// The following variants must have been resolved away by name resolution
// before an Expr reaches Compile; encountering one is a compiler
// precondition violation and Compile panics.

type Symbol struct{ Name string }

func (Symbol) isExpr() {}

type Branches struct{ Pattern string }

func (Branches) isExpr() {}

type RemoteBranches struct{ Pattern string }

func (RemoteBranches) isExpr() {}

type Tags struct{ Pattern string }

func (Tags) isExpr() {}

type GitRefs struct{}

func (GitRefs) isExpr() {}

type GitHead struct{}

func (GitHead) isExpr() {}
