package revset

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/palisade-vcs/palisade/internal/base"
	"github.com/palisade-vcs/palisade/internal/revsetcore"
)

// compiler holds the context Compile threads through every recursive step:
// the index and store to read through, and the visible heads All and
// VisibleHeads resolve against.
type compiler struct {
	index        base.Index
	store        base.Store
	visibleHeads []base.CommitId
}

// Compile dispatches on expr and builds the corresponding internal set
// tree. visibleHeads is the context's externally supplied list of
// non-hidden tip commits.
func Compile(expr Expr, index base.Index, store base.Store, visibleHeads []base.CommitId) (revsetcore.Set, error) {
	c := &compiler{index: index, store: store, visibleHeads: visibleHeads}
	return c.compile(expr)
}

func (c *compiler) compile(expr Expr) (revsetcore.Set, error) {
	switch e := expr.(type) {
	case None:
		return revsetcore.NewEager(nil), nil

	case All:
		return c.compile(Ancestors{Heads: VisibleHeads{}, Generation: Generation{Full: true}})

	case Commits:
		ids, err := decodeCommitIds(e.Ids)
		if err != nil {
			return nil, err
		}
		return c.compileCommitIds(ids)

	case VisibleHeads:
		return c.compileCommitIds(c.visibleHeads)

	case Children:
		return c.compileChildren(e)

	case Ancestors:
		return c.compile(Range{Roots: None{}, Heads: e.Heads, Generation: e.Generation})

	case Range:
		return c.compileRange(e)

	case DagRange:
		return c.compileDagRange(e)

	case Heads:
		return c.compileHeads(e)

	case Roots:
		return c.compileRoots(e)

	case Latest:
		return c.compileLatest(e)

	case Filter:
		return c.compileFilter(e)

	case AsFilter:
		return c.compile(e.Inner)

	case Present:
		return c.compilePresent(e)

	case NotIn:
		all, err := c.compile(All{})
		if err != nil {
			return nil, err
		}
		inner, err := c.compile(e.Inner)
		if err != nil {
			return nil, err
		}
		return revsetcore.NewDifference(all, inner), nil

	case Union:
		a, err := c.compile(e.A)
		if err != nil {
			return nil, err
		}
		b, err := c.compile(e.B)
		if err != nil {
			return nil, err
		}
		return revsetcore.NewUnion(a, b), nil

	case Intersection:
		a, err := c.compile(e.A)
		if err != nil {
			return nil, err
		}
		b, err := c.compile(e.B)
		if err != nil {
			return nil, err
		}
		return revsetcore.NewFilter(a, b), nil

	case Difference:
		a, err := c.compile(e.A)
		if err != nil {
			return nil, err
		}
		b, err := c.compile(e.B)
		if err != nil {
			return nil, err
		}
		return revsetcore.NewDifference(a, b), nil

	case Symbol, Branches, RemoteBranches, Tags, GitRefs, GitHead:
		panic(fmt.Sprintf("revset: unresolved symbolic expression reached the compiler: %#v (name resolution must run before Compile)", expr))

	default:
		panic(fmt.Sprintf("revset: unknown expression node %#v", expr))
	}
}

func decodeCommitIds(hexIds []string) ([]base.CommitId, error) {
	ids := make([]base.CommitId, len(hexIds))
	for i, h := range hexIds {
		b, err := hex.DecodeString(h)
		if err != nil {
			return nil, &base.NoSuchRevisionError{Name: h}
		}
		ids[i] = base.CommitId(b)
	}
	return ids, nil
}

// compileCommitIds resolves a list of already-decoded commit ids against
// the index, aggregating every failure instead of stopping at the first:
// a Commits(ids) node can fail on more than one id at once.
func (c *compiler) compileCommitIds(ids []base.CommitId) (revsetcore.Set, error) {
	var entries []base.IndexEntry
	var errs *multierror.Error
	for _, id := range ids {
		entry, ok := c.index.Entry(id)
		if !ok {
			errs = multierror.Append(errs, &base.NoSuchRevisionError{Name: id.String()})
			continue
		}
		entries = append(entries, entry)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return revsetcore.NewEager(entries), nil
}

func (c *compiler) compileChildren(e Children) (revsetcore.Set, error) {
	roots, err := c.compile(e.Roots)
	if err != nil {
		return nil, err
	}
	candidates, err := c.compile(DagRange{Roots: e.Roots, Heads: All{}})
	if err != nil {
		return nil, err
	}
	return revsetcore.NewChildren(roots, candidates), nil
}

func (c *compiler) compileRange(e Range) (revsetcore.Set, error) {
	headsSet, err := c.compile(e.Heads)
	if err != nil {
		return nil, err
	}

	var rootIds []base.CommitId
	if _, isNone := e.Roots.(None); !isNone {
		rootsSet, err := c.compile(e.Roots)
		if err != nil {
			return nil, err
		}
		rootIds = commitIdsOf(rootsSet)
	}

	walk := c.index.WalkRevs(commitIdsOf(headsSet), rootIds)
	if !e.Generation.Full {
		walk = walk.FilterByGeneration(base.GenerationRange{Start: e.Generation.Start, End: e.Generation.End})
	}
	return revsetcore.NewWalk(walk), nil
}

func (c *compiler) compileDagRange(e DagRange) (revsetcore.Set, error) {
	ancestors, err := c.compile(Ancestors{Heads: e.Heads, Generation: Generation{Full: true}})
	if err != nil {
		return nil, err
	}
	rootsSet, err := c.compile(e.Roots)
	if err != nil {
		return nil, err
	}

	rootPositions := positionsOf(rootsSet)

	var entries []base.IndexEntry
	it := ancestors.Iter()
	for {
		en, ok := it.Next()
		if !ok {
			break
		}
		entries = append(entries, en)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Position() < entries[j].Position() })

	reachable := make(map[base.IndexPosition]struct{})
	var result []base.IndexEntry
	for _, en := range entries {
		_, reached := rootPositions[en.Position()]
		if !reached {
			for _, p := range en.ParentPositions() {
				if _, ok := reachable[p]; ok {
					reached = true
					break
				}
			}
		}
		if reached {
			reachable[en.Position()] = struct{}{}
			result = append(result, en)
		}
	}
	return revsetcore.NewEager(result), nil
}

func (c *compiler) compileHeads(e Heads) (revsetcore.Set, error) {
	candidates, err := c.compile(e.Candidates)
	if err != nil {
		return nil, err
	}
	headIds := c.index.Heads(commitIdsOf(candidates))
	return c.compileCommitIds(headIds)
}

func (c *compiler) compileRoots(e Roots) (revsetcore.Set, error) {
	candidates, err := c.compile(e.Candidates)
	if err != nil {
		return nil, err
	}
	connected, err := c.compile(DagRange{Roots: e.Candidates, Heads: e.Candidates})
	if err != nil {
		return nil, err
	}
	connectedPositions := positionsOf(connected)

	var result []base.IndexEntry
	it := candidates.Iter()
	for {
		en, ok := it.Next()
		if !ok {
			break
		}
		isRoot := true
		for _, p := range en.ParentPositions() {
			if _, ok := connectedPositions[p]; ok {
				isRoot = false
				break
			}
		}
		if isRoot {
			result = append(result, en)
		}
	}
	return revsetcore.NewEager(result), nil
}

func (c *compiler) compileLatest(e Latest) (revsetcore.Set, error) {
	candidates, err := c.compile(e.Candidates)
	if err != nil {
		return nil, err
	}
	return revsetcore.Latest(candidates, e.Count, c.store), nil
}

func (c *compiler) compileFilter(e Filter) (revsetcore.Set, error) {
	all, err := c.compile(All{})
	if err != nil {
		return nil, err
	}

	var pred revsetcore.Predicate
	switch e.Kind {
	case PredicateParentCount:
		pred = revsetcore.ParentCount(revsetcore.ParentCountRange{Min: e.ParentCountMin, Max: e.ParentCountMax})
	case PredicateDescription:
		pred = revsetcore.Description(c.store, e.Needle)
	case PredicateAuthor:
		pred = revsetcore.Author(c.store, e.Needle)
	case PredicateCommitter:
		pred = revsetcore.Committer(c.store, e.Needle)
	case PredicateFile:
		pred = revsetcore.File(c.store, e.Paths)
	default:
		panic(fmt.Sprintf("revset: unknown content predicate kind %d", e.Kind))
	}
	return revsetcore.NewFilter(all, pred), nil
}

func (c *compiler) compilePresent(e Present) (revsetcore.Set, error) {
	set, err := c.compile(e.Inner)
	if err == nil {
		return set, nil
	}
	if isOnlyNoSuchRevision(err) {
		return revsetcore.NewEager(nil), nil
	}
	return nil, err
}

// isOnlyNoSuchRevision reports whether err is a NoSuchRevisionError, or a
// multierror whose every wrapped error is one.
func isOnlyNoSuchRevision(err error) bool {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		if len(merr.Errors) == 0 {
			return false
		}
		for _, e := range merr.Errors {
			if !isOnlyNoSuchRevision(e) {
				return false
			}
		}
		return true
	}
	var notFound *base.NoSuchRevisionError
	return errors.As(err, &notFound)
}

func commitIdsOf(s revsetcore.Set) []base.CommitId {
	var ids []base.CommitId
	it := s.Iter()
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		ids = append(ids, e.CommitID())
	}
	return ids
}

func positionsOf(s revsetcore.Set) map[base.IndexPosition]struct{} {
	positions := make(map[base.IndexPosition]struct{})
	it := s.Iter()
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		positions[e.Position()] = struct{}{}
	}
	return positions
}
