// Package idindex implements IdIndex: an immutable, sorted-array structure
// over (key, value) pairs that answers hex-prefix lookups and
// shortest-unique-prefix queries. It is intentionally a flat sorted slice
// plus binary search rather than a tree or skiplist: the contiguous-run
// scan ResolvePrefixWith needs for duplicate keys falls straight out of
// a sorted slice, and nothing here benefits from logarithmic insertion
// since the index is immutable after construction.
package idindex

import (
	"bytes"
	"sort"
)

// ResolutionKind classifies the outcome of resolving a prefix against an
// IdIndex.
type ResolutionKind int

const (
	NoMatch ResolutionKind = iota
	SingleMatch
	AmbiguousMatch
)

func (k ResolutionKind) String() string {
	switch k {
	case NoMatch:
		return "NoMatch"
	case SingleMatch:
		return "SingleMatch"
	case AmbiguousMatch:
		return "AmbiguousMatch"
	default:
		return "ResolutionKind(?)"
	}
}

// Resolution is the result of ResolvePrefixWith: a classification plus,
// only for SingleMatch, every value sharing that one distinct key
// (duplicates preserved, in stored order).
type Resolution[U any] struct {
	Kind   ResolutionKind
	Values []U
}

// Prefix is anything offering a binary-search lower bound and a membership
// test against a full-length key's bytes. base.HexPrefix satisfies this.
type Prefix interface {
	MinPrefixBytes() []byte
	Matches(keyBytes []byte) bool
}

// Entry is a single (key, value) pair, as supplied to New before sorting.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// IdIndex is an immutable, sorted-array-backed index over (K, V) pairs.
// Duplicate keys are permitted; their relative order among themselves is
// preserved by the construction sort but is not otherwise meaningful.
type IdIndex[K any, V any] struct {
	entries  []Entry[K, V]
	keyBytes func(K) []byte
}

// New builds an IdIndex from an unsorted slice of pairs. keyBytes extracts
// the byte representation of a key, used both for ordering (plain
// byte-lexicographic comparison) and for hex-prefix matching.
func New[K any, V any](pairs []Entry[K, V], keyBytes func(K) []byte) *IdIndex[K, V] {
	sorted := append([]Entry[K, V](nil), pairs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return bytes.Compare(keyBytes(sorted[i].Key), keyBytes(sorted[j].Key)) < 0
	})
	return &IdIndex[K, V]{entries: sorted, keyBytes: keyBytes}
}

// Len returns the number of (key, value) pairs, counting duplicate keys
// individually.
func (idx *IdIndex[K, V]) Len() int { return len(idx.entries) }

// ResolvePrefixWith resolves prefix against idx. mapValue converts each
// matching entry's stored value into whatever type the caller wants back.
//
// It is a free function rather than a method because Go methods cannot
// introduce a type parameter beyond the receiver's own (K, V) — U is only
// known at the call site.
func ResolvePrefixWith[K any, V any, U any](idx *IdIndex[K, V], prefix Prefix, mapValue func(V) U) Resolution[U] {
	lower := prefix.MinPrefixBytes()
	start := sort.Search(len(idx.entries), func(i int) bool {
		return bytes.Compare(idx.keyBytes(idx.entries[i].Key), lower) >= 0
	})

	end := start
	for end < len(idx.entries) && prefix.Matches(idx.keyBytes(idx.entries[end].Key)) {
		end++
	}

	if start == end {
		return Resolution[U]{Kind: NoMatch}
	}

	first := idx.keyBytes(idx.entries[start].Key)
	sameKey := true
	for i := start + 1; i < end; i++ {
		if !bytes.Equal(first, idx.keyBytes(idx.entries[i].Key)) {
			sameKey = false
			break
		}
	}
	if !sameKey {
		return Resolution[U]{Kind: AmbiguousMatch}
	}

	values := make([]U, 0, end-start)
	for i := start; i < end; i++ {
		values = append(values, mapValue(idx.entries[i].Value))
	}
	return Resolution[U]{Kind: SingleMatch, Values: values}
}

// ShortestUniquePrefixLen returns, in hex digits, the length of the
// shortest prefix of key that no other distinct stored key also has. key
// need not itself be present in the index.
func (idx *IdIndex[K, V]) ShortestUniquePrefixLen(key K) int {
	target := idx.keyBytes(key)

	pos := sort.Search(len(idx.entries), func(i int) bool {
		return bytes.Compare(idx.keyBytes(idx.entries[i].Key), target) >= 0
	})

	max := 0

	for i := pos - 1; i >= 0; i-- {
		other := idx.keyBytes(idx.entries[i].Key)
		if bytes.Equal(other, target) {
			continue
		}
		if n := commonHexPrefixLen(target, other) + 1; n > max {
			max = n
		}
		break
	}

	for i := pos; i < len(idx.entries); i++ {
		other := idx.keyBytes(idx.entries[i].Key)
		if bytes.Equal(other, target) {
			continue
		}
		if n := commonHexPrefixLen(target, other) + 1; n > max {
			max = n
		}
		break
	}

	return max
}

// commonHexPrefixLen returns the number of leading hex digits a and b
// share, to a resolution of one nibble.
func commonHexPrefixLen(a, b []byte) int {
	n := 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			n += 2
			continue
		}
		if a[i]>>4 == b[i]>>4 {
			n++
		}
		return n
	}
	return n
}
