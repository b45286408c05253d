package base

import (
	"bytes"
	"encoding/hex"
)

// IndexPosition is the totally-ordered integer key the external index
// assigns to every commit. It is the engine's sole ordering axis: every
// set in the revsetcore package enumerates its members in strictly
// descending IndexPosition, and every predicate probe expects to be called
// with positions that only ever decrease.
type IndexPosition int64

// CommitId is the opaque, fixed-length identity the backend assigns to a
// commit. Two CommitIds are equal iff their underlying bytes are equal;
// ordering is plain byte-lexicographic, matching how the index sorts them.
type CommitId []byte

// Bytes returns the raw identifier bytes. Callers must not mutate the
// returned slice.
func (id CommitId) Bytes() []byte { return id }

// String renders the identifier as lowercase hex.
func (id CommitId) String() string { return hex.EncodeToString(id) }

// Compare returns -1, 0 or 1 as id is less than, equal to, or greater than
// other, by byte-lexicographic order.
func (id CommitId) Compare(other CommitId) int { return bytes.Compare(id, other) }

// ChangeId is the opaque, fixed-length identity that stays stable across
// rewrites of a commit (amend, rebase, and similar history-modifying
// operations). Unlike CommitId, a single ChangeId may legitimately map to
// more than one CommitId at once when a change has diverged.
type ChangeId []byte

// Bytes returns the raw identifier bytes. Callers must not mutate the
// returned slice.
func (id ChangeId) Bytes() []byte { return id }

// String renders the identifier as lowercase hex.
func (id ChangeId) String() string { return hex.EncodeToString(id) }

// Compare returns -1, 0 or 1 as id is less than, equal to, or greater than
// other, by byte-lexicographic order.
func (id ChangeId) Compare(other ChangeId) int { return bytes.Compare(id, other) }
