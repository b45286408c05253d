package base

import "fmt"

// NoSuchRevisionError reports a name or id that the index does not contain.
// It is input-resolution: user-visible, and locally recoverable under a
// Present() expression.
type NoSuchRevisionError struct {
	Name string
}

func (e *NoSuchRevisionError) Error() string {
	return fmt.Sprintf("revset: no such revision: %s", e.Name)
}

// AmbiguousIdPrefixError reports a hex prefix that resolved to more than
// one distinct stored key. Input-resolution, but unlike NoSuchRevisionError
// it is not swallowed by Present().
type AmbiguousIdPrefixError struct {
	Prefix string
}

func (e *AmbiguousIdPrefixError) Error() string {
	return fmt.Sprintf("revset: ambiguous id prefix: %s", e.Prefix)
}

// StoreError wraps a failure surfaced by the backing commit store. It
// always propagates unchanged; nothing in this engine inspects or retries
// it.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("revset: store error: %s", e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// FatalStoreInconsistency is panicked (never returned) when a predicate
// probe discovers the store disagrees with what the index promised: a
// commit the index says exists is missing from the store, or similar. It
// has no recovery protocol; it indicates a bug upstream of the engine, not
// a condition callers of this package can meaningfully handle.
type FatalStoreInconsistency struct {
	Err error
}

func (e *FatalStoreInconsistency) Error() string {
	return fmt.Sprintf("revset: store inconsistent with index: %s", e.Err)
}

func (e *FatalStoreInconsistency) Unwrap() error { return e.Err }
