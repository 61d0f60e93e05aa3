// Package hamt implements a Hash Array Mapped Trie: an in-memory
// associative map from opaque byte-string keys to opaque byte-string
// values, organized as a fixed-fan-out Root table feeding bitmap-indexed
// Tables.
//
// The trie is not persistent — Insert, Find, and Delete mutate a Root
// and the Tables reachable from it in place. It makes no insertion-order
// guarantee, performs no deep copy of stored values, and provides no
// concurrency safety: a *Root and everything reachable from it must not
// be mutated from more than one goroutine at a time, and the package
// does no internal locking to enforce that. All operations are
// synchronous, non-suspending, and bounded by Root.DMax()+1 recursive
// steps — there is nothing to cancel.
//
// Hashing is an external collaborator: New accepts any func([]byte)
// uint64 via WithHash, defaulting to DefaultHash. The package never
// logs, retries, or recovers from an operation's error internally —
// every InvalidArgumentError, MaxDepthExceededError, and NotFoundError
// is returned to the caller unchanged.
package hamt
