package hamt

import "github.com/cespare/xxhash/v2"

// Hash is the external H: bytes -> uint64 collaborator the trie core
// consumes (spec §6). The core never requires a specific hash family —
// only reasonable diffusion across the 64-bit output.
type Hash func(key []byte) uint64

// DefaultHash is the package's concrete default for Hash, matching the
// teacher's own choice of xxhash as a fast, well-diffused non-cryptographic
// hash.
func DefaultHash(key []byte) uint64 {
	return xxhash.Sum64(key)
}
