// Package accumulator implements an append-only cryptographic accumulator
// with succinct membership-and-history proofs.
//
// Elements (32-byte digests) are inserted one at a time; after the k-th
// insert the accumulator exposes a single root that commits to the entire
// history. A Prover, given the full history, can produce a witness that
// convinces Verify — holding only an earlier root r_i — that a specific
// element sat at position j <= i in the history. The construction is a
// chained hash with two back-pointers: a step-back pointer to the
// immediately previous state, and a predecessor pointer derived from the
// lowest set bit of the index, giving O(log i) proof length.
package accumulator
