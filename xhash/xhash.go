// Package xhash defines the hash capability consumed by the accumulator: a
// constructor for a fresh incremental hasher, a chainable update, a
// finalize yielding exactly 32 bytes, and a one-shot digest helper. The
// accumulator never assumes any algebraic property of the hash beyond
// collision resistance, so any Algorithm implementation can be swapped in.
package xhash

import "github.com/eth2030/accumulator/element"

// Incremental is a single in-progress hash computation. Update is
// chainable; Finalize consumes the hasher and yields the 32-byte digest.
type Incremental interface {
	Update(p []byte) Incremental
	Finalize() element.Element
}

// Algorithm is a hash capability: a constructor for fresh incremental
// hashers plus a one-shot digest helper over the concatenation of its
// arguments.
type Algorithm interface {
	New() Incremental
	Digest(parts ...[]byte) element.Element
}

// digest is a small helper every Algorithm implementation can share: drive
// a fresh Incremental through Update/Finalize over the given parts.
func digest(a Algorithm, parts ...[]byte) element.Element {
	h := a.New()
	for _, p := range parts {
		h = h.Update(p)
	}
	return h.Finalize()
}
