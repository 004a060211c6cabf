package xhash

import (
	"crypto/sha256"
	"hash"

	"github.com/eth2030/accumulator/element"
)

// sha256Algo is an alternate Algorithm, grounded on the origin codebase's
// commitment tree ("SHA-256 is used for all hashing, providing
// post-quantum security"). It demonstrates that the hash capability is
// swappable per instantiation.
type sha256Algo struct{}

// SHA256 is an alternate hash capability usable in place of Keccak256.
var SHA256 Algorithm = sha256Algo{}

func (sha256Algo) New() Incremental {
	return &sha256Hasher{h: sha256.New()}
}

func (a sha256Algo) Digest(parts ...[]byte) element.Element {
	return digest(a, parts...)
}

type sha256Hasher struct {
	h hash.Hash
}

func (s *sha256Hasher) Update(p []byte) Incremental {
	s.h.Write(p)
	return s
}

func (s *sha256Hasher) Finalize() element.Element {
	return element.FromBytes(s.h.Sum(nil))
}
