package xhash

import (
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/eth2030/accumulator/element"
)

// keccak256 is the default Algorithm, grounded on the origin codebase's
// crypto.Keccak256 (golang.org/x/crypto/sha3.NewLegacyKeccak256).
type keccak256 struct{}

// Keccak256 is the default hash capability used by the accumulator.
var Keccak256 Algorithm = keccak256{}

func (keccak256) New() Incremental {
	return &keccakHasher{h: sha3.NewLegacyKeccak256()}
}

func (a keccak256) Digest(parts ...[]byte) element.Element {
	return digest(a, parts...)
}

type keccakHasher struct {
	h hash.Hash
}

func (k *keccakHasher) Update(p []byte) Incremental {
	k.h.Write(p)
	return k
}

func (k *keccakHasher) Finalize() element.Element {
	return element.FromBytes(k.h.Sum(nil))
}
