package accumulator

import (
	"github.com/holiman/uint256"

	"github.com/eth2030/accumulator/element"
	"github.com/eth2030/accumulator/xhash"
)

// Verify is a pure, static function: it consumes a witness produced by
// ProveFrom(i, j) and checks that it proves x sat at position j in the
// history committed to by the anchor root rI, for j <= i. It requires no
// state beyond its arguments. The j <= i precondition (and j != 0) is
// reported as ErrOutOfBounds rather than enforced by panic, so a caller
// supplying a bad index pair gets an ordinary error return.
//
// Verify uses Keccak256, matching Accumulator's default. Use VerifyWith to
// check a proof produced against a different hash capability.
func Verify(rI element.Element, i, j *uint256.Int, witness []element.Element, x element.Element) error {
	return VerifyWith(xhash.Keccak256, rI, i, j, witness, x)
}

// VerifyWith is Verify parameterized by the hash capability the witness
// was produced under.
func VerifyWith(algo xhash.Algorithm, rI element.Element, i, j *uint256.Int, witness []element.Element, x element.Element) error {
	if j.IsZero() || j.Cmp(i) > 0 {
		return ErrOutOfBounds
	}

	if len(witness) < 3 {
		return ErrWitnessTooShort
	}

	xi, rPrev, rPred := witness[0], witness[1], witness[2]

	computed := algo.Digest(xi.Bytes(), rPrev.Bytes(), rPred.Bytes())
	if computed != rI {
		return ErrRiMismatch
	}

	if i.Cmp(j) == 0 {
		if xi != x {
			return ErrXiMismatch
		}
		return nil
	}

	predI := Pred(i)
	rest := witness[3:]
	if predI.Cmp(j) >= 0 {
		return VerifyWith(algo, rPred, predI, j, rest, x)
	}
	iMinus1 := new(uint256.Int).SubUint64(i, 1)
	return VerifyWith(algo, rPrev, iMinus1, j, rest, x)
}
