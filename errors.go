package accumulator

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// Prover-side errors.
var (
	// ErrOutOfBounds is returned by ProveFrom when the target index j is
	// greater than the anchor index i, or when either is the reserved
	// zero index (index 0 is never a valid proof target). Verify returns
	// it too when j is 0 or greater than i.
	ErrOutOfBounds = errors.New("accumulator: target index out of bounds")
)

// Verifier-side errors.
var (
	// ErrWitnessTooShort is returned by Verify when the witness has fewer
	// than three elements remaining at some recursion level.
	ErrWitnessTooShort = errors.New("accumulator: witness too short")

	// ErrRiMismatch is returned by Verify when the hash of a witness
	// triple does not match the claimed root at that recursion level.
	ErrRiMismatch = errors.New("accumulator: root does not match witness triple")

	// ErrXiMismatch is returned by Verify when the recursion reaches the
	// target index but the witnessed element does not equal x.
	ErrXiMismatch = errors.New("accumulator: element at target index does not match")
)

// MissingHistoryError is returned by ProveFrom when an index needed to
// build the witness has no recorded element or root.
type MissingHistoryError struct {
	Index *uint256.Int
}

func (e *MissingHistoryError) Error() string {
	return fmt.Sprintf("accumulator: missing history at index %s", e.Index.String())
}
