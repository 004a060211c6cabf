package accumulator

import (
	"sync"

	"github.com/holiman/uint256"

	"github.com/eth2030/accumulator/element"
	"github.com/eth2030/accumulator/log"
)

// Prover extends an Accumulator with full history: a total mapping from
// index to element (X) and from index to root (R), sufficient to build a
// witness for any earlier index reachable from the current length.
type Prover struct {
	mu sync.RWMutex

	acc *Accumulator
	X   map[uint256.Int]element.Element
	R   map[uint256.Int]element.Element

	logger *log.Logger
}

// NewProver creates a Prover around a fresh, empty Accumulator.
func NewProver(opts ...Option) *Prover {
	return From(New(opts...), opts...)
}

// From wraps an existing Accumulator, recording its history from this
// point forward. Index 0 is always recorded (X[0] = R[0] = the zero
// element), matching spec.md's invariant that the domain of X and R is
// {0, 1, ..., k}; elements inserted into acc before From was called are
// not retroactively recoverable, since Accumulator itself does not retain
// past elements.
func From(acc *Accumulator, opts ...Option) *Prover {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Prover{
		acc:    acc,
		X:      make(map[uint256.Int]element.Element),
		R:      make(map[uint256.Int]element.Element),
		logger: cfg.logger,
	}
	p.X[uint256.Int{}] = element.Zero
	p.R[uint256.Int{}] = element.Zero
	return p
}

// Len returns the number of insertions performed so far.
func (p *Prover) Len() *uint256.Int {
	return p.acc.Len()
}

// Root returns the current root.
func (p *Prover) Root() element.Element {
	return p.acc.Root()
}

// Insert mirrors Accumulator.Insert, additionally recording x and the new
// root at the new index.
func (p *Prover) Insert(x element.Element) element.Element {
	r := p.acc.Insert(x)
	i := p.acc.Len()

	p.mu.Lock()
	p.X[*i] = x
	p.R[*i] = r
	p.mu.Unlock()

	if p.logger != nil {
		p.logger.Debug("prover insert", "index", i.String(), "root", r.Hex())
	}
	return r
}

// InsertData hashes data with the underlying accumulator's algorithm and
// inserts the resulting element.
func (p *Prover) InsertData(data []byte) element.Element {
	x := p.acc.cfg.algo.Digest(data)
	return p.Insert(x)
}

func (p *Prover) lookupX(i *uint256.Int) (element.Element, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.X[*i]
	return v, ok
}

func (p *Prover) lookupR(i *uint256.Int) (element.Element, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.R[*i]
	return v, ok
}

// Prove is sugar for ProveFrom(p.Len(), j): the natural anchor for a proof
// with no explicit anchor is the accumulator's current length, not the
// number of occupied state slots (see spec.md section 9's Open Question
// (a), resolved here in favor of the non-buggy reading).
func (p *Prover) Prove(j *uint256.Int) ([]element.Element, error) {
	return p.ProveFrom(p.Len(), j)
}

// ProveFrom builds a witness proving that x_j sat at position j in the
// history committed to by r_i, for 0 < j <= i <= the current length. The
// witness is a flat sequence of 32-byte elements, grouped into triples
// (x_n, r_{n-1}, r_{pred(n)}), one triple per step of the deterministic
// path from i down to j.
func (p *Prover) ProveFrom(i, j *uint256.Int) ([]element.Element, error) {
	if j.IsZero() || i.IsZero() || j.Cmp(i) > 0 {
		return nil, ErrOutOfBounds
	}

	xi, ok := p.lookupX(i)
	if !ok {
		return nil, &MissingHistoryError{Index: i}
	}
	iMinus1 := new(uint256.Int).SubUint64(i, 1)
	rPrev, ok := p.lookupR(iMinus1)
	if !ok {
		return nil, &MissingHistoryError{Index: iMinus1}
	}
	predI := Pred(i)
	rPred, ok := p.lookupR(predI)
	if !ok {
		return nil, &MissingHistoryError{Index: predI}
	}

	witness := []element.Element{xi, rPrev, rPred}

	if i.Cmp(j) == 0 {
		return witness, nil
	}

	var next *uint256.Int
	if predI.Cmp(j) >= 0 {
		next = predI
	} else {
		next = iMinus1
	}

	rest, err := p.ProveFrom(next, j)
	if err != nil {
		return nil, err
	}
	return append(witness, rest...), nil
}
