package accumulator

import (
	"sync"

	"github.com/holiman/uint256"

	"github.com/eth2030/accumulator/element"
	"github.com/eth2030/accumulator/log"
)

// Accumulator holds the current length and a sparse state vector, and
// offers Insert, Root, and State lookup. insert is the only mutating
// operation; it executes atomically with respect to concurrent readers
// behind a writer lock, as recommended by spec.md's concurrency model.
type Accumulator struct {
	mu sync.RWMutex

	k *uint256.Int // number of insertions performed
	// S is keyed by bit position (trailing-zero count), not by index: at
	// any moment S[p] holds the root of the most recent n whose
	// trailing-zero count is exactly p. Slots are overwritten but never
	// removed, so the map holds one entry per bit position written so far
	// (at most floor(log2 k) + 1 entries).
	S map[uint32]element.Element

	cfg    config
	logger *log.Logger
}

// New creates an empty Accumulator. The default hash capability is
// Keccak256; override with WithAlgorithm. Supply WithLogger to enable
// Debug-level tracing of inserts.
func New(opts ...Option) *Accumulator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Accumulator{
		k:      new(uint256.Int),
		S:      make(map[uint32]element.Element),
		cfg:    cfg,
		logger: cfg.logger,
	}
}

// Len returns the number of insertions performed so far.
func (a *Accumulator) Len() *uint256.Int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return new(uint256.Int).Set(a.k)
}

// Root returns the current root: the zero digest when the accumulator is
// empty.
func (a *Accumulator) Root() element.Element {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.stateLocked(a.k)
}

// State returns S[trailing_zeros(i)], the root of the most recent index
// sharing i's trailing-zero pattern, or the zero digest when i is 0. The
// second return value reports whether that bit-slot has ever been
// written; index 0 always reports true.
func (a *Accumulator) State(i *uint256.Int) (element.Element, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if i.IsZero() {
		return element.Zero, true
	}
	v, ok := a.S[trailingZeros(i)]
	return v, ok
}

// stateLocked is State's body without the zero-element ok flag, for
// internal callers that already hold a.mu and only need the root value (by
// invariant 3 of spec.md, a slot reached during a valid insert is always
// present).
func (a *Accumulator) stateLocked(i *uint256.Int) element.Element {
	if i.IsZero() {
		return element.Zero
	}
	return a.S[trailingZeros(i)]
}

// Insert appends x and returns the new root r_k. See spec.md section 4.2
// for the five-step protocol this implements.
func (a *Accumulator) Insert(x element.Element) element.Element {
	a.mu.Lock()
	defer a.mu.Unlock()

	kPrime := new(uint256.Int).AddUint64(a.k, 1)

	prevRoot := a.stateLocked(a.k)
	predRoot := a.stateLocked(Pred(kPrime))

	r := a.cfg.algo.Digest(x.Bytes(), prevRoot.Bytes(), predRoot.Bytes())

	a.k = kPrime
	a.S[trailingZeros(kPrime)] = r

	if a.logger != nil {
		a.logger.Debug("accumulator insert", "index", kPrime.String(), "root", r.Hex())
	}

	return r
}

// InsertData hashes data with the configured algorithm and inserts the
// resulting element.
func (a *Accumulator) InsertData(data []byte) element.Element {
	x := a.cfg.algo.Digest(data)
	return a.Insert(x)
}
