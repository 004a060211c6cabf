package accumulator

import (
	"github.com/eth2030/accumulator/log"
	"github.com/eth2030/accumulator/xhash"
)

// config holds the instantiation parameters shared by Accumulator and
// Prover: the hash capability (spec.md: "the hash function ... is a
// parameter of the instantiation") and an optional logger.
type config struct {
	algo   xhash.Algorithm
	logger *log.Logger
}

func defaultConfig() config {
	return config{algo: xhash.Keccak256}
}

// Option configures an Accumulator or a Prover at construction time.
type Option func(*config)

// WithAlgorithm selects the hash capability used for every insert. The
// default is Keccak256.
func WithAlgorithm(a xhash.Algorithm) Option {
	return func(c *config) { c.algo = a }
}

// WithLogger attaches a logger; when set, Insert logs the new index and
// root at Debug level. When unset, no logging occurs.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}
