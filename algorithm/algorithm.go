package algorithm

import (
	"context"

	"github.com/corvid-labs/deltadebug/cache"
	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/input"
	"github.com/corvid-labs/deltadebug/outcome"
)

// OracleFunc classifies a Configuration. It may have side effects (spawn a
// subprocess, touch the filesystem) but must be deterministic with respect
// to the Configuration for caching to be sound. An error is fatal: it
// aborts the run and propagates to the caller of Algorithm.Run unchanged.
type OracleFunc[E comparable] func(cfg configuration.Configuration[E]) (outcome.Outcome, error)

// Algorithm is a reduction strategy: given an Input and an oracle, it
// produces a reduced Configuration. cache may be nil, in which case every
// oracle invocation is uncached.
type Algorithm[E comparable] interface {
	// Name identifies the algorithm for reporting (e.g. Debugger.Report).
	Name() string

	// Run reduces in's full configuration, consulting oracle (through
	// Test, for caching) as needed, and returns the reduced result.
	Run(ctx context.Context, in *input.Input[E], oracle OracleFunc[E], c cache.Cache[E]) (configuration.Configuration[E], error)
}

// Test invokes oracle(cfg), consulting c first and populating it
// afterward. If c is nil, oracle is always invoked directly. This is the
// single chokepoint every algorithm in this module uses instead of
// calling the oracle itself, so caching behavior is uniform across
// DDMin, ZipMin, ProbDD and HDD's inner algorithm.
func Test[E comparable](oracle OracleFunc[E], cfg configuration.Configuration[E], c cache.Cache[E]) (outcome.Outcome, error) {
	if c != nil {
		if o, err := c.Get(cfg); err == nil {
			return o, nil
		}
	}
	o, err := oracle(cfg)
	if err != nil {
		return 0, err
	}
	if c != nil {
		if err := c.Put(cfg, o); err != nil {
			return 0, err
		}
	}
	return o, nil
}
