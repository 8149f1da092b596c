package debugger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/corvid-labs/deltadebug/algorithm"
	"github.com/corvid-labs/deltadebug/cache"
	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/input"
	"github.com/corvid-labs/deltadebug/internal/logging"
	"github.com/corvid-labs/deltadebug/outcome"
)

// Debugger drives a single Algorithm over an oracle, tallying outcomes
// and timing the run.
type Debugger[E comparable] struct {
	alg    algorithm.Algorithm[E]
	oracle algorithm.OracleFunc[E]
	cache  cache.Cache[E]
	log    *logging.Logger

	counters map[outcome.Outcome]int
	elapsed  time.Duration
	input    *input.Input[E]
	result   configuration.Configuration[E]
	ran      bool
}

// Option configures a Debugger.
type Option[E comparable] func(*Debugger[E])

// WithCache attaches a Cache every oracle invocation is routed through.
func WithCache[E comparable](c cache.Cache[E]) Option[E] {
	return func(d *Debugger[E]) { d.cache = c }
}

// WithLogger attaches a logger; without it, log output is discarded.
func WithLogger[E comparable](l *logging.Logger) Option[E] {
	return func(d *Debugger[E]) { d.log = l }
}

// New returns a Debugger running alg against oracle.
func New[E comparable](alg algorithm.Algorithm[E], oracle algorithm.OracleFunc[E], opts ...Option[E]) *Debugger[E] {
	d := &Debugger[E]{
		alg:      alg,
		oracle:   oracle,
		log:      logging.Nop(),
		counters: make(map[outcome.Outcome]int),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// countingOracle wraps d.oracle, tallying every outcome it produces
// before returning it.
func (d *Debugger[E]) countingOracle(cfg configuration.Configuration[E]) (outcome.Outcome, error) {
	o, err := d.oracle(cfg)
	if err != nil {
		d.log.Error("oracle evaluation failed", err)
		return o, err
	}
	d.counters[o]++
	d.log.Debug(fmt.Sprintf("oracle: %s on %d retained indices", o, cfg.Len()))
	return o, nil
}

// Debug reduces in using the configured Algorithm, recording counters
// and elapsed time as it runs.
func (d *Debugger[E]) Debug(ctx context.Context, in *input.Input[E]) (configuration.Configuration[E], error) {
	d.input = in
	d.counters = make(map[outcome.Outcome]int)

	start := time.Now()
	result, err := d.alg.Run(ctx, in, d.countingOracle, d.cache)
	d.elapsed = time.Since(start)
	d.ran = true
	if err != nil {
		return configuration.Configuration[E]{}, err
	}
	d.result = result
	return result, nil
}

// Validate reports whether cfg reproduces the failure, invoking the raw
// oracle directly: it is not counted and does not consult the cache,
// mirroring a one-off sanity check rather than a reduction step.
func (d *Debugger[E]) Validate(cfg configuration.Configuration[E]) (bool, error) {
	o, err := d.oracle(cfg)
	if err != nil {
		return false, err
	}
	return o.IsFail(), nil
}

// Counters returns a copy of the per-Outcome invocation tally.
func (d *Debugger[E]) Counters() map[outcome.Outcome]int {
	cp := make(map[outcome.Outcome]int, len(d.counters))
	for k, v := range d.counters {
		cp[k] = v
	}
	return cp
}

// Elapsed returns the duration of the last Debug call.
func (d *Debugger[E]) Elapsed() time.Duration { return d.elapsed }

// Result returns the last reduced configuration and whether Debug has
// run at least once.
func (d *Debugger[E]) Result() (configuration.Configuration[E], bool) {
	return d.result, d.ran
}

// Report renders a human-readable summary of the last run.
func (d *Debugger[E]) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Delta debugging using %s\n", d.alg.Name())

	if !d.ran {
		b.WriteString("Debugger has not been run yet.")
		return b.String()
	}

	before := d.input.Len()
	after := d.result.Len()
	ratio := 0.0
	if before > 0 {
		ratio = float64(before-after) / float64(before)
	}
	fmt.Fprintf(&b, "Reduced configuration length from %d to %d\n", before, after)
	fmt.Fprintf(&b, "Reduced ratio: %.2f%%\n", ratio*100)
	fmt.Fprintf(&b, "Total time: %.2fs\n", d.elapsed.Seconds())
	return b.String()
}
