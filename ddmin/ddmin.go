package ddmin

import (
	"context"

	"github.com/corvid-labs/deltadebug/algorithm"
	"github.com/corvid-labs/deltadebug/cache"
	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/input"
)

// DDMin is the classic ddmin reducer. The zero value is ready to use.
type DDMin[E comparable] struct{}

// New returns a ready-to-use DDMin.
func New[E comparable]() *DDMin[E] {
	return &DDMin[E]{}
}

// Name implements algorithm.Algorithm.
func (*DDMin[E]) Name() string { return "ddmin" }

// complements divides cfg into granularity contiguous parts by position
// and yields, for each part, cfg with that part removed.
func complements[E comparable](cfg configuration.Configuration[E], granularity int) []configuration.Configuration[E] {
	out := make([]configuration.Configuration[E], 0, granularity)
	start := 0
	for i := 0; i < granularity; i++ {
		end := start + (cfg.Len()-start)/(granularity-i)
		prefix := cfg.Slice(0, start)
		suffix := cfg.Slice(end, cfg.Len())
		c, err := configuration.Concat(prefix, suffix)
		if err == nil {
			out = append(out, c)
		}
		start = end
	}
	return out
}

// Run implements algorithm.Algorithm.
func (d *DDMin[E]) Run(ctx context.Context, in *input.Input[E], oracle algorithm.OracleFunc[E], c cache.Cache[E]) (configuration.Configuration[E], error) {
	cfg := configuration.FromInput(in)
	granularity := 2

	for cfg.Len() >= 2 {
		select {
		case <-ctx.Done():
			return cfg, ctx.Err()
		default:
		}

		reducible := false
		for _, complement := range complements(cfg, granularity) {
			o, err := algorithm.Test(oracle, complement, c)
			if err != nil {
				return configuration.Configuration[E]{}, err
			}
			if o.IsFail() {
				cfg = complement
				granularity = max(granularity-1, 2)
				reducible = true
				break
			}
		}

		if reducible {
			continue
		}

		if granularity < cfg.Len() {
			granularity = min(granularity*2, cfg.Len())
		} else {
			break
		}
	}

	return cfg, nil
}
