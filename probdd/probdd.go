package probdd

import (
	"context"
	"sort"

	"github.com/corvid-labs/deltadebug/algorithm"
	"github.com/corvid-labs/deltadebug/cache"
	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/input"
)

// defaultThreshold is the per-index probability above which an index is
// considered converged (kept with near certainty).
const defaultThreshold = 0.8

// ProbDD is the probabilistic reducer.
type ProbDD[E comparable] struct {
	threshold float64
}

// New returns a ProbDD using the standard 0.8 convergence threshold.
func New[E comparable]() *ProbDD[E] {
	return &ProbDD[E]{threshold: defaultThreshold}
}

// Name implements algorithm.Algorithm.
func (*ProbDD[E]) Name() string { return "ProbDD" }

// sample walks keys in ascending-probability order, growing a trial
// deletion window [k, i) while the aggregate probability of deleting that
// window keeps increasing, then returns the configuration of indices in
// that window. The break on prob < last uses a strict less-than, per the
// fixed tie-break convention.
func sample[E comparable](in *input.Input[E], keys []int, probabilities map[int]float64) configuration.Configuration[E] {
	cfg := configuration.Empty[E](in)
	last := 0.0
	i, k := 0, 0
	n := len(keys)

	for i < n {
		if probabilities[keys[i]] == 0.0 {
			i++
			k++
			continue
		}
		if probabilities[keys[i]] >= 1.0 {
			break
		}

		prob := 1.0
		for j := k; j <= i; j++ {
			prob *= 1 - probabilities[keys[j]]
		}
		prob *= float64(i - k + 1)
		if prob < last {
			break
		}
		last = prob
		i++
	}

	for i > k {
		i--
		idx, err := configuration.New(in, []int{keys[i]})
		if err != nil {
			continue
		}
		merged, err := cfg.Union(idx)
		if err != nil {
			continue
		}
		cfg = merged
	}
	return cfg
}

// ratio computes the reinforcement multiplier applied to every surviving
// index not in deleted: the inverse probability that deleted, taken as a
// whole, would have been retained.
func ratio[E comparable](deleted configuration.Configuration[E], probabilities map[int]float64) float64 {
	r := 1.0
	for _, d := range deleted.Indices() {
		p := probabilities[d]
		if p > 0 && p < 1 {
			r *= 1 - p
		}
	}
	return 1 / (1 - r)
}

// Run implements algorithm.Algorithm.
func (p *ProbDD[E]) Run(ctx context.Context, in *input.Input[E], oracle algorithm.OracleFunc[E], c cache.Cache[E]) (configuration.Configuration[E], error) {
	passed := configuration.FromInput(in)
	probabilities := make(map[int]float64, passed.Len())
	keys := passed.Indices()
	for _, idx := range keys {
		probabilities[idx] = 0.1
	}

	for {
		select {
		case <-ctx.Done():
			return passed, ctx.Err()
		default:
		}

		if converged(probabilities, p.threshold) {
			break
		}

		sort.SliceStable(keys, func(i, j int) bool {
			return probabilities[keys[i]] < probabilities[keys[j]]
		})

		deleted := sample(in, keys, probabilities)

		trial, err := passed.Subtract(deleted)
		if err != nil {
			return configuration.Configuration[E]{}, err
		}
		o, err := algorithm.Test(oracle, trial, c)
		if err != nil {
			return configuration.Configuration[E]{}, err
		}

		if o.IsFail() {
			for _, key := range keys {
				if !trial.Contains(key) {
					probabilities[key] = 0.0
				}
			}
			passed = trial
			continue
		}

		r := ratio(deleted, probabilities)
		for _, key := range keys {
			if !trial.Contains(key) && probabilities[key] != 0.0 && probabilities[key] != 1.0 {
				probabilities[key] += (r - 1) * probabilities[key]
			}
		}
		if deleted.Len() == 1 {
			probabilities[deleted.IndexAt(0)] = 1.0
		}
	}

	return passed, nil
}

// converged reports whether every probability has settled at 0, every
// probability has settled at 1, the set is exactly {0, 1}, or every
// probability in the table, zeroed entries included, is at or above
// threshold.
func converged(probabilities map[int]float64, threshold float64) bool {
	allZeroOrOne, allAboveThreshold := true, true
	for _, p := range probabilities {
		if p != 0.0 && p != 1.0 {
			allZeroOrOne = false
		}
		if p < threshold {
			allAboveThreshold = false
		}
	}
	return allZeroOrOne || allAboveThreshold
}
