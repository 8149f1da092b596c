package hdd

import (
	"context"
	"fmt"

	"github.com/corvid-labs/deltadebug/algorithm"
	"github.com/corvid-labs/deltadebug/cache"
	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/input"
	"github.com/corvid-labs/deltadebug/node"
	"github.com/corvid-labs/deltadebug/outcome"
)

// HDD lifts inner, a flat Algorithm over positions, to reduce an Input
// level by level according to the tree parser produces.
type HDD[E comparable] struct {
	parser       node.Parser[E]
	inner        algorithm.Algorithm[int]
	isWhitespace func(E) bool
}

// Option configures an HDD instance.
type Option[E comparable] func(*HDD[E])

// WithWhitespacePredicate supplies the element-level whitespace test HDD
// needs to expand a leaf's range over trailing whitespace when
// parser.ExpandWhitespace() is true. Without it, expansion is a no-op.
func WithWhitespacePredicate[E comparable](f func(E) bool) Option[E] {
	return func(h *HDD[E]) { h.isWhitespace = f }
}

// New returns an HDD reducing with parser's tree and inner as the
// per-node flat reducer. inner operates over abstract child positions,
// never over E directly.
func New[E comparable](parser node.Parser[E], inner algorithm.Algorithm[int], opts ...Option[E]) *HDD[E] {
	h := &HDD[E]{parser: parser, inner: inner}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Name implements algorithm.Algorithm.
func (h *HDD[E]) Name() string {
	return fmt.Sprintf("HDD with %s using %s", h.inner.Name(), h.parser.String())
}

// Run implements algorithm.Algorithm. The outer cache parameter is
// accepted for interface conformance but unused: HDD's own reduction
// never consults a cache directly, and the per-node inner reduction
// needs a cache keyed by abstract int positions, not by E, so it is
// given a fresh one for every node (mirroring the clear-before-use
// discipline of a single shared cache, without requiring one cache type
// to serve two different key domains).
func (h *HDD[E]) Run(ctx context.Context, in *input.Input[E], oracle algorithm.OracleFunc[E], _ cache.Cache[E]) (configuration.Configuration[E], error) {
	full := configuration.FromInput(in)
	root, err := h.parser.Parse(full)
	if err != nil {
		return configuration.Configuration[E]{}, err
	}
	collapsed, _ := node.CollapseUnitChains(root)
	t := newTree(collapsed, full, h.parser.ExpandWhitespace(), h.isWhitespace)

	level := 0
	for {
		select {
		case <-ctx.Done():
			return t.unparse(), ctx.Err()
		default:
		}

		nodes := t.nodesAtLevel(level)
		if len(nodes) == 0 {
			break
		}

		for _, n := range nodes {
			existing := existingChildren(n)
			if len(existing) <= 1 {
				continue
			}

			subsets := t.subsets(existing)
			positions := make([]int, len(subsets))
			for i := range positions {
				positions[i] = i
			}
			abstractInput := input.New(positions)

			lifted := func(cfg configuration.Configuration[int]) (outcome.Outcome, error) {
				flat := configuration.Empty[E](in)
				for _, pos := range cfg.Indices() {
					merged, err := flat.Union(subsets[pos])
					if err != nil {
						return 0, err
					}
					flat = merged
				}
				return oracle(flat)
			}

			retained, err := h.inner.Run(ctx, abstractInput, lifted, cache.NewHashCache[int]())
			if err != nil {
				return configuration.Configuration[E]{}, err
			}
			prune(existing, retained)
		}

		level++
	}

	return t.unparse(), nil
}
