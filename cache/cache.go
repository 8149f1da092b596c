// Package cache implements the oracle-result cache consulted by every
// reduction algorithm via algorithm.Test: a mapping from Configuration to
// Outcome, with two interchangeable disciplines.
//
// HashCache is a flat hash table keyed on the index tuple: O(1) expected
// per operation, no pruning. TreeCache is a prefix trie keyed edge-by-edge
// on each retained index; on storing a FAIL outcome it additionally prunes
// every deeper descendant of that node, encoding the heuristic that
// supersets of a configuration already known to FAIL are uninteresting for
// minimization. The two are interchangeable under the Cache contract with
// that single documented exception.
package cache

import (
	"iter"

	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/outcome"
)

// Cache maps Configuration to Outcome. Key comparison agrees with
// Configuration equality: same index sequence, same bound Input.
//
// A Cache is mutated only within a single reduction run; nothing in this
// package is safe for concurrent use without external synchronization.
type Cache[E comparable] interface {
	// Get returns the stored Outcome for cfg, ErrKeyMissing if absent, or
	// ErrInputMismatch if cfg is bound to a different Input than the cache.
	Get(cfg configuration.Configuration[E]) (outcome.Outcome, error)

	// Put stores o for cfg, overwriting any previous entry.
	Put(cfg configuration.Configuration[E], o outcome.Outcome) error

	// Contains reports whether cfg has a stored Outcome.
	Contains(cfg configuration.Configuration[E]) bool

	// Delete clears the stored Outcome for cfg, if any, returning
	// ErrKeyMissing if cfg has none, or ErrInputMismatch if cfg is bound to
	// a different Input than the cache.
	Delete(cfg configuration.Configuration[E]) error

	// All iterates every (Configuration, Outcome) pair currently stored.
	// Iteration order is unspecified.
	All() iter.Seq2[configuration.Configuration[E], outcome.Outcome]

	// Len returns the number of configurations with a stored Outcome.
	Len() int

	// Clear removes every entry.
	Clear()

	// String returns a human-readable dump of the cache contents.
	String() string
}
