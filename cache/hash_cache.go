package cache

import (
	"iter"

	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/input"
	"github.com/corvid-labs/deltadebug/outcome"
)

// HashCache is a flat hash-table-backed Cache keyed on the index tuple.
// Get/Put/Contains/Delete are all O(1) expected.
type HashCache[E comparable] struct {
	in   *input.Input[E]
	data map[string]hashEntry[E]
}

type hashEntry[E comparable] struct {
	idx []int
	out outcome.Outcome
}

// NewHashCache returns an empty HashCache.
func NewHashCache[E comparable]() *HashCache[E] {
	return &HashCache[E]{data: make(map[string]hashEntry[E])}
}

func (h *HashCache[E]) bind(cfg configuration.Configuration[E]) error {
	if h.in == nil {
		h.in = cfg.Input()
		return nil
	}
	if h.in != cfg.Input() {
		return ErrInputMismatch
	}
	return nil
}

// Get implements Cache.
func (h *HashCache[E]) Get(cfg configuration.Configuration[E]) (outcome.Outcome, error) {
	if h.in == nil {
		return 0, ErrKeyMissing
	}
	if h.in != cfg.Input() {
		return 0, ErrInputMismatch
	}
	e, ok := h.data[indexKey(cfg.Indices())]
	if !ok {
		return 0, ErrKeyMissing
	}
	return e.out, nil
}

// Put implements Cache.
func (h *HashCache[E]) Put(cfg configuration.Configuration[E], o outcome.Outcome) error {
	if err := h.bind(cfg); err != nil {
		return err
	}
	h.data[indexKey(cfg.Indices())] = hashEntry[E]{idx: cfg.Indices(), out: o}
	return nil
}

// Contains implements Cache.
func (h *HashCache[E]) Contains(cfg configuration.Configuration[E]) bool {
	if h.in == nil || h.in != cfg.Input() {
		return false
	}
	_, ok := h.data[indexKey(cfg.Indices())]
	return ok
}

// Delete implements Cache.
func (h *HashCache[E]) Delete(cfg configuration.Configuration[E]) error {
	if h.in == nil {
		return ErrKeyMissing
	}
	if h.in != cfg.Input() {
		return ErrInputMismatch
	}
	key := indexKey(cfg.Indices())
	if _, ok := h.data[key]; !ok {
		return ErrKeyMissing
	}
	delete(h.data, key)
	return nil
}

// All implements Cache.
func (h *HashCache[E]) All() iter.Seq2[configuration.Configuration[E], outcome.Outcome] {
	return func(yield func(configuration.Configuration[E], outcome.Outcome) bool) {
		if h.in == nil {
			return
		}
		for _, e := range h.data {
			cfg, err := configuration.New(h.in, e.idx)
			if err != nil {
				continue
			}
			if !yield(cfg, e.out) {
				return
			}
		}
	}
}

// Len implements Cache.
func (h *HashCache[E]) Len() int { return len(h.data) }

// Clear implements Cache.
func (h *HashCache[E]) Clear() {
	h.in = nil
	h.data = make(map[string]hashEntry[E])
}

// String implements Cache.
func (h *HashCache[E]) String() string {
	s := "HashCache contents:"
	for _, e := range h.data {
		s += "\n" + indexKey(e.idx) + " -> " + e.out.String()
	}
	return s
}
