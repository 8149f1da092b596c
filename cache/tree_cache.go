package cache

import (
	"iter"

	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/input"
	"github.com/corvid-labs/deltadebug/outcome"
)

// treeNode is one edge-labeled node of the prefix trie. value is nil until
// an Outcome has been stored at this exact path.
type treeNode[E comparable] struct {
	value    *outcome.Outcome
	children map[int]*treeNode[E]
}

func newTreeNode[E comparable]() *treeNode[E] {
	return &treeNode[E]{children: make(map[int]*treeNode[E])}
}

// TreeCache is a prefix-trie-backed Cache, keyed edge-by-edge on each
// retained index.
//
// On Put(C, Fail), every descendant of C's terminal node is evicted: the
// monotonic heuristic is that a superset of an already-failing
// configuration is uninteresting for further minimization. This cuts both
// ways — a Put for a Configuration that is a strict superset of an
// already-Fail-marked prefix is silently discarded rather than stored,
// and a later Put(C', Fail) for a shorter prefix C' evicts any deeper
// entries already present under it.
type TreeCache[E comparable] struct {
	in     *input.Input[E]
	root   *treeNode[E]
	length int
}

// NewTreeCache returns an empty TreeCache.
func NewTreeCache[E comparable]() *TreeCache[E] {
	return &TreeCache[E]{root: newTreeNode[E]()}
}

func (t *TreeCache[E]) bind(cfg configuration.Configuration[E]) error {
	if t.in == nil {
		t.in = cfg.Input()
		return nil
	}
	if t.in != cfg.Input() {
		return ErrInputMismatch
	}
	return nil
}

// walk follows idx from the root, returning the terminal node and true, or
// (nil, false) if the path does not exist.
func (t *TreeCache[E]) walk(idx []int) (*treeNode[E], bool) {
	node := t.root
	for _, v := range idx {
		child, ok := node.children[v]
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// Get implements Cache.
func (t *TreeCache[E]) Get(cfg configuration.Configuration[E]) (outcome.Outcome, error) {
	if t.in == nil {
		return 0, ErrKeyMissing
	}
	if t.in != cfg.Input() {
		return 0, ErrInputMismatch
	}
	node, ok := t.walk(cfg.Indices())
	if !ok || node.value == nil {
		return 0, ErrKeyMissing
	}
	return *node.value, nil
}

// Put implements Cache. See the TreeCache doc comment for the pruning
// behavior this performs when o is outcome.Fail, and the no-op discard
// behavior when cfg is a strict superset of an already-Fail prefix.
func (t *TreeCache[E]) Put(cfg configuration.Configuration[E], o outcome.Outcome) error {
	if err := t.bind(cfg); err != nil {
		return err
	}

	node := t.root
	for _, v := range cfg.Indices() {
		if node.value != nil && *node.value == outcome.Fail {
			// cfg descends through an already-pruned subtree: discard.
			return nil
		}
		child, ok := node.children[v]
		if !ok {
			child = newTreeNode[E]()
			node.children[v] = child
		}
		node = child
	}

	wasStored := node.value != nil
	val := o
	node.value = &val
	if !wasStored {
		t.length++
	}

	if o == outcome.Fail {
		t.length -= countStored(node.children)
		node.children = make(map[int]*treeNode[E])
	}

	return nil
}

// countStored counts nodes with a stored Outcome in the subtree rooted at
// the children map, recursively.
func countStored[E comparable](children map[int]*treeNode[E]) int {
	n := 0
	for _, c := range children {
		if c.value != nil {
			n++
		}
		n += countStored(c.children)
	}
	return n
}

// Contains implements Cache.
func (t *TreeCache[E]) Contains(cfg configuration.Configuration[E]) bool {
	if t.in == nil || t.in != cfg.Input() {
		return false
	}
	node, ok := t.walk(cfg.Indices())
	return ok && node.value != nil
}

// Delete implements Cache. It clears the stored Outcome at cfg's terminal
// node without collapsing the path or restoring any previously pruned
// descendants.
func (t *TreeCache[E]) Delete(cfg configuration.Configuration[E]) error {
	if t.in == nil {
		return ErrKeyMissing
	}
	if t.in != cfg.Input() {
		return ErrInputMismatch
	}
	node, ok := t.walk(cfg.Indices())
	if !ok || node.value == nil {
		return ErrKeyMissing
	}
	node.value = nil
	t.length--
	return nil
}

// All implements Cache.
func (t *TreeCache[E]) All() iter.Seq2[configuration.Configuration[E], outcome.Outcome] {
	return func(yield func(configuration.Configuration[E], outcome.Outcome) bool) {
		if t.in == nil {
			return
		}
		type frame struct {
			node *treeNode[E]
			path []int
		}
		stack := []frame{{node: t.root, path: nil}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.node.value != nil {
				cfg, err := configuration.New(t.in, f.path)
				if err == nil {
					if !yield(cfg, *f.node.value) {
						return
					}
				}
			}
			for idx, child := range f.node.children {
				path := make([]int, len(f.path)+1)
				copy(path, f.path)
				path[len(f.path)] = idx
				stack = append(stack, frame{node: child, path: path})
			}
		}
	}
}

// Len implements Cache.
func (t *TreeCache[E]) Len() int { return t.length }

// Clear implements Cache.
func (t *TreeCache[E]) Clear() {
	t.in = nil
	t.root = newTreeNode[E]()
	t.length = 0
}

// String implements Cache.
func (t *TreeCache[E]) String() string {
	s := "TreeCache contents:"
	for cfg, o := range t.All() {
		s += "\n" + indexKey(cfg.Indices()) + " -> " + o.String()
	}
	return s
}
