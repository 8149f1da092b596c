package hdd

import (
	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/input"
	"github.com/corvid-labs/deltadebug/node"
)

// tree wraps a collapsed parse tree together with the full configuration
// it was parsed from, and implements the node-local operations HDD needs:
// enumerating a node's live children as subsets, pruning children by
// retained position, and reassembling the surviving bytes.
type tree[E comparable] struct {
	root             *node.Node
	full             configuration.Configuration[E]
	in               *input.Input[E]
	expandWhitespace bool
	isWhitespace     func(E) bool
}

func newTree[E comparable](root *node.Node, full configuration.Configuration[E], expandWhitespace bool, isWhitespace func(E) bool) *tree[E] {
	return &tree[E]{root: root, full: full, in: full.Input(), expandWhitespace: expandWhitespace, isWhitespace: isWhitespace}
}

// expand extends node n's range with whatever whitespace, if any,
// immediately follows it: the shortest run of up to 3 bytes starting at
// n.End that is entirely whitespace. It returns the empty configuration
// if no whitespace predicate was supplied or no such run exists.
func (t *tree[E]) expand(n *node.Node) configuration.Configuration[E] {
	if t.isWhitespace == nil {
		return configuration.Empty[E](t.in)
	}
	limit := n.End + 4
	if t.in.Len()+1 < limit {
		limit = t.in.Len() + 1
	}
	for i := n.End + 1; i < limit; i++ {
		allSpace := true
		for j := n.End; j < i; j++ {
			if !t.isWhitespace(t.in.At(j)) {
				allSpace = false
				break
			}
		}
		if allSpace {
			return t.full.Slice(n.End, i)
		}
	}
	return configuration.Empty[E](t.in)
}

// rangeOf returns n's byte range as a Configuration, extended by expand
// when whitespace expansion is enabled.
func (t *tree[E]) rangeOf(n *node.Node) configuration.Configuration[E] {
	cfg := t.full.Slice(n.Start, n.End)
	if !t.expandWhitespace {
		return cfg
	}
	if exp := t.expand(n); exp.Len() > 0 {
		if merged, err := cfg.Union(exp); err == nil {
			cfg = merged
		}
	}
	return cfg
}

// existingChildren returns n's children with Exists == true, in order.
func existingChildren(n *node.Node) []*node.Node {
	out := make([]*node.Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Exists {
			out = append(out, c)
		}
	}
	return out
}

// subsets returns the byte-range configuration for each of existing's
// nodes, in order: the candidate unit each position of the inner
// algorithm's abstract Input stands for.
func (t *tree[E]) subsets(existing []*node.Node) []configuration.Configuration[E] {
	out := make([]configuration.Configuration[E], len(existing))
	for i, c := range existing {
		out[i] = t.rangeOf(c)
	}
	return out
}

// nodesAtLevel returns the live nodes at the given breadth-first depth,
// root being level 0.
func (t *tree[E]) nodesAtLevel(level int) []*node.Node {
	depth := 0
	nodes := []*node.Node{t.root}
	for depth < level {
		var next []*node.Node
		for _, n := range nodes {
			if !n.Exists {
				continue
			}
			for _, c := range n.Children {
				if c.Exists {
					next = append(next, c)
				}
			}
		}
		nodes = next
		depth++
	}
	return nodes
}

// prune marks every node in existing whose position is absent from
// retained as no longer existing.
func prune(existing []*node.Node, retained configuration.Configuration[int]) {
	for i, child := range existing {
		if !retained.Contains(i) {
			child.Exists = false
		}
	}
}

// unparse reassembles the surviving bytes of the whole tree.
func (t *tree[E]) unparse() configuration.Configuration[E] {
	return t.unparseNode(t.root)
}

func (t *tree[E]) unparseNode(n *node.Node) configuration.Configuration[E] {
	if !n.Exists {
		return configuration.Empty[E](t.in)
	}
	if len(n.Children) == 0 {
		return t.rangeOf(n)
	}
	acc := configuration.Empty[E](t.in)
	for _, c := range n.Children {
		if !c.Exists {
			continue
		}
		if merged, err := acc.Union(t.unparseNode(c)); err == nil {
			acc = merged
		}
	}
	return acc
}
