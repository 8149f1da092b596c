package node

import (
	"fmt"
	"io"
	"strings"

	"github.com/corvid-labs/deltadebug/configuration"
)

// Node is one position in the hierarchical structure HDD reduces over: a
// named, half-open byte range [Start, End) at a given Depth, with child
// nodes whose ranges it contains.
//
// Exists is mutated by HDD as it prunes non-surviving children; every
// other field is set once at parse time and never changed.
type Node struct {
	Name     string
	Start    int
	End      int
	Depth    int
	Exists   bool
	Children []*Node
}

// New returns a Node with Exists set to true, matching every freshly
// parsed node's default state.
func New(name string, start, end, depth int) *Node {
	return &Node{Name: name, Start: start, End: end, Depth: depth, Exists: true}
}

// Parser builds a Node tree over the byte offsets of a Configuration.
// expand_whitespace (ExpandWhitespace) configures whether HDD extends a
// leaf's byte range to swallow trailing whitespace immediately following
// it — see hdd.HDD for where that is applied.
type Parser[E comparable] interface {
	// Parse produces the root Node of cfg's hierarchical structure. Leaf
	// byte ranges must cover cfg, and an internal node's range must
	// contain every child's range.
	Parse(cfg configuration.Configuration[E]) (*Node, error)

	// ExpandWhitespace reports whether HDD should extend leaf ranges to
	// include trailing whitespace.
	ExpandWhitespace() bool

	// String names the parser, for Algorithm.Name() composition.
	String() string
}

// CollapseUnitChains returns a fresh copy of the tree rooted at root with
// every single-child spine elided: whenever a node has exactly one child,
// it is replaced by that child, repeatedly, before depths are assigned.
// It also returns the maximum depth present in the resulting tree.
//
// This is HDD's required preprocessing step (spec invariant: after
// collapse, no node has exactly one child) and avoids wasted reduction
// work on grammar chains that carry no branching decision.
func CollapseUnitChains(root *Node) (*Node, int) {
	maxDepth := 0
	var collapse func(n *Node, depth int) *Node
	collapse = func(n *Node, depth int) *Node {
		for len(n.Children) == 1 {
			n = n.Children[0]
		}
		if depth > maxDepth {
			maxDepth = depth
		}
		out := New(n.Name, n.Start, n.End, depth)
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = collapse(c, depth+1)
		}
		return out
	}
	return collapse(root, 0), maxDepth
}

// RenderOptions configures Node.Render.
type RenderOptions struct {
	// ShowRemoved includes nodes with Exists == false, annotated as such.
	ShowRemoved bool
	// ShowChildren recurses into children; false prints only this node.
	ShowChildren bool
}

// Render writes a human-readable, indented dump of the tree rooted at n to
// w, mirroring the original source's Node.to_string.
func (n *Node) Render(w io.Writer, opts RenderOptions) {
	if !opts.ShowRemoved && !n.Exists {
		return
	}
	indent := strings.Repeat("  ", n.Depth)
	state := ""
	if opts.ShowRemoved {
		if n.Exists {
			state = " [exists]"
		} else {
			state = " [removed]"
		}
	}
	fmt.Fprintf(w, "%s%s (start=%d, end=%d)%s\n", indent, n.Name, n.Start, n.End, state)
	if opts.ShowChildren {
		for _, c := range n.Children {
			c.Render(w, opts)
		}
	}
}

// String returns Render with both flags enabled, for convenient %v/%s use.
func (n *Node) String() string {
	var b strings.Builder
	n.Render(&b, RenderOptions{ShowRemoved: true, ShowChildren: true})
	return b.String()
}
