package tree

import (
	"strings"

	"github.com/cbarrick/cgp/op"
)

// Node is one node of an expression tree. A node's operator arity always
// equals len(Children): the invariant is established at construction time by
// package tree and must not be broken by direct struct manipulation from
// outside the package.
type Node struct {
	Op       op.Operator
	Children []*Node
}

// Depth returns the depth of the subtree rooted at n: 0 for a leaf.
func (n *Node) Depth() int {
	if len(n.Children) == 0 {
		return 0
	}
	max := 0
	for _, c := range n.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Size returns the total node count of the subtree rooted at n.
func (n *Node) Size() int {
	size := 1
	for _, c := range n.Children {
		size += c.Size()
	}
	return size
}

// Eval evaluates the subtree rooted at n post-order: children first, then
// the node's own operator.
func (n *Node) Eval(sample []float64) float64 {
	if len(n.Children) == 0 {
		return n.Op.Eval(nil, sample)
	}
	values := make([]float64, len(n.Children))
	for i, c := range n.Children {
		values[i] = c.Eval(sample)
	}
	return n.Op.Eval(values, sample)
}

// clone deep-copies the subtree rooted at n.
func (n *Node) clone() *Node {
	if len(n.Children) == 0 {
		return &Node{Op: n.Op}
	}
	children := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = c.clone()
	}
	return &Node{Op: n.Op, Children: children}
}

func (n *Node) string(sb *strings.Builder) {
	if len(n.Children) == 0 {
		sb.WriteString(n.Op.Name)
		return
	}
	sb.WriteString("(")
	sb.WriteString(n.Op.Name)
	for _, c := range n.Children {
		sb.WriteString(" ")
		c.string(sb)
	}
	sb.WriteString(")")
}

// Tree is a rooted expression tree. The zero Tree is invalid; construct one
// with Generate or by wrapping a Node built by a caller.
type Tree struct {
	Root *Node
}

// New wraps root in a Tree.
func New(root *Node) Tree {
	return Tree{Root: root}
}

// Depth is the depth of the tree: the root is depth 0.
func (t Tree) Depth() int { return t.Root.Depth() }

// Size is the total node count of the tree.
func (t Tree) Size() int { return t.Root.Size() }

// Eval evaluates the tree against one sample row, post-order.
func (t Tree) Eval(sample []float64) float64 { return t.Root.Eval(sample) }

// Clone deep-copies the tree so the result shares no mutable state with t.
// Since nodes are never mutated in place after construction, most callers
// can rely on structural sharing (see WithSubtreeAt) instead of Clone; Clone
// exists for callers that need an independently owned copy regardless.
func (t Tree) Clone() Tree { return Tree{Root: t.Root.clone()} }

// String renders the tree as a parenthesized prefix expression, e.g.
// "(+ x0 (* x1 2))".
func (t Tree) String() string {
	var sb strings.Builder
	t.Root.string(&sb)
	return sb.String()
}

// SubtreeAt returns the node at the given pre-order position: 0 is the
// root, and positions increase depth-first, left to right. It panics if pos
// is out of range.
func (t Tree) SubtreeAt(pos int) *Node {
	idx := 0
	var result *Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if result != nil {
			return
		}
		if idx == pos {
			result = n
			return
		}
		idx++
		for _, c := range n.Children {
			walk(c)
			if result != nil {
				return
			}
		}
	}
	walk(t.Root)
	if result == nil {
		panic("tree: position out of range")
	}
	return result
}

// DepthAt returns the depth, from the root, of the node at pre-order
// position pos.
func (t Tree) DepthAt(pos int) int {
	idx := 0
	depth := -1
	var walk func(n *Node, d int) bool
	walk = func(n *Node, d int) bool {
		if idx == pos {
			depth = d
			return true
		}
		idx++
		for _, c := range n.Children {
			if walk(c, d+1) {
				return true
			}
		}
		return false
	}
	walk(t.Root, 0)
	if depth < 0 {
		panic("tree: position out of range")
	}
	return depth
}

// WithSubtreeAt returns a new Tree with the subtree at pre-order position
// pos replaced by replacement. Untouched subtrees are shared with t rather
// than copied, which is safe because tree.Node values are never mutated
// once built.
func (t Tree) WithSubtreeAt(pos int, replacement *Node) Tree {
	idx := 0
	var rebuild func(n *Node) *Node
	rebuild = func(n *Node) *Node {
		my := idx
		idx++
		if my == pos {
			return replacement
		}
		if len(n.Children) == 0 {
			return n
		}
		newChildren := make([]*Node, len(n.Children))
		changed := false
		for i, c := range n.Children {
			nc := rebuild(c)
			newChildren[i] = nc
			if nc != c {
				changed = true
			}
		}
		if !changed {
			return n
		}
		return &Node{Op: n.Op, Children: newChildren}
	}
	return Tree{Root: rebuild(t.Root)}
}
