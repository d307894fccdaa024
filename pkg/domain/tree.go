package domain

import "fmt"

// Tree is a knowledge tree for one topic.
// It owns its root exclusively; an empty Tree (no root) is a valid state,
// distinct from a tree whose root is a single Leaf.
//
// Depth, NodeCount, Clone and Equal walk the tree with an explicit work stack,
// so very deep trees do not hit recursion limits.
type Tree struct {
	root *Node
}

// NewTree wraps an already built root. A nil root yields an empty tree.
func NewTree(root *Node) *Tree {
	return &Tree{root: root}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Empty reports whether the tree has no root.
func (t *Tree) Empty() bool {
	return t == nil || t.root == nil
}

// Replace installs a new root, releasing the previous subtree.
func (t *Tree) Replace(root *Node) {
	t.root = root
}

// Depth returns 0 for an empty tree, otherwise the number of nodes on the
// longest root-to-leaf path (a lone leaf has depth 1).
func (t *Tree) Depth() int {
	if t.Empty() {
		return 0
	}
	type frame struct {
		node  *Node
		level int
	}
	max := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.level > max {
			max = f.level
		}
		if f.node.yes != nil {
			stack = append(stack, frame{f.node.yes, f.level + 1})
		}
		if f.node.no != nil {
			stack = append(stack, frame{f.node.no, f.level + 1})
		}
	}
	return max
}

// NodeCount returns the total number of nodes, 0 for an empty tree.
func (t *Tree) NodeCount() int {
	count := 0
	t.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Walk visits every node in pre-order (yes branch before no branch).
// Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(*Node) bool) {
	if t.Empty() {
		return
	}
	stack := []*Node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		if n.no != nil {
			stack = append(stack, n.no)
		}
		if n.yes != nil {
			stack = append(stack, n.yes)
		}
	}
}

// Leaves returns the entities of every leaf, in pre-order.
func (t *Tree) Leaves() []Entity {
	var out []Entity
	t.Walk(func(n *Node) bool {
		if e, ok := n.Entity(); ok {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Validate checks that every reachable node is either a valid Question or a valid Leaf.
func (t *Tree) Validate() error {
	var err error
	t.Walk(func(n *Node) bool {
		if n.Kind() == KindMalformed {
			err = fmt.Errorf("%w: %s", ErrMalformedNode, n)
			return false
		}
		return true
	})
	return err
}

// Clone returns a new Tree that shares no Node and no Entity with t.
func (t *Tree) Clone() *Tree {
	if t.Empty() {
		return &Tree{}
	}
	type pair struct {
		src, dst *Node
	}
	root := &Node{}
	stack := []pair{{t.root, root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p.dst.question = p.src.question
		if p.src.entity != nil {
			e := *p.src.entity
			p.dst.entity = &e
		}
		if p.src.yes != nil {
			p.dst.yes = &Node{}
			stack = append(stack, pair{p.src.yes, p.dst.yes})
		}
		if p.src.no != nil {
			p.dst.no = &Node{}
			stack = append(stack, pair{p.src.no, p.dst.no})
		}
	}
	return &Tree{root: root}
}

// Equal reports whether both trees have the same shape, questions and entities.
func (t *Tree) Equal(other *Tree) bool {
	if t.Empty() || other.Empty() {
		return t.Empty() == other.Empty()
	}
	type pair struct {
		a, b *Node
	}
	stack := []pair{{t.root, other.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if (p.a == nil) != (p.b == nil) {
			return false
		}
		if p.a == nil {
			continue
		}
		if p.a.question != p.b.question {
			return false
		}
		if (p.a.entity == nil) != (p.b.entity == nil) {
			return false
		}
		if p.a.entity != nil && *p.a.entity != *p.b.entity {
			return false
		}
		stack = append(stack, pair{p.a.yes, p.b.yes}, pair{p.a.no, p.b.no})
	}
	return true
}

func (t *Tree) String() string {
	return fmt.Sprintf("Tree{depth=%d, nodes=%d}", t.Depth(), t.NodeCount())
}
