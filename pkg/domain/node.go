package domain

import "fmt"

// NodeKind identifies which shape a Node has.
type NodeKind int

const (
	// KindMalformed is a node that is neither a valid Question nor a valid Leaf.
	// Constructors never produce it; only a zero Node has this kind.
	KindMalformed NodeKind = iota
	// KindQuestion holds question text and two mandatory children.
	KindQuestion
	// KindLeaf holds exactly one Entity and no children.
	KindLeaf
)

func (k NodeKind) String() string {
	switch k {
	case KindQuestion:
		return "question"
	case KindLeaf:
		return "leaf"
	default:
		return "malformed"
	}
}

// Node is a point in the decision tree.
// A Node exclusively owns its children (or its Entity): a subtree is never
// shared between two parents or two trees.
type Node struct {
	question string
	yes      *Node
	no       *Node
	entity   *Entity
}

// NewQuestion creates an internal node. Both children are mandatory.
func NewQuestion(text string, yes, no *Node) (*Node, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty question text", ErrMalformedNode)
	}
	if yes == nil || no == nil {
		return nil, fmt.Errorf("%w: question %q needs both children", ErrMalformedNode, text)
	}
	return &Node{question: text, yes: yes, no: no}, nil
}

// NewLeaf creates a terminal node owning a copy of the entity.
func NewLeaf(e Entity) (*Node, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("%w: %w", ErrMalformedNode, ErrEmptyEntityName)
	}
	return &Node{entity: &e}, nil
}

// Kind returns the shape of the node.
func (n *Node) Kind() NodeKind {
	if n == nil {
		return KindMalformed
	}
	isLeaf := n.entity != nil && n.yes == nil && n.no == nil && n.question == ""
	isQuestion := n.entity == nil && n.yes != nil && n.no != nil && n.question != ""
	switch {
	case isLeaf:
		return KindLeaf
	case isQuestion:
		return KindQuestion
	default:
		return KindMalformed
	}
}

// IsLeaf reports whether the node has no children.
// A childless node without an Entity still counts as a leaf here; use Kind
// to tell a valid leaf apart from a broken one.
func (n *Node) IsLeaf() bool {
	return n != nil && n.yes == nil && n.no == nil
}

// Question returns the question text (empty for leaves).
func (n *Node) Question() string { return n.question }

// Yes returns the child followed on an affirmative answer.
func (n *Node) Yes() *Node { return n.yes }

// No returns the child followed on a negative answer.
func (n *Node) No() *Node { return n.no }

// Entity returns a copy of the leaf's entity.
// The boolean is false when the node carries no entity.
func (n *Node) Entity() (Entity, bool) {
	if n == nil || n.entity == nil {
		return Entity{}, false
	}
	return *n.entity, true
}

// Child returns the branch selected by an answer.
func (n *Node) Child(a Answer) *Node {
	switch a {
	case AnswerYes:
		return n.yes
	case AnswerNo:
		return n.no
	default:
		return nil
	}
}

func (n *Node) String() string {
	if e, ok := n.Entity(); ok && n.Kind() == KindLeaf {
		return "[LEAF] " + e.String()
	}
	return fmt.Sprintf("[QUESTION] %q", n.question)
}
