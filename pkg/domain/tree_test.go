package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(t *testing.T, name string) *Node {
	t.Helper()
	n, err := NewLeaf(Entity{Name: name, Domain: "animale", Kind: "test"})
	require.NoError(t, err)
	return n
}

func question(t *testing.T, text string, yes, no *Node) *Node {
	t.Helper()
	n, err := NewQuestion(text, yes, no)
	require.NoError(t, err)
	return n
}

// zboara? -> yes: vultur | no: are blana? -> yes: pisica | no: peste
func sampleTree(t *testing.T) *Tree {
	t.Helper()
	return NewTree(question(t, "zboara?",
		leaf(t, "vultur"),
		question(t, "are blana?", leaf(t, "pisica"), leaf(t, "peste")),
	))
}

func TestTree_Empty(t *testing.T) {
	var tree Tree
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Depth())
	assert.Equal(t, 0, tree.NodeCount())
	assert.True(t, tree.Clone().Empty())
	assert.NoError(t, tree.Validate())
}

func TestTree_SingleLeaf(t *testing.T) {
	tree := NewTree(leaf(t, "vultur"))
	assert.False(t, tree.Empty())
	assert.Equal(t, 1, tree.Depth())
	assert.Equal(t, 1, tree.NodeCount())
	assert.Equal(t, KindLeaf, tree.Root().Kind())
}

func TestTree_DepthAndCount(t *testing.T) {
	tree := sampleTree(t)
	assert.Equal(t, 3, tree.Depth())
	assert.Equal(t, 5, tree.NodeCount())
	assert.GreaterOrEqual(t, tree.NodeCount(), tree.Depth())
	assert.NoError(t, tree.Validate())

	names := []string{}
	for _, e := range tree.Leaves() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"vultur", "pisica", "peste"}, names)
}

func TestTree_Clone_Independence(t *testing.T) {
	original := sampleTree(t)
	clone := original.Clone()

	require.True(t, original.Equal(clone))
	assert.Equal(t, original.Depth(), clone.Depth())
	assert.Equal(t, original.NodeCount(), clone.NodeCount())

	// No node is shared.
	var origNodes, cloneNodes []*Node
	original.Walk(func(n *Node) bool { origNodes = append(origNodes, n); return true })
	clone.Walk(func(n *Node) bool { cloneNodes = append(cloneNodes, n); return true })
	require.Len(t, cloneNodes, len(origNodes))
	for i := range origNodes {
		assert.NotSame(t, origNodes[i], cloneNodes[i])
		if origNodes[i].entity != nil {
			assert.NotSame(t, origNodes[i].entity, cloneNodes[i].entity)
		}
	}

	// Mutating an entity of the clone leaves the original untouched, and vice versa.
	clone.root.yes.entity.Name = "condor"
	e, _ := original.Root().Yes().Entity()
	assert.Equal(t, "vultur", e.Name)

	original.root.no.no.entity.Kind = "changed"
	e, _ = clone.Root().No().No().Entity()
	assert.Equal(t, "test", e.Kind)

	assert.False(t, original.Equal(clone))
}

func TestTree_Replace(t *testing.T) {
	tree := sampleTree(t)
	tree.Replace(leaf(t, "solo"))
	assert.Equal(t, 1, tree.NodeCount())
	tree.Replace(nil)
	assert.True(t, tree.Empty())
}

func TestTree_DeepChain(t *testing.T) {
	// A degenerate tree deep enough to matter for recursive implementations.
	const depth = 50000
	root := leaf(t, "last")
	for i := 0; i < depth; i++ {
		root = question(t, "q", root, leaf(t, "other"))
	}
	tree := NewTree(root)
	assert.Equal(t, depth+1, tree.Depth())
	assert.Equal(t, 2*depth+1, tree.NodeCount())
	assert.True(t, tree.Equal(tree.Clone()))
}

func TestNode_Constructors(t *testing.T) {
	_, err := NewQuestion("", leaf(t, "a"), leaf(t, "b"))
	assert.ErrorIs(t, err, ErrMalformedNode)

	_, err = NewQuestion("q?", nil, leaf(t, "b"))
	assert.ErrorIs(t, err, ErrMalformedNode)

	_, err = NewLeaf(Entity{})
	assert.ErrorIs(t, err, ErrMalformedNode)
	assert.ErrorIs(t, err, ErrEmptyEntityName)

	assert.Equal(t, KindMalformed, (&Node{}).Kind())
	assert.Equal(t, KindMalformed, (*Node)(nil).Kind())
	assert.True(t, (&Node{}).IsLeaf())
}

func TestTree_Validate_Malformed(t *testing.T) {
	tree := NewTree(&Node{question: "q?", yes: leaf(t, "a"), no: &Node{}})
	assert.ErrorIs(t, tree.Validate(), ErrMalformedNode)
}

func TestEntity_EqualByName(t *testing.T) {
	a, err := NewEntity("Romania", "geografie", "tara")
	require.NoError(t, err)
	b := Entity{Name: "Romania", Domain: "other", Kind: "other"}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(Entity{Name: "Moldova"}))

	_, err = NewEntity("", "x", "y")
	assert.ErrorIs(t, err, ErrEmptyEntityName)
}
