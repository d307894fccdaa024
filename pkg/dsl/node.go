package dsl

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
)

// Branch is a node under construction.
// Invalid shapes are reported by Node/Tree, not while chaining.
type Branch struct {
	question string
	yes      *Branch
	no       *Branch
	entity   *domain.Entity
}

// Ask starts a question node.
func Ask(question string) *Branch {
	return &Branch{question: question}
}

// Guess creates a leaf holding an entity.
func Guess(name, entityDomain, kind string) *Branch {
	return &Branch{entity: &domain.Entity{Name: name, Domain: entityDomain, Kind: kind}}
}

// Yes sets the child followed on an affirmative answer.
func (b *Branch) Yes(child *Branch) *Branch {
	b.yes = child
	return b
}

// No sets the child followed on a negative answer.
func (b *Branch) No(child *Branch) *Branch {
	b.no = child
	return b
}

// Node builds the domain node, validating every shape on the way.
func (b *Branch) Node() (*domain.Node, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: missing branch", domain.ErrMalformedNode)
	}
	if b.entity != nil {
		if b.question != "" || b.yes != nil || b.no != nil {
			return nil, fmt.Errorf("%w: leaf %q has question parts", domain.ErrMalformedNode, b.entity.Name)
		}
		return domain.NewLeaf(*b.entity)
	}

	yes, err := b.yes.Node()
	if err != nil {
		return nil, fmt.Errorf("%q yes: %w", b.question, err)
	}
	no, err := b.no.Node()
	if err != nil {
		return nil, fmt.Errorf("%q no: %w", b.question, err)
	}
	return domain.NewQuestion(b.question, yes, no)
}

// Tree builds a tree rooted at this branch.
func (b *Branch) Tree() (*domain.Tree, error) {
	root, err := b.Node()
	if err != nil {
		return nil, err
	}
	return domain.NewTree(root), nil
}

// MustTree is like Tree but panics on error.
func (b *Branch) MustTree() *domain.Tree {
	t, err := b.Tree()
	if err != nil {
		panic(err)
	}
	return t
}
