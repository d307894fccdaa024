package dsl

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/domain"
)

// Builder manages the construction of several topics.
type Builder struct {
	topics map[string]*Branch
}

// New creates a new topic builder.
func New() *Builder {
	return &Builder{
		topics: make(map[string]*Branch),
	}
}

// Topic registers the root branch of a topic, replacing any previous one.
func (b *Builder) Topic(name string, root *Branch) *Builder {
	b.topics[name] = root
	return b
}

// Trees builds every registered topic.
func (b *Builder) Trees() (map[string]*domain.Tree, error) {
	trees := make(map[string]*domain.Tree, len(b.topics))
	for name, root := range b.topics {
		tree, err := root.Tree()
		if err != nil {
			return nil, fmt.Errorf("topic %s: %w", name, err)
		}
		trees[name] = tree
	}
	return trees, nil
}

// Build compiles the topics into a memory loader.
func (b *Builder) Build() (*memory.Loader, error) {
	trees, err := b.Trees()
	if err != nil {
		return nil, err
	}

	loader, err := memory.NewFromTrees(trees)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}

	return loader, nil
}
