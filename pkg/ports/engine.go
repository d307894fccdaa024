package ports

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
)

// GuessEngine is the interface consumed by adapters (HTTP, MCP) that keep no
// traversal state of their own: every call carries the answers given so far.
type GuessEngine interface {
	// Topics returns a summary of every loaded topic, sorted by name.
	Topics() []domain.TopicSummary

	// Tree returns the tree of a topic, or domain.ErrUnknownTopic.
	Tree(topic string) (*domain.Tree, error)

	// Replay feeds answers to a fresh traversal of topic.
	// When final is false, running out of answers leaves the outcome pending
	// with the next prompt; when true, it counts as input exhaustion.
	Replay(ctx context.Context, topic string, answers []string, final bool) (domain.Outcome, error)

	// Reload refetches a topic document. Failure keeps the previous tree.
	Reload(ctx context.Context, topic string) error
}
