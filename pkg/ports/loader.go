package ports

import "context"

// TopicLoader defines how the registry retrieves topic documents.
// This allows the storage layer (Loam, Memory) to be decoupled from decoding.
type TopicLoader interface {
	// GetDocument retrieves the structured record of a topic.
	// A missing topic yields an error wrapping domain.ErrSourceUnavailable.
	GetDocument(ctx context.Context, topic string) (map[string]any, error)

	// ListTopics returns the names of every topic the backend holds.
	// This is used when no explicit topic list is configured and by 'arbor topics'.
	ListTopics(ctx context.Context) ([]string, error)
}
