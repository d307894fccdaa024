package ports

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
)

// Journal persists finished plays.
// It is append-only and never feeds back into the trees.
type Journal interface {
	// Record appends a play. The play must carry an ID.
	Record(ctx context.Context, play *domain.Play) error

	// Recent returns the latest plays of a topic, newest first.
	// A limit <= 0 returns every play. Unknown topics yield an empty slice.
	Recent(ctx context.Context, topic string, limit int) ([]domain.Play, error)

	// Tally counts resolved plays per entity for a topic.
	Tally(ctx context.Context, topic string) (map[string]int64, error)
}
