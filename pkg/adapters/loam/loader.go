package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/loam"
)

// Loader adapts the Loam library to the arbor TopicLoader interface.
type Loader struct {
	Repo *loam.TypedRepository[TopicMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[TopicMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// GetDocument retrieves a topic document from the Loam repository.
// Loam resolves "animale" to animale.json / animale.md, so callers use bare topic names.
func (l *Loader) GetDocument(ctx context.Context, topic string) (map[string]any, error) {
	doc, err := l.Repo.Get(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("%w: loam get failed for %s: %w", domain.ErrSourceUnavailable, topic, err)
	}

	// A document without "radacina" is handed over as is; the decoder reports it.
	out := make(map[string]any, 1)
	if doc.Data.Root != nil {
		out[domain.KeyRoot] = doc.Data.Root
	}
	return out, nil
}

// ListTopics lists all topics in the repository.
func (l *Loader) ListTopics(ctx context.Context) ([]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loam list failed: %w", domain.ErrSourceUnavailable, err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))

	for _, doc := range docs {
		// Use the ID from metadata if available, otherwise filename ID
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		// Collision Detection
		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: topic '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}
	return ids, nil
}

// Titles returns the optional display title of each topic, keyed by topic name.
func (l *Loader) Titles(ctx context.Context) (map[string]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}
	titles := make(map[string]string, len(docs))
	for _, doc := range docs {
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		if doc.Data.Title != "" {
			titles[trimExtension(rawID)] = doc.Data.Title
		}
	}
	return titles, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
