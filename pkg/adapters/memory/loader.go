package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/schema"
)

// Loader implements ports.TopicLoader using an in-memory map.
// Safe for concurrent use.
type Loader struct {
	mu      sync.RWMutex
	sources map[string]source
}

type source struct {
	name string
	raw  []byte
}

// NewLoader creates a new memory loader from raw documents.
// Keys are source names: "animale.yaml" is read as YAML, "animale.json" or a bare
// "animale" as JSON. The topic name is the key without its extension.
func NewLoader(data map[string]string) *Loader {
	l := &Loader{sources: make(map[string]source, len(data))}
	for name, raw := range data {
		l.Set(name, raw)
	}
	return l
}

// NewFromTrees creates a memory loader from already built trees.
// This handles encoding automatically, improving DX for tests.
func NewFromTrees(trees map[string]*domain.Tree) (*Loader, error) {
	l := &Loader{sources: make(map[string]source, len(trees))}
	for topic, tree := range trees {
		if topic == "" {
			return nil, fmt.Errorf("tree missing topic name")
		}
		doc, err := json.Marshal(schema.Encode(tree))
		if err != nil {
			return nil, fmt.Errorf("failed to encode topic %s: %w", topic, err)
		}
		l.sources[topic] = source{name: topic + ".json", raw: doc}
	}
	return l, nil
}

// Set adds or replaces a raw document.
func (l *Loader) Set(name, raw string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources[topicName(name)] = source{name: name, raw: []byte(raw)}
}

// Remove drops a topic document, making it unavailable.
func (l *Loader) Remove(topic string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.sources, topic)
}

// GetDocument parses the raw document of a topic.
func (l *Loader) GetDocument(ctx context.Context, topic string) (map[string]any, error) {
	l.mu.RLock()
	src, ok := l.sources[topic]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: topic document not found: %s", domain.ErrSourceUnavailable, topic)
	}
	return schema.ParseDocument(src.name, src.raw)
}

// ListTopics returns all available topic names.
func (l *Loader) ListTopics(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.sources))
	for k := range l.sources {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}

func topicName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
