package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"sync"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/aretw0/arbor/pkg/schema"
)

// Registry manages the loaded topic trees.
// Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	trees   map[string]*domain.Tree
	loader  ports.TopicLoader
	sources map[string]string
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLoader sets the source used by LoadFrom, LoadAll and Reload.
func WithLoader(loader ports.TopicLoader) Option {
	return func(r *Registry) {
		r.loader = loader
	}
}

// WithSources maps topic names to loader document ids. Topics absent from
// the map are fetched under their own name. When set, LoadAll without
// arguments loads exactly the mapped topics.
func WithSources(sources map[string]string) Option {
	return func(r *Registry) {
		r.sources = make(map[string]string, len(sources))
		for topic, src := range sources {
			r.sources[topic] = src
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates a new empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		trees:  make(map[string]*domain.Tree),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load decodes doc and installs it under topic, replacing any prior tree.
// On failure the previous tree of the topic (if any) stays installed.
func (r *Registry) Load(topic string, doc map[string]any) error {
	return r.load(topic, topic, doc)
}

// load decodes doc, naming source in decode errors, and installs it under topic.
func (r *Registry) load(topic, source string, doc map[string]any) error {
	tree, err := schema.DecodeTree(source, doc)
	if err != nil {
		r.logger.Warn("topic load rejected", "topic", topic, "error", err)
		return fmt.Errorf("load topic %s: %w", topic, err)
	}
	r.Install(topic, tree)
	return nil
}

// Install registers an already built tree under topic.
func (r *Registry) Install(topic string, tree *domain.Tree) {
	r.mu.Lock()
	r.trees[topic] = tree
	r.mu.Unlock()

	r.logger.Info("topic installed", "topic", topic, "depth", tree.Depth(), "nodes", tree.NodeCount())
}

// LoadFrom fetches the document of topic from the loader and installs it.
func (r *Registry) LoadFrom(ctx context.Context, topic string) error {
	if r.loader == nil {
		return fmt.Errorf("load topic %s: %w: no loader configured", topic, domain.ErrSourceUnavailable)
	}
	source := topic
	if src, ok := r.sources[topic]; ok && src != "" {
		source = src
	}
	doc, err := r.loader.GetDocument(ctx, source)
	if err != nil {
		r.logger.Warn("topic source unavailable", "topic", topic, "source", source, "error", err)
		return fmt.Errorf("load topic %s: %w", topic, err)
	}
	return r.load(topic, source, doc)
}

// LoadAll loads the given topics, or every topic the loader lists when none
// are given. It keeps going after a failure and returns all errors joined.
func (r *Registry) LoadAll(ctx context.Context, topics ...string) error {
	if len(topics) == 0 && len(r.sources) > 0 {
		for topic := range r.sources {
			topics = append(topics, topic)
		}
		sort.Strings(topics)
	}
	if len(topics) == 0 {
		if r.loader == nil {
			return fmt.Errorf("%w: no loader configured", domain.ErrSourceUnavailable)
		}
		listed, err := r.loader.ListTopics(ctx)
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}
		topics = listed
	}

	var errs []error
	for _, topic := range topics {
		if err := r.LoadFrom(ctx, topic); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reload refetches an already loaded topic.
// Unknown topics yield domain.ErrUnknownTopic; a failed fetch or decode keeps
// the previous tree.
func (r *Registry) Reload(ctx context.Context, topic string) error {
	if !r.Exists(topic) {
		return fmt.Errorf("reload %s: %w", topic, domain.ErrUnknownTopic)
	}
	return r.LoadFrom(ctx, topic)
}

// Exists reports whether a tree is installed under topic.
func (r *Registry) Exists(topic string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.trees[topic]
	return ok
}

// Get returns the tree of an installed topic.
// The tree is shared with the registry and must not be mutated; use Clone
// on it for a private copy.
func (r *Registry) Get(topic string) (*domain.Tree, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tree, ok := r.trees[topic]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTopic, topic)
	}
	return tree, nil
}

// Topics returns the installed topic names, sorted.
func (r *Registry) Topics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.trees))
	for name := range r.trees {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summary describes every installed topic, sorted by name.
func (r *Registry) Summary() []domain.TopicSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.TopicSummary, 0, len(r.trees))
	for name, tree := range r.trees {
		out = append(out, domain.Summarize(name, tree))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Clone returns a registry holding a deep copy of every tree.
// The copy keeps the topic sources and shares the loader and logger,
// never a node or an entity.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := &Registry{
		trees:   make(map[string]*domain.Tree, len(r.trees)),
		sources: maps.Clone(r.sources),
		loader:  r.loader,
		logger:  r.logger,
	}
	for name, tree := range r.trees {
		c.trees[name] = tree.Clone()
	}
	return c
}
