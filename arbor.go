package arbor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/arbor/internal/runtime"
	loamAdapter "github.com/aretw0/arbor/pkg/adapters/loam"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/aretw0/arbor/pkg/registry"
	"github.com/aretw0/arbor/pkg/session"
	"github.com/aretw0/loam"
	"github.com/oklog/ulid/v2"
)

// Version is the library version reported by 'arbor version'.
const Version = "0.3.0"

// Engine is the high-level entry point for the arbor library.
// It wires a topic loader, the registry, the traversal runtime and an optional
// play journal behind a simplified API.
type Engine struct {
	runtime  *runtime.Engine
	registry *registry.Registry
	loader   ports.TopicLoader
	journal  ports.Journal
	hooks    domain.LifecycleHooks
	sources  map[string]string
	policy   domain.ConfirmationPolicy
	logger   *slog.Logger
	now      func() time.Time
	Name     string

	mu      sync.Mutex // guards entropy
	entropy *rand.Rand
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers hooks (prompts, logging, metrics).
// Calling it several times merges the hooks in order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLoader injects a custom TopicLoader, bypassing the default Loam initialization.
func WithLoader(l ports.TopicLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithSources maps topic names to document ids of the loader.
// With sources set, LoadAll without arguments loads exactly those topics.
func WithSources(sources map[string]string) Option {
	return func(e *Engine) {
		e.sources = sources
	}
}

// WithJournal records every finished play.
func WithJournal(j ports.Journal) Option {
	return func(e *Engine) {
		e.journal = j
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithConfirmationPolicy selects what a missing final confirmation means.
func WithConfirmationPolicy(policy domain.ConfirmationPolicy) Option {
	return func(e *Engine) {
		e.policy = policy
	}
}

// New initializes a new arbor Engine.
// By default, topics are read from a Loam repository at the given path.
// If WithLoader option is provided, repoPath can be empty and Loam is skipped.
// No topic is loaded until LoadAll is called.
func New(repoPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{
		policy:  domain.ConfirmInconclusive,
		now:     time.Now,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// Apply Options first to check if a loader is provided
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if repoPath == "" {
			return nil, fmt.Errorf("repoPath is required when no custom loader is provided")
		}

		absPath, err := filepath.Abs(repoPath)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		eng.Name = filepath.Base(absPath)

		// Strict mode keeps JSON and frontmatter values consistently typed.
		// The engine never writes topic documents, hence read-only.
		repo, err := loam.Init(absPath,
			loam.WithStrict(true),
			loam.WithReadOnly(true),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize loam: %w", err)
		}

		typedRepo := loam.NewTypedRepository[loamAdapter.TopicMetadata](repo)
		eng.loader = loamAdapter.New(typedRepo)
	} else if repoPath != "" {
		eng.Name = filepath.Base(repoPath)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("repo", eng.Name)
	}

	eng.registry = registry.NewRegistry(
		registry.WithLoader(eng.loader),
		registry.WithSources(eng.sources),
		registry.WithLogger(eng.logger),
	)
	eng.runtime = runtime.NewEngine(
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithConfirmationPolicy(eng.policy),
	)

	return eng, nil
}

// LoadAll loads the given topics, or every topic of the loader when none are given.
// Topics that fail to load are reported in the joined error; the others are usable.
func (e *Engine) LoadAll(ctx context.Context, topics ...string) error {
	return e.registry.LoadAll(ctx, topics...)
}

// Registry returns the topic registry.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Loader returns the underlying TopicLoader used by the engine.
func (e *Engine) Loader() ports.TopicLoader {
	return e.loader
}

// Journal returns the play journal, or nil when plays are not recorded.
func (e *Engine) Journal() ports.Journal {
	return e.journal
}

// Policy returns the confirmation policy in effect.
func (e *Engine) Policy() domain.ConfirmationPolicy {
	return e.runtime.Policy()
}

// NewSession creates a guess session bound to the engine's registry and runtime.
func (e *Engine) NewSession() *session.Session {
	return session.New(e.registry,
		session.WithEngine(e.runtime),
		session.WithLogger(e.logger),
	)
}

// Play runs a full session over source (topic token first) and journals the outcome.
// The outcome is always meaningful; the error only reports a failed journal write.
func (e *Engine) Play(ctx context.Context, source ports.AnswerSource) (domain.Outcome, error) {
	out := e.NewSession().Run(ctx, source)
	return out, e.record(ctx, out)
}

// PlayTopic plays a preselected topic; every token of source is an answer.
func (e *Engine) PlayTopic(ctx context.Context, topic string, source ports.AnswerSource) (domain.Outcome, error) {
	s := e.NewSession()
	var out domain.Outcome
	if err := s.SelectTopic(topic); err != nil {
		out = domain.Inconclusive(topic, err)
	} else {
		out = s.Play(ctx, source)
	}
	return out, e.record(ctx, out)
}

// Topics implements ports.GuessEngine.
func (e *Engine) Topics() []domain.TopicSummary {
	return e.registry.Summary()
}

// Tree implements ports.GuessEngine.
func (e *Engine) Tree(topic string) (*domain.Tree, error) {
	return e.registry.Get(topic)
}

// Replay implements ports.GuessEngine. Finished replays are journaled.
func (e *Engine) Replay(ctx context.Context, topic string, answers []string, final bool) (domain.Outcome, error) {
	tree, err := e.registry.Get(topic)
	if err != nil {
		return domain.Outcome{}, err
	}
	state := e.runtime.Replay(ctx, topic, tree, answers, final)
	out := state.Outcome()
	if state.Terminal() {
		if err := e.record(ctx, out); err != nil {
			return out, err
		}
	}
	return out, nil
}

// Reload implements ports.GuessEngine.
func (e *Engine) Reload(ctx context.Context, topic string) error {
	return e.registry.Reload(ctx, topic)
}

// History returns the latest journaled plays of a topic.
func (e *Engine) History(ctx context.Context, topic string, limit int) ([]domain.Play, error) {
	if e.journal == nil {
		return nil, fmt.Errorf("no journal configured")
	}
	return e.journal.Recent(ctx, topic, limit)
}

// Tally returns how many resolved plays of a topic ended on each entity.
func (e *Engine) Tally(ctx context.Context, topic string) (map[string]int64, error) {
	if e.journal == nil {
		return nil, fmt.Errorf("no journal configured")
	}
	return e.journal.Tally(ctx, topic)
}

func (e *Engine) record(ctx context.Context, out domain.Outcome) error {
	if e.journal == nil || out.Topic == "" {
		return nil
	}
	at := e.now()
	play := domain.NewPlay(out, at)
	play.ID = e.newID(at)
	if err := e.journal.Record(ctx, play); err != nil {
		e.logger.Warn("journal write failed", "topic", out.Topic, "error", err)
		return fmt.Errorf("record play: %w", err)
	}
	return nil
}

func (e *Engine) newID(at time.Time) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(at), e.entropy).String()
}
