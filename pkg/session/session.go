package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/runtime"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/aretw0/arbor/pkg/registry"
)

// Session plays topics from a registry it does not own.
// A Session is not safe for concurrent use; create one per player.
type Session struct {
	registry *registry.Registry
	engine   *runtime.Engine
	logger   *slog.Logger
	topic    string
}

// Option configures the Session.
type Option func(*Session)

// WithEngine sets the traversal engine (hooks, confirmation policy).
func WithEngine(engine *runtime.Engine) Option {
	return func(s *Session) {
		s.engine = engine
	}
}

// WithLogger configures a logger for the Session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a session over reg with no topic selected.
func New(reg *registry.Registry, opts ...Option) *Session {
	s := &Session{
		registry: reg,
		logger:   logging.NewNop(), // Default to no-op
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.engine == nil {
		s.engine = runtime.NewEngine(runtime.WithLogger(s.logger))
	}
	return s
}

// SelectTopic makes topic the current one.
// It fails with domain.ErrUnknownTopic, leaving the previous selection untouched.
func (s *Session) SelectTopic(topic string) error {
	if !s.registry.Exists(topic) {
		return fmt.Errorf("select %q: %w", topic, domain.ErrUnknownTopic)
	}
	s.topic = topic
	s.logger.Debug("topic selected", "topic", topic)
	return nil
}

// Topic returns the selected topic ("" when none).
func (s *Session) Topic() string {
	return s.topic
}

// Run reads the topic selector as the first token of source, selects it, and
// plays it with the remaining tokens.
func (s *Session) Run(ctx context.Context, source ports.AnswerSource) domain.Outcome {
	token, err := source.Next(ctx)
	if err != nil {
		s.logger.Info("no topic token", "error", err)
		return domain.Inconclusive("", fmt.Errorf("read topic: %w", err))
	}
	if err := s.SelectTopic(token); err != nil {
		s.logger.Info("topic selection failed", "topic", token, "error", err)
		return domain.Inconclusive(token, err)
	}
	return s.Play(ctx, source)
}

// Play traverses the selected topic with tokens from source.
func (s *Session) Play(ctx context.Context, source ports.AnswerSource) domain.Outcome {
	if s.topic == "" {
		return domain.Inconclusive("", domain.ErrNoTopicSelected)
	}
	tree, err := s.registry.Get(s.topic)
	if err != nil {
		return domain.Inconclusive(s.topic, err)
	}

	out := s.engine.Run(ctx, s.topic, tree, source)
	s.logger.Info("play finished", "topic", s.topic, "status", string(out.Status), "entity", out.Entity, "error", out.Reason)
	return out
}
