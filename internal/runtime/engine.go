package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// Engine is the core state machine runner.
// It holds no traversal state and is safe for concurrent use.
type Engine struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	policy domain.ConfirmationPolicy
	now    func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for step tracing.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithConfirmationPolicy selects what a missing final confirmation means.
func WithConfirmationPolicy(policy domain.ConfirmationPolicy) EngineOption {
	return func(e *Engine) {
		if policy != "" {
			e.policy = policy
		}
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
		policy: domain.ConfirmInconclusive,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the confirmation policy in effect.
func (e *Engine) Policy() domain.ConfirmationPolicy {
	return e.policy
}

// Run traverses tree, pulling tokens from source until a sink is reached.
// Run never fails: source errors become an inconclusive outcome.
func (e *Engine) Run(ctx context.Context, topic string, tree *domain.Tree, source ports.AnswerSource) domain.Outcome {
	state := e.Start(ctx, topic, tree)
	for !state.Terminal() {
		token, err := source.Next(ctx)
		if err != nil {
			if !errors.Is(err, domain.ErrInputExhausted) {
				e.logger.Debug("answer source failed", "topic", topic, "error", err)
				err = fmt.Errorf("%w: %w", domain.ErrInputExhausted, err)
			}
			state = e.exhaust(ctx, state, err)
			break
		}
		state = e.Feed(ctx, state, token)
	}
	return state.Outcome()
}

// Replay feeds a finite list of tokens to a fresh traversal.
// Tokens left over once a sink is reached are ignored. When final is false and
// the tokens run out first, the returned state is still pending; when true,
// the end of tokens counts as input exhaustion.
//
// Replays are typically repeated by stateless clients, so only OnOutcome fires.
func (e *Engine) Replay(ctx context.Context, topic string, tree *domain.Tree, tokens []string, final bool) *domain.State {
	quiet := *e
	quiet.hooks = domain.LifecycleHooks{OnOutcome: e.hooks.OnOutcome}

	state := quiet.Start(ctx, topic, tree)
	for _, token := range tokens {
		if state.Terminal() {
			break
		}
		state = quiet.Feed(ctx, state, token)
	}
	if final && !state.Terminal() {
		state = quiet.Exhaust(ctx, state)
	}
	return state
}
