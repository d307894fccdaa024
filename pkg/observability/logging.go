package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/arbor/pkg/domain"
)

// LogHooks logs every traversal event at debug level and outcomes at info.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnQuestion: func(ctx context.Context, e *domain.QuestionEvent) {
			logger.DebugContext(ctx, "question", "topic", e.Topic, "question", e.Question, "depth", e.Depth)
		},
		OnAnswer: func(ctx context.Context, e *domain.AnswerEvent) {
			logger.DebugContext(ctx, "answer", "topic", e.Topic, "token", e.Token, "answer", e.Answer.String())
		},
		OnCandidate: func(ctx context.Context, e *domain.CandidateEvent) {
			logger.DebugContext(ctx, "candidate", "topic", e.Topic, "entity", e.Entity.Name)
		},
		OnOutcome: func(ctx context.Context, e *domain.OutcomeEvent) {
			logger.InfoContext(ctx, "outcome",
				"topic", e.Topic,
				"status", string(e.Outcome.Status),
				"entity", e.Outcome.Entity,
				"steps", len(e.Outcome.Path),
				"error", e.Outcome.Reason,
			)
		},
	}
}
