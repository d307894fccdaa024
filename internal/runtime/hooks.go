package runtime

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
)

func (e *Engine) base(state *domain.State, t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: e.now(), Type: t, Topic: state.Topic}
}

func (e *Engine) emitQuestion(ctx context.Context, state *domain.State) {
	if e.hooks.OnQuestion == nil {
		return
	}
	e.hooks.OnQuestion(ctx, &domain.QuestionEvent{
		EventBase: e.base(state, domain.EventQuestion),
		Question:  state.Current.Question(),
		Depth:     len(state.Path) + 1,
	})
}

func (e *Engine) emitAnswer(ctx context.Context, state *domain.State, question, token string, answer domain.Answer) {
	if e.hooks.OnAnswer == nil {
		return
	}
	e.hooks.OnAnswer(ctx, &domain.AnswerEvent{
		EventBase: e.base(state, domain.EventAnswer),
		Question:  question,
		Token:     token,
		Answer:    answer,
	})
}

func (e *Engine) emitCandidate(ctx context.Context, state *domain.State, entity domain.Entity) {
	if e.hooks.OnCandidate == nil {
		return
	}
	e.hooks.OnCandidate(ctx, &domain.CandidateEvent{
		EventBase: e.base(state, domain.EventCandidate),
		Entity:    entity,
	})
}

func (e *Engine) emitOutcome(ctx context.Context, state *domain.State, out domain.Outcome) {
	if e.hooks.OnOutcome == nil {
		return
	}
	e.hooks.OnOutcome(ctx, &domain.OutcomeEvent{
		EventBase: e.base(state, domain.EventOutcome),
		Outcome:   out,
	})
}
