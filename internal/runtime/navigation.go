package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
)

// Start creates the initial state of a traversal and settles it: the returned
// state waits for a token, or is already a sink (empty or broken tree).
func (e *Engine) Start(ctx context.Context, topic string, tree *domain.Tree) *domain.State {
	if tree.Empty() {
		state := domain.NewState(topic, nil)
		return e.finish(ctx, state, domain.PhaseInconclusive, domain.ErrEmptyTree)
	}
	return e.settle(ctx, domain.NewState(topic, tree.Root()))
}

// Feed consumes one token and returns the next state.
// The given state is not modified; sinks are returned unchanged.
func (e *Engine) Feed(ctx context.Context, state *domain.State, token string) *domain.State {
	if state.Terminal() {
		return state
	}

	next := advance(state)
	answer := domain.ParseAnswer(token)

	switch state.Phase {
	case domain.PhaseAtNode:
		question := state.Current.Question()
		next.Path = append(next.Path, domain.Step{Question: question, Token: token, Answer: answer.String()})
		e.emitAnswer(ctx, next, question, token, answer)
		e.logger.Debug("answer", "topic", state.Topic, "question", question, "token", token, "answer", answer.String())

		if answer == domain.AnswerUnrecognized {
			return e.finish(ctx, next, domain.PhaseInconclusive, fmt.Errorf("%w: %q", domain.ErrUnrecognizedAnswer, token))
		}
		next.Current = state.Current.Child(answer)
		return e.settle(ctx, next)

	case domain.PhaseAwaitingConfirmation:
		name := state.Candidate.Name
		next.Path = append(next.Path, domain.Step{Question: name, Token: token, Answer: answer.String(), Confirmation: true})
		e.emitAnswer(ctx, next, "", token, answer)
		e.logger.Debug("confirmation", "topic", state.Topic, "candidate", name, "token", token, "answer", answer.String())

		switch answer {
		case domain.AnswerYes:
			return e.finish(ctx, next, domain.PhaseResolved, nil)
		case domain.AnswerNo:
			return e.finish(ctx, next, domain.PhaseInconclusive, fmt.Errorf("%w: %s", domain.ErrConfirmationRejected, name))
		default:
			return e.finish(ctx, next, domain.PhaseInconclusive, fmt.Errorf("%w: %q", domain.ErrUnrecognizedAnswer, token))
		}
	}
	return state
}

// Exhaust applies the end of input to a state.
// At a question the traversal becomes inconclusive. Awaiting confirmation, the
// outcome depends on the confirmation policy.
func (e *Engine) Exhaust(ctx context.Context, state *domain.State) *domain.State {
	return e.exhaust(ctx, state, domain.ErrInputExhausted)
}

func (e *Engine) exhaust(ctx context.Context, state *domain.State, cause error) *domain.State {
	if state.Terminal() {
		return state
	}
	next := advance(state)
	if state.Phase == domain.PhaseAwaitingConfirmation {
		if e.policy == domain.ConfirmAccept {
			e.logger.Debug("missing confirmation accepted", "topic", state.Topic, "candidate", state.Candidate.Name)
			return e.finish(ctx, next, domain.PhaseResolved, nil)
		}
		return e.finish(ctx, next, domain.PhaseInconclusive, fmt.Errorf("%w: no confirmation for %s", cause, state.Candidate.Name))
	}
	return e.finish(ctx, next, domain.PhaseInconclusive, cause)
}

// settle inspects the node under the pointer and decides what the state waits for.
func (e *Engine) settle(ctx context.Context, state *domain.State) *domain.State {
	node := state.Current
	switch node.Kind() {
	case domain.KindQuestion:
		state.Phase = domain.PhaseAtNode
		e.emitQuestion(ctx, state)
		return state
	case domain.KindLeaf:
		entity, _ := node.Entity()
		state.Phase = domain.PhaseAwaitingConfirmation
		state.Candidate = &entity
		e.emitCandidate(ctx, state, entity)
		e.logger.Debug("candidate", "topic", state.Topic, "entity", entity.Name)
		return state
	default:
		return e.finish(ctx, state, domain.PhaseInconclusive, fmt.Errorf("%w: reached %s node", domain.ErrMalformedNode, node.Kind()))
	}
}

// finish moves a state into a sink and fires OnOutcome.
func (e *Engine) finish(ctx context.Context, state *domain.State, phase domain.Phase, reason error) *domain.State {
	state.Phase = phase
	state.Reason = reason
	if phase == domain.PhaseInconclusive {
		state.Current = nil
	}
	out := state.Outcome()
	e.logger.Debug("traversal finished", "topic", state.Topic, "status", string(out.Status), "entity", out.Entity, "error", reason)
	e.emitOutcome(ctx, state, out)
	return state
}

// advance copies a state so transitions never alias the caller's path.
func advance(state *domain.State) *domain.State {
	next := *state
	next.Path = append(make([]domain.Step, 0, len(state.Path)+1), state.Path...)
	return &next
}
