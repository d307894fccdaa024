package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventQuestion  EventType = "question"
	EventAnswer    EventType = "answer"
	EventCandidate EventType = "candidate"
	EventOutcome   EventType = "outcome"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Topic     string    `json:"topic"`
}

// QuestionEvent is emitted before a token is read at a Question node.
type QuestionEvent struct {
	EventBase
	Question string `json:"question"`
	Depth    int    `json:"depth"`
}

// AnswerEvent is emitted after a token was read and classified.
type AnswerEvent struct {
	EventBase
	Question string `json:"question,omitempty"`
	Token    string `json:"token"`
	Answer   Answer `json:"answer"`
}

// CandidateEvent is emitted when a leaf is reached and confirmation is requested.
type CandidateEvent struct {
	EventBase
	Entity Entity `json:"entity"`
}

// OutcomeEvent is emitted once, when the traversal reaches a sink.
type OutcomeEvent struct {
	EventBase
	Outcome Outcome `json:"outcome"`
}

// LifecycleHooks defines optional callbacks around a traversal.
// They are a side channel (prompting, logging, metrics); the traversal never
// depends on them for its result.
type LifecycleHooks struct {
	OnQuestion  func(context.Context, *QuestionEvent)
	OnAnswer    func(context.Context, *AnswerEvent)
	OnCandidate func(context.Context, *CandidateEvent)
	OnOutcome   func(context.Context, *OutcomeEvent)
}

// Merge returns hooks that call h first, then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnQuestion:  chain(h.OnQuestion, other.OnQuestion),
		OnAnswer:    chain(h.OnAnswer, other.OnAnswer),
		OnCandidate: chain(h.OnCandidate, other.OnCandidate),
		OnOutcome:   chain(h.OnOutcome, other.OnOutcome),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
