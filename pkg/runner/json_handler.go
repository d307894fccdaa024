package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/aretw0/arbor/pkg/domain"
)

// JSONHandler streams traversal events as JSON lines, one object per event.
type JSONHandler struct {
	mu      sync.Mutex
	Encoder *json.Encoder
	err     error
}

// NewJSONHandler creates an event streamer. A nil writer means stdout.
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{Encoder: json.NewEncoder(w)}
}

// Hooks returns hooks that encode every event.
func (h *JSONHandler) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnQuestion:  func(ctx context.Context, e *domain.QuestionEvent) { h.encode(e) },
		OnAnswer:    func(ctx context.Context, e *domain.AnswerEvent) { h.encode(e) },
		OnCandidate: func(ctx context.Context, e *domain.CandidateEvent) { h.encode(e) },
		OnOutcome: func(ctx context.Context, e *domain.OutcomeEvent) {
			h.encode(struct {
				*domain.OutcomeEvent
				Reason string `json:"reason,omitempty"`
			}{e, e.Outcome.ReasonText()})
		},
	}
}

// Err returns the first encoding error, if any.
func (h *JSONHandler) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *JSONHandler) encode(v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return
	}
	h.err = h.Encoder.Encode(v)
}
