package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// ContentRenderer turns markdown into terminal output.
type ContentRenderer func(string) (string, error)

// TextHandler prompts a human while a traversal reads from a terminal.
// It only writes; answers keep flowing through the answer source.
type TextHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a prompting handler. A nil writer means stderr,
// which keeps stdout free for the result.
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stderr
	}
	h := &TextHandler{Writer: w}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hooks returns the lifecycle hooks that print the prompts.
func (h *TextHandler) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnQuestion: func(ctx context.Context, e *domain.QuestionEvent) {
			h.print(fmt.Sprintf("**%d.** %s", e.Depth, e.Question))
			h.prompt()
		},
		OnCandidate: func(ctx context.Context, e *domain.CandidateEvent) {
			h.print(fmt.Sprintf("Is it **%s**? _(%s, %s)_", e.Entity.Name, e.Entity.Domain, e.Entity.Kind))
			h.prompt()
		},
		OnAnswer: func(ctx context.Context, e *domain.AnswerEvent) {
			if e.Answer == domain.AnswerUnrecognized {
				fmt.Fprintf(h.Writer, "unrecognized answer %q (expected one of %s / %s)\n",
					e.Token, strings.Join(domain.Affirmative, ","), strings.Join(domain.Negative, ","))
			}
		},
	}
}

func (h *TextHandler) print(msg string) {
	output := msg
	if h.Renderer != nil {
		if rendered, err := h.Renderer(msg); err == nil {
			output = rendered
		}
	}
	fmt.Fprintln(h.Writer, strings.TrimSpace(output))
}

func (h *TextHandler) prompt() {
	fmt.Fprint(h.Writer, "> ")
}
