package runner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_Prompts(t *testing.T) {
	var buf bytes.Buffer
	h := NewTextHandler(&buf, WithTextHandlerRenderer(func(s string) (string, error) {
		return "<" + s + ">", nil
	}))
	hooks := h.Hooks()
	ctx := context.Background()

	hooks.OnQuestion(ctx, &domain.QuestionEvent{Question: "zboara?", Depth: 1})
	hooks.OnAnswer(ctx, &domain.AnswerEvent{Token: "poate", Answer: domain.AnswerUnrecognized})
	hooks.OnCandidate(ctx, &domain.CandidateEvent{Entity: domain.Entity{Name: "vultur", Domain: "animale", Kind: "pasare"}})

	out := buf.String()
	assert.Contains(t, out, "<**1.** zboara?>\n> ")
	assert.Contains(t, out, `unrecognized answer "poate"`)
	assert.Contains(t, out, "<Is it **vultur**? _(animale, pasare)_>")
}

func TestTextHandler_RendererFailureFallsBack(t *testing.T) {
	var buf bytes.Buffer
	h := NewTextHandler(&buf, WithTextHandlerRenderer(func(string) (string, error) {
		return "", errors.New("no style")
	}))
	h.Hooks().OnQuestion(context.Background(), &domain.QuestionEvent{Question: "zboara?", Depth: 2})
	assert.Equal(t, "**2.** zboara?\n> ", buf.String())
}

func TestJSONHandler_Events(t *testing.T) {
	var buf bytes.Buffer
	h := NewJSONHandler(&buf)
	hooks := h.Hooks()
	ctx := context.Background()
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	hooks.OnQuestion(ctx, &domain.QuestionEvent{EventBase: domain.EventBase{Timestamp: ts, Type: domain.EventQuestion, Topic: "animale"}, Question: "zboara?", Depth: 1})
	hooks.OnAnswer(ctx, &domain.AnswerEvent{EventBase: domain.EventBase{Timestamp: ts, Type: domain.EventAnswer, Topic: "animale"}, Question: "zboara?", Token: "da", Answer: domain.AnswerYes})
	hooks.OnOutcome(ctx, &domain.OutcomeEvent{
		EventBase: domain.EventBase{Timestamp: ts, Type: domain.EventOutcome, Topic: "animale"},
		Outcome:   domain.Outcome{Topic: "animale", Status: domain.StatusInconclusive, Reason: domain.ErrInputExhausted},
	})
	require.NoError(t, h.Err())

	var lines []map[string]any
	sc := bufio.NewScanner(strings.NewReader(buf.String()))
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		lines = append(lines, m)
	}
	require.Len(t, lines, 3)
	assert.Equal(t, "question", lines[0]["type"])
	assert.Equal(t, "zboara?", lines[0]["question"])
	assert.Equal(t, "yes", lines[1]["answer"])
	assert.Equal(t, "outcome", lines[2]["type"])
	assert.Equal(t, "input exhausted", lines[2]["reason"])
}
