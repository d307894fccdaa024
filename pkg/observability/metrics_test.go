package observability_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/runtime"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/runner"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flyOrNot() *domain.Tree {
	return dsl.Ask("zboara?").
		Yes(dsl.Guess("vultur", "animale", "pasare")).
		No(dsl.Guess("pisica", "animale", "mamifer")).
		MustTree()
}

func TestMetrics_Hooks(t *testing.T) {
	m := observability.NewMetrics()
	engine := runtime.NewEngine(runtime.WithLifecycleHooks(m.Hooks()))
	ctx := context.Background()

	engine.Run(ctx, "animale", flyOrNot(), runner.NewSliceSource("da", "da"))
	engine.Run(ctx, "animale", flyOrNot(), runner.NewSliceSource("nu", "nu"))
	engine.Run(ctx, "animale", flyOrNot(), runner.NewSliceSource("poate"))

	assert.Equal(t, float64(3), testutil.ToFloat64(m.Questions.WithLabelValues("animale")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Answers.WithLabelValues("animale", "yes")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Answers.WithLabelValues("animale", "no")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Answers.WithLabelValues("animale", "unrecognized")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Outcomes.WithLabelValues("animale", "resolved")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Outcomes.WithLabelValues("animale", "inconclusive")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Resolved.WithLabelValues("animale", "vultur")))
}

func TestMetrics_ObserveTopicsAndHandler(t *testing.T) {
	m := observability.NewMetrics()
	m.ObserveTopics([]domain.TopicSummary{{Name: "animale", Depth: 2, Nodes: 3}})

	assert.Equal(t, float64(3), testutil.ToFloat64(m.TopicNodes.WithLabelValues("animale")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.TopicDepth.WithLabelValues("animale")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `arbor_topic_nodes{topic="animale"} 3`)
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelDebug, logging.FormatText)
	engine := runtime.NewEngine(runtime.WithLifecycleHooks(observability.LogHooks(logger)))

	engine.Run(context.Background(), "animale", flyOrNot(), runner.NewSliceSource("da"))

	out := buf.String()
	assert.Contains(t, out, "msg=question")
	assert.Contains(t, out, "msg=candidate")
	assert.Contains(t, out, "msg=outcome")
	assert.Contains(t, out, "status=inconclusive")
	assert.Contains(t, out, "err=")
}
