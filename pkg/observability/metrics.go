package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the engine.
type Metrics struct {
	registry *prometheus.Registry

	Questions  *prometheus.CounterVec
	Answers    *prometheus.CounterVec
	Outcomes   *prometheus.CounterVec
	Resolved   *prometheus.CounterVec
	PathLength *prometheus.HistogramVec
	TopicNodes *prometheus.GaugeVec
	TopicDepth *prometheus.GaugeVec
}

// NewMetrics creates the collectors on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Questions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_questions_total",
				Help: "Total number of questions asked",
			},
			[]string{"topic"},
		),
		Answers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_answers_total",
				Help: "Total number of answer tokens consumed, by meaning",
			},
			[]string{"topic", "answer"},
		),
		Outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_outcomes_total",
				Help: "Finished traversals by status",
			},
			[]string{"topic", "status"},
		),
		Resolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_resolved_entities_total",
				Help: "Resolved traversals by entity",
			},
			[]string{"topic", "entity"},
		),
		PathLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "arbor_path_length",
				Help:    "Tokens consumed by finished traversals",
				Buckets: prometheus.LinearBuckets(1, 2, 10),
			},
			[]string{"topic"},
		),
		TopicNodes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "arbor_topic_nodes",
				Help: "Node count of each loaded topic tree",
			},
			[]string{"topic"},
		),
		TopicDepth: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "arbor_topic_depth",
				Help: "Depth of each loaded topic tree",
			},
			[]string{"topic"},
		),
	}
	m.registry.MustRegister(m.Questions, m.Answers, m.Outcomes, m.Resolved, m.PathLength, m.TopicNodes, m.TopicDepth)
	return m
}

// Hooks returns lifecycle hooks recording into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnQuestion: func(ctx context.Context, e *domain.QuestionEvent) {
			m.Questions.WithLabelValues(e.Topic).Inc()
		},
		OnAnswer: func(ctx context.Context, e *domain.AnswerEvent) {
			m.Answers.WithLabelValues(e.Topic, e.Answer.String()).Inc()
		},
		OnOutcome: func(ctx context.Context, e *domain.OutcomeEvent) {
			out := e.Outcome
			m.Outcomes.WithLabelValues(e.Topic, string(out.Status)).Inc()
			m.PathLength.WithLabelValues(e.Topic).Observe(float64(len(out.Path)))
			if out.Resolved() {
				m.Resolved.WithLabelValues(e.Topic, out.Entity).Inc()
			}
		},
	}
}

// ObserveTopics sets the per-topic structure gauges.
func (m *Metrics) ObserveTopics(topics []domain.TopicSummary) {
	m.TopicNodes.Reset()
	m.TopicDepth.Reset()
	for _, t := range topics {
		m.TopicNodes.WithLabelValues(t.Name).Set(float64(t.Nodes))
		m.TopicDepth.WithLabelValues(t.Name).Set(float64(t.Depth))
	}
}

// Handler serves the collectors in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
