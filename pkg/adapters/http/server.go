// Package http exposes a GuessEngine over a small JSON API.
//
// Plays are stateless: clients resend every answer given so far and receive the
// pending prompt, or the outcome once the traversal reaches a sink.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/aretw0/arbor/pkg/schema"
)

// Server serves the routes of NewHandler.
type Server struct {
	Engine  ports.GuessEngine
	Metrics http.Handler
	Logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics mounts a metrics handler on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// PlayRequest is the body of POST /topics/{topic}/play.
type PlayRequest struct {
	Answers []string `json:"answers"`
	Final   bool     `json:"final"`
}

// PlayResponse is the play state returned to clients.
type PlayResponse struct {
	domain.Outcome
	Reason string `json:"reason,omitempty"`
}

// TopicResponse describes one topic and its encoded tree.
type TopicResponse struct {
	domain.TopicSummary
	Tree map[string]any `json:"tree"`
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.GuessEngine, opts ...Option) http.Handler {
	s := &Server{Engine: engine, Logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.Health)
	r.Get("/topics", s.ListTopics)
	r.Route("/topics/{topic}", func(r chi.Router) {
		r.Get("/", s.GetTopic)
		r.Get("/graph", s.GetGraph)
		r.Post("/play", s.Play)
		r.Post("/reload", s.Reload)
	})
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}
	return r
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListTopics handles GET /topics.
func (s *Server) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics := s.Engine.Topics()
	if topics == nil {
		topics = []domain.TopicSummary{}
	}
	s.writeJSON(w, http.StatusOK, topics)
}

// GetTopic handles GET /topics/{topic}.
func (s *Server) GetTopic(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")
	tree, err := s.Engine.Tree(topic)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, TopicResponse{
		TopicSummary: domain.Summarize(topic, tree),
		Tree:         schema.Encode(tree),
	})
}

// GetGraph handles GET /topics/{topic}/graph.
// An optional ?answers=da,nu query highlights the path those answers take.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	tree, err := s.Engine.Tree(chi.URLParam(r, "topic"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var overlay *graph.GraphOverlay
	if raw := r.URL.Query().Get("answers"); raw != "" {
		var path []domain.Step
		for _, token := range strings.Split(raw, ",") {
			path = append(path, domain.Step{Token: strings.TrimSpace(token)})
		}
		overlay = graph.OverlayFromPath(tree, path)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.GenerateMermaid(tree, overlay)))
}

// Play handles POST /topics/{topic}/play.
func (s *Server) Play(w http.ResponseWriter, r *http.Request) {
	var body PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	out, err := s.Engine.Replay(r.Context(), chi.URLParam(r, "topic"), body.Answers, body.Final)
	if err != nil && out.Topic == "" {
		s.writeError(w, err)
		return
	}
	if err != nil {
		// The play itself finished; only the journal write failed.
		s.Logger.Warn("play not journaled", "topic", out.Topic, "error", err)
	}
	s.writeJSON(w, http.StatusOK, PlayResponse{Outcome: out, Reason: out.ReasonText()})
}

// Reload handles POST /topics/{topic}/reload.
func (s *Server) Reload(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")
	if err := s.Engine.Reload(r.Context(), topic); err != nil {
		s.writeError(w, err)
		return
	}
	s.Logger.Info("topic reloaded", "topic", topic)
	w.WriteHeader(http.StatusNoContent)
}

// statusOf maps the error taxonomy to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownTopic):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMalformedDocument):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSourceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Warn("encode response", "error", err)
	}
}
