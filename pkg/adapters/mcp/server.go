package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// TopicsURI is the resource listing the loaded topics.
const TopicsURI = "arbor://topics"

// PlayArgs are the arguments of the play tool.
type PlayArgs struct {
	Topic   string   `json:"topic"`
	Answers []string `json:"answers"`
	Final   bool     `json:"final"`
}

// PlayResult aligns with the HTTP play response so every adapter returns the same shape.
type PlayResult struct {
	domain.Outcome
	Reason string `json:"reason,omitempty" jsonschema_description:"Why the play ended inconclusive"`
}

// TopicDescription is returned by describe_topic.
type TopicDescription struct {
	domain.TopicSummary
	Mermaid string `json:"mermaid" jsonschema_description:"Mermaid flowchart of the knowledge tree"`
}

// Server wraps a GuessEngine and exposes it as an MCP Server.
type Server struct {
	engine    ports.GuessEngine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger. It must not write to stdout when serving stdio.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.GuessEngine, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("arbor-mcp", strings.TrimSpace(arbor.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server, mainly for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: list_topics
	s.mcpServer.AddTool(mcp.NewTool("list_topics",
		mcp.WithDescription("List the loaded topics with the depth and node count of their knowledge trees."),
	), s.handleListTopics)

	// TOOL: play
	playTool := mcp.NewTool("play",
		mcp.WithDescription("Play a topic with the answers given so far. Returns the next question, the candidate to confirm, or the outcome."),
		mcp.WithString("topic", mcp.Required(), mcp.Description("Topic to play")),
		mcp.WithArray("answers", mcp.Description("Answers in order (da/nu, yes/no); the last one may confirm the candidate"), mcp.WithStringItems()),
		mcp.WithBoolean("final", mcp.Description("Treat the end of answers as the end of input")),
		mcp.WithOutputSchema[PlayResult](),
	)
	s.mcpServer.AddTool(playTool, mcp.NewStructuredToolHandler(s.handlePlay))

	// TOOL: describe_topic
	describeTool := mcp.NewTool("describe_topic",
		mcp.WithDescription("Describe a topic and export its knowledge tree as a Mermaid flowchart."),
		mcp.WithString("topic", mcp.Required(), mcp.Description("Topic to describe")),
		mcp.WithOutputSchema[TopicDescription](),
	)
	s.mcpServer.AddTool(describeTool, mcp.NewStructuredToolHandler(s.handleDescribe))
}

func (s *Server) handleListTopics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(s.topics())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode topics: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handlePlay(ctx context.Context, request mcp.CallToolRequest, args PlayArgs) (PlayResult, error) {
	if args.Topic == "" {
		return PlayResult{}, errors.New("topic is required")
	}
	out, err := s.engine.Replay(ctx, args.Topic, args.Answers, args.Final)
	if err != nil && out.Topic == "" {
		return PlayResult{}, fmt.Errorf("play failed: %w", err)
	}
	if err != nil {
		s.logger.Warn("MCP Play: journal write failed", "topic", args.Topic, "error", err)
	}
	return PlayResult{Outcome: out, Reason: out.ReasonText()}, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TopicDescription, error) {
	topic, _ := args["topic"].(string)
	tree, err := s.engine.Tree(topic)
	if err != nil {
		return TopicDescription{}, err
	}
	return TopicDescription{
		TopicSummary: domain.Summarize(topic, tree),
		Mermaid:      graph.GenerateMermaid(tree, nil),
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: arbor://topics
	s.mcpServer.AddResource(mcp.NewResource(TopicsURI, "Loaded Topics",
		mcp.WithMIMEType("application/json"),
	), s.readTopics)
}

func (s *Server) readTopics(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(s.topics())
	if err != nil {
		return nil, fmt.Errorf("failed to encode topics: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      TopicsURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) topics() []domain.TopicSummary {
	topics := s.engine.Topics()
	if topics == nil {
		topics = []domain.TopicSummary{}
	}
	return topics
}
