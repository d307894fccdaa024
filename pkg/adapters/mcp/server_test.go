package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
)

func newServer(t *testing.T) *Server {
	t.Helper()
	loader, err := dsl.New().
		Topic("animale", dsl.Ask("zboara?").
			Yes(dsl.Guess("vultur", "animale", "pasare")).
			No(dsl.Guess("pisica", "animale", "mamifer"))).
		Build()
	require.NoError(t, err)

	eng, err := arbor.New("", arbor.WithLoader(loader))
	require.NoError(t, err)
	require.NoError(t, eng.LoadAll(context.Background()))
	return NewServer(eng)
}

func TestServer_ListTopics(t *testing.T) {
	s := newServer(t)
	res, err := s.handleListTopics(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	var topics []domain.TopicSummary
	require.NoError(t, json.Unmarshal([]byte(text.Text), &topics))
	assert.Equal(t, []domain.TopicSummary{{Name: "animale", Depth: 2, Nodes: 3}}, topics)
}

func TestServer_Play(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	res, err := s.handlePlay(ctx, mcp.CallToolRequest{}, PlayArgs{Topic: "animale"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Equal(t, "zboara?", res.Prompt)

	res, err = s.handlePlay(ctx, mcp.CallToolRequest{}, PlayArgs{Topic: "animale", Answers: []string{"da", "da"}})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, res.Status)
	assert.Equal(t, "vultur", res.Entity)

	res, err = s.handlePlay(ctx, mcp.CallToolRequest{}, PlayArgs{Topic: "animale", Answers: []string{"da"}, Final: true})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInconclusive, res.Status)
	assert.NotEmpty(t, res.Reason)

	_, err = s.handlePlay(ctx, mcp.CallToolRequest{}, PlayArgs{Topic: "pesti"})
	assert.ErrorIs(t, err, domain.ErrUnknownTopic)

	_, err = s.handlePlay(ctx, mcp.CallToolRequest{}, PlayArgs{})
	assert.Error(t, err)
}

func TestServer_Describe(t *testing.T) {
	s := newServer(t)

	desc, err := s.handleDescribe(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"topic": "animale"})
	require.NoError(t, err)
	assert.Equal(t, 3, desc.Nodes)
	assert.Contains(t, desc.Mermaid, `q{"zboara?"}`)

	_, err = s.handleDescribe(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"topic": "pesti"})
	assert.ErrorIs(t, err, domain.ErrUnknownTopic)
}

func TestServer_TopicsResource(t *testing.T) {
	s := newServer(t)
	contents, err := s.readTopics(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, TopicsURI, text.URI)
	assert.Contains(t, text.Text, `"name":"animale"`)
}
