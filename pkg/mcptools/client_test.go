package mcptools

import (
	"context"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientListToolsCaches(t *testing.T) {
	ts := startTestServer(t, "ops", map[string]mcpsdk.ToolHandler{
		"ping": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "pong"}}}, nil
		},
	})

	client := NewClient(nil, nil)
	wireSession(t, client, "ops", ts.clientTransport)

	tools, err := client.ListTools(context.Background(), "ops")
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "ping", tools[0].Name)

	// Cached list is served without a session round trip.
	again, err := client.ListTools(context.Background(), "ops")
	require.NoError(t, err)
	assert.Equal(t, tools, again)

	client.InvalidateToolCache("ops")
	tools, err = client.ListTools(context.Background(), "ops")
	require.NoError(t, err)
	assert.Len(t, tools, 1)
}

func TestClientCallTool(t *testing.T) {
	ts := startTestServer(t, "ops", map[string]mcpsdk.ToolHandler{
		"ping": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "pong"}}}, nil
		},
	})

	client := NewClient(nil, nil)
	wireSession(t, client, "ops", ts.clientTransport)

	result, err := client.CallTool(context.Background(), "ops", "ping", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "pong", extractTextContent(result))
	assert.True(t, client.HasSession("ops"))
}

func TestClientNoSession(t *testing.T) {
	client := NewClient(nil, nil)

	_, err := client.ListTools(context.Background(), "missing")
	require.Error(t, err)

	_, err = client.CallTool(context.Background(), "missing", "ping", nil)
	require.Error(t, err)
	assert.False(t, client.HasSession("missing"))
}

func TestClientInitializeRecordsFailures(t *testing.T) {
	client := NewClient([]ServerSpec{
		{ID: "bad", Transport: TransportSpec{Type: "carrier-pigeon"}},
	}, nil)

	require.NoError(t, client.Initialize(context.Background()))
	failed := client.FailedServers()
	require.Contains(t, failed, "bad")
	assert.Contains(t, failed["bad"], "unsupported transport type")
}
