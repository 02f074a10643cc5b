package mcptools

import (
	"context"
	"encoding/json"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptySchema is a minimal valid JSON Schema for test tools.
var emptySchema = json.RawMessage(`{"type":"object"}`)

// testMCPServer holds an in-memory MCP server and its transport pair.
type testMCPServer struct {
	server          *mcpsdk.Server
	clientTransport *mcpsdk.InMemoryTransport
	serverTransport *mcpsdk.InMemoryTransport
}

// startTestServer creates an in-memory MCP server with given tools and runs it.
func startTestServer(t *testing.T, name string, tools map[string]mcpsdk.ToolHandler) *testMCPServer {
	t.Helper()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name: name, Version: "test",
	}, nil)

	for toolName, handler := range tools {
		server.AddTool(&mcpsdk.Tool{
			Name:        toolName,
			Description: "test tool: " + toolName,
			InputSchema: emptySchema,
		}, handler)
	}

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	go func() {
		_ = server.Run(context.Background(), serverTransport)
	}()

	return &testMCPServer{
		server:          server,
		clientTransport: clientTransport,
		serverTransport: serverTransport,
	}
}

// wireSession connects a client to an in-memory transport and registers the session.
func wireSession(t *testing.T, client *Client, serverID string, transport *mcpsdk.InMemoryTransport) {
	t.Helper()

	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name: "edged-test", Version: "test",
	}, nil)
	session, err := sdkClient.Connect(context.Background(), transport, nil)
	require.NoError(t, err)

	client.InjectSession(serverID, sdkClient, session)
	t.Cleanup(func() { _ = client.Close() })
}

func echoHandler(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	var parsed map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &parsed); err != nil {
		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "parse error: " + err.Error()}},
			IsError: true,
		}, nil
	}
	q, _ := parsed["query"].(string)
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "results for " + q}},
	}, nil
}

func TestProviderDefinitionsAndExecute(t *testing.T) {
	ts := startTestServer(t, "web-search", map[string]mcpsdk.ToolHandler{
		"search": echoHandler,
	})

	client := NewClient(nil, nil)
	wireSession(t, client, "web-search", ts.clientTransport)
	provider := NewProvider(client, nil)

	defs, err := provider.Definitions(context.Background())
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "mcp_web_search_search", defs[0].Name)
	assert.Equal(t, "test tool: search", defs[0].Description)
	assert.Equal(t, "object", defs[0].InputSchema["type"])
	assert.Equal(t, []string{"mcp_web_search_search"}, provider.Names())

	out, err := provider.Execute(context.Background(), "mcp_web_search_search", json.RawMessage(`{"query":"weather"}`))
	require.NoError(t, err)
	assert.Equal(t, "results for weather", out)
}

func TestProviderExecuteUnknownTool(t *testing.T) {
	client := NewClient(nil, nil)
	provider := NewProvider(client, nil)

	_, err := provider.Execute(context.Background(), "mcp_nope_tool", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown MCP tool")
}

func TestProviderExecuteToolError(t *testing.T) {
	ts := startTestServer(t, "web-search", map[string]mcpsdk.ToolHandler{
		"search": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "upstream unavailable"}},
				IsError: true,
			}, nil
		},
	})

	client := NewClient(nil, nil)
	wireSession(t, client, "web-search", ts.clientTransport)
	provider := NewProvider(client, nil)

	_, err := provider.Definitions(context.Background())
	require.NoError(t, err)

	_, err = provider.Execute(context.Background(), "mcp_web_search_search", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestProviderToolFilter(t *testing.T) {
	ts := startTestServer(t, "ops", map[string]mcpsdk.ToolHandler{
		"read_state": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "state"}}}, nil
		},
		"wipe_state": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "wiped"}}}, nil
		},
	})

	client := NewClient([]ServerSpec{{ID: "ops", Tools: []string{"read_state"}}}, nil)
	wireSession(t, client, "ops", ts.clientTransport)
	provider := NewProvider(client, nil)

	defs, err := provider.Definitions(context.Background())
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "mcp_ops_read_state", defs[0].Name)

	_, err = provider.Execute(context.Background(), "mcp_ops_wipe_state", json.RawMessage(`{}`))
	require.Error(t, err)
}

func TestProviderEmptyArguments(t *testing.T) {
	ts := startTestServer(t, "ping", map[string]mcpsdk.ToolHandler{
		"ping": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "pong"}}}, nil
		},
	})

	client := NewClient(nil, nil)
	wireSession(t, client, "ping", ts.clientTransport)
	provider := NewProvider(client, nil)

	_, err := provider.Definitions(context.Background())
	require.NoError(t, err)

	out, err := provider.Execute(context.Background(), "mcp_ping_ping", nil)
	require.NoError(t, err)
	assert.Equal(t, "pong", out)
}

func TestToolNameMangling(t *testing.T) {
	assert.Equal(t, "mcp_web_search_fetch", ToolName("web-search", "fetch"))
	assert.Equal(t, "mcp_k8s_prod_get_pods", ToolName("k8s.prod", "get_pods"))
	assert.Equal(t, "mcp_ops_ping", ToolName("ops", "ping"))
}
