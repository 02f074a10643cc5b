package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/opencane/edged/pkg/agent"
)

// Compile-time check that Provider implements agent.ToolExecutor.
var _ agent.ToolExecutor = (*Provider)(nil)

// Provider lists MCP server tools as agent tool definitions and routes the
// agent's tool calls back to the owning server. Tool names are mangled to
// "mcp_<server>_<tool>" so the domain manager's mcp_tools default applies.
type Provider struct {
	client *Client
	logger *slog.Logger

	mu     sync.RWMutex
	routes map[string]route // agent tool name → server routing
}

type route struct {
	serverID string
	toolName string
}

// NewProvider wraps a connected Client.
func NewProvider(client *Client, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		client: client,
		logger: logger.With("component", "mcptools.provider"),
		routes: make(map[string]route),
	}
}

// Definitions lists tools from all connected servers under their mangled
// names and refreshes the routing table. Servers that fail to list are
// skipped; partial tools are better than none.
func (p *Provider) Definitions(ctx context.Context) ([]agent.ToolDefinition, error) {
	serverIDs := p.client.ServerIDs()
	sort.Strings(serverIDs)

	var defs []agent.ToolDefinition
	routes := make(map[string]route)
	for _, serverID := range serverIDs {
		tools, err := p.client.ListTools(ctx, serverID)
		if err != nil {
			p.logger.Warn("failed to list tools from MCP server",
				"server", serverID, "error", err)
			continue
		}

		filter := p.client.specs[serverID].Tools
		for _, tool := range tools {
			if len(filter) > 0 && !slices.Contains(filter, tool.Name) {
				continue
			}
			name := ToolName(serverID, tool.Name)
			routes[name] = route{serverID: serverID, toolName: tool.Name}
			defs = append(defs, agent.ToolDefinition{
				Name:        name,
				Description: tool.Description,
				InputSchema: schemaToMap(tool.InputSchema),
			})
		}
	}

	p.mu.Lock()
	p.routes = routes
	p.mu.Unlock()
	return defs, nil
}

// Names returns the mangled tool names from the last Definitions call, for
// registration with the tool domain manager.
func (p *Provider) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.routes))
	for name := range p.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute implements agent.ToolExecutor: routes a mangled tool name to its
// server and returns the concatenated text content. A tool-reported error
// becomes a Go error so the loop feeds it back as a structured failure.
func (p *Provider) Execute(ctx context.Context, name string, input json.RawMessage) (string, error) {
	p.mu.RLock()
	r, ok := p.routes[name]
	p.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("unknown MCP tool %q", name)
	}

	args, err := decodeArguments(input)
	if err != nil {
		return "", fmt.Errorf("invalid arguments for %q: %w", name, err)
	}

	result, err := p.client.CallTool(ctx, r.serverID, r.toolName, args)
	if err != nil {
		return "", fmt.Errorf("MCP tool execution failed: %w", err)
	}

	content := extractTextContent(result)
	if result.IsError {
		return "", fmt.Errorf("tool %q reported an error: %s", name, content)
	}
	return content, nil
}

// Close releases the underlying client (MCP transports, subprocesses).
func (p *Provider) Close() error {
	return p.client.Close()
}

// decodeArguments parses the model-supplied tool input. Empty input means a
// no-parameter tool; non-object JSON is wrapped as {"input": value}.
func decodeArguments(input json.RawMessage) (map[string]any, error) {
	trimmed := strings.TrimSpace(string(input))
	if trimmed == "" || trimmed == "null" {
		return map[string]any{}, nil
	}

	var raw any
	if err := json.Unmarshal(input, &raw); err != nil {
		return nil, err
	}
	if m, ok := raw.(map[string]any); ok {
		return m, nil
	}
	return map[string]any{"input": raw}, nil
}

// extractTextContent concatenates TextContent items from a tool result.
// Non-text content (images, embedded resources) is skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// schemaToMap converts a tool's input schema to the map form the agent loop
// sends to the model.
func schemaToMap(schema any) map[string]any {
	fallback := map[string]any{"type": "object"}
	if schema == nil {
		return fallback
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return fallback
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil || len(out) == 0 {
		return fallback
	}
	return out
}
