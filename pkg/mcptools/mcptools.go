// Package mcptools connects to MCP (Model Context Protocol) servers and
// exposes their tools to the agent loop under mcp_-prefixed names, so the
// tool domain manager can scope them by channel.
package mcptools

import (
	"fmt"
	"strings"
)

// Transport types for MCP server connections.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
	TransportSSE   = "sse"
)

// ToolNamePrefix marks tools sourced from MCP servers. The tool domain
// manager assigns mcp_-prefixed names the mcp_tools default policy.
const ToolNamePrefix = "mcp_"

// TransportSpec describes how to reach one MCP server.
type TransportSpec struct {
	Type        string            `yaml:"type"`
	Command     string            `yaml:"command,omitempty"`
	Args        []string          `yaml:"args,omitempty"`
	Env         map[string]string `yaml:"env,omitempty"`
	URL         string            `yaml:"url,omitempty"`
	BearerToken string            `yaml:"bearer_token,omitempty"`
	TimeoutSec  int               `yaml:"timeout,omitempty"`
	VerifySSL   *bool             `yaml:"verify_ssl,omitempty"`
}

// ServerSpec is one configured MCP server.
type ServerSpec struct {
	ID        string        `yaml:"id"`
	Transport TransportSpec `yaml:"transport"`
	// Tools restricts which tools the server exposes. Empty means all.
	Tools []string `yaml:"tools,omitempty"`
}

// ToolName builds the agent-facing name for a server tool:
// "mcp_<server>_<tool>" with the server segment sanitized to identifier
// characters (hyphens and dots become underscores).
func ToolName(serverID, tool string) string {
	return fmt.Sprintf("%s%s_%s", ToolNamePrefix, sanitizeSegment(serverID), tool)
}

func sanitizeSegment(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
