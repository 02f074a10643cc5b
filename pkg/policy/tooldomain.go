package policy

import (
	"sort"
	"strings"
	"sync"
)

// ToolPolicy scopes one tool: its domain, the channels it may run on,
// whether system-initiated turns may call it, and an optional per-turn call
// budget (0 means unlimited).
type ToolPolicy struct {
	Domain          string   `json:"domain"`
	AllowedChannels []string `json:"allowed_channels"`
	AllowSystem     bool     `json:"allow_system"`
	MaxCallsPerTurn int      `json:"max_calls_per_turn"`
}

func (p ToolPolicy) channelAllowed(channel string) bool {
	if len(p.AllowedChannels) == 0 {
		return true
	}
	for _, c := range p.AllowedChannels {
		if c == channel {
			return true
		}
	}
	return false
}

// ToolDomainManager manages tool domains and per-turn execution
// constraints. Unregistered tools fall back to the server_tools domain, or
// mcp_tools when the name carries the mcp_ prefix.
type ToolDomainManager struct {
	mu       sync.RWMutex
	policies map[string]ToolPolicy
}

// NewToolDomainManager returns an empty manager.
func NewToolDomainManager() *ToolDomainManager {
	return &ToolDomainManager{policies: make(map[string]ToolPolicy)}
}

// RegisterTool records the policy for one tool name.
func (m *ToolDomainManager) RegisterTool(name string, policy ToolPolicy) {
	toolName := strings.TrimSpace(name)
	if toolName == "" {
		return
	}
	if policy.Domain == "" {
		policy.Domain = "server_tools"
	}
	if len(policy.AllowedChannels) == 0 {
		policy.AllowedChannels = []string{"cli"}
	}
	if policy.MaxCallsPerTurn < 0 {
		policy.MaxCallsPerTurn = 0
	}
	m.mu.Lock()
	m.policies[toolName] = policy
	m.mu.Unlock()
}

// RegisterMCPTools registers mcp_-prefixed tool names under the mcp_tools
// domain, skipping names that already have an explicit policy.
func (m *ToolDomainManager) RegisterMCPTools(toolNames []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, name := range toolNames {
		text := strings.TrimSpace(name)
		if text == "" || !strings.HasPrefix(text, "mcp_") {
			continue
		}
		if _, exists := m.policies[text]; exists {
			continue
		}
		m.policies[text] = mcpDefaultPolicy()
	}
}

// AllowedToolNames computes the effective tool set for one turn: available
// tools filtered by channel and system policy, intersected with the
// explicit allowlist when one is given (nil means no allowlist).
func (m *ToolDomainManager) AllowedToolNames(available []string, channel string, isSystem bool, explicitAllowlist []string) map[string]bool {
	var allowlist map[string]bool
	if explicitAllowlist != nil {
		allowlist = make(map[string]bool, len(explicitAllowlist))
		for _, name := range explicitAllowlist {
			if v := strings.TrimSpace(name); v != "" {
				allowlist[v] = true
			}
		}
	}

	allowed := make(map[string]bool)
	for _, name := range available {
		toolName := strings.TrimSpace(name)
		if toolName == "" {
			continue
		}
		if allowlist != nil && !allowlist[toolName] {
			continue
		}
		if ok, _ := m.CanExecute(toolName, channel, isSystem, nil); ok {
			allowed[toolName] = true
		}
	}
	return allowed
}

// CanExecute checks one tool call against its policy. callCounts holds the
// per-turn call tally; the second return names the rejection.
func (m *ToolDomainManager) CanExecute(name, channel string, isSystem bool, callCounts map[string]int) (bool, string) {
	policy := m.policyFor(name)
	if isSystem && !policy.AllowSystem {
		return false, "system_not_allowed"
	}
	if !policy.channelAllowed(channel) {
		return false, "channel_not_allowed:" + channel
	}
	if policy.MaxCallsPerTurn > 0 && callCounts[name] >= policy.MaxCallsPerTurn {
		return false, "call_limit_exceeded"
	}
	return true, ""
}

// PolicySnapshot returns a copy of all registered policies for status
// endpoints.
func (m *ToolDomainManager) PolicySnapshot() map[string]ToolPolicy {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]ToolPolicy, len(m.policies))
	for name, policy := range m.policies {
		channels := make([]string, len(policy.AllowedChannels))
		copy(channels, policy.AllowedChannels)
		sort.Strings(channels)
		policy.AllowedChannels = channels
		out[name] = policy
	}
	return out
}

func (m *ToolDomainManager) policyFor(name string) ToolPolicy {
	toolName := strings.TrimSpace(name)
	m.mu.RLock()
	existing, ok := m.policies[toolName]
	m.mu.RUnlock()
	if ok {
		return existing
	}
	if strings.HasPrefix(toolName, "mcp_") {
		return mcpDefaultPolicy()
	}
	return ToolPolicy{
		Domain:          "server_tools",
		AllowedChannels: []string{"cli"},
	}
}

func mcpDefaultPolicy() ToolPolicy {
	return ToolPolicy{
		Domain:          "mcp_tools",
		AllowedChannels: []string{"cli", "hardware"},
	}
}
