package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolDomainChannelPolicy(t *testing.T) {
	m := NewToolDomainManager()
	m.RegisterTool("exec", ToolPolicy{
		Domain:          "server_tools",
		AllowedChannels: []string{"cli"},
	})
	m.RegisterTool("spawn", ToolPolicy{
		Domain:          "server_tools",
		AllowedChannels: []string{"cli"},
		MaxCallsPerTurn: 1,
	})

	ok, _ := m.CanExecute("exec", "cli", false, nil)
	assert.True(t, ok)

	ok, reason := m.CanExecute("exec", "hardware", false, nil)
	assert.False(t, ok)
	assert.Equal(t, "channel_not_allowed:hardware", reason)
}

func TestToolDomainMaxCallsPerTurn(t *testing.T) {
	m := NewToolDomainManager()
	m.RegisterTool("spawn", ToolPolicy{
		Domain:          "server_tools",
		AllowedChannels: []string{"cli"},
		MaxCallsPerTurn: 1,
	})

	counts := map[string]int{}
	ok, _ := m.CanExecute("spawn", "cli", false, counts)
	assert.True(t, ok)

	counts["spawn"] = 1
	ok, reason := m.CanExecute("spawn", "cli", false, counts)
	assert.False(t, ok)
	assert.Equal(t, "call_limit_exceeded", reason)
}

func TestToolDomainSystemContextBlocked(t *testing.T) {
	m := NewToolDomainManager()
	m.RegisterTool("spawn", ToolPolicy{
		Domain:          "server_tools",
		AllowedChannels: []string{"cli"},
		AllowSystem:     false,
	})

	ok, reason := m.CanExecute("spawn", "cli", true, nil)
	assert.False(t, ok)
	assert.Equal(t, "system_not_allowed", reason)
}

func TestToolDomainMCPDefaults(t *testing.T) {
	m := NewToolDomainManager()
	m.RegisterMCPTools([]string{"mcp_web_search", "not_mcp", ""})

	snapshot := m.PolicySnapshot()
	assert.Contains(t, snapshot, "mcp_web_search")
	assert.NotContains(t, snapshot, "not_mcp")
	assert.Equal(t, "mcp_tools", snapshot["mcp_web_search"].Domain)

	// Unregistered mcp_ names still get the mcp_tools default.
	ok, _ := m.CanExecute("mcp_fetch", "hardware", false, nil)
	assert.True(t, ok)
	ok, _ = m.CanExecute("mcp_fetch", "slack", false, nil)
	assert.False(t, ok)
}

func TestAllowedToolNamesIntersectsAllowlistAndChannel(t *testing.T) {
	m := NewToolDomainManager()
	m.RegisterTool("exec", ToolPolicy{AllowedChannels: []string{"cli"}})
	m.RegisterTool("mcp_web_search", ToolPolicy{
		Domain:          "mcp_tools",
		AllowedChannels: []string{"cli", "hardware"},
	})

	available := []string{"exec", "mcp_web_search", "unknown"}

	// Allowlist naming a channel-blocked tool still excludes it.
	allowed := m.AllowedToolNames(available, "hardware", false, []string{"exec", "mcp_web_search"})
	assert.False(t, allowed["exec"])
	assert.True(t, allowed["mcp_web_search"])

	// No allowlist: everything the channel permits.
	allowed = m.AllowedToolNames(available, "cli", false, nil)
	assert.True(t, allowed["exec"])
	assert.True(t, allowed["mcp_web_search"])
	assert.True(t, allowed["unknown"]) // server_tools default allows cli
}
