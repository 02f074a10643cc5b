package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through startup wiring.
type Config struct {
	configDir string // Configuration directory path (for reference)

	Hardware    *HardwareConfig
	Safety      *SafetyConfig
	Interaction *InteractionConfig
	Lifelog     *LifelogConfig
	DigitalTask *DigitalTaskConfig
	LLM         *LLMConfig
	Masking     *MaskingConfig
	Retention   *RetentionConfig

	// MCPServers is keyed by server ID, the first segment of exposed tool
	// names (mcp_<id>_<tool>).
	MCPServers map[string]*MCPServerConfig
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Adapter       string
	TTSMode       string
	VectorBackend string
	MCPServers    int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{MCPServers: len(c.MCPServers)}
	if c.Hardware != nil {
		s.Adapter = string(c.Hardware.Adapter)
		s.TTSMode = string(c.Hardware.TTSMode)
	}
	if c.Lifelog != nil {
		s.VectorBackend = string(c.Lifelog.VectorBackend)
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetMCPServer retrieves an MCP server configuration by ID.
func (c *Config) GetMCPServer(serverID string) (*MCPServerConfig, error) {
	server, ok := c.MCPServers[serverID]
	if !ok {
		return nil, NewValidationError("mcp_server", serverID, "", ErrMCPServerNotFound)
	}
	return server, nil
}
