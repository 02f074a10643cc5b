package config

// LLMConfig holds the resolved agent-loop model settings. The API key is
// never stored in YAML; APIKeyEnv names the environment variable read at
// startup. VisionModel defaults to Model when unset.
type LLMConfig struct {
	APIKeyEnv     string  `yaml:"api_key_env"`
	Model         string  `yaml:"model"`
	VisionModel   string  `yaml:"vision_model"`
	MaxTokens     int     `yaml:"max_tokens"`
	Temperature   float64 `yaml:"temperature"`
	MaxIterations int     `yaml:"max_iterations"`
}

// DefaultLLMConfig returns the built-in model defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		APIKeyEnv:     "ANTHROPIC_API_KEY",
		Model:         "claude-sonnet-4-5",
		MaxTokens:     1024,
		MaxIterations: 8,
	}
}
