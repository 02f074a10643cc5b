package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/config"
)

func newTestService(groups []string, patterns []string) *Service {
	return NewService(&config.MaskingConfig{
		Enabled:       true,
		PatternGroups: groups,
		Patterns:      patterns,
	})
}

func TestNewService(t *testing.T) {
	svc := newTestService([]string{"security"}, nil)

	assert.True(t, svc.enabled)
	assert.NotEmpty(t, svc.patterns, "Should have compiled patterns")
}

func TestNewService_NilConfig(t *testing.T) {
	svc := NewService(nil)

	content := "token: FAKEFAKEFAKEFAKEFAKE123"
	assert.Equal(t, content, svc.MaskText(content), "Content should pass through with nil config")
}

func TestNewService_Disabled(t *testing.T) {
	svc := NewService(&config.MaskingConfig{
		Enabled:       false,
		PatternGroups: []string{"security"},
	})

	content := `api_key: "sk-FAKE-NOT-REAL-KEY-123456"`
	assert.Equal(t, content, svc.MaskText(content), "Content should pass through when masking disabled")
}

func TestMaskText_EmptyContent(t *testing.T) {
	svc := newTestService([]string{"basic"}, nil)
	assert.Empty(t, svc.MaskText(""))
}

func TestMaskText_MasksAPIKey(t *testing.T) {
	svc := newTestService([]string{"basic"}, nil)
	content := `api_key: "sk-FAKE-NOT-REAL-KEY-123456"
debug: true`

	result := svc.MaskText(content)

	assert.NotContains(t, result, "sk-FAKE-NOT-REAL-KEY-123456", "API key should be masked")
	assert.Contains(t, result, "__MASKED_API_KEY__")
	assert.Contains(t, result, "debug: true", "Non-sensitive content should be preserved")
}

func TestMaskText_MasksMultiplePatterns(t *testing.T) {
	svc := newTestService([]string{"security"}, nil)
	content := `token: FAKEFAKEFAKEFAKEFAKE123
contact user@example.com for access`

	result := svc.MaskText(content)

	assert.NotContains(t, result, "FAKEFAKEFAKEFAKEFAKE123")
	assert.Contains(t, result, "__MASKED_TOKEN__")
	assert.NotContains(t, result, "user@example.com")
	assert.Contains(t, result, "__MASKED_EMAIL__")
}

func TestMaskText_MasksMobileNumber(t *testing.T) {
	svc := newTestService([]string{"pii"}, nil)

	result := svc.MaskText("call me back at 13812345678 about the order")

	assert.NotContains(t, result, "13812345678", "Mobile number should be masked")
	assert.Contains(t, result, "__MASKED_MOBILE__")
}

func TestMaskText_CustomPattern(t *testing.T) {
	svc := NewService(&config.MaskingConfig{
		Enabled: true,
		CustomPatterns: []config.MaskingPattern{
			{Pattern: `EDG-[0-9]{6}`, Replacement: "__MASKED_DEVICE_SERIAL__", Description: "Device serials"},
		},
	})

	result := svc.MaskText("paired with EDG-482910 just now")

	assert.NotContains(t, result, "EDG-482910")
	assert.Contains(t, result, "__MASKED_DEVICE_SERIAL__")
}

func TestMaskMap_NestedStructure(t *testing.T) {
	svc := newTestService([]string{"security"}, nil)
	payload := map[string]any{
		"transcript": "token: FAKEFAKEFAKEFAKEFAKE123",
		"confidence": 0.82,
		"meta": map[string]any{
			"contact": "user@example.com",
		},
		"frames": []any{"api_key: sk-FAKE-NOT-REAL-KEY-123456", 42},
	}

	masked := svc.MaskMap(payload)

	assert.Contains(t, masked["transcript"], "__MASKED_TOKEN__")
	assert.Equal(t, 0.82, masked["confidence"], "Non-string scalars should pass through")

	meta, ok := masked["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "__MASKED_EMAIL__", meta["contact"])

	frames, ok := masked["frames"].([]any)
	require.True(t, ok)
	assert.Contains(t, frames[0], "__MASKED_API_KEY__")
	assert.Equal(t, 42, frames[1])
}

func TestMaskMap_DoesNotMutateInput(t *testing.T) {
	svc := newTestService([]string{"security"}, nil)
	payload := map[string]any{
		"transcript": "token: FAKEFAKEFAKEFAKEFAKE123",
		"meta": map[string]any{
			"contact": "user@example.com",
		},
	}

	_ = svc.MaskMap(payload)

	assert.Equal(t, "token: FAKEFAKEFAKEFAKEFAKE123", payload["transcript"])
	assert.Equal(t, "user@example.com", payload["meta"].(map[string]any)["contact"])
}

func TestMaskMap_NilAndDisabled(t *testing.T) {
	svc := newTestService([]string{"security"}, nil)
	assert.Nil(t, svc.MaskMap(nil))

	disabled := NewService(&config.MaskingConfig{Enabled: false})
	payload := map[string]any{"transcript": "token: FAKEFAKEFAKEFAKEFAKE123"}
	assert.Equal(t, payload, disabled.MaskMap(payload))
}
