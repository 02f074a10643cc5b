package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/config"
)

func TestCompilePatterns_GroupExpansion(t *testing.T) {
	patterns := compilePatterns(&config.MaskingConfig{
		Enabled:       true,
		PatternGroups: []string{"basic"},
	})

	require.Len(t, patterns, 2)
	assert.Equal(t, "api_key", patterns[0].Name)
	assert.Equal(t, "password", patterns[1].Name)
}

func TestCompilePatterns_DeduplicatesAcrossGroupsAndNames(t *testing.T) {
	patterns := compilePatterns(&config.MaskingConfig{
		Enabled:       true,
		PatternGroups: []string{"basic", "secrets"},
		Patterns:      []string{"password", "mobile_number"},
	})

	// basic contributes api_key and password, secrets adds token,
	// private_key and secret_key, the named password is a duplicate.
	require.Len(t, patterns, 6)
	names := make([]string, 0, len(patterns))
	for _, p := range patterns {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"api_key", "password", "token", "private_key", "secret_key", "mobile_number"}, names)
}

func TestCompilePatterns_UnknownGroupSkipped(t *testing.T) {
	patterns := compilePatterns(&config.MaskingConfig{
		Enabled:       true,
		PatternGroups: []string{"nonexistent_group"},
	})
	assert.Empty(t, patterns)
}

func TestCompilePatterns_UnknownPatternSkipped(t *testing.T) {
	patterns := compilePatterns(&config.MaskingConfig{
		Enabled:  true,
		Patterns: []string{"unobtainium", "token"},
	})

	require.Len(t, patterns, 1)
	assert.Equal(t, "token", patterns[0].Name)
}

func TestCompilePatterns_CustomPatterns(t *testing.T) {
	patterns := compilePatterns(&config.MaskingConfig{
		Enabled: true,
		CustomPatterns: []config.MaskingPattern{
			{Pattern: `EDG-[0-9]{6}`, Replacement: "__MASKED_DEVICE_SERIAL__", Description: "Device serials"},
		},
	})

	require.Len(t, patterns, 1)
	assert.Equal(t, "custom:0", patterns[0].Name)
	assert.Equal(t, "__MASKED_DEVICE_SERIAL__", patterns[0].Replacement)
}

func TestCompilePatterns_InvalidCustomPatternSkipped(t *testing.T) {
	patterns := compilePatterns(&config.MaskingConfig{
		Enabled: true,
		CustomPatterns: []config.MaskingPattern{
			{Pattern: `([`, Replacement: "__BROKEN__"},
			{Pattern: `EDG-[0-9]{6}`, Replacement: "__MASKED_DEVICE_SERIAL__"},
		},
	})

	// The broken pattern is skipped, the valid one keeps its index
	require.Len(t, patterns, 1)
	assert.Equal(t, "custom:1", patterns[0].Name)
}
