package masking

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/opencane/edged/pkg/config"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// compilePatterns expands a masking config into an ordered, deduplicated
// pattern list: groups first, then named patterns, then custom patterns.
// Invalid patterns are logged and skipped.
func compilePatterns(cfg *config.MaskingConfig) []*CompiledPattern {
	builtin := config.GetBuiltinConfig()
	seen := make(map[string]bool)
	var out []*CompiledPattern

	addBuiltin := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		pattern, ok := builtin.MaskingPatterns[name]
		if !ok {
			slog.Warn("Unknown masking pattern, skipping", "pattern", name)
			return
		}
		compiled, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			return
		}
		out = append(out, &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		})
	}

	// 1. Expand pattern_groups into individual pattern names
	for _, groupName := range cfg.PatternGroups {
		groupPatterns, ok := builtin.PatternGroups[groupName]
		if !ok {
			slog.Warn("Unknown masking pattern group, skipping", "group", groupName)
			continue
		}
		for _, name := range groupPatterns {
			addBuiltin(name)
		}
	}

	// 2. Add individually named patterns
	for _, name := range cfg.Patterns {
		addBuiltin(name)
	}

	// 3. Compile custom patterns, keyed custom:<index> to avoid collisions
	for i, pattern := range cfg.CustomPatterns {
		name := fmt.Sprintf("custom:%d", i)
		compiled, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			slog.Error("Failed to compile custom masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		out = append(out, &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		})
	}

	return out
}
