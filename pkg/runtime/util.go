package runtime

import (
	"fmt"
	"strings"
)

// shorten truncates text to max runes, marking the cut with an ellipsis.
func shorten(text string, max int) string {
	runes := []rune(text)
	if max <= 0 || len(runes) <= max {
		return text
	}
	keep := max - 3
	if keep < 1 {
		keep = 1
	}
	return strings.TrimRight(string(runes[:keep]), " \t\n") + "..."
}

func toString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// agentSessionKey scopes agent conversations per device session.
func agentSessionKey(deviceID, sessionID string) string {
	return "hardware:" + deviceID + ":" + sessionID
}

func copyMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
