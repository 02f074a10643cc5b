package protocol

import (
	"strconv"
	"strings"
)

// Payload accessors tolerate the loosely typed values that survive JSON
// decoding (float64 numbers, string booleans from constrained firmware).

// PayloadString returns the first non-empty string value among keys.
func PayloadString(p map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := p[key]; ok {
			if s := strings.TrimSpace(toString(v)); s != "" {
				return s
			}
		}
	}
	return ""
}

// PayloadInt returns the first parseable integer among keys, else def.
func PayloadInt(p map[string]any, def int64, keys ...string) int64 {
	for _, key := range keys {
		if v, ok := p[key]; ok {
			if n, ok := toInt(v); ok {
				return n
			}
		}
	}
	return def
}

// PayloadFloat returns the first parseable float among keys, else def.
func PayloadFloat(p map[string]any, def float64, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := p[key]; ok {
			if f, ok := toFloat(v); ok {
				return f
			}
		}
	}
	return def
}

// PayloadBool returns the first parseable boolean among keys, else def.
func PayloadBool(p map[string]any, def bool, keys ...string) bool {
	for _, key := range keys {
		if v, ok := p[key]; ok {
			if b, ok := toBool(v); ok {
				return b
			}
		}
	}
	return def
}

// PayloadMap returns the value under key when it is a string-keyed map.
func PayloadMap(p map[string]any, key string) map[string]any {
	if v, ok := p[key].(map[string]any); ok {
		return v
	}
	return nil
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func toInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func toBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "1", "true", "yes", "on":
			return true, true
		case "0", "false", "no", "off":
			return false, true
		}
	case float64:
		return t != 0, true
	}
	return false, false
}
