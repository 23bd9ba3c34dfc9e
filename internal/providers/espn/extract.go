package espn

import (
	"strconv"
	"strings"
	"time"
)

// Safe extraction helpers over ESPN's loosely typed scoreboard JSON.
// No league's schema is assumed to carry another league's fields, so every
// access degrades to a zero value instead of panicking.

// ExtractString safely extracts a string from a map
func ExtractString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

// ExtractInt safely extracts an int from a map
func ExtractInt(m map[string]interface{}, key string) int {
	if v, ok := m[key]; ok {
		return parseInt(v)
	}
	return 0
}

// ExtractBool safely extracts a bool from a map
func ExtractBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// ExtractMap safely extracts a map from a map
func ExtractMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key]; ok {
		if mapVal, ok := v.(map[string]interface{}); ok {
			return mapVal
		}
	}
	return map[string]interface{}{}
}

// ExtractArray safely extracts an array from a map
func ExtractArray(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key]; ok {
		if arrVal, ok := v.([]interface{}); ok {
			return arrVal
		}
	}
	return []interface{}{}
}

// parseInt parses an int from interface{}
func parseInt(v interface{}) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		i, _ := strconv.Atoi(val)
		return i
	case int:
		return val
	default:
		return 0
	}
}

// ParseScore parses a competitor score string. ESPN reports scores as
// strings and omits or blanks them pre-game, so absence is not an error.
func ParseScore(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// espnTimeLayouts covers both full RFC3339 timestamps and the shorter
// "2006-01-02T15:04Z" strings some ESPN endpoints return.
var espnTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// ParseEventTime parses an ESPN date string. The zero time is returned
// when the field is absent or unrecognized; start time is not essential.
func ParseEventTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range espnTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
