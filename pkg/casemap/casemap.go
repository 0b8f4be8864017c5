// Package casemap translates record keys between the snake_case convention used
// on the wire and the camelCase convention used in memory. Translation is total
// and lossless: converting A→B→A yields the original value, recursively through
// nested objects and arrays.
package casemap

import "strings"

func snakeToCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' && i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
			b.WriteByte(s[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func camelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
			b.WriteByte(c - 'A' + 'a')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// CamelKeys converts every key of m from snake_case to camelCase, descending
// into nested maps and slices. The input map is not modified.
func CamelKeys(m map[string]any) map[string]any {
	return mapKeys(m, snakeToCamel)
}

// SnakeKeys converts every key of m from camelCase to snake_case, descending
// into nested maps and slices. The input map is not modified.
func SnakeKeys(m map[string]any) map[string]any {
	return mapKeys(m, camelToSnake)
}

func mapKeys(m map[string]any, conv func(string) string) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[conv(k)] = mapValue(v, conv)
	}
	return out
}

func mapValue(v any, conv func(string) string) any {
	switch t := v.(type) {
	case map[string]any:
		return mapKeys(t, conv)
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = mapValue(item, conv)
		}
		return items
	default:
		return v
	}
}
