package core

// Argument helpers for tool implementations. Tool arguments arrive as
// loosely typed maps; these normalize the common shapes without panicking
// on foreign input.

// StringArg returns args[key] as a string, or fallback.
func StringArg(args map[string]any, key, fallback string) string {
	if s, ok := args[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// IntArg returns args[key] as an int, accepting the numeric types JSON
// decoding and literal maps produce.
func IntArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}

// MapArg returns args[key] as a nested map. A missing or mistyped value
// yields a nil map, which is safe to read from.
func MapArg(args map[string]any, key string) map[string]any {
	m, _ := args[key].(map[string]any)
	return m
}

// StringsArg returns args[key] as a string slice, accepting either
// []string or []any holding strings.
func StringsArg(args map[string]any, key string) []string {
	switch v := args[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// FloatsArg returns args[key] as a float slice, accepting []float64 or
// []any holding float64 or int values.
func FloatsArg(args map[string]any, key string) []float64 {
	switch v := args[key].(type) {
	case []float64:
		return v
	case []any:
		out := make([]float64, 0, len(v))
		for _, item := range v {
			switch n := item.(type) {
			case float64:
				out = append(out, n)
			case int:
				out = append(out, float64(n))
			}
		}
		return out
	}
	return nil
}
