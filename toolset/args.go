package toolset

import (
	"fmt"
	"time"
)

// stringArg extracts a required string argument.
func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%s must be a non-empty string, got %T", key, v)
	}
	return s, nil
}

// optString extracts an optional string, "" when absent.
func optString(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// optStringPtr returns a pointer only when the argument is present and a
// string, so patch payloads can tell "unset" from "set to empty".
func optStringPtr(args map[string]any, key string) *string {
	v, ok := args[key]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// floatArg extracts an optional number, 0 when absent. JSON numbers
// always decode as float64, but direct callers may pass ints.
func floatArg(args map[string]any, key string) (float64, error) {
	v, ok := args[key]
	if !ok {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", key, v)
	}
}

// optFloatPtr returns a pointer only when the argument is present.
func optFloatPtr(args map[string]any, key string) (*float64, error) {
	if _, ok := args[key]; !ok {
		return nil, nil
	}
	f, err := floatArg(args, key)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// boolArg extracts an optional bool, false when absent.
func boolArg(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

// optBoolPtr returns a pointer only when the argument is present.
func optBoolPtr(args map[string]any, key string) *bool {
	v, ok := args[key]
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	return &b
}

// stringSliceArg extracts an optional array of strings.
func stringSliceArg(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		// Direct callers may pass the typed slice.
		if typed, ok := v.([]string); ok {
			return typed, nil
		}
		return nil, fmt.Errorf("%s must be an array of strings, got %T", key, v)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a string, got %T", key, i, item)
		}
		out = append(out, s)
	}
	return out, nil
}

// timeArg extracts an optional RFC3339 timestamp.
func timeArg(args map[string]any, key string) (*time.Time, error) {
	s := optString(args, key)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("%s must be an RFC3339 timestamp: %v", key, err)
	}
	return &t, nil
}
