package core

import (
	"maps"
	"slices"
)

// Config is a decoded configuration document: string keys mapping onto
// strings, numbers, booleans, nil, []any or nested map[string]any values.
type Config = map[string]any

// AsObject returns v as a nested configuration object.
func AsObject(v any) (Config, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// AsArray returns v as a sequence.
func AsArray(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// AsStringArray returns the string elements of v when v is a sequence made
// only of strings.
func AsStringArray(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// StringsToArray converts a string slice into the []any form stored in
// configuration documents.
func StringsToArray(items []string) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// SortedKeys returns the keys of cfg in lexical order. Every pass walks keys
// in this order so repeated runs are reproducible.
func SortedKeys(cfg Config) []string {
	return slices.Sorted(maps.Keys(cfg))
}

// IsNullish reports whether the key is absent or explicitly null.
func IsNullish(cfg Config, key string) bool {
	v, ok := cfg[key]
	return !ok || v == nil
}

// IsTruthy mirrors the loose truthiness used by legacy documents: nil,
// false, empty strings and zero numbers are false.
func IsTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
