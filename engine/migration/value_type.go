package migration

import "github.com/compozy/cfgmigrate/engine/options"

type byValueType struct {
	*Base
}

func newByValueType(b *Base) Migration {
	return &byValueType{Base: b}
}

func (m *byValueType) Run(value any, key string) error {
	declared, ok := m.catalogue().DeclaredType(key)
	if !ok {
		return nil
	}
	if coerced, ok := coerceValue(declared, value); ok {
		return m.Rewrite(coerced)
	}
	return nil
}

// coerceValue converts loosely typed legacy values to the declared type.
// It reports false when the value needs no change.
func coerceValue(declared options.Type, value any) (any, bool) {
	switch declared {
	case options.TypeBoolean:
		switch value {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	case options.TypeObject:
		if enabled, ok := value.(bool); ok {
			return map[string]any{"enabled": enabled}, true
		}
	case options.TypeString:
		if items, ok := value.([]any); ok && len(items) == 1 {
			if s, ok := items[0].(string); ok {
				return s, true
			}
		}
	}
	return nil, false
}
