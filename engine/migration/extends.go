package migration

import (
	"slices"

	"github.com/compozy/cfgmigrate/engine/core"
)

var unpublishSafePresets = []string{":unpublishSafe", "default:unpublishSafe", "npm:unpublishSafe"}

type extendsMigration struct {
	*Base
}

func newExtends(b *Base) Migration {
	return &extendsMigration{Base: b}
}

// Run normalizes extends to a list and rewrites removed or renamed presets.
func (m *extendsMigration) Run(value any, _ string) error {
	var list []any
	switch v := value.(type) {
	case string:
		list = []any{v}
	case []any:
		list = v
	default:
		return nil
	}
	out := make([]any, 0, len(list))
	for _, item := range list {
		id, ok := item.(string)
		if !ok {
			if core.IsTruthy(item) {
				out = append(out, item)
			}
			continue
		}
		if next := m.migratePreset(id); next != "" {
			out = append(out, next)
		}
	}
	return m.Rewrite(out)
}

func (m *extendsMigration) migratePreset(id string) string {
	next := id
	if replacement, removed, ok := m.env.presets.Lookup(id); ok {
		next = replacement
		if removed {
			next = ""
		}
	}
	if to, ok := m.env.presetRemap[id]; ok {
		next = to
	}
	return next
}

type unpublishSafeMigration struct {
	*Base
}

func newUnpublishSafe(b *Base) Migration {
	return &unpublishSafeMigration{Base: b}
}

func (m *unpublishSafeMigration) Run(value any, _ string) error {
	if value != true {
		return nil
	}
	var list []any
	switch v := m.Get("extends").(type) {
	case string:
		list = []any{v}
	case []any:
		list = slices.Clone(v)
	default:
		list = []any{}
	}
	present := slices.ContainsFunc(list, func(item any) bool {
		id, ok := item.(string)
		return ok && slices.Contains(unpublishSafePresets, id)
	})
	if !present {
		list = append(list, "npm:unpublishSafe")
	}
	m.SetHard("extends", list)
	return nil
}
