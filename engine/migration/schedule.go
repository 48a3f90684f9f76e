package migration

import (
	"github.com/compozy/cfgmigrate/engine/core"
	"github.com/compozy/cfgmigrate/engine/schedule"
)

type scheduleMigration struct {
	*Base
}

func newSchedule(b *Base) Migration {
	return &scheduleMigration{Base: b}
}

func (m *scheduleMigration) Run(value any, _ string) error {
	if !core.IsTruthy(value) {
		return nil
	}
	var entries []string
	scalar := false
	switch v := value.(type) {
	case string:
		entries = []string{v}
		scalar = true
	case []any:
		items, ok := core.AsStringArray(v)
		if !ok {
			return nil
		}
		entries = items
	default:
		return nil
	}

	// Only entries present on input are split; appended halves are final.
	for i, n := 0, len(entries); i < n; i++ {
		if first, second, ok := schedule.SplitWrappingRange(entries[i]); ok {
			entries[i] = first
			entries = append(entries, second)
		}
	}
	for i := range entries {
		entries[i] = schedule.Canonicalize(entries[i])
	}

	if scalar && len(entries) == 1 {
		return m.Rewrite(entries[0])
	}
	return m.Rewrite(core.StringsToArray(entries))
}
