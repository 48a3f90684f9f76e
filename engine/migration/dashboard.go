package migration

import (
	"strings"

	"github.com/compozy/cfgmigrate/engine/options"
)

type masterIssueMigration struct {
	*Base
}

func newMasterIssue(b *Base) Migration {
	return &masterIssueMigration{Base: b}
}

// Run renames every masterIssue* key to its dependencyDashboard* successor.
// The property is a pattern, so keys are written and removed explicitly.
func (m *masterIssueMigration) Run(value any, key string) error {
	next := strings.Replace(key, "masterIssue", "dependencyDashboard", 1)
	m.SetHard(next, value)
	if declared, ok := m.catalogue().DeclaredType(next); ok && declared == options.TypeBoolean && value == "true" {
		m.SetHard(next, true)
	}
	m.DeleteKey(key)
	return nil
}
