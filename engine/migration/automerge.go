package migration

// legacyAutomergeUpdates lists, per legacy level, the update types whose
// automerge is set; the first one is enabled and the rest disabled.
var legacyAutomergeUpdates = map[string][]string{
	"patch": {"patch", "minor", "major"},
	"minor": {"minor", "major"},
}

type automergeMigration struct {
	*Base
}

func newAutomerge(b *Base) Migration {
	return &automergeMigration{Base: b}
}

// Run expands the legacy string levels into per update type blocks.
func (m *automergeMigration) Run(value any, key string) error {
	level, _ := value.(string)
	switch level {
	case "none":
		return m.Rewrite(false)
	case "any":
		return m.Rewrite(true)
	}
	if updates, ok := legacyAutomergeUpdates[level]; ok {
		for i, update := range updates {
			m.setUpdateAutomerge(update, i == 0)
		}
		return m.Delete()
	}
	return newByValueType(m.Base).Run(value, key)
}

func (m *automergeMigration) setUpdateAutomerge(update string, enabled bool) {
	block := m.objectFor(update)
	block["automerge"] = enabled
	m.SetHard(update, block)
}

type platformAutomergeMigration struct {
	*Base
}

func newPlatformAutomerge(b *Base) Migration {
	return &platformAutomergeMigration{Base: b}
}

func (m *platformAutomergeMigration) Run(value any, _ string) error {
	if value != nil {
		m.SetHard("platformAutomerge", value)
	}
	return nil
}

type separateMajorReleasesMigration struct {
	*Base
}

func newSeparateMajorReleases(b *Base) Migration {
	return &separateMajorReleasesMigration{Base: b}
}

func (m *separateMajorReleasesMigration) Run(value any, _ string) error {
	m.DeleteKey("separateMultipleMajor")
	m.SetHard("separateMajorMinor", value)
	return nil
}
