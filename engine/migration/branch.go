package migration

import "strings"

type branchPrefixMigration struct {
	*Base
}

func newBranchPrefix(b *Base) Migration {
	return &branchPrefixMigration{Base: b}
}

// Run keeps the static part of the prefix and moves the templated tail into
// additionalBranchPrefix.
func (m *branchPrefixMigration) Run(value any, _ string) error {
	prefix, ok := value.(string)
	if !ok {
		return nil
	}
	idx := strings.Index(prefix, "{{")
	if idx < 0 {
		return nil
	}
	m.SetHard("additionalBranchPrefix", prefix[idx:])
	return m.Rewrite(prefix[:idx])
}

type branchNameMigration struct {
	*Base
}

func newBranchName(b *Base) Migration {
	return &branchNameMigration{Base: b}
}

func (m *branchNameMigration) Run(value any, _ string) error {
	name, ok := value.(string)
	if !ok || !strings.Contains(name, "{{managerBranchPrefix}}") {
		return nil
	}
	return m.Rewrite(strings.Replace(name, "{{managerBranchPrefix}}", "{{additionalBranchPrefix}}", 1))
}
