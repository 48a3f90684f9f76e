package migration

import "github.com/compozy/cfgmigrate/engine/core"

type packagesMigration struct {
	*Base
}

func newPackages(b *Base) Migration {
	return &packagesMigration{Base: b}
}

// Run appends the legacy packages list onto packageRules.
func (m *packagesMigration) Run(value any, _ string) error {
	existing, _ := core.AsArray(m.Get("packageRules"))
	rules := make([]any, 0, len(existing)+1)
	rules = append(rules, existing...)
	if items, ok := core.AsArray(value); ok {
		rules = append(rules, items...)
	} else if value != nil {
		rules = append(rules, value)
	}
	m.SetHard("packageRules", rules)
	return nil
}

type packagePatternMigration struct {
	*Base
}

func newPackagePattern(b *Base) Migration {
	return &packagePatternMigration{Base: b}
}

func (m *packagePatternMigration) Run(value any, _ string) error {
	m.SetHard("packagePatterns", []any{value})
	return nil
}

type baseBranchMigration struct {
	*Base
}

func newBaseBranch(b *Base) Migration {
	return &baseBranchMigration{Base: b}
}

func (m *baseBranchMigration) Run(value any, _ string) error {
	if items, ok := core.AsArray(value); ok {
		m.SetHard("baseBranches", items)
		return nil
	}
	m.SetHard("baseBranches", []any{value})
	return nil
}
