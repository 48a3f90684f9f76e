package migration

import (
	"maps"

	"github.com/compozy/cfgmigrate/engine/core"
)

var depTypeGroups = []string{
	"dependencies",
	"devDependencies",
	"engines",
	"optionalDependencies",
	"peerDependencies",
}

type depTypeGroupMigration struct {
	*Base
}

func newDepTypeGroup(b *Base) Migration {
	return &depTypeGroupMigration{Base: b}
}

// Run turns a dependency-type settings block into a packageRules entry
// matching that dependency type.
func (m *depTypeGroupMigration) Run(value any, key string) error {
	group, ok := core.AsObject(value)
	if !ok {
		return nil
	}
	rule, _, err := m.MigrateChild(group, key)
	if err != nil {
		return err
	}
	delete(rule, "packageRules")
	rule["depTypeList"] = []any{key}
	m.appendPackageRules(rule)
	return m.Delete()
}

type depTypesMigration struct {
	*Base
}

func newDepTypes(b *Base) Migration {
	return &depTypesMigration{Base: b}
}

func (m *depTypesMigration) Run(value any, key string) error {
	items, ok := core.AsArray(value)
	if !ok {
		return nil
	}
	for _, item := range items {
		entry, ok := core.AsObject(item)
		if !ok || !core.IsTruthy(entry["depType"]) {
			continue
		}
		rule, _, err := m.MigrateChild(entry, key)
		if err != nil {
			return err
		}
		depType := rule["depType"]
		delete(rule, "depType")
		rule["depTypeList"] = []any{depType}
		m.appendPackageRules(rule)
	}
	return m.Delete()
}

type packageFilesMigration struct {
	*Base
}

func newPackageFiles(b *Base) Migration {
	return &packageFilesMigration{Base: b}
}

// Run collects package file names into includePaths. Entries carrying extra
// settings become packageRules scoped to that file.
func (m *packageFilesMigration) Run(value any, key string) error {
	items, ok := core.AsArray(value)
	if !ok {
		return nil
	}
	includePaths := make([]any, 0, len(items))
	for _, item := range items {
		entry, ok := core.AsObject(item)
		if !ok {
			includePaths = append(includePaths, item)
			continue
		}
		name := entry["packageFile"]
		includePaths = append(includePaths, name)
		if len(entry) <= 1 {
			continue
		}
		payload, _, err := m.MigrateChild(entry, key)
		if err != nil {
			return err
		}
		if nested, ok := core.AsArray(payload["packageRules"]); ok {
			for _, sub := range nested {
				subRule, ok := core.AsObject(sub)
				if !ok {
					continue
				}
				scoped := maps.Clone(subRule)
				scoped["paths"] = []any{name}
				m.appendPackageRules(scoped)
			}
		}
		delete(payload, "packageFile")
		delete(payload, "packageRules")
		if len(payload) > 0 {
			payload["paths"] = []any{name}
			m.appendPackageRules(payload)
		}
	}
	m.SetHard("includePaths", includePaths)
	return m.Delete()
}
