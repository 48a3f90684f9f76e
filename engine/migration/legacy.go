package migration

import (
	"strings"

	"github.com/compozy/cfgmigrate/engine/core"
)

type matchStringsMigration struct {
	*Base
}

func newMatchStrings(b *Base) Migration {
	return &matchStringsMigration{Base: b}
}

func (m *matchStringsMigration) Run(value any, _ string) error {
	items, ok := core.AsArray(value)
	if !ok {
		return nil
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok || s == "" {
			continue
		}
		out = append(out, strings.ReplaceAll(s, "(?<lookupName>", "(?<packageName>"))
	}
	return m.Rewrite(out)
}

type ignoreNpmrcFileMigration struct {
	*Base
}

func newIgnoreNpmrcFile(b *Base) Migration {
	return &ignoreNpmrcFileMigration{Base: b}
}

func (m *ignoreNpmrcFileMigration) Run(_ any, _ string) error {
	if _, ok := m.Get("npmrc").(string); !ok {
		m.SetHard("npmrc", "")
	}
	return nil
}

type semanticPrefixMigration struct {
	*Base
}

func newSemanticPrefix(b *Base) Migration {
	return &semanticPrefixMigration{Base: b}
}

// Run splits "type(scope): " into semanticCommitType and semanticCommitScope.
func (m *semanticPrefixMigration) Run(value any, _ string) error {
	prefix, ok := value.(string)
	if !ok {
		return nil
	}
	head, _, _ := strings.Cut(prefix, ":")
	commitType, rest, hasScope := strings.Cut(head, "(")
	m.SetHard("semanticCommitType", commitType)
	if hasScope {
		scope, _, _ := strings.Cut(rest, ")")
		m.SetHard("semanticCommitScope", scope)
	} else {
		m.SetHard("semanticCommitScope", nil)
	}
	return m.Delete()
}

type nodeMigration struct {
	*Base
}

func newNode(b *Base) Migration {
	return &nodeMigration{Base: b}
}

// Run moves node.enabled=true onto travis.enabled.
func (m *nodeMigration) Run(value any, key string) error {
	settings, ok := core.AsObject(value)
	if !ok {
		return newByValueType(m.Base).Run(value, key)
	}
	if settings["enabled"] != true {
		return nil
	}
	travis := m.objectFor("travis")
	travis["enabled"] = true
	m.SetHard("travis", travis)

	rest := core.Config{}
	for k, v := range settings {
		if k != "enabled" {
			rest[k] = v
		}
	}
	if len(rest) == 0 {
		return m.Delete()
	}
	return m.Rewrite(rest)
}

type requiredStatusChecksMigration struct {
	*Base
}

func newRequiredStatusChecks(b *Base) Migration {
	return &requiredStatusChecksMigration{Base: b}
}

func (m *requiredStatusChecksMigration) Run(value any, _ string) error {
	if value == nil {
		m.SetSafely("ignoreTests", true)
	}
	return nil
}
