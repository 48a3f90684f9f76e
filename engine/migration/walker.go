package migration

import (
	"fmt"
	"slices"
	"strings"

	"github.com/compozy/cfgmigrate/engine/core"
)

const semanticPrefixTemplate = "{{#if semanticCommitType}}{{semanticCommitType}}" +
	"{{#if semanticCommitScope}}({{semanticCommitScope}}){{/if}}: {{/if}}"

type replacement struct {
	from string
	to   string
}

var templateRewrites = []replacement{
	{"{{baseDir}}", "{{packageFileDir}}"},
	{"{{lookupName}}", "{{packageName}}"},
	{"{{depNameShort}}", "{{depName}}"},
}

var templateVariableRenames = []replacement{
	{"fromVersion", "currentVersion"},
	{"newValueMajor", "newMajor"},
	{"newValueMinor", "newMinor"},
	{"newVersionMajor", "newMajor"},
	{"newVersionMinor", "newMinor"},
	{"toVersion", "newVersion"},
}

// pass is a single walk over one configuration object. original is never
// modified; every change lands in migrated.
type pass struct {
	env       *environment
	registry  *Registry
	original  core.Config
	migrated  core.Config
	parentKey string
}

func (p *pass) run() error {
	for _, key := range core.SortedKeys(p.original) {
		if err := p.migrateKey(key); err != nil {
			return fmt.Errorf("failed to migrate %q: %w", key, err)
		}
	}
	return p.normalize()
}

func (p *pass) migrateKey(key string) error {
	value := p.current(key)
	if d, ok := p.descriptorFor(key); ok {
		if d.Deprecated {
			delete(p.migrated, key)
		}
		base := &Base{
			name:      d.Name,
			property:  d.Property,
			original:  p.original,
			migrated:  p.migrated,
			parentKey: p.parentKey,
			env:       p.env,
		}
		if err := d.New(base).Run(value, key); err != nil {
			return err
		}
	}
	if err := p.recurse(key); err != nil {
		return err
	}
	p.rewriteTemplates(key)
	return nil
}

func (p *pass) current(key string) any {
	if v, ok := p.migrated[key]; ok && v != nil {
		return v
	}
	return p.original[key]
}

func (p *pass) descriptorFor(key string) (Descriptor, bool) {
	if d, ok := p.registry.Lookup(key); ok {
		return d, true
	}
	if _, ok := p.env.catalogue.DeclaredType(key); ok {
		return valueTypeDescriptor(key), true
	}
	return Descriptor{}, false
}

// recurse migrates whatever object or list of objects sits at key once its
// own migration ran.
func (p *pass) recurse(key string) error {
	switch v := p.migrated[key].(type) {
	case map[string]any:
		out, changed, err := p.env.migrate(v, key)
		if err != nil {
			return err
		}
		if changed {
			p.migrated[key] = out
		}
	case []any:
		var replaced []any
		for i, item := range v {
			obj, ok := core.AsObject(item)
			if !ok {
				continue
			}
			out, changed, err := p.env.migrate(obj, key)
			if err != nil {
				return err
			}
			if !changed {
				continue
			}
			if replaced == nil {
				replaced = slices.Clone(v)
			}
			replaced[i] = out
		}
		if replaced != nil {
			p.migrated[key] = replaced
		}
	}
	return nil
}

func (p *pass) rewriteTemplates(key string) {
	text, ok := p.migrated[key].(string)
	if !ok {
		return
	}
	next := rewriteTemplate(text)
	if next != text {
		p.migrated[key] = next
	}
}

func rewriteTemplate(text string) string {
	for _, r := range templateRewrites {
		text = strings.ReplaceAll(text, r.from, r.to)
	}
	if strings.HasPrefix(text, "{{semanticPrefix}}") {
		text = semanticPrefixTemplate + strings.TrimPrefix(text, "{{semanticPrefix}}")
	}
	for _, r := range templateVariableRenames {
		text = strings.ReplaceAll(text, r.from, r.to)
	}
	return text
}
