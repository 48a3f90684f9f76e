package migration

import (
	"github.com/compozy/cfgmigrate/engine/core"
	"github.com/compozy/cfgmigrate/engine/options"
	"github.com/compozy/cfgmigrate/engine/presets"
	"github.com/compozy/cfgmigrate/pkg/logger"
)

// Migration rewrites the value found at one key of a configuration object.
type Migration interface {
	Run(value any, key string) error
}

// Factory builds a Migration around the shared per-key state.
type Factory func(b *Base) Migration

// Base carries the state every Migration works on: the untouched original
// object of the current pass and the object being built from it. Concrete
// migrations embed *Base.
type Base struct {
	name      string
	property  Property
	original  core.Config
	migrated  core.Config
	parentKey string
	env       *environment
}

type environment struct {
	catalogue   *options.Catalogue
	presets     *presets.Table
	presetRemap map[string]string
	log         logger.Logger
	migrate     func(cfg core.Config, parentKey string) (core.Config, bool, error)
}

// Name identifies the migration in errors and logs.
func (b *Base) Name() string {
	return b.name
}

// Get returns the migrated value at key when it holds one, else the
// original value. Missing keys yield nil.
func (b *Base) Get(key string) any {
	if v, ok := b.migrated[key]; ok && v != nil {
		return v
	}
	return b.original[key]
}

// SetSafely writes value only when neither the original nor the migrated
// object already holds a value at key.
func (b *Base) SetSafely(key string, value any) {
	if !core.IsNullish(b.original, key) || !core.IsNullish(b.migrated, key) {
		return
	}
	b.migrated[key] = value
}

// SetHard writes value unconditionally.
func (b *Base) SetHard(key string, value any) {
	b.migrated[key] = value
}

// Rewrite replaces the value of the bound property.
func (b *Base) Rewrite(value any) error {
	name, ok := b.property.Name()
	if !ok {
		return &ContractError{Migration: b.name, Reason: "rewrite requires an exact property name"}
	}
	b.migrated[name] = value
	return nil
}

// Delete removes the bound property from the migrated object.
func (b *Base) Delete() error {
	name, ok := b.property.Name()
	if !ok {
		return &ContractError{Migration: b.name, Reason: "delete requires an exact property name"}
	}
	delete(b.migrated, name)
	return nil
}

// DeleteKey removes an explicit key from the migrated object.
func (b *Base) DeleteKey(key string) {
	delete(b.migrated, key)
}

// ParentKey is the key enclosing the object being migrated, empty at the
// top level.
func (b *Base) ParentKey() string {
	return b.parentKey
}

// MigrateChild fully migrates a nested object and reports whether it changed.
func (b *Base) MigrateChild(cfg core.Config, parentKey string) (core.Config, bool, error) {
	return b.env.migrate(cfg, parentKey)
}

func (b *Base) catalogue() *options.Catalogue {
	return b.env.catalogue
}

func (b *Base) log() logger.Logger {
	return b.env.log
}

// appendPackageRules adds rules to the migrated packageRules list.
func (b *Base) appendPackageRules(rules ...any) {
	existing, _ := core.AsArray(b.migrated["packageRules"])
	combined := make([]any, 0, len(existing)+len(rules))
	combined = append(combined, existing...)
	combined = append(combined, rules...)
	b.migrated["packageRules"] = combined
}

// objectFor returns a shallow copy of the object at key, or a new one, so
// callers can add fields without touching either source object.
func (b *Base) objectFor(key string) core.Config {
	out := core.Config{}
	if obj, ok := core.AsObject(b.Get(key)); ok {
		for k, v := range obj {
			out[k] = v
		}
	}
	return out
}
