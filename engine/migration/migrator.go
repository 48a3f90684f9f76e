package migration

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/compozy/cfgmigrate/engine/core"
	"github.com/compozy/cfgmigrate/engine/options"
	"github.com/compozy/cfgmigrate/engine/presets"
	"github.com/compozy/cfgmigrate/pkg/logger"
)

// DefaultMaxPasses bounds the fixpoint loop. Built-in migrations settle in
// two or three passes.
const DefaultMaxPasses = 10

// Result is the outcome of a migration run.
type Result struct {
	// Changed is true when any pass modified the document.
	Changed bool
	// Config is the migrated document. It never aliases the input.
	Config core.Config
	// Passes counts the passes run, including the final unchanged one.
	Passes int
}

// Migrator upgrades configuration documents to the current schema. A
// Migrator is immutable after New and safe for concurrent use.
type Migrator struct {
	registry    *Registry
	catalogue   *options.Catalogue
	presets     *presets.Table
	presetRemap map[string]string
	maxPasses   int
	log         logger.Logger
}

type Option func(*Migrator)

// WithRegistry replaces the built-in migrations.
func WithRegistry(r *Registry) Option {
	return func(m *Migrator) {
		m.registry = r
	}
}

// WithCatalogue sets the option catalogue used for type coercion and merges.
func WithCatalogue(c *options.Catalogue) Option {
	return func(m *Migrator) {
		m.catalogue = c
	}
}

// WithPresets sets the removed and renamed preset tables.
func WithPresets(t *presets.Table) Option {
	return func(m *Migrator) {
		m.presets = t
	}
}

// WithPresetRemap adds user supplied preset replacements applied to extends.
// An empty target removes the preset.
func WithPresetRemap(remap map[string]string) Option {
	return func(m *Migrator) {
		m.presetRemap = remap
	}
}

// WithMaxPasses caps the fixpoint loop. Values below one are ignored.
func WithMaxPasses(n int) Option {
	return func(m *Migrator) {
		if n > 0 {
			m.maxPasses = n
		}
	}
}

// WithLogger pins the logger instead of reading it from the context.
func WithLogger(l logger.Logger) Option {
	return func(m *Migrator) {
		m.log = l
	}
}

func New(opts ...Option) *Migrator {
	m := &Migrator{
		registry:  DefaultRegistry(),
		catalogue: options.Default(),
		presets:   presets.Default(),
		maxPasses: DefaultMaxPasses,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Migrate upgrades cfg. The input is never modified.
func (m *Migrator) Migrate(ctx context.Context, cfg core.Config) (*Result, error) {
	return m.MigrateNested(ctx, cfg, "")
}

// MigrateNested upgrades cfg as the value found under parentKey.
func (m *Migrator) MigrateNested(ctx context.Context, cfg core.Config, parentKey string) (*Result, error) {
	log := m.log
	if log == nil {
		log = logger.FromContext(ctx)
	}
	working, err := core.Clone(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to copy config: %w", err)
	}
	env := &environment{
		catalogue:   m.catalogue,
		presets:     m.presets,
		presetRemap: m.presetRemap,
		log:         log,
	}
	env.migrate = func(child core.Config, key string) (core.Config, bool, error) {
		out, changed, _, err := m.fixpoint(env, child, key)
		return out, changed, err
	}
	out, changed, passes, err := m.fixpoint(env, working, parentKey)
	if err != nil {
		log.Debug("Config migration failed", "error", err, "config", spew.Sdump(cfg))
		return nil, err
	}
	if changed {
		log.Debug("Config migrated", "parentKey", parentKey, "passes", passes)
	}
	return &Result{Changed: changed, Config: out, Passes: passes}, nil
}

// fixpoint runs passes until one leaves the object unchanged.
func (m *Migrator) fixpoint(env *environment, cfg core.Config, parentKey string) (core.Config, bool, int, error) {
	current := cfg
	changed := false
	for n := 1; n <= m.maxPasses; n++ {
		next, err := m.pass(env, current, parentKey)
		if err != nil {
			return nil, false, n, err
		}
		if core.Equal(current, next) {
			return next, changed, n, nil
		}
		changed = true
		current = next
	}
	return nil, false, m.maxPasses, fmt.Errorf("%w after %d passes (parent key %q)", ErrNoFixpoint, m.maxPasses, parentKey)
}

func (m *Migrator) pass(env *environment, original core.Config, parentKey string) (core.Config, error) {
	migrated, err := core.Clone(original)
	if err != nil {
		return nil, fmt.Errorf("failed to copy config: %w", err)
	}
	p := &pass{
		env:       env,
		registry:  m.registry,
		original:  original,
		migrated:  migrated,
		parentKey: parentKey,
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return migrated, nil
}
