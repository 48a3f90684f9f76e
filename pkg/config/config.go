package config

import (
	"context"
	"time"

	"github.com/compozy/cfgmigrate/engine/migration"
)

// EnvPrefix is the prefix shared by every environment variable the loader
// reads.
const EnvPrefix = "CFGMIGRATE_"

// Config holds the settings of the cfgmigrate tool. Values come from
// defaults, an optional YAML file, CFGMIGRATE_* environment variables and
// CLI flags, in increasing precedence.
type Config struct {
	Migration MigrationConfig `koanf:"migration" json:"migration" yaml:"migration" mapstructure:"migration"`
	Output    OutputConfig    `koanf:"output"    json:"output"    yaml:"output"    mapstructure:"output"`
	Log       LogConfig       `koanf:"log"       json:"log"       yaml:"log"       mapstructure:"log"`
}

// MigrationConfig tunes the migration engine.
type MigrationConfig struct {
	// MaxPasses caps the fixpoint loop.
	MaxPasses int `koanf:"max_passes" json:"max_passes" yaml:"max_passes" mapstructure:"max_passes" validate:"min=1,max=100" env:"CFGMIGRATE_MIGRATION_MAX_PASSES"`
	// MigratePresets maps preset ids found in extends onto replacements. An
	// empty replacement removes the preset.
	MigratePresets map[string]string `koanf:"migrate_presets" json:"migrate_presets" yaml:"migrate_presets" mapstructure:"migrate_presets"`
}

// OutputConfig controls how migrated documents are written.
type OutputConfig struct {
	// Format forces the output format. Empty keeps the input format.
	Format string `koanf:"format" json:"format" yaml:"format" mapstructure:"format" validate:"omitempty,document_format" env:"CFGMIGRATE_OUTPUT_FORMAT"`
	Indent int    `koanf:"indent" json:"indent" yaml:"indent" mapstructure:"indent" validate:"min=0,max=8"                 env:"CFGMIGRATE_OUTPUT_INDENT"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `koanf:"level" json:"level" yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error disabled" env:"CFGMIGRATE_LOG_LEVEL"`
	JSON  bool   `koanf:"json"  json:"json"  yaml:"json"  mapstructure:"json"                                                 env:"CFGMIGRATE_LOG_JSON"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Migration: MigrationConfig{
			MaxPasses:      migration.DefaultMaxPasses,
			MigratePresets: map[string]string{},
		},
		Output: OutputConfig{
			Indent: 2,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// MigratorOptions turns the migration settings into engine options.
func (c *Config) MigratorOptions() []migration.Option {
	opts := []migration.Option{migration.WithMaxPasses(c.Migration.MaxPasses)}
	if len(c.Migration.MigratePresets) > 0 {
		opts = append(opts, migration.WithPresetRemap(c.Migration.MigratePresets))
	}
	return opts
}

// SourceType identifies where a setting came from.
type SourceType string

const (
	SourceDefault SourceType = "default"
	SourceYAML    SourceType = "yaml"
	SourceEnv     SourceType = "env"
	SourceCLI     SourceType = "cli"
)

// Source provides raw settings to the loader.
type Source interface {
	Load() (map[string]any, error)
	Type() SourceType
}

// Metadata records the origin of each loaded key.
type Metadata struct {
	Sources  map[string]SourceType
	LoadedAt time.Time
}

// Service loads and validates settings.
type Service interface {
	Load(ctx context.Context, sources ...Source) (*Config, error)
	Validate(config *Config) error
	GetSource(key string) SourceType
}
