package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return attached settings", func(t *testing.T) {
		cfg := Default()
		cfg.Migration.MaxPasses = 3
		ctx := ContextWithConfig(context.Background(), cfg)
		assert.Same(t, cfg, FromContext(ctx))
	})

	t.Run("Should fall back to defaults", func(t *testing.T) {
		assert.Equal(t, Default(), FromContext(context.Background()))
	})
}

func TestConfig_MigratorOptions(t *testing.T) {
	t.Run("Should include the preset remap only when set", func(t *testing.T) {
		cfg := Default()
		assert.Len(t, cfg.MigratorOptions(), 1)
		cfg.Migration.MigratePresets = map[string]string{"a": "b"}
		assert.Len(t, cfg.MigratorOptions(), 2)
	})
}
