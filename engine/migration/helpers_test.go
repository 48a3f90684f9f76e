package migration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compozy/cfgmigrate/engine/core"
	"github.com/compozy/cfgmigrate/pkg/logger"
)

func newTestMigrator(opts ...Option) *Migrator {
	return New(append([]Option{WithLogger(logger.NewForTests())}, opts...)...)
}

func migrate(t *testing.T, cfg core.Config, opts ...Option) *Result {
	t.Helper()
	res, err := newTestMigrator(opts...).Migrate(t.Context(), cfg)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}
