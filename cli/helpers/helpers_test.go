package helpers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	t.Run("Should read stdin for dash", func(t *testing.T) {
		data, err := ReadInput(context.Background(), bytes.NewBufferString(`{"a":1}`), "-")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(data))
	})

	t.Run("Should read a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "renovate.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
		data, err := ReadInput(context.Background(), nil, path)
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("Should report missing files", func(t *testing.T) {
		_, err := ReadInput(context.Background(), nil, filepath.Join(t.TempDir(), "missing.json"))
		var cliErr *CliError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, "FILE_NOT_FOUND", cliErr.Code)
	})
}

func TestWriteFile(t *testing.T) {
	t.Run("Should keep existing permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "renovate.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o640))
		require.NoError(t, WriteFile(path, []byte(`{"a":1}`)))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(data))
	})

	t.Run("Should reject empty paths", func(t *testing.T) {
		assert.Error(t, WriteFile("", nil))
	})
}

func TestErrors(t *testing.T) {
	t.Run("Should match sentinels through wrapping", func(t *testing.T) {
		assert.ErrorIs(t, NewUsageError("bad"), ErrInvalidUsage)
		assert.True(t, IsSilent(fmt.Errorf("check: %w", ErrMigrationNeeded)))
		assert.False(t, IsSilent(errors.New("boom")))
	})

	t.Run("Should format CLI errors with details", func(t *testing.T) {
		err := NewCliError("FILE_READ_ERROR", "Failed", "denied")
		assert.Equal(t, "FILE_READ_ERROR: Failed (denied)", err.Error())
		assert.Equal(t, "INVALID_PATH: Failed", NewCliError("INVALID_PATH", "Failed").Error())
	})
}
