package helpers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/compozy/cfgmigrate/pkg/logger"
)

// IsStdin reports whether source names standard input.
func IsStdin(source string) bool {
	return source == "" || source == "-"
}

// ReadInput reads from stdin for "" or "-", otherwise from the named file.
func ReadInput(ctx context.Context, stdin io.Reader, source string) ([]byte, error) {
	log := logger.FromContext(ctx)
	if IsStdin(source) {
		log.Debug("reading from stdin")
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, NewCliError("STDIN_READ_ERROR", "Failed to read from stdin", err.Error())
		}
		return data, nil
	}
	log.Debug("reading from file", "file", source)
	return ReadFile(source)
}

// ReadFile reads a file with enhanced error handling
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, NewCliError("INVALID_PATH", "File path cannot be empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewCliError("FILE_NOT_FOUND", fmt.Sprintf("File not found: %s", path))
		}
		return nil, NewCliError("FILE_READ_ERROR", fmt.Sprintf("Failed to read file: %s", path), err.Error())
	}
	return data, nil
}

// WriteFile rewrites an existing file in place, keeping its permissions.
// The file is truncated rather than replaced so watchers keep tracking it.
func WriteFile(path string, data []byte) error {
	if path == "" {
		return NewCliError("INVALID_PATH", "File path cannot be empty")
	}
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return NewCliError("FILE_WRITE_ERROR", fmt.Sprintf("Failed to write file: %s", path), err.Error())
	}
	return nil
}
