package core

import (
	"fmt"

	"github.com/mohae/deepcopy"
)

// Clone returns a deep copy of cfg. Nested objects and sequences of the copy
// are never shared with cfg.
//
// A nil input yields an empty, non-nil Config.
func Clone(cfg Config) (Config, error) {
	if cfg == nil {
		return Config{}, nil
	}
	copied, ok := deepcopy.Copy(cfg).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to copy configuration")
	}
	return copied, nil
}
