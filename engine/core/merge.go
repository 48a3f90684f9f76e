package core

import (
	"dario.cat/mergo"
	"github.com/pkg/errors"
)

// MergeableSet tells MergeChildConfig which array options accumulate
// instead of being replaced.
type MergeableSet interface {
	Mergeable(name string) bool
}

// MergeChildConfig overlays child onto parent and returns a new Config.
//
// Child values win on conflict. Arrays of mergeable options are concatenated
// parent first, and objects are merged key by key. Neither input is
// modified.
func MergeChildConfig(set MergeableSet, parent, child Config) (Config, error) {
	result, err := Clone(parent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy parent config")
	}
	if child == nil {
		return result, nil
	}
	overlay, err := Clone(child)
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy child config")
	}
	for key, childValue := range overlay {
		if set == nil || !set.Mergeable(key) {
			continue
		}
		parentItems, parentOk := result[key].([]any)
		childItems, childOk := childValue.([]any)
		if parentOk && childOk {
			combined := make([]any, 0, len(parentItems)+len(childItems))
			combined = append(combined, parentItems...)
			combined = append(combined, childItems...)
			overlay[key] = combined
		}
	}
	if err := mergo.Merge(&result, overlay, mergo.WithOverride); err != nil {
		return nil, errors.Wrap(err, "failed to merge child config")
	}
	return result, nil
}
