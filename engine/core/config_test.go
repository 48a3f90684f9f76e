package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedKeys(t *testing.T) {
	t.Run("Should return keys in lexical order", func(t *testing.T) {
		cfg := Config{"schedule": nil, "automerge": true, "branchPrefix": "x"}
		assert.Equal(t, []string{"automerge", "branchPrefix", "schedule"}, SortedKeys(cfg))
	})
}

func TestIsTruthy(t *testing.T) {
	t.Run("Should treat empty and zero values as false", func(t *testing.T) {
		for _, v := range []any{nil, false, "", 0, int64(0), float64(0)} {
			assert.False(t, IsTruthy(v), "%#v", v)
		}
		for _, v := range []any{true, "x", 1, float64(2), []any{}, map[string]any{}} {
			assert.True(t, IsTruthy(v), "%#v", v)
		}
	})
}

func TestIsNullish(t *testing.T) {
	t.Run("Should report absent and null keys", func(t *testing.T) {
		cfg := Config{"a": nil, "b": false}
		assert.True(t, IsNullish(cfg, "a"))
		assert.True(t, IsNullish(cfg, "missing"))
		assert.False(t, IsNullish(cfg, "b"))
	})
}

func TestAsStringArray(t *testing.T) {
	t.Run("Should accept only sequences of strings", func(t *testing.T) {
		got, ok := AsStringArray([]any{"a", "b"})
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, got)

		_, ok = AsStringArray([]any{"a", 1})
		assert.False(t, ok)
		_, ok = AsStringArray("a")
		assert.False(t, ok)
	})

	t.Run("Should round trip through StringsToArray", func(t *testing.T) {
		assert.Equal(t, []any{"x", "y"}, StringsToArray([]string{"x", "y"}))
	})
}

func TestClone(t *testing.T) {
	t.Run("Should not share nested values with the source", func(t *testing.T) {
		src := Config{
			"packageRules": []any{map[string]any{"matchPackageNames": []any{"a"}}},
			"major":        map[string]any{"automerge": false},
		}
		copied, err := Clone(src)
		require.NoError(t, err)
		require.True(t, Equal(src, copied))

		copied["major"].(map[string]any)["automerge"] = true
		rule := copied["packageRules"].([]any)[0].(map[string]any)
		rule["matchPackageNames"] = []any{"b"}

		assert.Equal(t, false, src["major"].(map[string]any)["automerge"])
		assert.Equal(t, []any{"a"}, src["packageRules"].([]any)[0].(map[string]any)["matchPackageNames"])
	})

	t.Run("Should return an empty config for nil", func(t *testing.T) {
		copied, err := Clone(nil)
		require.NoError(t, err)
		assert.NotNil(t, copied)
		assert.Empty(t, copied)
	})
}

func TestEqual(t *testing.T) {
	t.Run("Should compare nested structures", func(t *testing.T) {
		a := Config{"schedule": []any{"before 5am"}, "x": map[string]any{"y": 1}}
		b := Config{"schedule": []any{"before 5am"}, "x": map[string]any{"y": 1}}
		assert.True(t, Equal(a, b))
		b["x"].(map[string]any)["y"] = 2
		assert.False(t, Equal(a, b))
	})
}
