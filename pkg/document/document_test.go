package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compozy/cfgmigrate/engine/core"
)

func TestFormatFromPath(t *testing.T) {
	t.Run("Should detect formats from extensions", func(t *testing.T) {
		cases := map[string]Format{
			"renovate.json":          FormatJSON,
			"renovate.json5":         FormatJSONC,
			".github/renovate.jsonc": FormatJSONC,
			"config.yml":             FormatYAML,
			"config.yaml":            FormatYAML,
			"config.toml":            FormatTOML,
			".renovaterc":            FormatJSON,
		}
		for path, expected := range cases {
			got, err := FormatFromPath(path)
			require.NoError(t, err, path)
			assert.Equal(t, expected, got, path)
		}
	})

	t.Run("Should reject unknown extensions", func(t *testing.T) {
		_, err := FormatFromPath("config.ini")
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func TestDecode(t *testing.T) {
	expected := core.Config{
		"extends":  []any{"config:base"},
		"schedule": "every weekday",
		"nested":   map[string]any{"enabled": true},
	}

	t.Run("Should decode JSON", func(t *testing.T) {
		cfg, err := Decode([]byte(`{"extends":["config:base"],"schedule":"every weekday","nested":{"enabled":true}}`), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, expected, cfg)
	})

	t.Run("Should decode JSONC with comments and trailing commas", func(t *testing.T) {
		data := []byte(`{
  // presets
  "extends": ["config:base",],
  "schedule": "every weekday", /* block */
  "nested": {"enabled": true,},
}`)
		cfg, err := Decode(data, FormatJSONC)
		require.NoError(t, err)
		assert.Equal(t, expected, cfg)
	})

	t.Run("Should decode YAML", func(t *testing.T) {
		data := []byte("extends:\n  - config:base\nschedule: every weekday\nnested:\n  enabled: true\n")
		cfg, err := Decode(data, FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, expected, cfg)
	})

	t.Run("Should decode TOML", func(t *testing.T) {
		data := []byte("extends = [\"config:base\"]\nschedule = \"every weekday\"\n\n[nested]\nenabled = true\n")
		cfg, err := Decode(data, FormatTOML)
		require.NoError(t, err)
		assert.Equal(t, expected, cfg)
	})

	t.Run("Should return an empty object for empty input", func(t *testing.T) {
		cfg, err := Decode([]byte("  \n"), FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, core.Config{}, cfg)
	})

	t.Run("Should reject non-object roots", func(t *testing.T) {
		_, err := Decode([]byte(`["a"]`), FormatJSON)
		assert.ErrorIs(t, err, ErrNotObject)
	})
}

func TestEncode(t *testing.T) {
	cfg := core.Config{"extends": []any{"config:base"}, "semanticCommitScope": nil}

	t.Run("Should encode indented JSON", func(t *testing.T) {
		out, err := Encode(cfg, FormatJSON, 2)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"extends\": [\n    \"config:base\"\n  ],\n  \"semanticCommitScope\": null\n}\n", string(out))
	})

	t.Run("Should round trip YAML", func(t *testing.T) {
		out, err := Encode(cfg, FormatYAML, 2)
		require.NoError(t, err)
		back, err := Decode(out, FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, cfg, back)
	})

	t.Run("Should drop null entries for TOML", func(t *testing.T) {
		out, err := Encode(cfg, FormatTOML, 2)
		require.NoError(t, err)
		back, err := Decode(out, FormatTOML)
		require.NoError(t, err)
		assert.Equal(t, core.Config{"extends": []any{"config:base"}}, back)
	})

	t.Run("Should reject nulls inside TOML arrays", func(t *testing.T) {
		_, err := Encode(core.Config{"labels": []any{"a", nil}}, FormatTOML, 2)
		assert.ErrorContains(t, err, "/labels/1")
	})
}

func TestParseFormat(t *testing.T) {
	t.Run("Should accept aliases", func(t *testing.T) {
		f, err := ParseFormat("YML")
		require.NoError(t, err)
		assert.Equal(t, FormatYAML, f)
		f, err = ParseFormat("json5")
		require.NoError(t, err)
		assert.Equal(t, FormatJSONC, f)
		_, err = ParseFormat("")
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}
