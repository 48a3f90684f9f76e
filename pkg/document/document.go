// Package document decodes configuration files into core.Config values and
// encodes migrated values back. JSON, JSONC/JSON5, YAML and TOML are
// supported.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/compozy/cfgmigrate/engine/core"
)

// Format is a document serialization format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

var (
	ErrUnknownFormat = errors.New("unknown document format")
	ErrNotObject     = errors.New("document root is not an object")
)

// ParseFormat resolves a format name. "yml" and "json5" are accepted as
// aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "jsonc", "json5":
		return FormatJSONC, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from the file extension. Dotfiles without
// an extension, such as .renovaterc, are JSON.
func FormatFromPath(path string) (Format, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return FormatJSON, nil
	}
	return ParseFormat(strings.TrimPrefix(ext, "."))
}

// Decode parses data into a configuration object. Empty input yields an
// empty object.
func Decode(data []byte, format Format) (core.Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return core.Config{}, nil
	}
	var raw any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatJSONC:
		standard, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSONC: %w", err)
		}
		if err := json.Unmarshal(standard, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode JSONC: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	case FormatTOML:
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to decode TOML: %w", err)
		}
		raw = table
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if raw == nil {
		return core.Config{}, nil
	}
	cfg, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return cfg, nil
}

// normalize converts decoder specific containers into map[string]any and
// []any so migrated documents compare equal regardless of their source.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalize(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

// Encode serializes cfg. JSONC output is plain JSON; comments from the
// input are not preserved.
func Encode(cfg core.Config, format Format, indent int) ([]byte, error) {
	if cfg == nil {
		cfg = core.Config{}
	}
	if indent < 0 {
		indent = 0
	}
	switch format {
	case FormatJSON, FormatJSONC:
		return encodeJSON(cfg, indent)
	case FormatYAML:
		return encodeYAML(cfg, indent)
	case FormatTOML:
		return encodeTOML(cfg, indent)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func encodeJSON(cfg core.Config, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeYAML(cfg core.Config, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(max(indent, 2))
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeTOML drops null object entries since TOML has no null. Nulls inside
// arrays cannot be dropped without shifting positions and are rejected.
func encodeTOML(cfg core.Config, indent int) ([]byte, error) {
	cleaned, err := dropNulls("", cfg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentSymbol(strings.Repeat(" ", indent))
	enc.SetIndentTables(indent > 0)
	if err := enc.Encode(cleaned); err != nil {
		return nil, fmt.Errorf("failed to encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

func dropNulls(path string, v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			if item == nil {
				continue
			}
			cleaned, err := dropNulls(path+"/"+k, item)
			if err != nil {
				return nil, err
			}
			out[k] = cleaned
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			p := fmt.Sprintf("%s/%d", path, i)
			if item == nil {
				return nil, fmt.Errorf("TOML does not support null values at %s", p)
			}
			cleaned, err := dropNulls(p, item)
			if err != nil {
				return nil, err
			}
			out[i] = cleaned
		}
		return out, nil
	}
	return v, nil
}
