// Package options declares the primitive type of every known configuration
// option. The migration engine uses it to coerce loosely typed legacy values
// and to decide which arrays accumulate when rules are merged.
package options

import "sync"

// Type is the declared primitive kind of an option.
type Type string

const (
	TypeBoolean Type = "boolean"
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Definition describes a single configuration option.
type Definition struct {
	Name      string
	Type      Type
	Mergeable bool
	Help      string
}

// Catalogue is a read-only index of option definitions.
type Catalogue struct {
	defs map[string]Definition
}

// NewCatalogue indexes defs by name. Later definitions replace earlier ones.
func NewCatalogue(defs ...Definition) *Catalogue {
	c := &Catalogue{defs: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		c.defs[def.Name] = def
	}
	return c
}

// DeclaredType returns the declared type of name, if the option is known.
func (c *Catalogue) DeclaredType(name string) (Type, bool) {
	if c == nil {
		return "", false
	}
	def, ok := c.defs[name]
	if !ok {
		return "", false
	}
	return def.Type, true
}

// Mergeable reports whether values of name accumulate when a child config is
// merged onto its parent.
func (c *Catalogue) Mergeable(name string) bool {
	if c == nil {
		return false
	}
	return c.defs[name].Mergeable
}

var defaultCatalogue = sync.OnceValue(func() *Catalogue {
	return NewCatalogue(builtinDefinitions()...)
})

// Default returns the built-in catalogue. It is built on first use and
// shared by every caller afterwards.
func Default() *Catalogue {
	return defaultCatalogue()
}
