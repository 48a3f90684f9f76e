package migration

import "regexp"

// Property binds a migration to a configuration key, either by exact name or
// by pattern for families of legacy keys.
type Property struct {
	name    string
	pattern *regexp.Regexp
}

// Exact binds to a single key.
func Exact(name string) Property {
	return Property{name: name}
}

// Pattern binds to every key matching expr. It panics if expr does not
// compile, like regexp.MustCompile.
func Pattern(expr string) Property {
	return Property{pattern: regexp.MustCompile(expr)}
}

// Name returns the exact key, if the property has one.
func (p Property) Name() (string, bool) {
	if p.pattern != nil || p.name == "" {
		return "", false
	}
	return p.name, true
}

// Matches reports whether key is covered by the property.
func (p Property) Matches(key string) bool {
	if p.pattern != nil {
		return p.pattern.MatchString(key)
	}
	return p.name == key
}

func (p Property) String() string {
	if p.pattern != nil {
		return p.pattern.String()
	}
	return p.name
}
