package migration

// Descriptor registers a Migration for a property. Deprecated descriptors
// have their key removed from the migrated object before the unit runs, so a
// unit that does nothing effectively drops the key.
type Descriptor struct {
	Name       string
	Property   Property
	Deprecated bool
	New        Factory
}

// Registry selects at most one Descriptor per key: exact names win over
// patterns, and patterns are tried in registration order.
type Registry struct {
	exact    map[string]Descriptor
	patterns []Descriptor
}

func NewRegistry(descriptors ...Descriptor) *Registry {
	r := &Registry{exact: make(map[string]Descriptor)}
	for _, d := range descriptors {
		r.Register(d)
	}
	return r
}

// Register adds d, replacing an earlier descriptor with the same exact name.
func (r *Registry) Register(d Descriptor) {
	if name, ok := d.Property.Name(); ok {
		r.exact[name] = d
		return
	}
	r.patterns = append(r.patterns, d)
}

// Lookup returns the descriptor responsible for key.
func (r *Registry) Lookup(key string) (Descriptor, bool) {
	if r == nil {
		return Descriptor{}, false
	}
	if d, ok := r.exact[key]; ok {
		return d, true
	}
	for _, d := range r.patterns {
		if d.Property.Matches(key) {
			return d, true
		}
	}
	return Descriptor{}, false
}

func exact(name string, deprecated bool, f Factory) Descriptor {
	return Descriptor{Name: name, Property: Exact(name), Deprecated: deprecated, New: f}
}

// DefaultRegistry returns the built-in migrations.
func DefaultRegistry() *Registry {
	r := NewRegistry(
		exact("automerge", false, newAutomerge),
		exact("azureAutoComplete", true, newPlatformAutomerge),
		exact("baseBranch", true, newBaseBranch),
		exact("branchName", false, newBranchName),
		exact("branchPrefix", false, newBranchPrefix),
		exact("depTypes", false, newDepTypes),
		exact("extends", false, newExtends),
		exact("gitLabAutomerge", true, newPlatformAutomerge),
		exact("hostRules", false, newHostRules),
		exact("ignoreNpmrcFile", true, newIgnoreNpmrcFile),
		exact("matchStrings", false, newMatchStrings),
		exact("node", false, newNode),
		exact("packageFiles", false, newPackageFiles),
		exact("packagePattern", true, newPackagePattern),
		exact("packages", true, newPackages),
		exact("requiredStatusChecks", true, newRequiredStatusChecks),
		exact("schedule", false, newSchedule),
		exact("semanticPrefix", false, newSemanticPrefix),
		exact("separateMajorReleases", true, newSeparateMajorReleases),
		exact("unpublishSafe", true, newUnpublishSafe),
		Descriptor{Name: "masterIssue", Property: Pattern(`^masterIssue`), New: newMasterIssue},
	)
	for _, group := range depTypeGroups {
		r.Register(exact(group, false, newDepTypeGroup))
	}
	return r
}

// valueTypeDescriptor is the lowest dispatch tier, used for keys the option
// catalogue declares a type for but no other migration claims.
func valueTypeDescriptor(key string) Descriptor {
	return Descriptor{Name: "valueType", Property: Exact(key), New: newByValueType}
}
