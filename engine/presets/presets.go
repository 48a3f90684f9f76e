// Package presets holds the tables of preset identifiers that were removed
// or renamed over time.
package presets

import "sync"

// Table maps legacy preset identifiers onto their replacement.
type Table struct {
	removed map[string]struct{}
	renamed map[string]string
}

// NewTable builds a table from a set of removed identifiers and a rename map.
func NewTable(removed []string, renamed map[string]string) *Table {
	t := &Table{
		removed: make(map[string]struct{}, len(removed)),
		renamed: make(map[string]string, len(renamed)),
	}
	for _, id := range removed {
		t.removed[id] = struct{}{}
	}
	for from, to := range renamed {
		t.renamed[from] = to
	}
	return t
}

// Lookup reports what happened to id. ok is false when id is current;
// removed is true when the preset no longer exists and must be dropped.
func (t *Table) Lookup(id string) (replacement string, removed bool, ok bool) {
	if t == nil {
		return "", false, false
	}
	if _, gone := t.removed[id]; gone {
		return "", true, true
	}
	if to, found := t.renamed[id]; found {
		return to, false, true
	}
	return "", false, false
}

var defaultTable = sync.OnceValue(func() *Table {
	return NewTable(removedPresets, renamedPresets)
})

// Default returns the built-in table.
func Default() *Table {
	return defaultTable()
}

var removedPresets = []string{
	":autodetectPinVersions",
	":autodetectRangeStrategy",
	"helpers:oddIsUnstable",
	"helpers:oddIsUnstablePackages",
}

var renamedPresets = map[string]string{
	":automergeBranchMergeCommit":        ":automergeBranch",
	":automergeBranchPush":               ":automergeBranch",
	":base":                              "config:base",
	":app":                               "config:js-app",
	":js-app":                            "config:js-app",
	":library":                           "config:js-lib",
	":masterIssue":                       ":dependencyDashboard",
	":masterIssueApproval":               ":dependencyDashboardApproval",
	":unpublishSafe":                     "npm:unpublishSafe",
	"config:application":                 "config:js-app",
	"config:library":                     "config:js-lib",
	"default:automergeBranchMergeCommit": ":automergeBranch",
	"default:automergeBranchPush":        ":automergeBranch",
	"default:base":                       "config:base",
	"default:app":                        "config:js-app",
	"default:js-app":                     "config:js-app",
	"default:library":                    "config:js-lib",
	"default:unpublishSafe":              "npm:unpublishSafe",
	"group:jsTestMonMajor":               "group:jsTestNonMajor",
}
