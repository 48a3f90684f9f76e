package migration

import (
	"maps"
	"slices"

	"github.com/compozy/cfgmigrate/engine/core"
	"github.com/pkg/errors"
)

var packageRuleRenames = []replacement{
	{"paths", "matchPaths"},
	{"languages", "matchLanguages"},
	{"baseBranchList", "matchBaseBranches"},
	{"managers", "matchManagers"},
	{"datasources", "matchDatasources"},
	{"depTypeList", "matchDepTypes"},
	{"packageNames", "matchPackageNames"},
	{"packagePatterns", "matchPackagePatterns"},
	{"sourceUrlPrefixes", "matchSourceUrlPrefixes"},
	{"updateTypes", "matchUpdateTypes"},
}

// normalize runs after every key of the pass was visited.
func (p *pass) normalize() error {
	p.renamePackageRuleFields()
	if err := p.flattenPackageRules(); err != nil {
		return err
	}
	return p.consolidateGradleLite()
}

func (p *pass) renamePackageRuleFields() {
	rules, ok := core.AsArray(p.migrated["packageRules"])
	if !ok || len(rules) == 0 {
		return
	}
	out := make([]any, len(rules))
	for i, item := range rules {
		rule, ok := core.AsObject(item)
		if !ok {
			out[i] = item
			continue
		}
		next := maps.Clone(rule)
		for _, r := range packageRuleRenames {
			if v, ok := next[r.from]; ok {
				next[r.to] = v
				delete(next, r.from)
			}
		}
		out[i] = next
	}
	p.migrated["packageRules"] = out
}

// flattenPackageRules lifts rules nested under a packageRules entry into
// siblings, each merged over its parent.
func (p *pass) flattenPackageRules() error {
	rules, ok := core.AsArray(p.migrated["packageRules"])
	if !ok || len(rules) == 0 {
		return nil
	}
	out := make([]any, 0, len(rules))
	for _, item := range rules {
		rule, ok := core.AsObject(item)
		if !ok {
			out = append(out, item)
			continue
		}
		nested, ok := core.AsArray(rule["packageRules"])
		if !ok {
			out = append(out, rule)
			continue
		}
		p.env.log.Debug("Flattening nested packageRules", "parentKey", p.parentKey, "count", len(nested))
		parent := maps.Clone(rule)
		delete(parent, "packageRules")
		for _, sub := range nested {
			child, ok := core.AsObject(sub)
			if !ok {
				continue
			}
			combined, err := core.MergeChildConfig(p.env.catalogue, parent, child)
			if err != nil {
				return errors.Wrap(err, "failed to flatten nested packageRules")
			}
			out = append(out, combined)
		}
	}
	p.migrated["packageRules"] = out
	return nil
}

// consolidateGradleLite folds the retired gradle-lite manager into gradle.
func (p *pass) consolidateGradleLite() error {
	if managers, ok := core.AsArray(p.migrated["matchManagers"]); ok && slices.Contains(managers, any("gradle-lite")) {
		next := make([]any, 0, len(managers))
		for _, m := range managers {
			if m != "gradle-lite" {
				next = append(next, m)
			}
		}
		if !slices.Contains(next, any("gradle")) {
			next = append(next, "gradle")
		}
		p.migrated["matchManagers"] = next
	}
	if block, ok := core.AsObject(p.migrated["gradle-lite"]); ok && len(block) > 0 {
		gradle, _ := core.AsObject(p.migrated["gradle"])
		merged, err := core.MergeChildConfig(p.env.catalogue, gradle, block)
		if err != nil {
			return errors.Wrap(err, "failed to merge gradle-lite settings")
		}
		p.migrated["gradle"] = merged
	}
	delete(p.migrated, "gradle-lite")
	return nil
}
