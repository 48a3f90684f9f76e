package migration

import (
	"maps"

	"github.com/compozy/cfgmigrate/engine/core"
)

// matchHostSources are checked in order; the first truthy one becomes
// matchHost.
var matchHostSources = []string{"endpoint", "host", "baseUrl", "hostName", "domainName"}

var legacyHostFields = []string{"platform", "endpoint", "host", "baseUrl", "hostName", "domainName"}

type hostRulesMigration struct {
	*Base
}

func newHostRules(b *Base) Migration {
	return &hostRulesMigration{Base: b}
}

func (m *hostRulesMigration) Run(value any, _ string) error {
	rules, ok := core.AsArray(value)
	if !ok {
		return nil
	}
	out := make([]any, 0, len(rules))
	for _, item := range rules {
		rule, ok := core.AsObject(item)
		if !ok {
			out = append(out, item)
			continue
		}
		out = append(out, migrateHostRule(rule))
	}
	return m.Rewrite(out)
}

func migrateHostRule(rule core.Config) core.Config {
	next := maps.Clone(rule)
	if core.IsNullish(next, "hostType") && !core.IsNullish(next, "platform") {
		next["hostType"] = next["platform"]
	}
	if core.IsNullish(next, "matchHost") {
		for _, field := range matchHostSources {
			if core.IsTruthy(next[field]) {
				next["matchHost"] = next[field]
				break
			}
		}
	}
	for _, field := range legacyHostFields {
		delete(next, field)
	}
	return next
}
