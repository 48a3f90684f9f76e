package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/compozy/cfgmigrate/engine/core"
)

func TestValueTypeMigration(t *testing.T) {
	t.Run("Should coerce values to their declared type", func(t *testing.T) {
		res := migrate(t, core.Config{
			"recreateClosed":      "true",
			"platformAutomerge":   "false",
			"lockFileMaintenance": true,
			"rangeStrategy":       []any{"pin"},
		})
		assert.Equal(t, core.Config{
			"recreateClosed":      true,
			"platformAutomerge":   false,
			"lockFileMaintenance": map[string]any{"enabled": true},
			"rangeStrategy":       "pin",
		}, res.Config)
	})

	t.Run("Should keep values that cannot be coerced", func(t *testing.T) {
		cfg := core.Config{
			"recreateClosed": "yes",
			"rangeStrategy":  []any{"pin", "bump"},
		}
		res := migrate(t, cfg)
		assert.False(t, res.Changed)
		assert.Equal(t, cfg, res.Config)
	})
}

func TestBranchMigrations(t *testing.T) {
	t.Run("Should split a templated branch prefix", func(t *testing.T) {
		res := migrate(t, core.Config{"branchPrefix": "renovate/{{parentDir}}-"})
		assert.Equal(t, core.Config{
			"branchPrefix":           "renovate/",
			"additionalBranchPrefix": "{{parentDir}}-",
		}, res.Config)
	})

	t.Run("Should keep a static branch prefix", func(t *testing.T) {
		res := migrate(t, core.Config{"branchPrefix": "deps/"})
		assert.False(t, res.Changed)
	})

	t.Run("Should rename the manager branch prefix variable", func(t *testing.T) {
		res := migrate(t, core.Config{"branchName": "{{branchPrefix}}{{managerBranchPrefix}}{{branchTopic}}"})
		assert.Equal(t, "{{branchPrefix}}{{additionalBranchPrefix}}{{branchTopic}}", res.Config["branchName"])
	})
}

func TestHostRulesMigration(t *testing.T) {
	t.Run("Should prefer endpoint over other host fields", func(t *testing.T) {
		res := migrate(t, core.Config{
			"hostRules": []any{
				map[string]any{"platform": "github", "endpoint": "https://e", "host": "h"},
			},
		})
		assert.Equal(t, []any{
			map[string]any{"hostType": "github", "matchHost": "https://e"},
		}, res.Config["hostRules"])
	})

	t.Run("Should keep an existing hostType and matchHost", func(t *testing.T) {
		res := migrate(t, core.Config{
			"hostRules": []any{
				map[string]any{"hostType": "npm", "platform": "github", "matchHost": "a", "hostName": "b"},
				map[string]any{"domainName": "example.com"},
			},
		})
		assert.Equal(t, []any{
			map[string]any{"hostType": "npm", "matchHost": "a"},
			map[string]any{"matchHost": "example.com"},
		}, res.Config["hostRules"])
	})
}

func TestPackagesMigrations(t *testing.T) {
	t.Run("Should append legacy packages onto packageRules", func(t *testing.T) {
		res := migrate(t, core.Config{
			"packageRules": []any{map[string]any{"matchPackageNames": []any{"a"}}},
			"packages":     []any{map[string]any{"matchPackageNames": []any{"b"}}},
		})
		assert.Equal(t, core.Config{
			"packageRules": []any{
				map[string]any{"matchPackageNames": []any{"a"}},
				map[string]any{"matchPackageNames": []any{"b"}},
			},
		}, res.Config)
	})

	t.Run("Should wrap packagePattern into packagePatterns", func(t *testing.T) {
		res := migrate(t, core.Config{"packagePattern": "^@types/"})
		assert.Equal(t, core.Config{"packagePatterns": []any{"^@types/"}}, res.Config)
	})

	t.Run("Should convert baseBranch into baseBranches", func(t *testing.T) {
		res := migrate(t, core.Config{"baseBranch": "main"})
		assert.Equal(t, core.Config{"baseBranches": []any{"main"}}, res.Config)
	})
}

func TestScheduleMigration(t *testing.T) {
	t.Run("Should split windows that wrap midnight", func(t *testing.T) {
		res := migrate(t, core.Config{"schedule": []any{"after 10pm and before 5am"}})
		assert.Equal(t, []any{"after 10pm", "before 5am"}, res.Config["schedule"])
		assert.LessOrEqual(t, res.Passes, 5)
	})

	t.Run("Should keep same day windows whole", func(t *testing.T) {
		res := migrate(t, core.Config{"schedule": "after 9am and before 5pm"})
		assert.False(t, res.Changed)
	})

	t.Run("Should canonicalize a scalar schedule", func(t *testing.T) {
		res := migrate(t, core.Config{"schedule": "on every weekday"})
		assert.Equal(t, "every weekday", res.Config["schedule"])
	})

	t.Run("Should expand a scalar that splits into an array", func(t *testing.T) {
		res := migrate(t, core.Config{"schedule": "after 11pm and before 6am every weekday"})
		assert.Equal(t, []any{"after 11pm every weekday", "before 6am every weekday"}, res.Config["schedule"])
	})

	t.Run("Should leave cron entries untouched", func(t *testing.T) {
		res := migrate(t, core.Config{"schedule": []any{"* 0-4 * * *", "every friday"}})
		assert.Equal(t, []any{"* 0-4 * * *", "on friday"}, res.Config["schedule"])
	})

	t.Run("Should singularize plural days one pass at a time", func(t *testing.T) {
		res := migrate(t, core.Config{"schedule": []any{"on mondays and fridays"}})
		assert.Equal(t, []any{"on monday and friday"}, res.Config["schedule"])
		assert.Equal(t, 3, res.Passes)
	})

	t.Run("Should ignore schedules with non string entries", func(t *testing.T) {
		cfg := core.Config{"schedule": []any{"every weekday", 3}}
		res := migrate(t, cfg)
		assert.Equal(t, cfg, res.Config)
	})
}

func TestMasterIssueMigration(t *testing.T) {
	t.Run("Should rename masterIssue options", func(t *testing.T) {
		res := migrate(t, core.Config{
			"masterIssue":         "true",
			"masterIssueApproval": false,
			"masterIssueTitle":    "Dependencies",
		})
		assert.Equal(t, core.Config{
			"dependencyDashboard":         true,
			"dependencyDashboardApproval": false,
			"dependencyDashboardTitle":    "Dependencies",
		}, res.Config)
	})
}

func TestLegacyMigrations(t *testing.T) {
	t.Run("Should rename lookupName capture groups", func(t *testing.T) {
		res := migrate(t, core.Config{"matchStrings": []any{"(?<lookupName>.*?)", 1, ""}})
		assert.Equal(t, []any{"(?<packageName>.*?)"}, res.Config["matchStrings"])
	})

	t.Run("Should replace ignoreNpmrcFile with an empty npmrc", func(t *testing.T) {
		res := migrate(t, core.Config{"ignoreNpmrcFile": true})
		assert.Equal(t, core.Config{"npmrc": ""}, res.Config)

		res = migrate(t, core.Config{"ignoreNpmrcFile": true, "npmrc": "registry=x"})
		assert.Equal(t, core.Config{"npmrc": "registry=x"}, res.Config)
	})

	t.Run("Should split semanticPrefix", func(t *testing.T) {
		res := migrate(t, core.Config{"semanticPrefix": "fix: "})
		assert.Equal(t, core.Config{"semanticCommitType": "fix", "semanticCommitScope": nil}, res.Config)
	})

	t.Run("Should move node.enabled onto travis", func(t *testing.T) {
		res := migrate(t, core.Config{"node": map[string]any{"enabled": true}})
		assert.Equal(t, core.Config{"travis": map[string]any{"enabled": true}}, res.Config)

		res = migrate(t, core.Config{
			"node":   map[string]any{"enabled": true, "supportPolicy": []any{"lts"}},
			"travis": map[string]any{"labels": []any{"ci"}},
		})
		assert.Equal(t, core.Config{
			"node":   map[string]any{"supportPolicy": []any{"lts"}},
			"travis": map[string]any{"enabled": true, "labels": []any{"ci"}},
		}, res.Config)
	})

	t.Run("Should set ignoreTests for null requiredStatusChecks", func(t *testing.T) {
		res := migrate(t, core.Config{"requiredStatusChecks": nil})
		assert.Equal(t, core.Config{"ignoreTests": true}, res.Config)

		res = migrate(t, core.Config{"requiredStatusChecks": []any{}})
		assert.Equal(t, core.Config{}, res.Config)

		res = migrate(t, core.Config{"requiredStatusChecks": nil, "ignoreTests": false})
		assert.Equal(t, core.Config{"ignoreTests": false}, res.Config)
	})

	t.Run("Should move platform automerge flags", func(t *testing.T) {
		res := migrate(t, core.Config{"gitLabAutomerge": true})
		assert.Equal(t, core.Config{"platformAutomerge": true}, res.Config)

		res = migrate(t, core.Config{"azureAutoComplete": false})
		assert.Equal(t, core.Config{"platformAutomerge": false}, res.Config)
	})

	t.Run("Should rename separateMajorReleases", func(t *testing.T) {
		res := migrate(t, core.Config{"separateMajorReleases": true, "separateMultipleMajor": true})
		assert.Equal(t, core.Config{"separateMajorMinor": true}, res.Config)
	})
}

func TestAutomergeMigration(t *testing.T) {
	t.Run("Should expand legacy automerge levels", func(t *testing.T) {
		res := migrate(t, core.Config{"automerge": "patch", "minor": map[string]any{"labels": []any{"m"}}})
		assert.Equal(t, core.Config{
			"patch": map[string]any{"automerge": true},
			"minor": map[string]any{"automerge": false, "labels": []any{"m"}},
			"major": map[string]any{"automerge": false},
		}, res.Config)
	})

	t.Run("Should map none and any onto booleans", func(t *testing.T) {
		assert.Equal(t, false, migrate(t, core.Config{"automerge": "none"}).Config["automerge"])
		assert.Equal(t, true, migrate(t, core.Config{"automerge": "any"}).Config["automerge"])
		assert.Equal(t, true, migrate(t, core.Config{"automerge": "true"}).Config["automerge"])
	})
}

func TestExtendsMigration(t *testing.T) {
	t.Run("Should normalize extends and rename presets", func(t *testing.T) {
		res := migrate(t, core.Config{"extends": ":base"})
		assert.Equal(t, []any{"config:base"}, res.Config["extends"])
	})

	t.Run("Should drop removed presets", func(t *testing.T) {
		res := migrate(t, core.Config{"extends": []any{":autodetectPinVersions", "config:base"}})
		assert.Equal(t, []any{"config:base"}, res.Config["extends"])
	})

	t.Run("Should apply the user preset remap", func(t *testing.T) {
		res := migrate(t,
			core.Config{"extends": []any{"local>org/base", "local>org/old", "config:base"}},
			WithPresetRemap(map[string]string{"local>org/base": "local>org/renovate", "local>org/old": ""}),
		)
		assert.Equal(t, []any{"local>org/renovate", "config:base"}, res.Config["extends"])
	})

	t.Run("Should add npm:unpublishSafe once", func(t *testing.T) {
		res := migrate(t, core.Config{"unpublishSafe": true, "extends": []any{"config:base"}})
		assert.Equal(t, core.Config{"extends": []any{"config:base", "npm:unpublishSafe"}}, res.Config)

		res = migrate(t, core.Config{"unpublishSafe": true, "extends": []any{":unpublishSafe"}})
		assert.Equal(t, core.Config{"extends": []any{"npm:unpublishSafe"}}, res.Config)

		res = migrate(t, core.Config{"unpublishSafe": false})
		assert.Equal(t, core.Config{}, res.Config)
	})
}

func TestStructuralMigrations(t *testing.T) {
	t.Run("Should turn dependency groups into packageRules", func(t *testing.T) {
		res := migrate(t, core.Config{
			"devDependencies": map[string]any{
				"automerge":    "true",
				"packageRules": []any{map[string]any{"labels": []any{"x"}}},
			},
		})
		assert.Equal(t, core.Config{
			"packageRules": []any{
				map[string]any{"automerge": true, "matchDepTypes": []any{"devDependencies"}},
			},
		}, res.Config)
	})

	t.Run("Should turn depTypes into packageRules", func(t *testing.T) {
		res := migrate(t, core.Config{
			"depTypes": []any{
				"ignored",
				map[string]any{"depType": "peerDependencies", "rangeStrategy": []any{"widen"}},
			},
		})
		assert.Equal(t, core.Config{
			"packageRules": []any{
				map[string]any{"rangeStrategy": "widen", "matchDepTypes": []any{"peerDependencies"}},
			},
		}, res.Config)
	})

	t.Run("Should scope packageFiles settings with paths", func(t *testing.T) {
		res := migrate(t, core.Config{
			"packageFiles": []any{
				"package.json",
				map[string]any{"packageFile": "backend/package.json"},
				map[string]any{
					"packageFile":  "web/package.json",
					"automerge":    true,
					"packageRules": []any{map[string]any{"labels": []any{"web"}}},
				},
			},
		})
		assert.Equal(t, core.Config{
			"includePaths": []any{"package.json", "backend/package.json", "web/package.json"},
			"packageRules": []any{
				map[string]any{"labels": []any{"web"}, "matchPaths": []any{"web/package.json"}},
				map[string]any{"automerge": true, "matchPaths": []any{"web/package.json"}},
			},
		}, res.Config)
	})

	t.Run("Should rewrite legacy template variables", func(t *testing.T) {
		res := migrate(t, core.Config{
			"commitMessageTopic":  "{{depNameShort}} from {{fromVersion}} to {{toVersion}}",
			"commitMessagePrefix": "{{semanticPrefix}}deps",
			"packageRules": []any{
				map[string]any{"commitMessageExtra": "v{{newValueMajor}}", "paths": []any{"{{baseDir}}"}},
			},
		})
		assert.Equal(t, "{{depName}} from {{currentVersion}} to {{newVersion}}", res.Config["commitMessageTopic"])
		assert.Equal(t, semanticPrefixTemplate+"deps", res.Config["commitMessagePrefix"])
		assert.Equal(t, []any{
			map[string]any{"commitMessageExtra": "v{{newMajor}}", "matchPaths": []any{"{{baseDir}}"}},
		}, res.Config["packageRules"])
	})
}
