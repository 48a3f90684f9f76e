package options

func builtinDefinitions() []Definition {
	defs := make([]Definition, 0, 96)
	defs = append(defs, repositoryDefinitions()...)
	defs = append(defs, branchDefinitions()...)
	defs = append(defs, dashboardDefinitions()...)
	defs = append(defs, updateDefinitions()...)
	defs = append(defs, managerDefinitions()...)
	return defs
}

func repositoryDefinitions() []Definition {
	return []Definition{
		{Name: "enabled", Type: TypeBoolean, Help: "Enable or disable the tool for this scope"},
		{Name: "extends", Type: TypeArray, Help: "Presets to extend"},
		{Name: "ignorePresets", Type: TypeArray, Help: "Presets to ignore"},
		{Name: "description", Type: TypeArray, Help: "Plain text description of the config"},
		{Name: "timezone", Type: TypeString, Help: "Time zone used by schedules"},
		{Name: "schedule", Type: TypeArray, Help: "Time windows in which branches may be created"},
		{Name: "updateNotScheduled", Type: TypeBoolean, Help: "Update existing branches outside the schedule"},
		{Name: "baseBranches", Type: TypeArray, Help: "Base branches to target"},
		{Name: "includePaths", Type: TypeArray, Help: "Package files to include"},
		{Name: "ignorePaths", Type: TypeArray, Help: "Paths to ignore"},
		{Name: "ignoreDeps", Type: TypeArray, Mergeable: true, Help: "Dependencies to ignore"},
		{Name: "labels", Type: TypeArray, Help: "Labels to set on pull requests"},
		{Name: "addLabels", Type: TypeArray, Mergeable: true, Help: "Labels added on top of labels"},
		{Name: "assignees", Type: TypeArray, Help: "Pull request assignees"},
		{Name: "reviewers", Type: TypeArray, Help: "Pull request reviewers"},
		{Name: "npmrc", Type: TypeString, Help: "Inline .npmrc content"},
		{Name: "platformAutomerge", Type: TypeBoolean, Help: "Use the platform's native automerge"},
		{Name: "ignoreTests", Type: TypeBoolean, Help: "Ignore status checks when automerging"},
		{Name: "recreateClosed", Type: TypeBoolean, Help: "Recreate closed pull requests"},
		{Name: "rebaseWhen", Type: TypeString, Help: "When to rebase branches"},
		{Name: "prCreation", Type: TypeString, Help: "When to create pull requests"},
		{Name: "prConcurrentLimit", Type: TypeInteger, Help: "Maximum open pull requests"},
		{Name: "prHourlyLimit", Type: TypeInteger, Help: "Pull requests created per hour"},
		{Name: "packageRules", Type: TypeArray, Mergeable: true, Help: "Scoped rule overrides"},
		{Name: "hostRules", Type: TypeArray, Mergeable: true, Help: "Per-host credentials and settings"},
		{Name: "postUpdateOptions", Type: TypeArray, Mergeable: true, Help: "Post-update actions"},
		{Name: "matchStrings", Type: TypeArray, Help: "Regex manager match expressions"},
		{Name: "migratePresets", Type: TypeObject, Help: "User preset remapping table"},
		{Name: "vulnerabilityAlerts", Type: TypeObject, Help: "Settings for vulnerability fixes"},
		{Name: "onboarding", Type: TypeBoolean, Help: "Require an onboarding pull request"},
		{Name: "requireConfig", Type: TypeBoolean, Help: "Require a config file to run"},
		{Name: "semanticCommitType", Type: TypeString, Help: "Semantic commit type"},
		{Name: "semanticCommitScope", Type: TypeString, Help: "Semantic commit scope"},
		{Name: "commitMessage", Type: TypeString, Help: "Commit message template"},
		{Name: "commitMessagePrefix", Type: TypeString, Help: "Commit message prefix"},
		{Name: "commitMessageTopic", Type: TypeString, Help: "Commit message topic template"},
		{Name: "prTitle", Type: TypeString, Help: "Pull request title template"},
		{Name: "group", Type: TypeObject, Help: "Group settings"},
		{Name: "groupName", Type: TypeString, Help: "Group name"},
		{Name: "groupSlug", Type: TypeString, Help: "Group slug"},
	}
}

func branchDefinitions() []Definition {
	return []Definition{
		{Name: "branchPrefix", Type: TypeString, Help: "Prefix for branch names"},
		{Name: "additionalBranchPrefix", Type: TypeString, Help: "Templated branch prefix appended after branchPrefix"},
		{Name: "branchName", Type: TypeString, Help: "Branch name template"},
		{Name: "branchTopic", Type: TypeString, Help: "Branch topic template"},
		{Name: "branchConcurrentLimit", Type: TypeInteger, Help: "Maximum concurrent branches"},
		{Name: "rangeStrategy", Type: TypeString, Help: "How to modify version ranges"},
		{Name: "separateMajorMinor", Type: TypeBoolean, Help: "Separate major updates from minor ones"},
		{Name: "separateMultipleMajor", Type: TypeBoolean, Help: "One branch per major version"},
		{Name: "separateMinorPatch", Type: TypeBoolean, Help: "Separate patch updates from minor ones"},
		{Name: "automerge", Type: TypeBoolean, Help: "Automerge updates"},
		{Name: "automergeType", Type: TypeString, Help: "How to automerge"},
		{Name: "pinDigests", Type: TypeBoolean, Help: "Pin digests of container images"},
	}
}

func dashboardDefinitions() []Definition {
	return []Definition{
		{Name: "dependencyDashboard", Type: TypeBoolean, Help: "Maintain a dependency dashboard issue"},
		{Name: "dependencyDashboardApproval", Type: TypeBoolean, Help: "Require dashboard approval"},
		{Name: "dependencyDashboardAutoclose", Type: TypeBoolean, Help: "Close the dashboard when empty"},
		{Name: "dependencyDashboardTitle", Type: TypeString, Help: "Dashboard issue title"},
		{Name: "dependencyDashboardHeader", Type: TypeString, Help: "Dashboard issue header"},
		{Name: "dependencyDashboardFooter", Type: TypeString, Help: "Dashboard issue footer"},
		{Name: "dependencyDashboardLabels", Type: TypeArray, Help: "Labels for the dashboard issue"},
	}
}

func updateDefinitions() []Definition {
	return []Definition{
		{Name: "major", Type: TypeObject, Help: "Settings for major updates"},
		{Name: "minor", Type: TypeObject, Help: "Settings for minor updates"},
		{Name: "patch", Type: TypeObject, Help: "Settings for patch updates"},
		{Name: "pin", Type: TypeObject, Help: "Settings for pin updates"},
		{Name: "digest", Type: TypeObject, Help: "Settings for digest updates"},
		{Name: "lockFileMaintenance", Type: TypeObject, Help: "Lock file maintenance settings"},
		{Name: "matchPackageNames", Type: TypeArray, Help: "Package names a rule matches"},
		{Name: "matchPackagePatterns", Type: TypeArray, Help: "Package name patterns a rule matches"},
		{Name: "matchManagers", Type: TypeArray, Help: "Managers a rule matches"},
		{Name: "matchDatasources", Type: TypeArray, Help: "Datasources a rule matches"},
		{Name: "matchDepTypes", Type: TypeArray, Help: "Dependency types a rule matches"},
		{Name: "matchPaths", Type: TypeArray, Help: "Package file paths a rule matches"},
		{Name: "matchLanguages", Type: TypeArray, Help: "Languages a rule matches"},
		{Name: "matchBaseBranches", Type: TypeArray, Help: "Base branches a rule matches"},
		{Name: "matchSourceUrlPrefixes", Type: TypeArray, Help: "Source URL prefixes a rule matches"},
		{Name: "matchUpdateTypes", Type: TypeArray, Help: "Update types a rule matches"},
		{Name: "excludePackageNames", Type: TypeArray, Help: "Package names a rule excludes"},
		{Name: "excludePackagePatterns", Type: TypeArray, Help: "Package name patterns a rule excludes"},
		{Name: "allowedVersions", Type: TypeString, Help: "Allowed version range"},
		{Name: "followTag", Type: TypeString, Help: "Registry tag to follow"},
	}
}

func managerDefinitions() []Definition {
	managers := []string{
		"npm", "gradle", "maven", "pip_requirements", "pipenv", "poetry", "docker",
		"dockerfile", "github-actions", "gomod", "cargo", "bundler", "composer",
		"nuget", "travis", "helm-values", "terraform", "node",
	}
	defs := make([]Definition, 0, len(managers))
	for _, name := range managers {
		defs = append(defs, Definition{Name: name, Type: TypeObject, Help: "Settings for the " + name + " manager"})
	}
	return defs
}
