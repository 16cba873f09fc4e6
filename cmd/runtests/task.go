// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/torwald-sergesson/runtests/internal/checks"

// resolveTask picks exactly one task from the boolean flag surface. When
// several task flags are set at once, the first match in this fixed
// priority order wins: pep8, stats, integration, git, lint, all, clean,
// uninstall, install, switch; with no flag set the implicit task is unit.
func resolveTask(f taskFlags) checks.Task {
	switch {
	case f.pep8:
		return checks.TaskStyle
	case f.stats:
		return checks.TaskStats
	case f.integration:
		return checks.TaskIntegration
	case f.git:
		return checks.TaskConvention
	case f.lint:
		return checks.TaskLint
	case f.all:
		return checks.TaskAll
	case f.clean:
		return checks.TaskClean
	case f.uninstall:
		return checks.TaskUninstall
	case f.install:
		return checks.TaskInstall
	case f.switchEnv:
		return checks.TaskSwitch
	default:
		return checks.TaskUnit
	}
}
