// SPDX-License-Identifier: MPL-2.0

package checks

import (
	"github.com/torwald-sergesson/runtests/internal/config"
)

// Registry is the fixed set of named checks. It resolves a Task to its
// Checker; lifecycle intents (install/uninstall) are not registry entries.
type Registry struct {
	checkers map[Task]Checker
}

// NewRegistry builds the registry from configuration. The coverage flag is
// the effective per-invocation value (config default possibly overridden
// by --no-coverage).
func NewRegistry(cfg *config.Config, runner Runner, coverage bool) *Registry {
	unit := &UnitChecker{
		Runner:        runner,
		Tool:          cfg.Tools.Unit,
		DefaultTarget: cfg.Targets.Unit,
		Coverage:      coverage,
		CoverPackage:  cfg.Targets.CoverPackage,
	}
	integration := &IntegrationChecker{
		Runner:        runner,
		Tool:          cfg.Tools.Integration,
		DefaultTarget: cfg.Targets.Integration,
	}
	style := &StyleChecker{
		Runner:        runner,
		Tool:          cfg.Tools.Style,
		DefaultTarget: cfg.Targets.Style,
	}
	lint := &LintChecker{
		Runner:        runner,
		Tool:          cfg.Tools.Lint,
		DefaultTarget: cfg.Targets.Lint,
	}
	convention := &ConventionChecker{
		Runner: runner,
		Tool:   cfg.Tools.Convention,
	}

	return &Registry{checkers: map[Task]Checker{
		TaskUnit:        unit,
		TaskIntegration: integration,
		TaskStyle:       style,
		TaskLint:        lint,
		TaskConvention:  convention,
		TaskStats: &StatsChecker{
			Runner:        runner,
			Tool:          cfg.Tools.Stats,
			DefaultTarget: cfg.Targets.Stats,
		},
		TaskClean: &CleanTask{},
		TaskSwitch: &SwitchReporter{
			Runner: runner,
			Python: cfg.Tools.Python,
		},
		// Fixed order, no short-circuit: every sub-check runs even when
		// an earlier one fails.
		TaskAll: &RunAll{Sequence: []Checker{unit, integration, style, lint, convention}},
	}}
}

// Lookup resolves a task to its checker.
func (r *Registry) Lookup(t Task) (Checker, bool) {
	c, ok := r.checkers[t]
	return c, ok
}
