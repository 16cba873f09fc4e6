// SPDX-License-Identifier: MPL-2.0

package checks

import "context"

// Task names one selectable check. The task set is fixed; install,
// uninstall and switch are lifecycle intents handled by the orchestrator
// rather than registry entries.
const (
	TaskUnit        Task = "unit"
	TaskIntegration Task = "integration"
	TaskStyle       Task = "pep8"
	TaskLint        Task = "lint"
	TaskConvention  Task = "git"
	TaskStats       Task = "stats"
	TaskClean       Task = "clean"
	TaskAll         Task = "all"
	TaskSwitch      Task = "switch"
	TaskInstall     Task = "install"
	TaskUninstall   Task = "uninstall"
)

type (
	// Task identifies one selectable check or lifecycle intent.
	Task string

	// Result contains the result of one check invocation.
	Result struct {
		// Outcome is the check's outcome code.
		Outcome Outcome
		// Err contains any infrastructure error (tool missing, spawn
		// failure). A check that ran and reported nonzero is not an
		// error; it is data carried in Outcome.
		Err error
	}

	// Checker is one entry of the task registry: a named check executed
	// by invoking an external collaborator. The optional arg overrides
	// the check's default target (a path or identifier string).
	Checker interface {
		// Name returns the check name.
		Name() string
		// Run executes the check and reports its outcome.
		Run(ctx context.Context, arg string) *Result
	}
)

// IsLifecycle reports whether the task is an environment lifecycle intent
// rather than a registry check.
func (t Task) IsLifecycle() bool {
	return t == TaskInstall || t == TaskUninstall
}

// NewErrorResult creates a Result with the given outcome and error.
func NewErrorResult(o Outcome, err error) *Result {
	return &Result{Outcome: o, Err: err}
}

// NewOutcomeResult creates a Result with the given outcome and no error.
// Use this for nonzero outcomes that represent normal check failure rather
// than infrastructure problems.
func NewOutcomeResult(o Outcome) *Result {
	return &Result{Outcome: o}
}
