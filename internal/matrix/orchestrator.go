// SPDX-License-Identifier: MPL-2.0

package matrix

import (
	"context"

	"github.com/torwald-sergesson/runtests/internal/checks"
	"github.com/torwald-sergesson/runtests/internal/issue"
	"github.com/torwald-sergesson/runtests/internal/venv"

	"github.com/charmbracelet/log"
)

type (
	// Lifecycle is the slice of the environment manager the orchestrator
	// depends on. venv.Manager implements it; tests substitute a fake.
	Lifecycle interface {
		Snapshot() venv.Snapshot
		Restore(venv.Snapshot) error
		SwitchTo(id string) error
		Install(ctx context.Context, id string) error
		Uninstall(id string) error
	}

	// TaskSource resolves task names to checkers. checks.Registry
	// implements it.
	TaskSource interface {
		Lookup(t checks.Task) (checks.Checker, bool)
	}

	// Request is one orchestrator invocation: a single resolved task, an
	// environment selector, and the optional free-form argument that
	// overrides the task's default target.
	Request struct {
		Task     checks.Task
		Selector string
		FreeArg  string
	}

	// Orchestrator owns the run state for one invocation and drives the
	// lifecycle manager and task registry per environment.
	Orchestrator struct {
		Manager  Lifecycle
		Registry TaskSource
		Logger   *log.Logger
	}
)

// Run executes the request and returns the run summary. The returned error
// is non-nil only for configuration errors and lifecycle (install/uninstall)
// failures, which abort the run; check failures are data, folded into the
// summary's aggregate outcome.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Summary, error) {
	if req.Task.IsLifecycle() {
		return o.runLifecycle(ctx, req)
	}

	checker, ok := o.Registry.Lookup(req.Task)
	if !ok {
		return nil, issue.NewConfigurationError("resolve task", string(req.Task))
	}

	ids := ResolveSelector(req.Selector)
	summary := &Summary{Task: req.Task}

	snapshot := o.Manager.Snapshot()
	defer o.restore(snapshot)

	for _, id := range ids {
		if ctx.Err() != nil {
			summary.Interrupted = true
			break
		}

		outcome := o.runOne(ctx, id, checker, req.FreeArg)
		summary.Environments = append(summary.Environments, id)
		if !outcome.IsSuccess() {
			summary.Failures++
		}
		summary.Total = Aggregate(summary.Total, outcome)
	}

	if ctx.Err() != nil {
		summary.Interrupted = true
	}
	return summary, nil
}

// runOne activates one environment and runs the checker in it. Activation
// failure is recorded as a failing outcome for this iteration, not a
// process-wide abort, so the remaining environments still run.
func (o *Orchestrator) runOne(ctx context.Context, id string, checker checks.Checker, arg string) checks.Outcome {
	if err := o.Manager.SwitchTo(id); err != nil {
		if o.Logger != nil {
			o.Logger.Error("environment activation failed", "env", id, "err", err)
		}
		return checks.OutcomeFailure
	}

	if o.Logger != nil {
		o.Logger.Info("running check", "check", checker.Name(), "env", id)
	}

	res := checker.Run(ctx, arg)
	if res.Err != nil && o.Logger != nil {
		o.Logger.Error("check failed to run", "check", checker.Name(), "env", id, "err", res.Err)
	}
	return res.Outcome
}

// runLifecycle handles install/uninstall. These are single-shot idempotent
// operations: the first error aborts the whole run. The selector must name
// concrete identifiers, validated before any side effect.
func (o *Orchestrator) runLifecycle(ctx context.Context, req Request) (*Summary, error) {
	ids, err := LifecycleIdentifiers(req.Selector)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Task: req.Task}

	snapshot := o.Manager.Snapshot()
	defer o.restore(snapshot)

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			summary.Interrupted = true
			return summary, err
		}

		var opErr error
		switch req.Task {
		case checks.TaskInstall:
			opErr = o.Manager.Install(ctx, id)
		case checks.TaskUninstall:
			opErr = o.Manager.Uninstall(id)
		}
		if opErr != nil {
			summary.Failures++
			summary.Total = Aggregate(summary.Total, checks.OutcomeFailure)
			return summary, opErr
		}
		summary.Environments = append(summary.Environments, id)
	}

	return summary, nil
}

// restore puts the ambient activation state back. It runs on every exit
// path; a restore failure is logged rather than masking the run's result.
func (o *Orchestrator) restore(snapshot venv.Snapshot) {
	if err := o.Manager.Restore(snapshot); err != nil && o.Logger != nil {
		o.Logger.Warn("failed to restore ambient environment", "err", err)
	}
}
