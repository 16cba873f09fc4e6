// SPDX-License-Identifier: MPL-2.0

package matrix

import (
	"context"
	"errors"
	"testing"

	"github.com/torwald-sergesson/runtests/internal/checks"
	"github.com/torwald-sergesson/runtests/internal/issue"
	"github.com/torwald-sergesson/runtests/internal/venv"
)

type (
	// fakeLifecycle records lifecycle calls and can fail selectively.
	fakeLifecycle struct {
		switched    []string
		failSwitch  map[string]bool
		installs    []string
		uninstalls  []string
		installErr  error
		snapshots   int
		restores    int
		lastrestore venv.Snapshot
	}

	// scriptedChecker returns pre-scripted outcomes per invocation.
	scriptedChecker struct {
		name     string
		outcomes []checks.Outcome
		calls    int
		onRun    func(call int)
	}

	// fakeRegistry resolves every task to the same checker.
	fakeRegistry struct {
		checker checks.Checker
	}
)

func (f *fakeLifecycle) Snapshot() venv.Snapshot {
	f.snapshots++
	return venv.Snapshot{Path: "/ambient/bin"}
}

func (f *fakeLifecycle) Restore(s venv.Snapshot) error {
	f.restores++
	f.lastrestore = s
	return nil
}

func (f *fakeLifecycle) SwitchTo(id string) error {
	f.switched = append(f.switched, id)
	if f.failSwitch[id] {
		return issue.WrapWithContext(issue.ErrEnvNotFound, "activate environment", id)
	}
	return nil
}

func (f *fakeLifecycle) Install(_ context.Context, id string) error {
	if f.installErr != nil {
		return f.installErr
	}
	f.installs = append(f.installs, id)
	return nil
}

func (f *fakeLifecycle) Uninstall(id string) error {
	f.uninstalls = append(f.uninstalls, id)
	return nil
}

func (c *scriptedChecker) Name() string { return c.name }

func (c *scriptedChecker) Run(_ context.Context, _ string) *checks.Result {
	call := c.calls
	c.calls++
	if c.onRun != nil {
		c.onRun(call)
	}
	if call < len(c.outcomes) {
		return checks.NewOutcomeResult(c.outcomes[call])
	}
	return checks.NewOutcomeResult(0)
}

func (r *fakeRegistry) Lookup(_ checks.Task) (checks.Checker, bool) {
	if r.checker == nil {
		return nil, false
	}
	return r.checker, true
}

func newTestOrchestrator(lc *fakeLifecycle, checker checks.Checker) *Orchestrator {
	return &Orchestrator{
		Manager:  lc,
		Registry: &fakeRegistry{checker: checker},
	}
}

func TestRunAggregatesPerEnvironmentOutcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		outcomes []checks.Outcome
		want     checks.Outcome
		failures int
	}{
		{name: "all green", outcomes: []checks.Outcome{0, 0, 0}, want: 0, failures: 0},
		{name: "single failure", outcomes: []checks.Outcome{0, 1, 0}, want: 1, failures: 1},
		{name: "failures sum", outcomes: []checks.Outcome{2, 3}, want: 5, failures: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lc := &fakeLifecycle{}
			checker := &scriptedChecker{name: "unit", outcomes: tt.outcomes}
			o := newTestOrchestrator(lc, checker)

			selector := "26,34"
			if len(tt.outcomes) == 3 {
				selector = "26,27,34"
			}

			summary, err := o.Run(context.Background(), Request{Task: checks.TaskUnit, Selector: selector})
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if summary.Total != tt.want {
				t.Errorf("aggregate = %d, want %d", summary.Total, tt.want)
			}
			if summary.Failures != tt.failures {
				t.Errorf("failures = %d, want %d", summary.Failures, tt.failures)
			}
			if lc.restores != 1 {
				t.Errorf("restore ran %d times, want exactly 1", lc.restores)
			}
			if lc.lastrestore != (venv.Snapshot{Path: "/ambient/bin"}) {
				t.Errorf("restored snapshot = %+v, want the one captured before the loop", lc.lastrestore)
			}
		})
	}
}

func TestRunContinuesAfterActivationFailure(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{failSwitch: map[string]bool{"27": true}}
	checker := &scriptedChecker{name: "unit"}
	o := newTestOrchestrator(lc, checker)

	summary, err := o.Run(context.Background(), Request{Task: checks.TaskUnit, Selector: "26,27,34"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// 27 fails to activate and contributes a failing outcome; 26 and 34
	// still run their checks.
	if checker.calls != 2 {
		t.Errorf("checker ran %d times, want 2", checker.calls)
	}
	if summary.Total != checks.OutcomeFailure {
		t.Errorf("aggregate = %d, want %d", summary.Total, checks.OutcomeFailure)
	}
	if summary.Failures != 1 {
		t.Errorf("failures = %d, want 1", summary.Failures)
	}
	want := []string{"26", "27", "34"}
	if len(lc.switched) != len(want) {
		t.Fatalf("switched envs = %v, want %v", lc.switched, want)
	}
}

func TestRunInterruptStopsLoopAndRestores(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	lc := &fakeLifecycle{}
	// A completes with 0; the interrupt arrives while B runs and B
	// reports a failure; C must never start.
	checker := &scriptedChecker{
		name:     "unit",
		outcomes: []checks.Outcome{0, 1},
		onRun: func(call int) {
			if call == 1 {
				cancel()
			}
		},
	}
	o := newTestOrchestrator(lc, checker)

	summary, err := o.Run(ctx, Request{Task: checks.TaskUnit, Selector: "26,27,34"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if checker.calls != 2 {
		t.Errorf("checker ran %d times, want 2 (C must not start)", checker.calls)
	}
	if !summary.Interrupted {
		t.Error("summary.Interrupted = false, want true")
	}
	if summary.Total != 1 {
		t.Errorf("partial aggregate = %d, want 1", summary.Total)
	}
	if lc.restores != 1 {
		t.Errorf("restore ran %d times, want exactly 1", lc.restores)
	}
	// Restoration is exact: the interrupt path puts back the snapshot
	// captured before the first switch, not some intermediate state.
	if lc.lastrestore != (venv.Snapshot{Path: "/ambient/bin"}) {
		t.Errorf("restored snapshot = %+v, want the one captured before the loop", lc.lastrestore)
	}
}

func TestRunUnknownTask(t *testing.T) {
	t.Parallel()

	o := newTestOrchestrator(&fakeLifecycle{}, nil)

	_, err := o.Run(context.Background(), Request{Task: checks.Task("bogus"), Selector: "default"})
	if err == nil {
		t.Fatal("Run() with unknown task returned no error")
	}
	if !errors.Is(err, issue.ErrConfiguration) {
		t.Errorf("error does not wrap ErrConfiguration: %v", err)
	}
}

func TestLifecycleRejectsSentinelSelectors(t *testing.T) {
	t.Parallel()

	for _, selector := range []string{"default", "all", ""} {
		lc := &fakeLifecycle{}
		o := newTestOrchestrator(lc, nil)

		_, err := o.Run(context.Background(), Request{Task: checks.TaskInstall, Selector: selector})
		if err == nil {
			t.Fatalf("install with selector %q returned no error", selector)
		}
		if !errors.Is(err, issue.ErrConfiguration) {
			t.Errorf("selector %q: error does not wrap ErrConfiguration: %v", selector, err)
		}
		// Fail fast: validation happens before any side effect.
		if len(lc.installs) != 0 {
			t.Errorf("selector %q: install ran despite configuration error", selector)
		}
	}
}

func TestLifecycleInstallAndUninstall(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{}
	o := newTestOrchestrator(lc, nil)

	summary, err := o.Run(context.Background(), Request{Task: checks.TaskInstall, Selector: "26,34"})
	if err != nil {
		t.Fatalf("install error: %v", err)
	}
	if summary.Total != 0 {
		t.Errorf("install aggregate = %d, want 0", summary.Total)
	}
	if len(lc.installs) != 2 {
		t.Errorf("installs = %v, want two entries", lc.installs)
	}

	if _, err := o.Run(context.Background(), Request{Task: checks.TaskUninstall, Selector: "26"}); err != nil {
		t.Fatalf("uninstall error: %v", err)
	}
	if len(lc.uninstalls) != 1 || lc.uninstalls[0] != "26" {
		t.Errorf("uninstalls = %v, want [26]", lc.uninstalls)
	}
}

func TestLifecycleInstallErrorAbortsRun(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{installErr: errors.New("no such interpreter")}
	o := newTestOrchestrator(lc, nil)

	summary, err := o.Run(context.Background(), Request{Task: checks.TaskInstall, Selector: "26,34"})
	if err == nil {
		t.Fatal("install returned no error")
	}
	if summary == nil || summary.Total.IsSuccess() {
		t.Error("aborted install should carry a failing aggregate")
	}
	if lc.restores != 1 {
		t.Errorf("restore ran %d times, want exactly 1", lc.restores)
	}
}
