// SPDX-License-Identifier: MPL-2.0

package checks

import "context"

// RunAll is the composite task behind --all: it runs its sub-checks in the
// given fixed order regardless of individual failures (no short-circuit)
// and reports the arithmetic sum of their outcomes. The sum is nonzero iff
// at least one sub-check failed; its magnitude is not otherwise meaningful.
//
// Cancellation is the one exception to "every sub-check runs": once the
// context is done, remaining sub-checks are skipped.
type RunAll struct {
	// Sequence is the ordered list of sub-checks. For the --all task this
	// is unit, integration, style, lint, convention.
	Sequence []Checker
}

// Name returns the composite task name.
func (c *RunAll) Name() string { return string(TaskAll) }

// Run executes every sub-check in order. The free-form argument is not
// forwarded: sub-checks run against their default targets, since a single
// path override cannot apply meaningfully to all five tools at once.
func (c *RunAll) Run(ctx context.Context, _ string) *Result {
	var total Outcome
	var firstErr error

	for _, sub := range c.Sequence {
		if ctx.Err() != nil {
			break
		}
		res := sub.Run(ctx, "")
		total += res.Outcome
		if res.Err != nil && firstErr == nil {
			firstErr = res.Err
		}
	}

	return &Result{Outcome: total, Err: firstErr}
}
