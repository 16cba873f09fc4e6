// SPDX-License-Identifier: MPL-2.0

package matrix

import "github.com/torwald-sergesson/runtests/internal/checks"

// Aggregate folds the next per-environment outcome into the running total.
// The sum is zero exactly when every contribution was zero; two failures
// can never cancel out because outcomes are non-negative.
func Aggregate(running, next checks.Outcome) checks.Outcome {
	return running + next
}

// Summary is the result of one orchestrator run, consumed by the CLI layer
// for the final banner and the process exit status.
type Summary struct {
	// Task is the task that ran.
	Task checks.Task
	// Environments lists the identifiers visited, in execution order.
	Environments []string
	// Failures counts the environments whose outcome was nonzero.
	Failures int
	// Total is the aggregate outcome: the process exit status.
	Total checks.Outcome
	// Interrupted is true when cancellation cut the matrix short.
	Interrupted bool
}
