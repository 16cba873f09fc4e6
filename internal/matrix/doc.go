// SPDX-License-Identifier: MPL-2.0

// Package matrix drives checks across a matrix of isolated environments.
//
// The orchestrator expands an environment selector into a concrete ordered
// list of identifiers, then for each one (strictly sequentially, because
// activation is a single-slot process-wide resource): switches the
// lifecycle manager into the environment, runs the requested check, and
// folds the outcome into a running aggregate. The ambient activation state
// captured before the first switch is restored on every exit path,
// including cancellation.
package matrix
