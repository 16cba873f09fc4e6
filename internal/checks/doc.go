// SPDX-License-Identifier: MPL-2.0

// Package checks defines the fixed set of quality-assurance checks and the
// machinery to dispatch them to external tools.
//
// Each check implements the Checker interface: a deterministic mapping from
// an optional free-form argument to an Outcome code reported by exactly one
// external collaborator. The registry resolves a Task name to its checker;
// the composite "all" task runs the five core checks in a fixed order
// without short-circuiting and sums their outcomes.
package checks
