// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types and a catalog of known
// failure conditions with actionable remediation text.
//
// Two layers live here: ActionableError carries structured context
// (operation, resource, suggestions) through the error chain, and the
// issue catalog maps recurring failure conditions to markdown help pages
// rendered with glamour.
package issue
