// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the runtests CLI.
//
// This package implements the Cobra command surface: the flag set that
// selects exactly one task per invocation, the environment selector flags,
// and the final colored banner summarizing the aggregate outcome.
package cmd
