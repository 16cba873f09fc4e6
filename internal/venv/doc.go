// SPDX-License-Identifier: MPL-2.0

// Package venv manages the isolated execution contexts that checks run in.
//
// An environment is a virtualenv-style directory at a deterministic,
// identifier-keyed location under the configured root. Exactly one
// environment may be active at a time: activation prepends the
// environment's bin directory to the process PATH (and sets RUNTESTS_ENV
// and VIRTUAL_ENV), so child processes spawned by the checks resolve their
// tools inside the active environment. The Manager owns that single slot
// of process-wide activation state and can snapshot and restore the
// ambient state around a whole run.
package venv
