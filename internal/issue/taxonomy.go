// SPDX-License-Identifier: MPL-2.0

package issue

import "errors"

var (
	// ErrConfiguration marks errors caused by an invalid invocation or
	// configuration. These are fatal and must be reported before any
	// side effect occurs.
	ErrConfiguration = errors.New("configuration error")

	// ErrEnvNotFound marks a failure to locate or activate an isolated
	// environment. During a matrix run it is absorbed into the aggregate
	// outcome; during install/uninstall it aborts the run.
	ErrEnvNotFound = errors.New("environment not found")

	// ErrEnvNotManaged marks a directory at an environment location that
	// was not created by this tool (no manifest). Uninstall refuses to
	// destroy such directories.
	ErrEnvNotManaged = errors.New("environment not managed by runtests")

	// ErrToolNotFound marks a check tool that could not be located on the
	// active PATH.
	ErrToolNotFound = errors.New("check tool not found")
)

// NewConfigurationError wraps a message in the ErrConfiguration taxonomy
// with operation context attached.
func NewConfigurationError(operation, detail string) *ActionableError {
	return &ActionableError{
		Operation: operation,
		Resource:  detail,
		Cause:     ErrConfiguration,
	}
}
