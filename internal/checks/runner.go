// SPDX-License-Identifier: MPL-2.0

package checks

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/torwald-sergesson/runtests/internal/issue"

	"github.com/charmbracelet/log"
)

type (
	// Runner dispatches one external tool invocation and translates its
	// exit status into an Outcome. Checkers depend on this interface so
	// tests can substitute a recording double.
	Runner interface {
		Run(ctx context.Context, name string, args ...string) *Result
	}

	// ExecRunner runs tools as child processes inheriting the current
	// process environment. Because environment activation mutates the
	// process PATH, children automatically resolve tools inside the
	// active environment.
	ExecRunner struct {
		Stdout io.Writer
		Stderr io.Writer
		Stdin  io.Reader
		Logger *log.Logger
	}
)

// NewExecRunner creates an ExecRunner wired to the process stdio.
func NewExecRunner(logger *log.Logger) *ExecRunner {
	return &ExecRunner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Logger: logger,
	}
}

// Run executes name with args, blocking until the child exits. The child's
// exit status is returned unchanged as the Outcome; failure to locate or
// spawn the tool yields OutcomeFailure plus an error.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) *Result {
	path, err := exec.LookPath(name)
	if err != nil {
		return NewErrorResult(OutcomeFailure, issue.WrapWithContext(issue.ErrToolNotFound, "locate check tool", name))
	}

	if r.Logger != nil {
		r.Logger.Debug("running check tool", "tool", name, "args", args)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Env = os.Environ()
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Stdin = r.Stdin

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			code := exitErr.ExitCode()
			if code < 0 {
				// Killed by a signal (e.g. interrupt cancellation).
				return NewOutcomeResult(OutcomeFailure)
			}
			return NewOutcomeResult(Outcome(code))
		}
		return NewErrorResult(OutcomeFailure, fmt.Errorf("failed to execute %s: %w", name, err))
	}

	return NewOutcomeResult(0)
}
