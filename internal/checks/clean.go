// SPDX-License-Identifier: MPL-2.0

package checks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// defaultCleanScript removes the build and coverage artifacts the other
// checks leave behind.
const defaultCleanScript = `
rm -rf build dist .eggs .coverage htmlcov
find . -name '*.pyc' -type f -delete
find . -name __pycache__ -type d -prune -exec rm -rf '{}' +
`

// CleanTask removes build artifacts. The removal script runs through the
// embedded shell interpreter so the same script works without a system
// shell installed.
type CleanTask struct {
	// Script overrides the default artifact-removal script.
	Script string
	// Dir is the working directory; empty means the process cwd.
	Dir string

	Stdout io.Writer
	Stderr io.Writer
}

// Name returns the task name.
func (c *CleanTask) Name() string { return string(TaskClean) }

// Run parses and executes the clean script, mapping the script's exit
// status to the Outcome.
func (c *CleanTask) Run(ctx context.Context, _ string) *Result {
	script := c.Script
	if script == "" {
		script = defaultCleanScript
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "clean")
	if err != nil {
		return NewErrorResult(OutcomeFailure, fmt.Errorf("failed to parse clean script: %w", err))
	}

	stdout := c.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := c.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, stdout, stderr),
	}
	if c.Dir != "" {
		opts = append(opts, interp.Dir(c.Dir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return NewErrorResult(OutcomeFailure, fmt.Errorf("failed to create interpreter: %w", err))
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return NewOutcomeResult(Outcome(exitStatus))
		}
		return NewErrorResult(OutcomeFailure, fmt.Errorf("clean script failed: %w", err))
	}

	return NewOutcomeResult(0)
}
