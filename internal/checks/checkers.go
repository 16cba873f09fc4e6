// SPDX-License-Identifier: MPL-2.0

package checks

import "context"

type (
	// UnitChecker runs the unit test suite. When coverage is enabled it
	// asks the runner tool for a terminal coverage report.
	UnitChecker struct {
		Runner Runner
		// Tool is the test runner executable.
		Tool string
		// DefaultTarget is the test path used when no argument is given.
		DefaultTarget string
		// Coverage toggles coverage reporting arguments.
		Coverage bool
		// CoverPackage is the package measured for coverage.
		CoverPackage string
	}

	// IntegrationChecker runs the integration test suite.
	IntegrationChecker struct {
		Runner        Runner
		Tool          string
		DefaultTarget string
	}

	// StyleChecker runs the style (pep8) checker.
	StyleChecker struct {
		Runner        Runner
		Tool          string
		DefaultTarget string
	}

	// LintChecker runs the lint checker.
	LintChecker struct {
		Runner        Runner
		Tool          string
		DefaultTarget string
	}

	// ConventionChecker runs the repository-convention (commit message)
	// checker against the most recent commit, or against the commit range
	// given as the argument.
	ConventionChecker struct {
		Runner Runner
		Tool   string
	}

	// StatsChecker runs the code statistics reporter.
	StatsChecker struct {
		Runner        Runner
		Tool          string
		DefaultTarget string
	}

	// SwitchReporter reports the identity of the interpreter resolved in
	// the active environment. It backs the --switch flag.
	SwitchReporter struct {
		Runner Runner
		// Python is the interpreter executable to interrogate.
		Python string
	}
)

func (c *UnitChecker) Name() string { return string(TaskUnit) }

func (c *UnitChecker) Run(ctx context.Context, arg string) *Result {
	target := c.DefaultTarget
	if arg != "" {
		target = arg
	}
	var args []string
	if c.Coverage {
		args = append(args, "--cov="+c.CoverPackage, "--cov-report=term-missing")
	}
	args = append(args, target)
	return c.Runner.Run(ctx, c.Tool, args...)
}

func (c *IntegrationChecker) Name() string { return string(TaskIntegration) }

func (c *IntegrationChecker) Run(ctx context.Context, arg string) *Result {
	target := c.DefaultTarget
	if arg != "" {
		target = arg
	}
	return c.Runner.Run(ctx, c.Tool, target)
}

func (c *StyleChecker) Name() string { return string(TaskStyle) }

func (c *StyleChecker) Run(ctx context.Context, arg string) *Result {
	target := c.DefaultTarget
	if arg != "" {
		target = arg
	}
	return c.Runner.Run(ctx, c.Tool, target)
}

func (c *LintChecker) Name() string { return string(TaskLint) }

func (c *LintChecker) Run(ctx context.Context, arg string) *Result {
	target := c.DefaultTarget
	if arg != "" {
		target = arg
	}
	return c.Runner.Run(ctx, c.Tool, target)
}

func (c *ConventionChecker) Name() string { return string(TaskConvention) }

func (c *ConventionChecker) Run(ctx context.Context, arg string) *Result {
	if arg != "" {
		return c.Runner.Run(ctx, c.Tool, "--commits", arg)
	}
	return c.Runner.Run(ctx, c.Tool)
}

func (c *StatsChecker) Name() string { return string(TaskStats) }

func (c *StatsChecker) Run(ctx context.Context, arg string) *Result {
	target := c.DefaultTarget
	if arg != "" {
		target = arg
	}
	return c.Runner.Run(ctx, c.Tool, "raw", "-s", target)
}

func (c *SwitchReporter) Name() string { return string(TaskSwitch) }

func (c *SwitchReporter) Run(ctx context.Context, _ string) *Result {
	return c.Runner.Run(ctx, c.Python, "--version")
}
