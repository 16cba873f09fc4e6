// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// taskFlags holds the task-selection flags; exactly one task is
	// resolved per invocation via a fixed priority order.
	flags taskFlags

	// envsSelector is the --envs value: comma-separated identifiers,
	// "all", or "default".
	envsSelector string
	// allEnvs is the --all-env shorthand for --envs all.
	allEnvs bool
	// noCoverage disables coverage reporting for the unit check.
	noCoverage bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "runtests [target]",
		Short: "Run a project's QA suite across isolated python environments",
		Long: TitleStyle.Render("runtests") + SubtitleStyle.Render(" - QA suite matrix runner") + `

runtests executes a project's quality-assurance suite (unit tests,
integration tests, style checks, lint checks and commit-message checks)
across one or more isolated python environments and aggregates the
results into a single pass/fail exit status.

` + SubtitleStyle.Render("Examples:") + `
  runtests                      Run unit tests in the ambient environment
  runtests -p                   Run the style (pep8) check
  runtests -a -e 26,34          Run every check in envs 26 and 34
  runtests --all-env            Run unit tests in every known env
  runtests --install -e 34      Create and provision env 34
  runtests tests/test_lint.py   Run unit tests for a single test path`,
		Args:          cobra.ArbitraryArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// taskFlags mirrors the boolean task-selection flag surface. The fields are
// resolved to a single task by resolveTask.
type taskFlags struct {
	clean       bool
	pep8        bool
	lint        bool
	git         bool
	integration bool
	all         bool
	stats       bool
	install     bool
	uninstall   bool
	switchEnv   bool
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/runtests/config.toml)")

	f := rootCmd.Flags()
	f.BoolVarP(&flags.clean, "clean", "c", false, "remove build and coverage artifacts")
	f.BoolVarP(&flags.pep8, "pep8", "p", false, "run the style check")
	f.BoolVarP(&flags.lint, "lint", "l", false, "run the lint check")
	f.BoolVarP(&flags.git, "git", "g", false, "run the commit-message check")
	f.BoolVarP(&flags.integration, "integration", "i", false, "run the integration test suite")
	f.BoolVarP(&flags.all, "all", "a", false, "run unit, integration, style, lint and commit-message checks")
	f.BoolVarP(&flags.stats, "stats", "s", false, "print code statistics")
	f.BoolVar(&flags.install, "install", false, "install the selected environments")
	f.BoolVar(&flags.uninstall, "uninstall", false, "uninstall the selected environments")
	f.BoolVar(&flags.switchEnv, "switch", false, "activate the selected environments and report their interpreter")
	f.StringVarP(&envsSelector, "envs", "e", "default", "comma-separated environment identifiers, or \"all\"")
	f.BoolVar(&allEnvs, "all-env", false, "run against every known environment (same as --envs all)")
	f.BoolVar(&noCoverage, "no-coverage", false, "disable coverage reporting for the unit check")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main(). The
// interrupt signal cancels the command context, which terminates the
// in-flight check and stops the matrix loop; restoration of the ambient
// environment still runs before the process exits.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}
