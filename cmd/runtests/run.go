// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/torwald-sergesson/runtests/internal/checks"
	"github.com/torwald-sergesson/runtests/internal/config"
	"github.com/torwald-sergesson/runtests/internal/issue"
	"github.com/torwald-sergesson/runtests/internal/matrix"
	"github.com/torwald-sergesson/runtests/internal/venv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// run is the single entry point: it interprets the flag surface into one
// task plus a selector, wires the registry and lifecycle manager, and maps
// the orchestrator's aggregate outcome to the process exit status.
func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		// Config problems are surfaced but never silently swallowed into
		// a default run when the user pointed at an explicit file.
		if cfgFile != "" {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
			renderIssueHelp(os.Stderr, issue.ConfigLoadFailedId, nil)
			return &ExitError{Code: checks.OutcomeFailure, Err: err}
		}
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		cfg = config.DefaultConfig()
	}
	if cfg.UI.Verbose {
		verbose = true
	}

	logger := newLogger(verbose)

	coverage := cfg.Coverage && !noCoverage
	runner := checks.NewExecRunner(logger)
	registry := checks.NewRegistry(cfg, runner, coverage)
	manager := venv.NewManager(cfg, logger)

	orch := &matrix.Orchestrator{
		Manager:  manager,
		Registry: registry,
		Logger:   logger,
	}

	selector := envsSelector
	if allEnvs {
		selector = matrix.SelectorAll
	}

	// Unrecognized tokens collapse to a single free argument; last one wins.
	freeArg := ""
	if len(args) > 0 {
		freeArg = args[len(args)-1]
	}

	req := matrix.Request{
		Task:     resolveTask(flags),
		Selector: selector,
		FreeArg:  freeArg,
	}

	summary, err := orch.Run(cmd.Context(), req)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		renderIssueHelp(os.Stderr, issueIDForError(err), logger)
		code := checks.OutcomeFailure
		if summary != nil && !summary.Total.IsSuccess() {
			code = summary.Total
		}
		return &ExitError{Code: code, Err: err}
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderBanner(summary))

	if !summary.Total.IsSuccess() {
		return &ExitError{Code: summary.Total}
	}
	return nil
}

// newLogger builds the CLI logger on stderr; debug diagnostics are gated
// behind --verbose (or ui.verbose in the config file).
func newLogger(verboseMode bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verboseMode {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
