// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/torwald-sergesson/runtests/internal/issue"

	"github.com/charmbracelet/log"
)

// issueIDForError maps the error taxonomy onto the issue catalog. Zero
// means no help page applies. Configuration errors surface the concrete-id
// page because the selector sentinels are the only configuration rejection
// reachable from the flag surface.
func issueIDForError(err error) issue.Id {
	switch {
	case errors.Is(err, issue.ErrEnvNotFound):
		return issue.EnvNotFoundId
	case errors.Is(err, issue.ErrEnvNotManaged):
		return issue.EnvNotManagedId
	case errors.Is(err, issue.ErrToolNotFound):
		return issue.ToolNotFoundId
	case errors.Is(err, issue.ErrConfiguration):
		return issue.ConcreteEnvRequiredId
	}
	return 0
}

// renderIssueHelp prints the catalog help page for id below the error line.
// A rendering problem is logged and swallowed: the underlying error has
// already been shown.
func renderIssueHelp(w io.Writer, id issue.Id, logger *log.Logger) {
	if id == 0 {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}

	rendered, err := entry.Render("dark")
	if err != nil {
		if logger != nil {
			logger.Warn("failed to render help page", "issue", int(id), "err", err)
		}
		return
	}
	fmt.Fprint(w, rendered)
}
