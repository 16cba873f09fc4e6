// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/torwald-sergesson/runtests/internal/issue"
)

func TestIssueIDForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{
			name: "env not found",
			err:  issue.WrapWithContext(issue.ErrEnvNotFound, "activate environment", "34"),
			want: issue.EnvNotFoundId,
		},
		{
			name: "env not managed",
			err:  issue.WrapWithContext(issue.ErrEnvNotManaged, "uninstall environment", "/tmp/34"),
			want: issue.EnvNotManagedId,
		},
		{
			name: "tool not found",
			err:  issue.WrapWithContext(issue.ErrToolNotFound, "locate check tool", "pytest"),
			want: issue.ToolNotFoundId,
		},
		{
			name: "lifecycle selector rejection",
			err:  issue.NewConfigurationError("resolve environment selector", "concrete ids required"),
			want: issue.ConcreteEnvRequiredId,
		},
		{
			name: "unrelated error has no help page",
			err:  errors.New("disk full"),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := issueIDForError(tt.err); got != tt.want {
				t.Errorf("issueIDForError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRenderIssueHelp(t *testing.T) {
	t.Parallel()

	for _, id := range []issue.Id{
		issue.EnvNotFoundId,
		issue.EnvNotManagedId,
		issue.ToolNotFoundId,
		issue.ConfigLoadFailedId,
		issue.ConcreteEnvRequiredId,
	} {
		var buf bytes.Buffer
		renderIssueHelp(&buf, id, nil)
		if buf.Len() == 0 {
			t.Errorf("issue %d rendered no help text", id)
		}
	}
}

func TestRenderIssueHelpSkipsUnknownIds(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderIssueHelp(&buf, 0, nil)
	renderIssueHelp(&buf, issue.Id(999), nil)
	if buf.Len() != 0 {
		t.Errorf("unknown ids wrote %q, want nothing", buf.String())
	}
}
