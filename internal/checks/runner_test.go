// SPDX-License-Identifier: MPL-2.0

package checks

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/torwald-sergesson/runtests/internal/issue"
	"github.com/torwald-sergesson/runtests/internal/testutil"
)

func newTestRunner() *ExecRunner {
	return &ExecRunner{
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}
}

func TestExecRunnerReportsToolExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are POSIX shell scripts")
	}

	tests := []struct {
		name     string
		exitCode int
		want     Outcome
	}{
		{name: "success", exitCode: 0, want: 0},
		{name: "failure is passed through unchanged", exitCode: 3, want: 3},
		{name: "single failure", exitCode: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			testutil.WriteFakeTool(t, dir, "faketool", tt.exitCode)
			testutil.PrependPath(t, dir)

			res := newTestRunner().Run(context.Background(), "faketool")
			if res.Outcome != tt.want {
				t.Errorf("Run() outcome = %d, want %d", res.Outcome, tt.want)
			}
			if res.Err != nil {
				t.Errorf("Run() returned unexpected error: %v", res.Err)
			}
		})
	}
}

func TestExecRunnerMissingTool(t *testing.T) {
	res := newTestRunner().Run(context.Background(), "definitely-not-a-real-tool-name")
	if res.Outcome != OutcomeFailure {
		t.Errorf("Run() outcome = %d, want %d", res.Outcome, OutcomeFailure)
	}
	if !errors.Is(res.Err, issue.ErrToolNotFound) {
		t.Errorf("Run() error does not wrap ErrToolNotFound: %v", res.Err)
	}
}

func TestExecRunnerCanceledContext(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are POSIX shell scripts")
	}

	dir := t.TempDir()
	testutil.WriteFakeToolScript(t, dir, "sleeper", "sleep 30\n")
	testutil.PrependPath(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := newTestRunner().Run(ctx, "sleeper")
	if res.Outcome.IsSuccess() {
		t.Error("Run() with canceled context reported success, want failure outcome")
	}
}
