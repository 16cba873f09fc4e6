// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFakeTool drops an executable shell stub named name into dir that
// exits with exitCode. It returns the stub's path. Tests use these stubs
// to stand in for external check tools.
func WriteFakeTool(t testing.TB, dir, name string, exitCode int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode)
	MustWriteFile(t, path, []byte(script), 0o755)
	return path
}

// WriteFakeToolScript drops an executable shell stub with a caller-supplied
// body (a "#!/bin/sh" shebang is prepended). It returns the stub's path.
func WriteFakeToolScript(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	MustWriteFile(t, path, []byte("#!/bin/sh\n"+body), 0o755)
	return path
}

// PrependPath puts dir at the front of PATH for the duration of the test.
func PrependPath(t testing.TB, dir string) {
	t.Helper()
	original, hadValue := os.LookupEnv("PATH")
	if err := os.Setenv("PATH", dir+string(os.PathListSeparator)+original); err != nil {
		t.Fatalf("failed to prepend %s to PATH: %v", dir, err)
	}
	t.Cleanup(func() {
		if hadValue {
			if err := os.Setenv("PATH", original); err != nil {
				t.Errorf("failed to restore PATH: %v", err)
			}
		} else {
			if err := os.Unsetenv("PATH"); err != nil {
				t.Errorf("failed to unset PATH: %v", err)
			}
		}
	})
}
