// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"runtime"
	"strings"
	"unicode"
)

// PythonBinary maps an environment identifier to the interpreter binary the
// provisioner should build the environment with. Compact numeric ids use
// the convention of the canonical descriptor set: "26" means python2.6,
// "34" means python3.4. Ids that already contain a dot are passed through
// ("3.12" → python3.12); anything else falls back to the bare interpreter.
func PythonBinary(id string) string {
	if strings.Contains(id, ".") {
		return "python" + id
	}
	if len(id) >= 2 && isDigits(id) {
		return "python" + id[:1] + "." + id[1:]
	}
	return "python"
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// binDirName is the executables directory inside an environment:
// virtualenv uses bin on POSIX systems and Scripts on Windows.
func binDirName() string {
	if runtime.GOOS == "windows" {
		return "Scripts"
	}
	return "bin"
}
