// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/torwald-sergesson/runtests/cmd/runtests"

func main() {
	cmd.Execute()
}
