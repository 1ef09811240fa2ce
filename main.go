// SPDX-License-Identifier: MPL-2.0

package main

import cmd "folderfun/cmd/folderfun"

func main() {
	cmd.Execute()
}
