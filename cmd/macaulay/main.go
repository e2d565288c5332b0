// SPDX-License-Identifier: MIT
package main

import "github.com/polykit/macaulay/internal/cli"

func main() {
	cli.Execute()
}
