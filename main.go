// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/garagekit/garage/cmd/garage"

func main() {
	cmd.Execute()
}
