// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

// Package main is the entrypoint for the rnr binary.
package main

import (
	"github.com/rnr-dev/rnr/src/cmd"
)

func main() {
	cmd.Execute()
}
