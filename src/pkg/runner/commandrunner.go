// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

package runner

import (
	"context"
)

// Command is a single shell command ready to run.
type Command struct {
	Cmd string
	Dir string
	// Env is added to the environment of the rnr process, it does not replace it.
	Env map[string]string
}

// CommandRunner defines the interface for running commands.
type CommandRunner interface {
	RunCommand(ctx context.Context, cmd Command) error
}
