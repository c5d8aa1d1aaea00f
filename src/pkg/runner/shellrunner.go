// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"runtime"

	"github.com/defenseunicorns/pkg/exec"
	"github.com/rnr-dev/rnr/src/pkg/utils"
)

// DefaultShell is the shell used for commands on each OS
var DefaultShell = exec.Shell{
	Windows: "cmd",
	Linux:   "sh",
	Darwin:  "sh",
}

// ShellRunner runs commands with the platform shell, connecting them to Stdin, Stdout and Stderr
type ShellRunner struct {
	Shell  exec.Shell
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// DryRun only prints the commands that would run
	DryRun bool
}

// NewShellRunner creates a ShellRunner attached to the stdio of the rnr process
func NewShellRunner(dryRun bool) *ShellRunner {
	return &ShellRunner{
		Shell:  DefaultShell,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		DryRun: dryRun,
	}
}

// shellCommand returns the shell and the arguments that run script with it.
func (s *ShellRunner) shellCommand(script string) (string, []string) {
	shell, args := exec.GetOSShell(s.Shell)
	// the exit status is the one of the last command, like a plain `sh -c`
	if runtime.GOOS != "windows" {
		args = []string{"-c"}
	}
	return shell, append(args, script)
}

// RunCommand echoes the command and runs it in cmd.Dir with cmd.Env added to the process environment.
func (s *ShellRunner) RunCommand(ctx context.Context, cmd Command) error {
	fmt.Fprintf(s.Stdout, "$ %s\n", cmd.Cmd)
	if s.DryRun {
		return nil
	}

	shell, args := s.shellCommand(cmd.Cmd)
	child := osexec.CommandContext(ctx, shell, args...)
	child.Dir = cmd.Dir
	child.Env = append(os.Environ(), utils.FormatEnv(cmd.Env)...)
	child.Stdin = s.Stdin
	child.Stdout = s.Stdout
	child.Stderr = s.Stderr

	err := child.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		// killed by a signal
		if code < 0 {
			code = 1
		}
		return &CommandError{Command: cmd.Cmd, ExitCode: code}
	}
	return &SpawnError{Command: cmd.Cmd, Err: err}
}
