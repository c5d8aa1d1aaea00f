// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

package runner

import (
	"fmt"
	"strings"
)

// NoActionError is returned when a task or step has nothing to run.
type NoActionError struct {
	Task string
	// Step is the position of the step within Task, empty for the task itself.
	Step string
}

func (e *NoActionError) Error() string {
	if e.Step == "" {
		return fmt.Sprintf("task %q has no cmd, task, or steps defined", e.Task)
	}
	return fmt.Sprintf("task %q: %s has no cmd or task defined", e.Task, e.Step)
}

// SpawnError is returned when the shell for a command could not be started.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute command: %s: %s", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// CommandError is returned when a command exits with a non-zero status.
type CommandError struct {
	Command  string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed with exit code %d: %s", e.ExitCode, e.Command)
}

// StepError identifies which step of a parallel group failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ParallelError collects the failures of a parallel group in step order.
type ParallelError struct {
	Failures []error
}

func (e *ParallelError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parallel execution failed with %d error(s):", len(e.Failures))
	for _, err := range e.Failures {
		// indent nested parallel failures under their step
		b.WriteString("\n  - ")
		b.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n    "))
	}
	return b.String()
}

func (e *ParallelError) Unwrap() []error {
	return e.Failures
}

// TaskLoopError is returned when a task delegates back to a task that is still running.
type TaskLoopError struct {
	Chain []string
}

func (e *TaskLoopError) Error() string {
	return fmt.Sprintf("task loop detected, ensure no cyclic loops in tasks: %s", strings.Join(e.Chain, " -> "))
}
