// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

package tasks

import (
	"fmt"

	"github.com/rnr-dev/rnr/src/types"
)

// Problem is a task that cannot run as written.
type Problem struct {
	Task    string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Task, p.Message)
}

// Validate reports tasks and steps without an action and delegations to tasks missing
// from this file. Delegations that set dir are skipped since their target may be defined
// in a nested task file.
func (f *TasksFile) Validate() []Problem {
	var problems []Problem
	for _, name := range f.TaskNames() {
		full, ok := f.tasks[name].(*types.FullTask)
		if !ok {
			continue
		}

		report := func(format string, a ...any) {
			problems = append(problems, Problem{Task: name, Message: fmt.Sprintf(format, a...)})
		}

		switch action := full.Action.(type) {
		case nil:
			report("task has no cmd, task, or steps defined")
		case types.Delegate:
			if full.Dir == "" && !f.Has(action.Task) {
				report("delegates to unknown task %q", action.Task)
			}
		case types.RunSteps:
			for i, step := range action.Steps {
				switch step := step.(type) {
				case types.SimpleStep:
					if msg := f.checkSimpleStep(step); msg != "" {
						report("step %d: %s", i+1, msg)
					}
				case types.ParallelStep:
					for j, sub := range step.Steps {
						if msg := f.checkSimpleStep(sub); msg != "" {
							report("step %d, parallel step %d: %s", i+1, j+1, msg)
						}
					}
				}
			}
		}
	}
	return problems
}

func (f *TasksFile) checkSimpleStep(step types.SimpleStep) string {
	switch action := step.Action.(type) {
	case nil:
		return "step has no cmd or task defined"
	case types.Delegate:
		if step.Dir == "" && !f.Has(action.Task) {
			return fmt.Sprintf("delegates to unknown task %q", action.Task)
		}
	}
	return ""
}
