// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

// Package types contains all the types used by the runner.
package types

// TaskSpec is the mapping form of a task as written in rnr.yaml.
type TaskSpec struct {
	Description string            `json:"description,omitempty" jsonschema:"description=Description of the task shown when listing tasks"`
	Dir         string            `json:"dir,omitempty" jsonschema:"description=Working directory for the task relative to the directory of the task file"`
	Env         map[string]string `json:"env,omitempty" jsonschema:"description=Environment variables added to the inherited environment"`
	Cmd         string            `json:"cmd,omitempty" jsonschema:"description=The shell command to run"`
	Task        string            `json:"task,omitempty" jsonschema:"description=The name of another task to run instead of a command"`
	Steps       []StepSpec        `json:"steps,omitempty" jsonschema:"description=Steps to run in order; takes precedence over task and cmd"`
}

// StepSpec is a single entry of a task's steps list as written in rnr.yaml.
type StepSpec struct {
	Dir      string           `json:"dir,omitempty" jsonschema:"description=Working directory for the step relative to the directory of the task file"`
	Cmd      string           `json:"cmd,omitempty" jsonschema:"description=The shell command to run"`
	Task     string           `json:"task,omitempty" jsonschema:"description=The name of a task to run instead of cmd"`
	Parallel []SimpleStepSpec `json:"parallel,omitempty" jsonschema:"description=Steps to run concurrently; cannot be combined with other fields"`
}

// SimpleStepSpec is a step inside a parallel group.
type SimpleStepSpec struct {
	Dir  string `json:"dir,omitempty" jsonschema:"description=Working directory for the step relative to the directory of the task file"`
	Cmd  string `json:"cmd,omitempty" jsonschema:"description=The shell command to run"`
	Task string `json:"task,omitempty" jsonschema:"description=The name of a task to run instead of cmd"`
}

// TaskDef is a task definition: either a Shorthand or a *FullTask.
type TaskDef interface {
	taskDef()
}

// Shorthand is a task defined by a single command string.
type Shorthand string

func (Shorthand) taskDef() {}

// FullTask is a task defined as a mapping.
type FullTask struct {
	Description string
	Dir         string
	Env         map[string]string
	// Action is nil when the task defines no cmd, task or steps.
	Action Action
}

func (*FullTask) taskDef() {}

// Step is one position of a steps list: either a SimpleStep or a ParallelStep.
type Step interface {
	step()
}

// SimpleStep runs a single command or delegates to a task.
type SimpleStep struct {
	Dir string
	// Action is nil when the step defines neither cmd nor task, and is never RunSteps.
	Action Action
}

func (SimpleStep) step() {}

// ParallelStep is a group of simple steps started together.
type ParallelStep struct {
	Steps []SimpleStep
}

func (ParallelStep) step() {}

// Action is what a task or step does when it runs: RunCmd, Delegate or RunSteps.
type Action interface {
	action()
}

// RunCmd runs a shell command.
type RunCmd struct {
	Cmd string
}

// Delegate runs another task.
type Delegate struct {
	Task string
}

// RunSteps runs a list of steps in order.
type RunSteps struct {
	Steps []Step
}

func (RunCmd) action()   {}
func (Delegate) action() {}
func (RunSteps) action() {}

// SelectAction picks the effective action: steps win over task, which wins over cmd.
// It returns nil when all three are empty.
func SelectAction(steps []Step, task, cmd string) Action {
	switch {
	case len(steps) > 0:
		return RunSteps{Steps: steps}
	case task != "":
		return Delegate{Task: task}
	case cmd != "":
		return RunCmd{Cmd: cmd}
	}
	return nil
}

// Def converts the mapping form into a *FullTask.
func (s TaskSpec) Def() *FullTask {
	var steps []Step
	for _, st := range s.Steps {
		steps = append(steps, st.Step())
	}
	return &FullTask{
		Description: s.Description,
		Dir:         s.Dir,
		Env:         s.Env,
		Action:      SelectAction(steps, s.Task, s.Cmd),
	}
}

// Step converts a steps entry into a SimpleStep or ParallelStep.
func (s StepSpec) Step() Step {
	if s.Parallel != nil {
		group := ParallelStep{Steps: make([]SimpleStep, 0, len(s.Parallel))}
		for _, p := range s.Parallel {
			group.Steps = append(group.Steps, p.Step())
		}
		return group
	}
	return SimpleStepSpec{Dir: s.Dir, Cmd: s.Cmd, Task: s.Task}.Step()
}

// Step converts a parallel entry into a SimpleStep.
func (s SimpleStepSpec) Step() SimpleStep {
	return SimpleStep{Dir: s.Dir, Action: SelectAction(nil, s.Task, s.Cmd)}
}

// IsParallel reports whether the entry declares a parallel group.
func (s StepSpec) IsParallel() bool {
	return s.Parallel != nil
}

// HasSimpleFields reports whether dir, cmd or task is set.
func (s StepSpec) HasSimpleFields() bool {
	return s.Dir != "" || s.Cmd != "" || s.Task != ""
}

// Label describes a step for diagnostics, preferring what it runs.
func (s SimpleStep) Label() string {
	switch a := s.Action.(type) {
	case Delegate:
		return "task: " + a.Task
	case RunCmd:
		return "cmd: " + a.Cmd
	}
	return "step with no cmd or task"
}
