// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

// Package runner provides functions for running tasks in a rnr.yaml
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rnr-dev/rnr/src/config"
	"github.com/rnr-dev/rnr/src/message"
	"github.com/rnr-dev/rnr/src/pkg/tasks"
	"github.com/rnr-dev/rnr/src/pkg/utils"
	"github.com/rnr-dev/rnr/src/types"
)

// Scope is the context a task or step resolves against: the active task file, the
// current working directory and the environment overlay inherited from callers.
// Scopes are passed by value so changes never leak to sibling steps.
type Scope struct {
	Dir  string
	Env  map[string]string
	File *tasks.TasksFile

	task   string
	active []taskRef
}

type taskRef struct {
	path string
	name string
}

// RootScope returns the scope a top level task runs in: the directory of the task file
// and an empty overlay on top of the process environment.
func RootScope(file *tasks.TasksFile) Scope {
	return Scope{Dir: file.Dir(), File: file}
}

// Runner executes tasks, handing every resolved command to a CommandRunner
type Runner struct {
	commands CommandRunner
	load     func(path string) (*tasks.TasksFile, error)
	fileName string
	log      *slog.Logger
}

// New creates a Runner that runs commands with commands.
func New(commands CommandRunner) *Runner {
	return &Runner{
		commands: commands,
		load:     tasks.Load,
		fileName: config.TasksYAML,
		log:      message.SLog,
	}
}

// Run runs a task from tasks file
func Run(ctx context.Context, tasksFile *tasks.TasksFile, taskName string, commands CommandRunner) error {
	r := New(commands)
	r.log = r.log.With("run", uuid.NewString())

	start := time.Now()
	r.log.Debug("Running task", "task", taskName, "file", tasksFile.Path())

	err := r.RunTask(ctx, taskName, RootScope(tasksFile))

	r.log.Debug("Finished task", "task", taskName, "duration", time.Since(start).Round(time.Millisecond), "ok", err == nil)
	return err
}

// RunTask looks up name in the scope's task file and runs it.
func (r *Runner) RunTask(ctx context.Context, name string, scope Scope) error {
	def, err := scope.File.Get(name)
	if err != nil {
		return err
	}

	ref := taskRef{path: scope.File.Path(), name: name}
	if slices.Contains(scope.active, ref) {
		return &TaskLoopError{Chain: chain(append(slices.Clip(scope.active), ref))}
	}
	scope.active = append(slices.Clip(scope.active), ref)
	scope.task = name

	switch def := def.(type) {
	case types.Shorthand:
		return r.runCmd(ctx, string(def), scope)
	case *types.FullTask:
		return r.runFullTask(ctx, def, scope)
	}
	return fmt.Errorf("task %q has an unsupported definition %T", name, def)
}

func (r *Runner) runFullTask(ctx context.Context, task *types.FullTask, scope Scope) error {
	if task.Dir != "" {
		scope.Dir = utils.ResolveDir(scope.File.Dir(), task.Dir)
	}
	if len(task.Env) > 0 {
		scope.Env = utils.MergeEnv(scope.Env, task.Env)
	}

	switch action := task.Action.(type) {
	case types.RunSteps:
		return r.runSteps(ctx, action.Steps, scope)
	case types.Delegate:
		return r.delegate(ctx, action.Task, task.Dir != "", scope)
	case types.RunCmd:
		return r.runCmd(ctx, action.Cmd, scope)
	case nil:
		return &NoActionError{Task: scope.task}
	}
	return fmt.Errorf("task %q has an unsupported action %T", scope.task, task.Action)
}

func (r *Runner) runSteps(ctx context.Context, steps []types.Step, scope Scope) error {
	for i, step := range steps {
		pos := fmt.Sprintf("step %d", i+1)

		var err error
		switch step := step.(type) {
		case types.SimpleStep:
			err = r.runSimpleStep(ctx, step, pos, scope)
		case types.ParallelStep:
			err = r.runParallel(ctx, step.Steps, pos, scope)
		default:
			err = fmt.Errorf("task %q: %s has an unsupported type %T", scope.task, pos, step)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runSimpleStep(ctx context.Context, step types.SimpleStep, pos string, scope Scope) error {
	if step.Dir != "" {
		scope.Dir = utils.ResolveDir(scope.File.Dir(), step.Dir)
	}

	switch action := step.Action.(type) {
	case types.Delegate:
		return r.delegate(ctx, action.Task, step.Dir != "", scope)
	case types.RunCmd:
		return r.runCmd(ctx, action.Cmd, scope)
	}
	return &NoActionError{Task: scope.task, Step: pos}
}

// delegate runs target in place of the current task. When the caller set a dir and that
// directory has its own task file, target is looked up there and runs rooted at it.
// Otherwise target comes from the current file and runs in the caller's dir.
func (r *Runner) delegate(ctx context.Context, target string, withDir bool, scope Scope) error {
	if withDir {
		nested := filepath.Join(scope.Dir, r.fileName)
		if utils.FileExists(nested) {
			file, err := r.load(nested)
			if err != nil {
				return err
			}
			r.log.Debug("Delegating to nested task file", "task", target, "file", file.Path())
			scope.File = file
			scope.Dir = file.Dir()
		}
	}
	return r.RunTask(ctx, target, scope)
}

func (r *Runner) runCmd(ctx context.Context, cmd string, scope Scope) error {
	r.log.Debug("Running command", "task", scope.task, "dir", scope.Dir, "env", utils.FormatEnv(scope.Env))
	return r.commands.RunCommand(ctx, Command{Cmd: cmd, Dir: scope.Dir, Env: scope.Env})
}

func chain(refs []taskRef) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.name)
	}
	return names
}
