// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

package tasks

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rnr-dev/rnr/src/config"
	"github.com/rnr-dev/rnr/src/types"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, yaml string) *TasksFile {
	t.Helper()
	tf, err := Parse(filepath.Join(t.TempDir(), config.TasksYAML), []byte(yaml))
	require.NoError(t, err)
	return tf
}

func fullTask(t *testing.T, tf *TasksFile, name string) *types.FullTask {
	t.Helper()
	def, err := tf.Get(name)
	require.NoError(t, err)
	full, ok := def.(*types.FullTask)
	require.True(t, ok, "expected %s to be a full task, got %T", name, def)
	return full
}

func TestParseShorthand(t *testing.T) {
	tf := parse(t, `
build: cargo build --release
test: cargo test
lint: cargo clippy
`)
	require.Equal(t, 3, tf.Len())

	def, err := tf.Get("build")
	require.NoError(t, err)
	require.Equal(t, types.Shorthand("cargo build --release"), def)
	require.Empty(t, tf.Description("build"))
}

func TestParseFullTask(t *testing.T) {
	tf := parse(t, `
build:
  description: Build the project for production
  dir: src/subproject
  env:
    NODE_ENV: production
    DEBUG: "false"
  cmd: npm run build
`)
	build := fullTask(t, tf, "build")
	require.Equal(t, "Build the project for production", build.Description)
	require.Equal(t, "Build the project for production", tf.Description("build"))
	require.Equal(t, "src/subproject", build.Dir)
	require.Equal(t, map[string]string{"NODE_ENV": "production", "DEBUG": "false"}, build.Env)
	require.Equal(t, types.RunCmd{Cmd: "npm run build"}, build.Action)
}

func TestParseDelegation(t *testing.T) {
	tf := parse(t, `
build:
  dir: services/api
  task: build
  cmd: echo ignored
`)
	build := fullTask(t, tf, "build")
	require.Equal(t, "services/api", build.Dir)
	require.Equal(t, types.Delegate{Task: "build"}, build.Action)
}

func TestParseSteps(t *testing.T) {
	tf := parse(t, `
deploy:
  task: ignored
  steps:
    - cmd: echo "Starting"
    - parallel:
        - task: build-api
        - dir: services/web
          cmd: npm run build
    - dir: scripts
      task: publish
    - cmd: echo "Done"
`)
	deploy := fullTask(t, tf, "deploy")
	steps, ok := deploy.Action.(types.RunSteps)
	require.True(t, ok, "expected steps action, got %T", deploy.Action)
	require.Equal(t, []types.Step{
		types.SimpleStep{Action: types.RunCmd{Cmd: `echo "Starting"`}},
		types.ParallelStep{Steps: []types.SimpleStep{
			{Action: types.Delegate{Task: "build-api"}},
			{Dir: "services/web", Action: types.RunCmd{Cmd: "npm run build"}},
		}},
		types.SimpleStep{Dir: "scripts", Action: types.Delegate{Task: "publish"}},
		types.SimpleStep{Action: types.RunCmd{Cmd: `echo "Done"`}},
	}, steps.Steps)
}

func TestParseNoAction(t *testing.T) {
	tf := parse(t, `
empty:
  description: Does nothing
`)
	require.Nil(t, fullTask(t, tf, "empty").Action)
}

func TestParseEdgeCases(t *testing.T) {
	t.Run("names with colons", func(t *testing.T) {
		tf := parse(t, `
"api:build": cargo build
"web:build": npm run build
`)
		require.True(t, tf.Has("api:build"))
		require.True(t, tf.Has("web:build"))
	})

	t.Run("empty env", func(t *testing.T) {
		tf := parse(t, `
build:
  env: {}
  cmd: cargo build
`)
		require.Empty(t, fullTask(t, tf, "build").Env)
	})

	t.Run("empty document", func(t *testing.T) {
		tf := parse(t, "{}")
		require.Zero(t, tf.Len())
		require.Empty(t, tf.TaskNames())
	})
}

func TestParseErrors(t *testing.T) {
	testCases := map[string]string{
		"null task":               "build:\n",
		"numeric task":            "build: 42\n",
		"list task":               "build:\n  - echo hi\n",
		"parallel mixed with cmd": "ci:\n  steps:\n    - cmd: echo hi\n      parallel:\n        - cmd: echo a\n",
		"document is not a map":   "- build\n- test\n",
		"step is a bare string":   "ci:\n  steps:\n    - echo hi\n",
	}

	for name, yaml := range testCases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.TasksYAML)
			_, err := Parse(path, []byte(yaml))
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "expected a LoadError, got %T", err)
			require.Equal(t, path, loadErr.Path)
		})
	}
}

func TestTaskNamesSorted(t *testing.T) {
	tf := parse(t, `
zebra: echo zebra
alpha: echo alpha
middle:
  description: In the middle
  cmd: echo middle
`)
	require.Equal(t, []string{"alpha", "middle", "zebra"}, tf.TaskNames())
	// Listing is stable across calls.
	require.Equal(t, tf.TaskNames(), tf.TaskNames())
}

func TestGetNotFound(t *testing.T) {
	tf := parse(t, "build: cargo build")

	_, err := tf.Get("nonexistent")
	var notFound *TaskNotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "nonexistent", notFound.Name)
	require.Equal(t, tf.Path(), notFound.Path)
	require.Contains(t, err.Error(), `task "nonexistent" not found in `+tf.Path())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.TasksYAML)
	require.NoError(t, os.WriteFile(path, []byte("build: make\n"), 0o600))

	tf, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, tf.Path())
	require.Equal(t, dir, tf.Dir())
	require.True(t, tf.Has("build"))

	_, err = Load(filepath.Join(dir, "missing", config.TasksYAML))
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, config.TasksYAML)
	require.NoError(t, os.WriteFile(path, []byte("build: make\n"), 0o600))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := Find(nested)
	require.NoError(t, err)
	require.Equal(t, path, found)

	found, err = Find(root)
	require.NoError(t, err)
	require.Equal(t, path, found)
}

func TestValidate(t *testing.T) {
	tf := parse(t, `
ok: echo ok
no-action:
  description: nothing to do
bad-delegate:
  task: missing
nested-delegate:
  dir: services/api
  task: only-in-nested-file
ci:
  steps:
    - task: ok
    - dir: scripts
    - parallel:
        - task: missing-too
        - dir: web
          task: also-nested
`)

	problems := tf.Validate()
	require.Equal(t, []Problem{
		{Task: "bad-delegate", Message: `delegates to unknown task "missing"`},
		{Task: "ci", Message: "step 2: step has no cmd or task defined"},
		{Task: "ci", Message: `step 3, parallel step 1: delegates to unknown task "missing-too"`},
		{Task: "no-action", Message: "task has no cmd, task, or steps defined"},
	}, problems)

	// Validation is pure and repeatable.
	require.Equal(t, problems, tf.Validate())
	require.Equal(t, "ci: step 2: step has no cmd or task defined", problems[1].String())
}
