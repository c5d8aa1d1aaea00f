// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rnr-dev/rnr/src/config"
	"github.com/rnr-dev/rnr/src/pkg/tasks"
	"github.com/stretchr/testify/require"
)

func writeTasksFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.TasksYAML)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTasksFileFlag(t *testing.T) {
	path := writeTasksFile(t, "build: make\n")
	config.TaskFileLocation = path
	t.Cleanup(func() { config.TaskFileLocation = "" })

	tasksFile, err := loadTasksFile()
	require.NoError(t, err)
	require.Equal(t, path, tasksFile.Path())
}

func TestListTasks(t *testing.T) {
	tasksFile, err := tasks.Load(writeTasksFile(t, `
test: cargo test
build:
  description: Build the project
  cmd: cargo build
`))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, listTasks(&out, tasksFile))

	content := pterm.RemoveColorFromString(out.String())
	require.Contains(t, content, "Available tasks:")
	require.Contains(t, content, "Build the project")
	require.Less(t, strings.Index(content, "build"), strings.Index(content, "test"))
}

func TestListNoTasks(t *testing.T) {
	tasksFile, err := tasks.Load(writeTasksFile(t, "{}\n"))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, listTasks(&out, tasksFile))
	require.Equal(t, "No tasks defined in rnr.yaml\n", out.String())
}

func TestValidateTasks(t *testing.T) {
	valid, err := tasks.Load(writeTasksFile(t, "build: make\nall:\n  task: build\n"))
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, validateTasks(&out, valid))
	require.Empty(t, out.String())

	invalid, err := tasks.Load(writeTasksFile(t, "all:\n  task: missing\n"))
	require.NoError(t, err)
	out.Reset()
	err = validateTasks(&out, invalid)
	require.ErrorContains(t, err, "1 problem(s) found in")
	require.Equal(t, "all: delegates to unknown task \"missing\"\n", out.String())
}

func TestTasksSchema(t *testing.T) {
	output, err := tasksSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(output, &schema))
	require.Equal(t, "object", schema["type"])
	require.Contains(t, schema, "definitions")

	oneOf := schema["additionalProperties"].(map[string]any)["oneOf"].([]any)
	require.Len(t, oneOf, 2)
	require.Equal(t, "string", oneOf[0].(map[string]any)["type"])
	require.NotEmpty(t, oneOf[1].(map[string]any)["$ref"])

	definitions := schema["definitions"].(map[string]any)
	require.Contains(t, definitions, "TaskSpec")
	require.Contains(t, definitions, "StepSpec")
}

func TestFlagShorthands(t *testing.T) {
	require.Equal(t, "l", rootCmd.Flags().Lookup("list").Shorthand)
	require.Equal(t, "f", rootCmd.PersistentFlags().Lookup("file").Shorthand)
	require.Empty(t, rootCmd.PersistentFlags().Lookup("log-level").Shorthand)
}
