// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/jsonschema"
	"github.com/rnr-dev/rnr/src/config"
	"github.com/rnr-dev/rnr/src/config/lang"
	"github.com/rnr-dev/rnr/src/message"
	"github.com/rnr-dev/rnr/src/types"
	"github.com/spf13/cobra"
)

var internalCmd = &cobra.Command{
	Use:    "internal",
	Hidden: true,
	Short:  lang.CmdInternalShort,
}

var configTasksSchemaCmd = &cobra.Command{
	Use:     "config-tasks-schema",
	Aliases: []string{"c"},
	Short:   lang.CmdInternalConfigSchemaShort,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		config.SkipLogFile = true
	},
	Run: func(_ *cobra.Command, _ []string) {
		output, err := tasksSchema()
		if err != nil {
			message.Fatalf(err, "%s", lang.CmdInternalConfigSchemaErr)
		}
		fmt.Print(string(output) + "\n")
	},
}

// tasksSchema describes rnr.yaml: a mapping of task names to either a command string or a task.
func tasksSchema() ([]byte, error) {
	reflected, err := json.Marshal(jsonschema.Reflect(&types.TaskSpec{}))
	if err != nil {
		return nil, err
	}
	var task map[string]any
	if err := json.Unmarshal(reflected, &task); err != nil {
		return nil, err
	}

	schema := map[string]any{
		"$schema":     task["$schema"],
		"definitions": task["definitions"],
		"type":        "object",
		"additionalProperties": map[string]any{
			"oneOf": []any{
				map[string]any{"type": "string", "description": "Shorthand for a task with only a cmd"},
				map[string]any{"$ref": task["$ref"]},
			},
		},
	}
	return json.MarshalIndent(schema, "", "  ")
}

func init() {
	rootCmd.AddCommand(internalCmd)

	internalCmd.AddCommand(configTasksSchemaCmd)
}
