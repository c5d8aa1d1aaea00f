// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rnr-dev/rnr/src/config"
	"github.com/rnr-dev/rnr/src/config/lang"
	"github.com/rnr-dev/rnr/src/message"
	"github.com/rnr-dev/rnr/src/pkg/tasks"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: lang.CmdValidateShort,
	Args:  cobra.NoArgs,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		config.SkipLogFile = true
		cliSetup()
	},
	Run: func(_ *cobra.Command, _ []string) {
		tasksFile, err := loadTasksFile()
		if err != nil {
			message.Fatal(err, err.Error())
		}
		if err := validateTasks(os.Stdout, tasksFile); err != nil {
			message.Fatal(err, err.Error())
		}
		message.Successf(lang.CmdValidateOK, tasksFile.Path(), tasksFile.Len())
	},
}

// validateTasks writes one line per problem and returns an error when there are any.
func validateTasks(w io.Writer, tasksFile *tasks.TasksFile) error {
	problems := tasksFile.Validate()
	for _, problem := range problems {
		fmt.Fprintln(w, problem.String())
	}
	if len(problems) > 0 {
		return fmt.Errorf(lang.CmdValidateProblem, len(problems), tasksFile.Path())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
