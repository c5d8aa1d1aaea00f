// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rnr-dev/rnr/src/config"
	"github.com/rnr-dev/rnr/src/config/lang"
	"github.com/rnr-dev/rnr/src/pkg/tasks"
)

// loadTasksFile loads the file given with --file, or the nearest rnr.yaml above the working directory
func loadTasksFile() (*tasks.TasksFile, error) {
	path := config.TaskFileLocation
	if path == "" {
		found, err := tasks.FindFromWorkingDir()
		if err != nil {
			return nil, err
		}
		path = found
	}
	return tasks.Load(path)
}

func listTasks(w io.Writer, tasksFile *tasks.TasksFile) error {
	names := tasksFile.TaskNames()
	if len(names) == 0 {
		_, err := fmt.Fprintf(w, lang.ListNoTasks+"\n", filepath.Base(tasksFile.Path()))
		return err
	}

	rows := [][]string{
		{"Name", "Description"},
	}
	for _, name := range names {
		rows = append(rows, []string{name, tasksFile.Description(name)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s:\n\n%s\n", lang.ListTitle, table)
	return err
}
