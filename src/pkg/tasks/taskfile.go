// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

// Package tasks loads rnr.yaml task files and looks up the tasks they define.
package tasks

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rnr-dev/rnr/src/config"
	"github.com/rnr-dev/rnr/src/config/lang"
	"github.com/rnr-dev/rnr/src/pkg/utils"
	"github.com/rnr-dev/rnr/src/types"
)

// TasksFile is a loaded task file. It is read-only once loaded.
type TasksFile struct {
	tasks map[string]types.TaskDef

	dirPath  string
	filePath string
}

// TaskNotFoundError is returned when a task name is not defined in a task file.
type TaskNotFoundError struct {
	Name string
	Path string
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf(lang.ErrTaskNotFound, e.Name, e.Path)
}

// LoadError is returned when a task file cannot be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf(lang.ErrLoadingTaskFile, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and parses the task file at path.
func Load(path string) (*TasksFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var nodes map[string]taskNode
	if err := utils.ReadYaml(abs, &nodes); err != nil {
		return nil, &LoadError{Path: abs, Err: err}
	}

	return newTasksFile(abs, nodes)
}

// Parse parses task file contents as if they were read from path.
func Parse(path string, data []byte) (*TasksFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var nodes map[string]taskNode
	if err := unmarshal(data, &nodes); err != nil {
		return nil, &LoadError{Path: abs, Err: err}
	}

	return newTasksFile(abs, nodes)
}

func newTasksFile(path string, nodes map[string]taskNode) (*TasksFile, error) {
	tasks := make(map[string]types.TaskDef, len(nodes))
	for name, node := range nodes {
		// null values are never passed to taskNode.UnmarshalYAML
		if node.def == nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("task %q has no definition", name)}
		}
		tasks[name] = node.def
	}
	return &TasksFile{
		tasks:    tasks,
		dirPath:  filepath.Dir(path),
		filePath: path,
	}, nil
}

// Find walks up from dir and returns the path of the first rnr.yaml found.
func Find(dir string) (string, error) {
	start, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for current := start; ; {
		candidate := filepath.Join(current, config.TasksYAML)
		if utils.FileExists(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf(lang.ErrTaskFileMissing, config.TasksYAML, start)
		}
		current = parent
	}
}

// FindFromWorkingDir is Find starting at the process's current directory.
func FindFromWorkingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return Find(wd)
}

// Get returns the definition of the named task.
func (f *TasksFile) Get(name string) (types.TaskDef, error) {
	def, ok := f.tasks[name]
	if !ok {
		return nil, &TaskNotFoundError{Name: name, Path: f.filePath}
	}
	return def, nil
}

// Has reports whether the named task is defined.
func (f *TasksFile) Has(name string) bool {
	_, ok := f.tasks[name]
	return ok
}

// TaskNames returns the names of all tasks, sorted alphabetically.
func (f *TasksFile) TaskNames() []string {
	names := make([]string, 0, len(f.tasks))
	for name := range f.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Description returns the description of the named task. Shorthand tasks have none.
func (f *TasksFile) Description(name string) string {
	if full, ok := f.tasks[name].(*types.FullTask); ok {
		return full.Description
	}
	return ""
}

// Len returns the number of tasks defined.
func (f *TasksFile) Len() int {
	return len(f.tasks)
}

// Path is the absolute path of the task file.
func (f *TasksFile) Path() string {
	return f.filePath
}

// Dir is the directory containing the task file; task and step dirs are relative to it.
func (f *TasksFile) Dir() string {
	return f.dirPath
}
