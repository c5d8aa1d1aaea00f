// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

// Package config contains configuration strings for rnr
package config

const (
	// TasksYAML is the name of the task file, both at the project root and in nested directories
	TasksYAML = "rnr.yaml"
)

var (
	// CLIVersion track the version of the CLI
	CLIVersion = "unset"

	// EnvPrefix is the prefix for viper configs
	EnvPrefix = "rnr"

	// TaskFileLocation is the location of the tasks file to run, empty to search from the current directory
	TaskFileLocation string

	// LogLevel is the log level for the runner
	LogLevel string

	// SkipLogFile disables writing a log file
	SkipLogFile bool

	// TempDirectory is the directory to store the log file in
	TempDirectory string

	// WindowsShell is the shell used to run commands on Windows
	WindowsShell string

	// DryRun prints commands instead of running them
	DryRun bool
)
