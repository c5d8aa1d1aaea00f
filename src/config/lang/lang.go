// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

// Package lang contains the language strings in english used by rnr
package lang

import "errors"

// Common Error Messages
const (
	ErrLoadingTaskFile = "failed to load task file %s: %s"
	ErrTaskFileMissing = "no %s found in %s or any parent directory"
	ErrTaskNotFound    = "task %q not found in %s"
)

// Root
const (
	RootCmdShort              = "A cross-platform task runner"
	RootCmdLong               = "Runs a task from the nearest rnr.yaml. Without a task name the available tasks are listed."
	RootCmdFlagSkipLogFile    = "Disable log file creation"
	RootCmdFlagLogLevel       = "Log level for the runner. Valid options are: warn, info, debug, trace"
	RootCmdErrInvalidLogLevel = "Invalid log level. Valid options are: warn, info, debug, trace."
	RootCmdFlagTempDir        = "Specify the temporary directory to use for the log file"
	RootCmdFlagFile           = "Name and location of the task file, defaults to the nearest rnr.yaml"
	RootCmdFlagList           = "List available tasks in the task file"
	RootCmdFlagDryRun         = "Print the commands that would run without running them"
	RootCmdFlagWindowsShell   = "Shell used to run commands on Windows (cmd, powershell, pwsh)"
	RootCmdErrRun             = "Failed to run task %q: %s"
	RootCmdErrList            = "Unable to list tasks"
)

// List
const (
	ListTitle   = "Available tasks"
	ListNoTasks = "No tasks defined in %s"
)

// Validate
const (
	CmdValidateShort   = "Check the task file for tasks and steps that cannot run"
	CmdValidateOK      = "%s is valid (%d tasks)"
	CmdValidateProblem = "%d problem(s) found in %s"
)

// Version
const (
	CmdVersionShort = "Shows the version of the running rnr binary"
	CmdVersionLong  = "Displays the version of the rnr release that the current binary was built from."
)

// Internal
const (
	CmdInternalShort             = "Internal cmds used by rnr"
	CmdInternalConfigSchemaShort = "Generates a JSON schema for the rnr.yaml configuration"
	CmdInternalConfigSchemaErr   = "Unable to generate the rnr.yaml schema"
)

// Viper
const (
	CmdViperErrLoadingConfigFile = "failed to load config file: %s"
	CmdViperInfoUsingConfigFile  = "Using config file %s"
)

// Common Errors
var (
	ErrInterrupt = errors.New("execution cancelled due to an interrupt")
)
