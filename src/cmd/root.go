// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

// Package cmd contains the CLI commands for rnr.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/rnr-dev/rnr/src/config"
	"github.com/rnr-dev/rnr/src/config/lang"
	"github.com/rnr-dev/rnr/src/message"
	"github.com/rnr-dev/rnr/src/pkg/runner"
	"github.com/rnr-dev/rnr/src/pkg/utils"
	"github.com/spf13/cobra"
)

// ListTasks is a flag to print available tasks in a TaskFileLocation
var ListTasks bool

var rootCmd = &cobra.Command{
	Use:   "rnr [TASK]",
	Short: lang.RootCmdShort,
	Long:  lang.RootCmdLong,
	Args:  cobra.MaximumNArgs(1),
	PreRun: func(_ *cobra.Command, args []string) {
		// Listing never writes a log file
		if ListTasks || len(args) == 0 {
			config.SkipLogFile = true
		}
		cliSetup()
	},
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		tasksFile, err := loadTasksFile()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return tasksFile.TaskNames(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		tasksFile, err := loadTasksFile()
		if err != nil {
			message.Fatal(err, err.Error())
		}

		if ListTasks || len(args) == 0 {
			if err := listTasks(os.Stdout, tasksFile); err != nil {
				message.Fatal(err, lang.RootCmdErrList)
			}
			return
		}

		if config.DryRun {
			message.SLog.Info("Dry-run has been set - only printing the commands that would run:")
		}

		taskName := args[0]
		if err := runner.Run(cmd.Context(), tasksFile, taskName, newShellRunner()); err != nil {
			if errors.Is(err, context.Canceled) {
				message.Fatal(err, lang.ErrInterrupt.Error())
			}
			message.Fatal(err, fmt.Sprintf(lang.RootCmdErrRun, taskName, err))
		}
	},
}

// Execute is the entrypoint for the CLI.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cobra.CheckErr(rootCmd.ExecuteContext(ctx))
}

// RootCmd returns the root command.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	initViper()

	v.SetDefault(V_LOG_LEVEL, "info")
	v.SetDefault(V_NO_LOG_FILE, false)
	v.SetDefault(V_TMP_DIR, "")
	v.SetDefault(V_WINDOWS_SHELL, "")

	persistentFlags := rootCmd.PersistentFlags()
	persistentFlags.StringVar(&config.LogLevel, "log-level", v.GetString(V_LOG_LEVEL), lang.RootCmdFlagLogLevel)
	persistentFlags.BoolVar(&config.SkipLogFile, "no-log-file", v.GetBool(V_NO_LOG_FILE), lang.RootCmdFlagSkipLogFile)
	persistentFlags.StringVar(&config.TempDirectory, "tmpdir", v.GetString(V_TMP_DIR), lang.RootCmdFlagTempDir)
	persistentFlags.StringVarP(&config.TaskFileLocation, "file", "f", "", lang.RootCmdFlagFile)

	rootFlags := rootCmd.Flags()
	rootFlags.BoolVarP(&ListTasks, "list", "l", false, lang.RootCmdFlagList)
	rootFlags.BoolVar(&config.DryRun, "dry-run", false, lang.RootCmdFlagDryRun)
	rootFlags.StringVar(&config.WindowsShell, "windows-shell", v.GetString(V_WINDOWS_SHELL), lang.RootCmdFlagWindowsShell)
}

func cliSetup() {
	// Keep stdout for task output
	pterm.SetDefaultOutput(os.Stderr)

	printViperConfigUsed()

	// No log level set, so use the default
	if config.LogLevel != "" {
		if lvl, ok := message.ParseLogLevel(config.LogLevel); ok {
			message.SetLogLevel(lvl)
			message.SLog.Debug("Log level set to " + config.LogLevel)
		} else {
			message.Warn(lang.RootCmdErrInvalidLogLevel)
		}
	}

	if !config.SkipLogFile {
		utils.UseLogFile(config.TempDirectory)
	}
}

func newShellRunner() *runner.ShellRunner {
	r := runner.NewShellRunner(config.DryRun)
	if config.WindowsShell != "" {
		r.Shell.Windows = config.WindowsShell
	}
	return r
}
