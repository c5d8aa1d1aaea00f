// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

// Package test contains e2e tests for the runner
package test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/defenseunicorns/pkg/exec"
	"github.com/defenseunicorns/pkg/helpers"
	"github.com/stretchr/testify/require"
)

// RnrE2ETest Struct holding common fields most of the tests will utilize.
type RnrE2ETest struct {
	RnrBinPath string
	CommandLog []string
}

// GetCLIName returns the name of the rnr binary for the current OS.
func GetCLIName() string {
	if runtime.GOOS == "windows" {
		return "rnr.exe"
	}
	return "rnr"
}

var logRegex = regexp.MustCompile(`Saving log file to (?P<logFile>.*?\.log)`)

// Rnr executes rnr from the repository root.
func (e2e *RnrE2ETest) Rnr(args ...string) (string, string, error) {
	return e2e.RnrInDir("", args...)
}

// RnrInDir executes rnr with dir as the working directory.
func (e2e *RnrE2ETest) RnrInDir(dir string, args ...string) (string, string, error) {
	e2e.CommandLog = append(e2e.CommandLog, strings.Join(args, " "))
	return exec.CmdWithContext(context.TODO(), exec.Config{Print: true, Dir: dir}, e2e.RnrBinPath, args...)
}

// Build compiles the rnr binary into dir and records its path.
func (e2e *RnrE2ETest) Build(dir string) error {
	binPath, err := filepath.Abs(filepath.Join(dir, GetCLIName()))
	if err != nil {
		return err
	}
	_, _, err = exec.CmdWithContext(context.TODO(), exec.Config{Print: true}, "go", "build", "-o", binPath, ".")
	if err != nil {
		return err
	}
	e2e.RnrBinPath = binPath
	return nil
}

// CleanFiles removes files and directories that have been created during the test.
func (e2e *RnrE2ETest) CleanFiles(files ...string) {
	for _, file := range files {
		_ = os.RemoveAll(file)
	}
}

// GetLogFileContents gets the log file contents from a given run's std error.
func (e2e *RnrE2ETest) GetLogFileContents(t *testing.T, stdErr string) string {
	get, err := helpers.MatchRegex(logRegex, stdErr)
	require.NoError(t, err)
	logFile := get("logFile")
	logContents, err := os.ReadFile(logFile)
	require.NoError(t, err)
	return string(logContents)
}

// GetRnrVersion returns the current build version
func (e2e *RnrE2ETest) GetRnrVersion(t *testing.T) string {
	stdOut, stdErr, err := e2e.Rnr("version")
	require.NoError(t, err, stdOut, stdErr)
	return strings.Trim(stdOut, "\n")
}
