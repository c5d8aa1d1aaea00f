// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

// Package test provides e2e tests for the runner.
package test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rnr-dev/rnr/src/test"
)

var (
	e2e test.RnrE2ETest //nolint:gochecknoglobals
)

func TestMain(m *testing.M) {
	// Work from the repository root so fixture paths are stable
	if err := os.Chdir(filepath.Join("..", "..", "..")); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	buildDir, err := os.MkdirTemp("", "rnr-e2e-")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := e2e.Build(buildDir); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	code := m.Run()
	e2e.CleanFiles(buildDir)
	os.Exit(code)
}
