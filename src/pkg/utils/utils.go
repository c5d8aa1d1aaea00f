// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

// Package utils provides utility fns for rnr
package utils

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sort"

	"github.com/defenseunicorns/pkg/helpers"
	goyaml "github.com/goccy/go-yaml"
	"github.com/rnr-dev/rnr/src/message"
)

// UseLogFile writes output to stderr and a log file in dir (the OS temp dir when empty).
func UseLogFile(dir string) {
	if _, err := message.UseLogFile(dir); err != nil {
		message.WarnErr(err, "Error saving a log file to a temporary directory")
		return
	}
	message.Notef("Saving log file to %s", message.LogFileLocation())
}

// ReadYaml reads a yaml file and unmarshals it into dest.
func ReadYaml(path string, dest any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return goyaml.Unmarshal(b, dest)
}

// MergeEnv overlays env onto base and returns a new map; keys in env win.
// Neither argument is modified.
func MergeEnv(base, env map[string]string) map[string]string {
	return helpers.MergeMap[string](maps.Clone(base), env)
}

// FormatEnv renders an environment map as sorted KEY=value entries.
func FormatEnv(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	out := make([]string, 0, len(env))
	for name, value := range env {
		out = append(out, FormatEnvVar(name, value))
	}
	sort.Strings(out)
	return out
}

// FormatEnvVar formats a single environment variable entry.
func FormatEnvVar(name, value string) string {
	return fmt.Sprintf("%s=%s", name, value)
}

// ResolveDir returns dir rebased on root, or dir itself when it is absolute.
func ResolveDir(root, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
