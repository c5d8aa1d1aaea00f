// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

// Package message provides a rich set of functions for displaying messages to the user.
package message

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

var (
	// SLog sets the default structured log handler for messages
	SLog = slog.New(RnrHandler{})

	// pterm printers share global state, so records are printed one at a time
	handleMu sync.Mutex
)

// RnrHandler is a simple handler that implements the slog.Handler interface
type RnrHandler struct {
	attrs []slog.Attr
}

// Enabled reports whether a record at the given level is printed at the current log level.
// Errors are always printed.
func (z RnrHandler) Enabled(_ context.Context, level slog.Level) bool {
	switch {
	case level >= slog.LevelError:
		return true
	case level >= slog.LevelWarn:
		return logLevel >= WarnLevel
	case level >= slog.LevelInfo:
		return logLevel >= InfoLevel
	default:
		return logLevel >= DebugLevel
	}
}

// WithAttrs returns a handler that prints attrs after the attributes of each record
func (z RnrHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return RnrHandler{attrs: append(slices.Clip(z.attrs), attrs...)}
}

// WithGroup is not supported
func (z RnrHandler) WithGroup(_ string) slog.Handler {
	return z
}

// Handle prints the record with the matching pterm printer.
// Attributes are appended to the message as key=value pairs.
func (z RnrHandler) Handle(_ context.Context, record slog.Record) error {
	message := record.Message
	record.Attrs(func(attr slog.Attr) bool {
		message += " " + attr.String()
		return true
	})
	for _, attr := range z.attrs {
		message += " " + attr.String()
	}

	handleMu.Lock()
	defer handleMu.Unlock()

	switch {
	case record.Level >= slog.LevelError:
		errorf("%s", message)
	case record.Level >= slog.LevelWarn:
		warnf("%s", message)
	case record.Level >= slog.LevelInfo:
		infof("%s", message)
	default:
		debugf("%s", message)
	}
	return nil
}
