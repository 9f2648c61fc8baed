// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI command
// operations. When stderr is a terminal, uses slog.TextHandler for
// human-readable output. When stderr is piped or redirected (CI,
// scripts, integration tests), uses slog.JSONHandler for
// machine-parseable output.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewCommandLogger().With("command", "submit-tx")
//
// Setting CARDANO_CLI_VERBOSE in the environment lowers the level to
// debug.
func NewCommandLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("CARDANO_CLI_VERBOSE") != "" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
