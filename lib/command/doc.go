// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

// Package command defines the closed set of validated commands the
// CLI assembles, one variant per subcommand. A Command is built
// exactly once from fully validated values, is immutable afterward,
// and is handed to a Dispatcher that owns all execution, I/O,
// cryptography, and networking.
//
// The variant set is sealed: every variant lives in this package and
// implements the unexported marker method, so a switch over the
// concrete types is exhaustive by construction.
package command
