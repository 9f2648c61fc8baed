// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the command tree for the cardano-cli binary.
//
// A Command either dispatches to Subcommands by the first positional
// argument or parses its flags and invokes its Run function. Commands
// are assembled into a tree in cmd/cardano-cli/commands; the tree is
// stateless and built once per process. Flag parsing is strict:
// malformed values, unknown flags, and missing required flags all
// terminate the invocation with a descriptive error before any Run
// function executes.
package cli
