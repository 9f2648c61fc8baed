// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/commands"
	"github.com/Fourierlabs/cardano-node/lib/command"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output return an exitError
		// carrying the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := cli.NewCommandLogger()
	describe := command.Describe(os.Stdout)

	// The default dispatcher renders the assembled command as YAML on
	// stdout. Real execution plugs in behind the same interface.
	dispatcher := command.DispatchFunc(func(cmd command.Command) error {
		logger.Debug("command assembled", "command", cmd.Name())
		return describe.Dispatch(cmd)
	})
	return commands.Root(dispatcher).Execute(os.Args[1:])
}
