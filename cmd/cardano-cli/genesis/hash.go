// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package genesis

import (
	"github.com/spf13/pflag"

	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	"github.com/Fourierlabs/cardano-node/lib/command"
)

type printHashParams struct {
	GenesisJSON string `flag:"genesis-json" desc:"genesis JSON file to hash"`
}

func printGenesisHashCommand(dispatcher command.Dispatcher) *cli.Command {
	var params printHashParams

	return &cli.Command{
		Name:    "print-genesis-hash",
		Summary: "Compute and print the hash of a genesis file",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("print-genesis-hash", &params)
		},
		Required: []string{"genesis-json"},
		Run: func(args []string) error {
			return dispatcher.Dispatch(command.PrintGenesisHash{
				GenesisJSONPath: params.GenesisJSON,
			})
		},
	}
}
