// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete cardano-cli command tree. The
// registry flattens every domain group — key management, delegation,
// genesis, transactions — into one selectable set: grouping lives in
// the package layout and help listing, not in the grammar, so every
// subcommand is invoked directly by name and exactly one is selected
// per invocation.
package commands

import (
	"github.com/spf13/pflag"

	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	delegationcmd "github.com/Fourierlabs/cardano-node/cmd/cardano-cli/delegation"
	genesiscmd "github.com/Fourierlabs/cardano-node/cmd/cardano-cli/genesis"
	keycmd "github.com/Fourierlabs/cardano-node/cmd/cardano-cli/key"
	txcmd "github.com/Fourierlabs/cardano-node/cmd/cardano-cli/tx"
	"github.com/Fourierlabs/cardano-node/lib/codec"
	"github.com/Fourierlabs/cardano-node/lib/command"
)

// Root builds and returns the complete cardano-cli command tree. The
// tree is stateless and constructed once per process; every assembled
// command value is handed to dispatcher, which owns execution.
func Root(dispatcher command.Dispatcher) *cli.Command {
	root := &cli.Command{
		Name: "cardano-cli",
		Description: `cardano-cli: key, delegation, genesis, and transaction tooling
for the Byron chain.

Each subcommand validates its flags into one immutable command value
and hands it to the dispatcher. Invalid input of any kind stops the
invocation before anything executes.`,
	}

	root.Subcommands = append(root.Subcommands, keycmd.Commands(dispatcher)...)
	root.Subcommands = append(root.Subcommands, delegationcmd.Commands(dispatcher)...)
	root.Subcommands = append(root.Subcommands, genesiscmd.Commands(dispatcher)...)
	root.Subcommands = append(root.Subcommands, txcmd.Commands(dispatcher)...)
	root.Subcommands = append(root.Subcommands,
		validateCBORCommand(dispatcher),
		versionCommand(dispatcher),
	)

	root.Examples = []cli.Example{
		{
			Description: "Create a new signing key",
			Command:     "cardano-cli keygen --secret delegate.sk",
		},
		{
			Description: "Print a key's testnet address",
			Command:     "cardano-cli signing-key-address --testnet-magic 1097911063 --secret delegate.sk",
		},
		{
			Description: "Submit a signed transaction to a local node",
			Command:     "cardano-cli submit-tx --tx tx.bin --target 127.0.0.1:3000 --node-id 0",
		},
	}

	return root
}

type validateCBORParams struct {
	Kind codec.ObjectKind `flag:"kind" desc:"expected chain object kind (block, tx, delegation-certificate, update-proposal, vote)"`
	File string           `flag:"file" desc:"CBOR file to validate"`
}

func validateCBORCommand(dispatcher command.Dispatcher) *cli.Command {
	var params validateCBORParams

	return &cli.Command{
		Name:    "validate-cbor",
		Summary: "Check that a chain file is well-formed CBOR",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("validate-cbor", &params)
		},
		Required: []string{"kind", "file"},
		Run: func(args []string) error {
			return dispatcher.Dispatch(command.ValidateCBOR{
				Kind:     params.Kind,
				FilePath: params.File,
			})
		},
		Examples: []cli.Example{
			{
				Description: "Validate a serialized block",
				Command:     "cardano-cli validate-cbor --kind block --file block.bin",
			},
		},
	}
}

func versionCommand(dispatcher command.Dispatcher) *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Run: func(args []string) error {
			return dispatcher.Dispatch(command.Version{})
		},
	}
}
