// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package key

import (
	"github.com/spf13/pflag"

	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	"github.com/Fourierlabs/cardano-node/lib/chain"
	"github.com/Fourierlabs/cardano-node/lib/command"
)

type signingKeyAddressParams struct {
	Network chain.NetworkFlags
	Secret  string `flag:"secret" desc:"signing key file"`
}

func signingKeyAddressCommand(dispatcher command.Dispatcher) *cli.Command {
	var params signingKeyAddressParams

	return &cli.Command{
		Name:    "signing-key-address",
		Summary: "Print the address of a signing key on a network",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("signing-key-address", &params)
		},
		Required: []string{"secret"},
		Run: func(args []string) error {
			network, err := params.Network.Network()
			if err != nil {
				return err
			}
			return dispatcher.Dispatch(command.PrintSigningKeyAddress{
				Network:    network,
				SecretPath: params.Secret,
			})
		},
		Examples: []cli.Example{
			{
				Description: "Print a key's mainnet address",
				Command:     "cardano-cli signing-key-address --mainnet --secret delegate.sk",
			},
			{
				Description: "Print the same key's address on a testnet",
				Command:     "cardano-cli signing-key-address --testnet-magic 1097911063 --secret delegate.sk",
			},
		},
	}
}
