// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package tx

import (
	"github.com/spf13/pflag"

	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	"github.com/Fourierlabs/cardano-node/lib/chain"
	"github.com/Fourierlabs/cardano-node/lib/command"
	"github.com/Fourierlabs/cardano-node/lib/config"
)

type submitTxParams struct {
	Overrides config.OverrideFlags
	Tx        string         `flag:"tx"      desc:"signed transaction file to submit"`
	Target    chain.Endpoint `flag:"target"  desc:"node endpoint to submit to (ip:port)"`
	NodeID    chain.NodeID   `flag:"node-id" desc:"identifier of the target node"`
}

func submitTxCommand(dispatcher command.Dispatcher) *cli.Command {
	var params submitTxParams

	return &cli.Command{
		Name:    "submit-tx",
		Summary: "Submit an already-signed transaction to a node",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("submit-tx", &params)
		},
		Required: []string{"tx", "target", "node-id"},
		Run: func(args []string) error {
			return dispatcher.Dispatch(command.SubmitTx{
				TxPath:    params.Tx,
				Target:    params.Target,
				Node:      params.NodeID,
				Overrides: params.Overrides.Overrides(),
			})
		},
		Examples: []cli.Example{
			{
				Description: "Submit a transaction to a local node",
				Command:     "cardano-cli submit-tx --tx tx.bin --target 127.0.0.1:3000 --node-id 0",
			},
		},
	}
}
