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

type generateTxsParams struct {
	Overrides    config.OverrideFlags
	Targets      chain.Endpoints `flag:"target-node"    desc:"target node endpoint ip:port (repeatable)"`
	TxCount      uint64          `flag:"num-of-txs"     desc:"total number of transactions to send"`
	InputsPerTx  uint32          `flag:"inputs-per-tx"  desc:"inputs per generated transaction"`
	OutputsPerTx uint32          `flag:"outputs-per-tx" desc:"outputs per generated transaction"`
	Fee          chain.Lovelace  `flag:"tx-fee"         desc:"fee per generated transaction"`
	TPS          float64         `flag:"tps"            desc:"transaction submission rate per second"`
	AddTxSize    uint32          `flag:"add-tx-size"    desc:"extra payload bytes added to each transaction"`
	SigKeys      []string        `flag:"sig-key"        desc:"signing key file (repeatable)"`
	NodeID       chain.NodeID    `flag:"node-id"        desc:"identifier of the submitting node"`
}

func generateTxsCommand(dispatcher command.Dispatcher) *cli.Command {
	var params generateTxsParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "generate-txs",
		Summary: "Flood target nodes with generated transactions",
		Description: `Generate and submit a stream of transactions against one or more
target nodes. The rate, shape, and signing keys of the generated
transactions are fixed up front; scheduling their concurrent
submission is the generator's job, not this command's.`,
		Flags: func() *pflag.FlagSet {
			flagSet = cli.FlagsFromParams("generate-txs", &params)
			return flagSet
		},
		Required: []string{
			"target-node", "num-of-txs", "inputs-per-tx", "outputs-per-tx",
			"tx-fee", "tps", "sig-key", "node-id",
		},
		Run: func(args []string) error {
			targets, err := command.NewNonEmpty("--target-node", []chain.Endpoint(params.Targets))
			if err != nil {
				return err
			}
			sigKeys, err := command.NewNonEmpty("--sig-key", params.SigKeys)
			if err != nil {
				return err
			}
			generate := command.GenerateTxs{
				Targets:         targets,
				TxCount:         params.TxCount,
				InputsPerTx:     params.InputsPerTx,
				OutputsPerTx:    params.OutputsPerTx,
				FeePerTx:        params.Fee,
				TPS:             params.TPS,
				SigningKeyPaths: sigKeys,
				Node:            params.NodeID,
				Overrides:       params.Overrides.Overrides(),
			}
			if flagSet.Changed("add-tx-size") {
				extra := params.AddTxSize
				generate.ExtraPayloadSize = &extra
			}
			return dispatcher.Dispatch(generate)
		},
		Examples: []cli.Example{
			{
				Description: "Send 10000 two-in two-out transactions at 100 tps",
				Command: "cardano-cli generate-txs --target-node 127.0.0.1:3000 --num-of-txs 10000 " +
					"--inputs-per-tx 2 --outputs-per-tx 2 --tx-fee 1000000 --tps 100 " +
					"--sig-key wallet.sk --node-id 0",
			},
		},
	}
}
