// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package tx

import (
	"github.com/spf13/pflag"

	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	"github.com/Fourierlabs/cardano-node/lib/chain"
	"github.com/Fourierlabs/cardano-node/lib/command"
)

type spendGenesisParams struct {
	Tx        string        `flag:"tx"         desc:"output file for the written transaction"`
	WalletKey string        `flag:"wallet-key" desc:"signing key of the spending wallet"`
	From      chain.Address `flag:"rich-addr-from" desc:"genesis address to spend from"`
	Outputs   chain.TxOuts  `flag:"txout"      desc:"transaction output \"(address,amount)\" (repeatable)"`
}

func spendGenesisUTxOCommand(dispatcher command.Dispatcher) *cli.Command {
	var params spendGenesisParams

	return &cli.Command{
		Name:    "issue-genesis-utxo-expenditure",
		Summary: "Write a transaction spending a genesis UTxO",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("issue-genesis-utxo-expenditure", &params)
		},
		Required: []string{"tx", "wallet-key", "rich-addr-from", "txout"},
		Run: func(args []string) error {
			outputs, err := command.NewNonEmpty("--txout", []chain.TxOut(params.Outputs))
			if err != nil {
				return err
			}
			return dispatcher.Dispatch(command.SpendGenesisUTxO{
				OutputTxPath:  params.Tx,
				WalletKeyPath: params.WalletKey,
				From:          params.From,
				Outputs:       outputs,
			})
		},
	}
}

type spendParams struct {
	Tx        string       `flag:"tx"         desc:"output file for the written transaction"`
	WalletKey string       `flag:"wallet-key" desc:"signing key of the spending wallet"`
	Inputs    chain.TxIns  `flag:"txin"       desc:"transaction input \"(txid,index)\" (repeatable)"`
	Outputs   chain.TxOuts `flag:"txout"      desc:"transaction output \"(address,amount)\" (repeatable)"`
}

func spendUTxOCommand(dispatcher command.Dispatcher) *cli.Command {
	var params spendParams

	return &cli.Command{
		Name:    "issue-utxo-expenditure",
		Summary: "Write a transaction spending the given UTxOs",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("issue-utxo-expenditure", &params)
		},
		Required: []string{"tx", "wallet-key", "txin", "txout"},
		Run: func(args []string) error {
			inputs, err := command.NewNonEmpty("--txin", []chain.TxIn(params.Inputs))
			if err != nil {
				return err
			}
			outputs, err := command.NewNonEmpty("--txout", []chain.TxOut(params.Outputs))
			if err != nil {
				return err
			}
			return dispatcher.Dispatch(command.SpendUTxO{
				OutputTxPath:  params.Tx,
				WalletKeyPath: params.WalletKey,
				Inputs:        inputs,
				Outputs:       outputs,
			})
		},
		Examples: []cli.Example{
			{
				Description: "Spend one UTxO to one output",
				Command: "cardano-cli issue-utxo-expenditure --tx tx.bin --wallet-key wallet.sk " +
					"--txin '(8b6e...e816,0)' --txout '(2cWKMJemoBa...,999000)'",
			},
		},
	}
}
