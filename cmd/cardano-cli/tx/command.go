// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

// Package tx assembles the transaction commands: submitting a signed
// transaction, writing UTxO expenditures, and flooding a cluster with
// generated transactions. These commands talk to a running node, so
// each also carries the node override flags that layer over the node
// configuration file.
package tx

import (
	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	"github.com/Fourierlabs/cardano-node/lib/command"
)

// Commands returns the transaction command group.
func Commands(dispatcher command.Dispatcher) []*cli.Command {
	return []*cli.Command{
		submitTxCommand(dispatcher),
		spendGenesisUTxOCommand(dispatcher),
		spendUTxOCommand(dispatcher),
		generateTxsCommand(dispatcher),
	}
}
