// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

// Package genesis assembles the genesis commands: generating a new
// genesis and hashing an existing genesis file.
package genesis

import (
	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	"github.com/Fourierlabs/cardano-node/lib/command"
)

// Commands returns the genesis command group.
func Commands(dispatcher command.Dispatcher) []*cli.Command {
	return []*cli.Command{
		genesisCommand(dispatcher),
		printGenesisHashCommand(dispatcher),
	}
}
