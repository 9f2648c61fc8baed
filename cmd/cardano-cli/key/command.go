// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package key

import (
	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	"github.com/Fourierlabs/cardano-node/lib/command"
)

// Commands returns the key management command group. Grouping is
// purely organizational: the registry flattens every group into one
// selectable set, so these subcommands are invoked directly by name.
func Commands(dispatcher command.Dispatcher) []*cli.Command {
	return []*cli.Command{
		keygenCommand(dispatcher),
		toVerificationCommand(dispatcher),
		signingKeyPublicCommand(dispatcher),
		signingKeyAddressCommand(dispatcher),
		migrateDelegateKeyCommand(dispatcher),
	}
}
