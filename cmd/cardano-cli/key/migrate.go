// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package key

import (
	"github.com/spf13/pflag"

	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	"github.com/Fourierlabs/cardano-node/lib/command"
)

type migrateParams struct {
	From string `flag:"from" desc:"legacy-format delegate key file"`
	To   string `flag:"to"   desc:"output file for the migrated key"`
}

func migrateDelegateKeyCommand(dispatcher command.Dispatcher) *cli.Command {
	var params migrateParams

	return &cli.Command{
		Name:    "migrate-delegate-key-from",
		Summary: "Convert a legacy delegate key into the current format",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("migrate-delegate-key-from", &params)
		},
		Required: []string{"from", "to"},
		Run: func(args []string) error {
			return dispatcher.Dispatch(command.MigrateDelegateKeyFrom{
				FromPath: params.From,
				ToPath:   params.To,
			})
		},
	}
}
