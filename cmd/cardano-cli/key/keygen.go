// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package key

import (
	"github.com/spf13/pflag"

	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	"github.com/Fourierlabs/cardano-node/lib/command"
)

type keygenParams struct {
	Secret     string `flag:"secret"      desc:"output file for the new signing key"`
	NoPassword bool   `flag:"no-password" desc:"write the key without password protection"`
}

func keygenCommand(dispatcher command.Dispatcher) *cli.Command {
	var params keygenParams

	return &cli.Command{
		Name:    "keygen",
		Summary: "Create a new signing key",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("keygen", &params)
		},
		Required: []string{"secret"},
		Run: func(args []string) error {
			return dispatcher.Dispatch(command.Keygen{
				OutputKeyPath:     params.Secret,
				PasswordProtected: !params.NoPassword,
			})
		},
		Examples: []cli.Example{
			{
				Description: "Create a password-protected signing key",
				Command:     "cardano-cli keygen --secret delegate.sk",
			},
			{
				Description: "Create an unprotected key for automation",
				Command:     "cardano-cli keygen --secret delegate.sk --no-password",
			},
		},
	}
}
