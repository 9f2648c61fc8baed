// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package key

import (
	"github.com/spf13/pflag"

	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	"github.com/Fourierlabs/cardano-node/lib/command"
)

type toVerificationParams struct {
	Secret string `flag:"secret" desc:"signing key file"`
	Output string `flag:"to"     desc:"output file for the verification key"`
}

func toVerificationCommand(dispatcher command.Dispatcher) *cli.Command {
	var params toVerificationParams

	return &cli.Command{
		Name:    "to-verification",
		Summary: "Extract the verification key of a signing key",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("to-verification", &params)
		},
		Required: []string{"secret", "to"},
		Run: func(args []string) error {
			return dispatcher.Dispatch(command.ToVerification{
				SecretPath: params.Secret,
				OutputPath: params.Output,
			})
		},
	}
}

type signingKeyPublicParams struct {
	Secret string `flag:"secret" desc:"signing key file"`
}

func signingKeyPublicCommand(dispatcher command.Dispatcher) *cli.Command {
	var params signingKeyPublicParams

	return &cli.Command{
		Name:    "signing-key-public",
		Summary: "Pretty-print the public part of a signing key",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("signing-key-public", &params)
		},
		Required: []string{"secret"},
		Run: func(args []string) error {
			return dispatcher.Dispatch(command.PrettySigningKeyPublic{
				SecretPath: params.Secret,
			})
		},
	}
}
