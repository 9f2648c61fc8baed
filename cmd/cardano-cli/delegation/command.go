// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

// Package delegation assembles the heavyweight delegation commands:
// issuing delegation certificates and checking existing ones.
package delegation

import (
	"github.com/spf13/pflag"

	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	"github.com/Fourierlabs/cardano-node/lib/chain"
	"github.com/Fourierlabs/cardano-node/lib/command"
)

// Commands returns the delegation command group.
func Commands(dispatcher command.Dispatcher) []*cli.Command {
	return []*cli.Command{
		issueCertificateCommand(dispatcher),
		checkDelegationCommand(dispatcher),
	}
}

type issueCertificateParams struct {
	Network        chain.NetworkFlags
	Epoch          uint64 `flag:"epoch"                   desc:"epoch the delegation starts in"`
	IssuerKey      string `flag:"issuer-key"              desc:"issuer signing key file"`
	DelegateKey    string `flag:"delegate-key"            desc:"delegate verification key file"`
	CertificateOut string `flag:"certificate-out"         desc:"output file for the certificate"`
}

func issueCertificateCommand(dispatcher command.Dispatcher) *cli.Command {
	var params issueCertificateParams

	return &cli.Command{
		Name:    "issue-delegation-certificate",
		Summary: "Issue a delegation certificate from an issuer to a delegate",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("issue-delegation-certificate", &params)
		},
		Required: []string{"epoch", "issuer-key", "delegate-key", "certificate-out"},
		Run: func(args []string) error {
			network, err := params.Network.Network()
			if err != nil {
				return err
			}
			return dispatcher.Dispatch(command.IssueDelegationCertificate{
				Network:            network,
				Epoch:              chain.EpochNumber(params.Epoch),
				IssuerKeyPath:      params.IssuerKey,
				DelegateKeyPath:    params.DelegateKey,
				CertificateOutPath: params.CertificateOut,
			})
		},
		Examples: []cli.Example{
			{
				Description: "Issue a certificate for epoch 42 on a testnet",
				Command: "cardano-cli issue-delegation-certificate --testnet-magic 42 --epoch 42 " +
					"--issuer-key issuer.sk --delegate-key delegate.vk --certificate-out delegation.cert",
			},
		},
	}
}

type checkDelegationParams struct {
	Network     chain.NetworkFlags
	Certificate string `flag:"certificate"  desc:"delegation certificate file"`
	IssuerKey   string `flag:"issuer-key"   desc:"issuer verification key file"`
	DelegateKey string `flag:"delegate-key" desc:"delegate verification key file"`
}

func checkDelegationCommand(dispatcher command.Dispatcher) *cli.Command {
	var params checkDelegationParams

	return &cli.Command{
		Name:    "check-delegation",
		Summary: "Check that a delegation certificate matches its keys",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("check-delegation", &params)
		},
		Required: []string{"certificate", "issuer-key", "delegate-key"},
		Run: func(args []string) error {
			network, err := params.Network.Network()
			if err != nil {
				return err
			}
			return dispatcher.Dispatch(command.CheckDelegation{
				Network:         network,
				CertificatePath: params.Certificate,
				IssuerKeyPath:   params.IssuerKey,
				DelegateKeyPath: params.DelegateKey,
			})
		},
	}
}
