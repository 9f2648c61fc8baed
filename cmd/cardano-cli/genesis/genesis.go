// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package genesis

import (
	"github.com/spf13/pflag"

	"github.com/Fourierlabs/cardano-node/cmd/cardano-cli/cli"
	"github.com/Fourierlabs/cardano-node/lib/chain"
	"github.com/Fourierlabs/cardano-node/lib/command"
	genesislib "github.com/Fourierlabs/cardano-node/lib/genesis"
)

type genesisParams struct {
	OutputDir          string                `flag:"genesis-output-dir"       desc:"directory the genesis is written into"`
	StartTime          int64                 `flag:"start-time"               desc:"chain start time, seconds since the Unix epoch"`
	ProtocolParameters string                `flag:"protocol-parameters-file" desc:"JSON file with the initial protocol parameters"`
	K                  uint64                `flag:"k"                        desc:"chain security parameter"`
	ProtocolMagic      uint32                `flag:"protocol-magic"           desc:"protocol magic of the generated chain"`
	PoorAddresses      uint64                `flag:"n-poor-addresses"         desc:"number of poor addresses to create"`
	DelegateAddresses  uint64                `flag:"n-delegate-addresses"     desc:"number of delegate (rich) addresses to create"`
	TotalBalance       chain.Lovelace        `flag:"total-balance"            desc:"total balance distributed across all addresses"`
	DelegateShare      chain.LovelacePortion `flag:"delegate-share"           desc:"portion of the total balance that goes to delegates"`
	AvvmEntryCount     uint64                `flag:"avvm-entry-count"         desc:"number of fake voucher entries"`
	AvvmEntryBalance   chain.Lovelace        `flag:"avvm-entry-balance"       desc:"balance of each fake voucher entry"`
	AvvmBalanceFactor  chain.LovelacePortion `flag:"avvm-balance-factor"      desc:"scale factor applied to real voucher balances"`
	Seed               uint64                `flag:"secret-seed"              desc:"fixed seed for deterministic generation"`
}

func genesisCommand(dispatcher command.Dispatcher) *cli.Command {
	var params genesisParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "genesis",
		Summary: "Generate a new genesis into a directory",
		Description: `Generate a new genesis and the secret keys behind it.

The balance distribution, fake voucher allocation, and protocol
parameters are all given explicitly. The voucher balance factor
defaults to exactly 1 when the flag is absent; the secret seed is
optional and, when absent, generation uses fresh randomness.`,
		Flags: func() *pflag.FlagSet {
			// The balance factor's documented default is the full
			// portion, applied before binding so help output and an
			// unset flag agree.
			params.AvvmBalanceFactor = chain.FullPortion()
			flagSet = cli.FlagsFromParams("genesis", &params)
			return flagSet
		},
		Required: []string{
			"genesis-output-dir", "start-time", "protocol-parameters-file",
			"k", "protocol-magic", "n-poor-addresses", "n-delegate-addresses",
			"total-balance", "delegate-share", "avvm-entry-count", "avvm-entry-balance",
		},
		Run: func(args []string) error {
			parameters := genesislib.Parameters{
				StartTime:              chain.StartTimeFromUnix(params.StartTime),
				ProtocolParametersFile: params.ProtocolParameters,
				K:                      params.K,
				ProtocolMagic:          params.ProtocolMagic,
				TestnetBalance: genesislib.TestnetBalanceOptions{
					Poors:        params.PoorAddresses,
					Richmen:      params.DelegateAddresses,
					TotalBalance: params.TotalBalance,
					RichmenShare: params.DelegateShare,
				},
				FakeAvvm: genesislib.FakeAvvmOptions{
					Count:      params.AvvmEntryCount,
					OneBalance: params.AvvmEntryBalance,
				},
				AvvmBalanceFactor: params.AvvmBalanceFactor,
			}
			if flagSet.Changed("secret-seed") {
				seed := params.Seed
				parameters.Seed = &seed
			}
			if err := parameters.Validate(); err != nil {
				return err
			}
			return dispatcher.Dispatch(command.Genesis{
				OutputDir: params.OutputDir,
				Params:    parameters,
			})
		},
		Examples: []cli.Example{
			{
				Description: "Generate a small test chain genesis",
				Command: "cardano-cli genesis --genesis-output-dir ./genesis " +
					"--start-time 1506203091 --protocol-parameters-file params.json " +
					"--k 2160 --protocol-magic 314159265 --n-poor-addresses 128 " +
					"--n-delegate-addresses 7 --total-balance 8000000000000000 " +
					"--delegate-share 900000000000000 --avvm-entry-count 128 " +
					"--avvm-entry-balance 10000000000000",
			},
		},
	}
}
