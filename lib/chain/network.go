// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package chain

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// NetworkIdentity tags an invocation with the network it addresses:
// either the main network (which shares its protocol magic with
// staging) or a testnet identified by an explicit magic number.
type NetworkIdentity struct {
	testnet bool
	magic   uint32
}

// MainOrStaging returns the identity of the main or staging network.
func MainOrStaging() NetworkIdentity {
	return NetworkIdentity{}
}

// Testnet returns the identity of the testnet with the given magic.
func Testnet(magic uint32) NetworkIdentity {
	return NetworkIdentity{testnet: true, magic: magic}
}

// IsTestnet reports whether the identity names a testnet.
func (n NetworkIdentity) IsTestnet() bool {
	return n.testnet
}

// TestnetMagic returns the testnet magic number and whether the
// identity is a testnet at all.
func (n NetworkIdentity) TestnetMagic() (uint32, bool) {
	return n.magic, n.testnet
}

// String renders the identity for help and hand-off output.
func (n NetworkIdentity) String() string {
	if n.testnet {
		return "testnet-" + strconv.FormatUint(uint64(n.magic), 10)
	}
	return "mainnet-or-staging"
}

// MarshalText implements encoding.TextMarshaler.
func (n NetworkIdentity) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// NetworkFlags binds the mutually exclusive network selector flags to
// a flag set. Commands embed it in their params struct; after flag
// parsing, Network resolves the selection.
type NetworkFlags struct {
	mainnet bool
	magic   uint32
	flagSet *pflag.FlagSet
}

// AddFlags registers --mainnet and --testnet-magic.
func (f *NetworkFlags) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.BoolVar(&f.mainnet, "mainnet", false, "address the main or staging network")
	flagSet.Uint32Var(&f.magic, "testnet-magic", 0, "address the testnet with this protocol magic")
	f.flagSet = flagSet
}

// Network resolves the parsed selector flags into a NetworkIdentity.
// Exactly one of the two flags must have been supplied: neither is a
// missing-required-option error, both is a conflict.
func (f *NetworkFlags) Network() (NetworkIdentity, error) {
	mainnetSet := f.flagSet.Changed("mainnet")
	magicSet := f.flagSet.Changed("testnet-magic")

	switch {
	case mainnetSet && magicSet:
		return NetworkIdentity{}, fmt.Errorf("--mainnet and --testnet-magic are mutually exclusive")
	case mainnetSet:
		return MainOrStaging(), nil
	case magicSet:
		return Testnet(f.magic), nil
	default:
		return NetworkIdentity{}, fmt.Errorf("missing required flag: one of --mainnet or --testnet-magic")
	}
}
