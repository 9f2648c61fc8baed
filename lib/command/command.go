// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/Fourierlabs/cardano-node/lib/chain"
	"github.com/Fourierlabs/cardano-node/lib/codec"
	"github.com/Fourierlabs/cardano-node/lib/config"
	"github.com/Fourierlabs/cardano-node/lib/genesis"
)

// Command is one fully validated, immutable unit of work selected by
// the invoker. Exactly one variant is produced per invocation.
type Command interface {
	// Name returns the subcommand that produced the variant.
	Name() string

	isCommand()
}

// Keygen creates a new signing key.
type Keygen struct {
	// OutputKeyPath is where the new key is written. Existence checks
	// on output paths belong to the file-system collaborator.
	OutputKeyPath string `yaml:"output-key-path"`

	// PasswordProtected selects interactive password protection for
	// the written key.
	PasswordProtected bool `yaml:"password-protected"`
}

func (Keygen) Name() string { return "keygen" }
func (Keygen) isCommand()   {}

// ToVerification extracts the verification key of a signing key.
type ToVerification struct {
	SecretPath string `yaml:"secret-path"`
	OutputPath string `yaml:"output-path"`
}

func (ToVerification) Name() string { return "to-verification" }
func (ToVerification) isCommand()   {}

// PrettySigningKeyPublic pretty-prints the public part of a signing
// key.
type PrettySigningKeyPublic struct {
	SecretPath string `yaml:"secret-path"`
}

func (PrettySigningKeyPublic) Name() string { return "signing-key-public" }
func (PrettySigningKeyPublic) isCommand()   {}

// PrintSigningKeyAddress prints the address of a signing key on the
// selected network.
type PrintSigningKeyAddress struct {
	Network    chain.NetworkIdentity `yaml:"network"`
	SecretPath string                `yaml:"secret-path"`
}

func (PrintSigningKeyAddress) Name() string { return "signing-key-address" }
func (PrintSigningKeyAddress) isCommand()   {}

// MigrateDelegateKeyFrom converts a legacy-format delegate key into
// the current format.
type MigrateDelegateKeyFrom struct {
	FromPath string `yaml:"from-path"`
	ToPath   string `yaml:"to-path"`
}

func (MigrateDelegateKeyFrom) Name() string { return "migrate-delegate-key-from" }
func (MigrateDelegateKeyFrom) isCommand()   {}

// IssueDelegationCertificate creates a delegation certificate from an
// issuer to a delegate for an epoch.
type IssueDelegationCertificate struct {
	Network            chain.NetworkIdentity `yaml:"network"`
	Epoch              chain.EpochNumber     `yaml:"epoch"`
	IssuerKeyPath      string                `yaml:"issuer-key-path"`
	DelegateKeyPath    string                `yaml:"delegate-key-path"`
	CertificateOutPath string                `yaml:"certificate-out-path"`
}

func (IssueDelegationCertificate) Name() string { return "issue-delegation-certificate" }
func (IssueDelegationCertificate) isCommand()   {}

// CheckDelegation verifies that a delegation certificate matches the
// given issuer and delegate keys.
type CheckDelegation struct {
	Network         chain.NetworkIdentity `yaml:"network"`
	CertificatePath string                `yaml:"certificate-path"`
	IssuerKeyPath   string                `yaml:"issuer-key-path"`
	DelegateKeyPath string                `yaml:"delegate-key-path"`
}

func (CheckDelegation) Name() string { return "check-delegation" }
func (CheckDelegation) isCommand()   {}

// Genesis generates a new genesis into an output directory.
type Genesis struct {
	OutputDir string             `yaml:"output-dir"`
	Params    genesis.Parameters `yaml:"params"`
}

func (Genesis) Name() string { return "genesis" }
func (Genesis) isCommand()   {}

// PrintGenesisHash computes and prints the hash of a genesis JSON
// file.
type PrintGenesisHash struct {
	GenesisJSONPath string `yaml:"genesis-json-path"`
}

func (PrintGenesisHash) Name() string { return "print-genesis-hash" }
func (PrintGenesisHash) isCommand()   {}

// SubmitTx submits an already-signed transaction file to a node.
type SubmitTx struct {
	TxPath    string               `yaml:"tx-path"`
	Target    chain.Endpoint       `yaml:"target"`
	Node      chain.NodeID         `yaml:"node"`
	Overrides config.NodeOverrides `yaml:"overrides"`
}

func (SubmitTx) Name() string { return "submit-tx" }
func (SubmitTx) isCommand()   {}

// SpendGenesisUTxO writes a transaction spending a genesis UTxO to
// the given outputs.
type SpendGenesisUTxO struct {
	OutputTxPath  string                `yaml:"output-tx-path"`
	WalletKeyPath string                `yaml:"wallet-key-path"`
	From          chain.Address         `yaml:"from"`
	Outputs       NonEmpty[chain.TxOut] `yaml:"outputs"`
}

func (SpendGenesisUTxO) Name() string { return "issue-genesis-utxo-expenditure" }
func (SpendGenesisUTxO) isCommand()   {}

// SpendUTxO writes a transaction spending the given inputs to the
// given outputs.
type SpendUTxO struct {
	OutputTxPath  string                `yaml:"output-tx-path"`
	WalletKeyPath string                `yaml:"wallet-key-path"`
	Inputs        NonEmpty[chain.TxIn]  `yaml:"inputs"`
	Outputs       NonEmpty[chain.TxOut] `yaml:"outputs"`
}

func (SpendUTxO) Name() string { return "issue-utxo-expenditure" }
func (SpendUTxO) isCommand()   {}

// GenerateTxs floods the given target nodes with generated
// transactions. All scheduling values (TPS, counts) are passed
// through as plain validated numbers; the generation collaborator
// owns their concurrent use.
type GenerateTxs struct {
	Targets          NonEmpty[chain.Endpoint] `yaml:"targets"`
	TxCount          uint64                   `yaml:"tx-count"`
	InputsPerTx      uint32                   `yaml:"inputs-per-tx"`
	OutputsPerTx     uint32                   `yaml:"outputs-per-tx"`
	FeePerTx         chain.Lovelace           `yaml:"fee-per-tx"`
	TPS              float64                  `yaml:"tps"`
	ExtraPayloadSize *uint32                  `yaml:"extra-payload-size,omitempty"`
	SigningKeyPaths  NonEmpty[string]         `yaml:"signing-key-paths"`
	Node             chain.NodeID             `yaml:"node"`
	Overrides        config.NodeOverrides     `yaml:"overrides"`
}

func (GenerateTxs) Name() string { return "generate-txs" }
func (GenerateTxs) isCommand()   {}

// ValidateCBOR checks that a chain file is well-formed CBOR of the
// expected object kind and prints its diagnostic notation.
type ValidateCBOR struct {
	Kind     codec.ObjectKind `yaml:"kind"`
	FilePath string           `yaml:"file-path"`
}

func (ValidateCBOR) Name() string { return "validate-cbor" }
func (ValidateCBOR) isCommand()   {}

// Version prints version information.
type Version struct{}

func (Version) Name() string { return "version" }
func (Version) isCommand()   {}
