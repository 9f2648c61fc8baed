// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

// Package genesis defines the composite parameter records consumed by
// genesis generation. Each record is assembled from already-validated
// chain values; Validate checks the cross-field requirements that the
// individual parsers cannot see.
package genesis

import (
	"fmt"
	"time"

	"github.com/Fourierlabs/cardano-node/lib/chain"
)

// TestnetBalanceOptions describes how the initial balance is split
// between rich (delegate) and poor addresses.
type TestnetBalanceOptions struct {
	// Poors is the number of poor addresses to create.
	Poors uint64 `yaml:"poors"`

	// Richmen is the number of rich (delegate) addresses to create.
	Richmen uint64 `yaml:"richmen"`

	// TotalBalance is the total balance distributed across all
	// created addresses.
	TotalBalance chain.Lovelace `yaml:"total-balance"`

	// RichmenShare is the exact fraction of the total balance that
	// goes to rich addresses. The portion type bounds it to at most 1
	// by construction.
	RichmenShare chain.LovelacePortion `yaml:"richmen-share"`
}

// Validate checks the record's cross-field requirements.
func (o TestnetBalanceOptions) Validate() error {
	if o.Richmen == 0 {
		return fmt.Errorf("balance distribution needs at least one rich address")
	}
	return nil
}

// FakeAvvmOptions describes the fake ada-voucher allocations seeded
// into the genesis balance for testing redemption.
type FakeAvvmOptions struct {
	// Count is the number of fake voucher entries.
	Count uint64 `yaml:"count"`

	// OneBalance is the balance assigned to each entry.
	OneBalance chain.Lovelace `yaml:"one-balance"`
}

// Parameters bundles everything genesis generation needs: the chain
// start time, the protocol parameter source, the security parameter,
// the protocol magic, the balance distribution, and the fake voucher
// allocation.
type Parameters struct {
	// StartTime is the absolute start of the chain.
	StartTime time.Time `yaml:"start-time"`

	// ProtocolParametersFile is the path of the JSON file holding the
	// initial protocol parameters. Read by the genesis collaborator,
	// not by this layer.
	ProtocolParametersFile string `yaml:"protocol-parameters-file"`

	// K is the chain security parameter.
	K uint64 `yaml:"k"`

	// ProtocolMagic distinguishes the generated chain.
	ProtocolMagic uint32 `yaml:"protocol-magic"`

	// TestnetBalance is the balance distribution.
	TestnetBalance TestnetBalanceOptions `yaml:"testnet-balance"`

	// FakeAvvm is the fake voucher allocation.
	FakeAvvm FakeAvvmOptions `yaml:"fake-avvm"`

	// AvvmBalanceFactor scales every real voucher balance. Absent a
	// flag it is the full portion (exactly 1).
	AvvmBalanceFactor chain.LovelacePortion `yaml:"avvm-balance-factor"`

	// Seed, when present, fixes the randomness used by generation.
	// Present-or-absent, never defaulted: absence means the
	// collaborator picks fresh randomness.
	Seed *uint64 `yaml:"seed,omitempty"`
}

// Validate checks the record and every sub-record. Composite validity
// is the conjunction of its parts.
func (p Parameters) Validate() error {
	if p.StartTime.IsZero() {
		return fmt.Errorf("genesis parameters: start time is not set")
	}
	if p.ProtocolParametersFile == "" {
		return fmt.Errorf("genesis parameters: protocol parameters file is not set")
	}
	if p.K == 0 {
		return fmt.Errorf("genesis parameters: security parameter k must be positive")
	}
	if err := p.TestnetBalance.Validate(); err != nil {
		return fmt.Errorf("genesis parameters: %w", err)
	}
	return nil
}
