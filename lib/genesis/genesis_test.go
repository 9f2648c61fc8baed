// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package genesis

import (
	"testing"
	"time"

	"github.com/Fourierlabs/cardano-node/lib/chain"
)

func validParameters(t *testing.T) Parameters {
	t.Helper()

	total, err := chain.ParseLovelace("8000000000000000")
	if err != nil {
		t.Fatalf("ParseLovelace: %v", err)
	}
	share, err := chain.ParsePortion("900000000000000")
	if err != nil {
		t.Fatalf("ParsePortion: %v", err)
	}
	oneBalance, err := chain.ParseLovelace("10000")
	if err != nil {
		t.Fatalf("ParseLovelace: %v", err)
	}

	return Parameters{
		StartTime:              time.Unix(1506203091, 0).UTC(),
		ProtocolParametersFile: "protocol-parameters.json",
		K:                      2160,
		ProtocolMagic:          764824073,
		TestnetBalance: TestnetBalanceOptions{
			Poors:        128,
			Richmen:      7,
			TotalBalance: total,
			RichmenShare: share,
		},
		FakeAvvm: FakeAvvmOptions{
			Count:      10,
			OneBalance: oneBalance,
		},
		AvvmBalanceFactor: chain.FullPortion(),
	}
}

func TestParametersValidate(t *testing.T) {
	if err := validParameters(t).Validate(); err != nil {
		t.Errorf("valid parameters rejected: %v", err)
	}
}

func TestParametersValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{name: "zero start time", mutate: func(p *Parameters) { p.StartTime = time.Time{} }},
		{name: "missing protocol parameters file", mutate: func(p *Parameters) { p.ProtocolParametersFile = "" }},
		{name: "zero k", mutate: func(p *Parameters) { p.K = 0 }},
		{name: "no rich addresses", mutate: func(p *Parameters) { p.TestnetBalance.Richmen = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParameters(t)
			tt.mutate(&params)
			if err := params.Validate(); err == nil {
				t.Error("invalid parameters accepted")
			}
		})
	}
}

func TestSeedIsOptionalNotDefaulted(t *testing.T) {
	params := validParameters(t)
	if params.Seed != nil {
		t.Fatal("fresh parameters carry a seed")
	}

	seed := uint64(54321)
	params.Seed = &seed
	if err := params.Validate(); err != nil {
		t.Errorf("parameters with seed rejected: %v", err)
	}
}
