// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Fourierlabs/cardano-node/lib/chain"
)

func TestDispatchFunc(t *testing.T) {
	var received Command
	dispatcher := DispatchFunc(func(cmd Command) error {
		received = cmd
		return nil
	})

	if err := dispatcher.Dispatch(Keygen{OutputKeyPath: "key.sk"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	keygen, ok := received.(Keygen)
	if !ok {
		t.Fatalf("received %T, want Keygen", received)
	}
	if keygen.OutputKeyPath != "key.sk" {
		t.Errorf("OutputKeyPath = %q, want key.sk", keygen.OutputKeyPath)
	}
}

func TestDescribe(t *testing.T) {
	var output bytes.Buffer

	cmd := PrintSigningKeyAddress{
		Network:    chain.Testnet(42),
		SecretPath: "delegate.sk",
	}
	if err := Describe(&output).Dispatch(cmd); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	rendered := output.String()
	for _, want := range []string{"signing-key-address", "testnet-42", "delegate.sk"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("describe output missing %q:\n%s", want, rendered)
		}
	}
}

func TestCommandNamesAreUnique(t *testing.T) {
	commands := []Command{
		Keygen{},
		ToVerification{},
		PrettySigningKeyPublic{},
		PrintSigningKeyAddress{},
		MigrateDelegateKeyFrom{},
		IssueDelegationCertificate{},
		CheckDelegation{},
		Genesis{},
		PrintGenesisHash{},
		SubmitTx{},
		SpendGenesisUTxO{},
		SpendUTxO{},
		GenerateTxs{},
		ValidateCBOR{},
		Version{},
	}

	seen := make(map[string]bool, len(commands))
	for _, cmd := range commands {
		name := cmd.Name()
		if name == "" {
			t.Errorf("%T has an empty name", cmd)
		}
		if seen[name] {
			t.Errorf("duplicate command name %q", name)
		}
		seen[name] = true
	}
}
