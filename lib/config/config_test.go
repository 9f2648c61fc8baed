// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "node.yaml")
	content := `
db-path: /var/lib/cardano/db
genesis-json-path: /etc/cardano/genesis.json
pbft-sig-threshold: 0.22
require-network-magic: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	overrides, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if value, ok := overrides.DBPath.Value(); !ok || value != "/var/lib/cardano/db" {
		t.Errorf("DBPath = (%q,%v), want set /var/lib/cardano/db", value, ok)
	}
	if value, ok := overrides.PBFTSigThreshold.Value(); !ok || value != 0.22 {
		t.Errorf("PBFTSigThreshold = (%v,%v), want set 0.22", value, ok)
	}
	if value, ok := overrides.RequireNetworkMagic.Value(); !ok || !value {
		t.Errorf("RequireNetworkMagic = (%v,%v), want set true", value, ok)
	}

	// Settings absent from the file leave their slot absent.
	if overrides.SocketDir.IsSet() {
		t.Error("SocketDir set from a file that does not mention it")
	}
	if overrides.SlotDurationMs.IsSet() {
		t.Error("SlotDurationMs set from a file that does not mention it")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load on a missing file succeeded")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.yaml")
	if err := os.WriteFile(path, []byte("db-path: [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load on malformed YAML succeeded")
	}
}

func parseOverrideFlags(t *testing.T, args ...string) NodeOverrides {
	t.Helper()

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var flags OverrideFlags
	flags.AddFlags(flagSet)
	if err := flagSet.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return flags.Overrides()
}

func TestOverrideFlagsOnlySuppliedFlagsSet(t *testing.T) {
	overrides := parseOverrideFlags(t, "--socket-dir", "/run/cardano", "--slot-duration", "20000")

	if value, ok := overrides.SocketDir.Value(); !ok || value != "/run/cardano" {
		t.Errorf("SocketDir = (%q,%v), want set /run/cardano", value, ok)
	}
	if value, ok := overrides.SlotDurationMs.Value(); !ok || value != 20000 {
		t.Errorf("SlotDurationMs = (%d,%v), want set 20000", value, ok)
	}
	if overrides.DBPath.IsSet() || overrides.GenesisHash.IsSet() || overrides.RequireNetworkMagic.IsSet() {
		t.Error("slots set without their flags being supplied")
	}
}

func TestOverrideFlagsExplicitZeroValueCounts(t *testing.T) {
	// Supplying a flag with the type's zero value still sets the
	// slot; presence is what matters, not the value.
	overrides := parseOverrideFlags(t, "--pbft-signature-threshold", "0", "--require-network-magic=false")

	if !overrides.PBFTSigThreshold.IsSet() {
		t.Error("explicit zero threshold left the slot absent")
	}
	if value, ok := overrides.RequireNetworkMagic.Value(); !ok || value {
		t.Errorf("RequireNetworkMagic = (%v,%v), want set false", value, ok)
	}
}

func TestNodeOverridesMergeLayersFileUnderFlags(t *testing.T) {
	base := NodeOverrides{
		DBPath:         SetTo("/from/file/db"),
		SigningKeyPath: SetTo("/from/file/key"),
	}
	flags := parseOverrideFlags(t, "--db-path", "/from/flags/db", "--genesis-hash", "1a2b")

	merged := base.Merge(flags)

	if value, _ := merged.DBPath.Value(); value != "/from/flags/db" {
		t.Errorf("DBPath = %q, want the command-line layer to win", value)
	}
	if value, _ := merged.SigningKeyPath.Value(); value != "/from/file/key" {
		t.Errorf("SigningKeyPath = %q, want the file layer kept", value)
	}
	if value, _ := merged.GenesisHash.Value(); value != "1a2b" {
		t.Errorf("GenesisHash = %q, want 1a2b", value)
	}
	if merged.SocketDir.IsSet() {
		t.Error("SocketDir set in merged overrides without any source")
	}
}
