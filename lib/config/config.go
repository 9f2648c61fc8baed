// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

// Package config carries the node settings that may come from a
// configuration file and be overridden on the command line. Every
// setting is an Override slot; this layer only produces slots and the
// associative last-write-wins merge. Deciding which layers exist and
// in what order is the configuration collaborator's job.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// NodeOverrides groups the per-invocation node settings. A zero
// NodeOverrides has every slot absent.
type NodeOverrides struct {
	// DBPath locates the node database directory.
	DBPath Override[string] `yaml:"db-path"`

	// GenesisJSONPath locates the genesis file.
	GenesisJSONPath Override[string] `yaml:"genesis-json-path"`

	// GenesisHash is the expected hex hash of the genesis file.
	GenesisHash Override[string] `yaml:"genesis-hash"`

	// SigningKeyPath locates the node's signing key.
	SigningKeyPath Override[string] `yaml:"signing-key-path"`

	// LogConfigPath locates the logging configuration.
	LogConfigPath Override[string] `yaml:"log-config-path"`

	// SocketDir is the directory holding the node's local sockets.
	SocketDir Override[string] `yaml:"socket-dir"`

	// PBFTSigThreshold overrides the PBFT signature threshold.
	PBFTSigThreshold Override[float64] `yaml:"pbft-sig-threshold"`

	// SlotDurationMs overrides the slot duration in milliseconds.
	SlotDurationMs Override[uint64] `yaml:"slot-duration-ms"`

	// RequireNetworkMagic requires the network magic in addresses
	// and signed data.
	RequireNetworkMagic Override[bool] `yaml:"require-network-magic"`
}

// Merge layers later over o slot by slot, rightmost present value
// winning.
func (o NodeOverrides) Merge(later NodeOverrides) NodeOverrides {
	return NodeOverrides{
		DBPath:              o.DBPath.Merge(later.DBPath),
		GenesisJSONPath:     o.GenesisJSONPath.Merge(later.GenesisJSONPath),
		GenesisHash:         o.GenesisHash.Merge(later.GenesisHash),
		SigningKeyPath:      o.SigningKeyPath.Merge(later.SigningKeyPath),
		LogConfigPath:       o.LogConfigPath.Merge(later.LogConfigPath),
		SocketDir:           o.SocketDir.Merge(later.SocketDir),
		PBFTSigThreshold:    o.PBFTSigThreshold.Merge(later.PBFTSigThreshold),
		SlotDurationMs:      o.SlotDurationMs.Merge(later.SlotDurationMs),
		RequireNetworkMagic: o.RequireNetworkMagic.Merge(later.RequireNetworkMagic),
	}
}

// Load reads a YAML node configuration file into base slots. Settings
// absent from the file leave their slot absent.
func Load(path string) (NodeOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NodeOverrides{}, fmt.Errorf("read node config: %w", err)
	}

	var overrides NodeOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return NodeOverrides{}, fmt.Errorf("parse node config %s: %w", path, err)
	}
	return overrides, nil
}

// OverrideFlags binds the node override settings to command-line
// flags. Commands embed it in their params struct; after flag
// parsing, Overrides returns a NodeOverrides whose slots are set only
// for flags actually supplied, so command-line values layer correctly
// over a configuration file.
type OverrideFlags struct {
	dbPath              string
	genesisJSONPath     string
	genesisHash         string
	signingKeyPath      string
	logConfigPath       string
	socketDir           string
	pbftSigThreshold    float64
	slotDurationMs      uint64
	requireNetworkMagic bool

	flagSet *pflag.FlagSet
}

// AddFlags registers the override flags on flagSet.
func (f *OverrideFlags) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.dbPath, "db-path", "", "node database directory")
	flagSet.StringVar(&f.genesisJSONPath, "genesis-json", "", "genesis JSON file")
	flagSet.StringVar(&f.genesisHash, "genesis-hash", "", "expected hex hash of the genesis file")
	flagSet.StringVar(&f.signingKeyPath, "signing-key", "", "node signing key file")
	flagSet.StringVar(&f.logConfigPath, "log-config", "", "logging configuration file")
	flagSet.StringVar(&f.socketDir, "socket-dir", "", "directory for the node's local sockets")
	flagSet.Float64Var(&f.pbftSigThreshold, "pbft-signature-threshold", 0, "PBFT signature threshold")
	flagSet.Uint64Var(&f.slotDurationMs, "slot-duration", 0, "slot duration in milliseconds")
	flagSet.BoolVar(&f.requireNetworkMagic, "require-network-magic", false, "require network magic in addresses and signed data")
	f.flagSet = flagSet
}

// Overrides collects the supplied flags into override slots. A slot
// is set only when its flag appeared on the command line, regardless
// of the value given.
func (f *OverrideFlags) Overrides() NodeOverrides {
	var overrides NodeOverrides
	if f.flagSet == nil {
		return overrides
	}
	if f.flagSet.Changed("db-path") {
		overrides.DBPath = SetTo(f.dbPath)
	}
	if f.flagSet.Changed("genesis-json") {
		overrides.GenesisJSONPath = SetTo(f.genesisJSONPath)
	}
	if f.flagSet.Changed("genesis-hash") {
		overrides.GenesisHash = SetTo(f.genesisHash)
	}
	if f.flagSet.Changed("signing-key") {
		overrides.SigningKeyPath = SetTo(f.signingKeyPath)
	}
	if f.flagSet.Changed("log-config") {
		overrides.LogConfigPath = SetTo(f.logConfigPath)
	}
	if f.flagSet.Changed("socket-dir") {
		overrides.SocketDir = SetTo(f.socketDir)
	}
	if f.flagSet.Changed("pbft-signature-threshold") {
		overrides.PBFTSigThreshold = SetTo(f.pbftSigThreshold)
	}
	if f.flagSet.Changed("slot-duration") {
		overrides.SlotDurationMs = SetTo(f.slotDurationMs)
	}
	if f.flagSet.Changed("require-network-magic") {
		overrides.RequireNetworkMagic = SetTo(f.requireNetworkMagic)
	}
	return overrides
}
