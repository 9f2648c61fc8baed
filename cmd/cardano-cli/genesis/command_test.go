// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package genesis

import (
	"strings"
	"testing"
	"time"

	"github.com/Fourierlabs/cardano-node/lib/command"
)

func run(t *testing.T, args ...string) (command.Command, error) {
	t.Helper()
	var got command.Command
	recorder := command.DispatchFunc(func(cmd command.Command) error {
		got = cmd
		return nil
	})
	for _, sub := range Commands(recorder) {
		if sub.Name == args[0] {
			err := sub.Execute(args[1:])
			return got, err
		}
	}
	t.Fatalf("no subcommand named %q", args[0])
	return nil, nil
}

func genesisArgs(overrides ...string) []string {
	args := []string{"genesis",
		"--genesis-output-dir", "./out",
		"--start-time", "1506203091",
		"--protocol-parameters-file", "params.json",
		"--k", "2160",
		"--protocol-magic", "314159265",
		"--n-poor-addresses", "128",
		"--n-delegate-addresses", "7",
		"--total-balance", "8000000000000000",
		"--delegate-share", "900000000000000",
		"--avvm-entry-count", "128",
		"--avvm-entry-balance", "10000000000000",
	}
	return append(args, overrides...)
}

func TestGenesisValidatesBeforeDispatch(t *testing.T) {
	got, err := run(t, genesisArgs("--n-delegate-addresses", "0")...)
	if err == nil {
		t.Fatal("expected an error with zero delegate addresses")
	}
	if got != nil {
		t.Fatalf("dispatched %T despite invalid parameters", got)
	}
}

func TestGenesisStartTime(t *testing.T) {
	got, err := run(t, genesisArgs()...)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	cmd, ok := got.(command.Genesis)
	if !ok {
		t.Fatalf("dispatched %T, want command.Genesis", got)
	}
	if got, want := cmd.Params.StartTime.Unix(), int64(1506203091); got != want {
		t.Errorf("StartTime.Unix() = %d, want %d", got, want)
	}
	if cmd.Params.StartTime.Location() != time.UTC {
		t.Errorf("StartTime location = %v, want UTC", cmd.Params.StartTime.Location())
	}
}

func TestGenesisMissingFlagsListedTogether(t *testing.T) {
	_, err := run(t, "genesis", "--genesis-output-dir", "./out")
	if err == nil {
		t.Fatal("expected an error with most flags missing")
	}
	for _, flag := range []string{"--start-time", "--k", "--total-balance"} {
		if !strings.Contains(err.Error(), flag) {
			t.Errorf("error %q does not name %s", err, flag)
		}
	}
}

func TestPrintGenesisHash(t *testing.T) {
	got, err := run(t, "print-genesis-hash", "--genesis-json", "genesis.json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	cmd, ok := got.(command.PrintGenesisHash)
	if !ok {
		t.Fatalf("dispatched %T, want command.PrintGenesisHash", got)
	}
	if cmd.GenesisJSONPath != "genesis.json" {
		t.Errorf("GenesisJSONPath = %q", cmd.GenesisJSONPath)
	}
}
