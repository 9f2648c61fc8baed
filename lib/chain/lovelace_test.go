// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package chain

import "testing"

func TestParseLovelace(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    uint64
		wantErr bool
	}{
		{name: "zero", raw: "0", want: 0},
		{name: "one", raw: "1", want: 1},
		{name: "typical amount", raw: "1000000", want: 1000000},
		{name: "maximum supply", raw: "45000000000000000", want: 45000000000000000},
		{name: "one over maximum supply", raw: "45000000000000001", wantErr: true},
		{name: "far over maximum supply", raw: "99999999999999999999", wantErr: true},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "not a number", raw: "ten", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "decimal point", raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLovelace(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLovelace(%q) = %v, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLovelace(%q): %v", tt.raw, err)
			}
			if got.Uint64() != tt.want {
				t.Errorf("ParseLovelace(%q) = %d, want %d", tt.raw, got.Uint64(), tt.want)
			}
		})
	}
}

func TestLovelaceTextRoundtrip(t *testing.T) {
	original, err := ParseLovelace("123456789")
	if err != nil {
		t.Fatalf("ParseLovelace: %v", err)
	}

	text, err := original.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	var decoded Lovelace
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q): %v", text, err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %v, want %v", decoded, original)
	}
}

func TestNewLovelaceBound(t *testing.T) {
	if _, err := NewLovelace(maxLovelaceSupply); err != nil {
		t.Errorf("NewLovelace at bound: %v", err)
	}
	if _, err := NewLovelace(maxLovelaceSupply + 1); err == nil {
		t.Error("NewLovelace above bound succeeded")
	}
}
