// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package chain

import "testing"

func TestParsePortion(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    uint64
		wantErr bool
	}{
		{name: "zero", raw: "0", want: 0},
		{name: "half", raw: "500000000000000", want: 500000000000000},
		{name: "full", raw: "1000000000000000", want: 1000000000000000},
		{name: "numerator over denominator", raw: "1000000000000001", wantErr: true},
		{name: "negative", raw: "-3", wantErr: true},
		{name: "not a number", raw: "half", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePortion(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePortion(%q) = %v, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePortion(%q): %v", tt.raw, err)
			}
			if got.Numerator() != tt.want {
				t.Errorf("ParsePortion(%q) = %d, want %d", tt.raw, got.Numerator(), tt.want)
			}
		})
	}
}

func TestFullPortion(t *testing.T) {
	full := FullPortion()
	if !full.IsFull() {
		t.Error("FullPortion is not full")
	}
	if full.Numerator() != PortionDenominator {
		t.Errorf("FullPortion numerator = %d, want %d", full.Numerator(), PortionDenominator)
	}
}

func TestPortionApplyTo(t *testing.T) {
	tests := []struct {
		name      string
		numerator uint64
		amount    uint64
		want      uint64
	}{
		{name: "full keeps amount", numerator: PortionDenominator, amount: 12345, want: 12345},
		{name: "zero yields zero", numerator: 0, amount: 12345, want: 0},
		{name: "half truncates", numerator: PortionDenominator / 2, amount: 3, want: 1},
		{name: "half of max supply", numerator: PortionDenominator / 2, amount: maxLovelaceSupply, want: maxLovelaceSupply / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			portion, err := NewPortion(tt.numerator)
			if err != nil {
				t.Fatalf("NewPortion(%d): %v", tt.numerator, err)
			}
			amount, err := NewLovelace(tt.amount)
			if err != nil {
				t.Fatalf("NewLovelace(%d): %v", tt.amount, err)
			}
			if got := portion.ApplyTo(amount).Uint64(); got != tt.want {
				t.Errorf("ApplyTo = %d, want %d", got, tt.want)
			}
		})
	}
}
