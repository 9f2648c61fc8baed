// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package chain

import (
	"fmt"
	"math/bits"
	"strconv"
)

// PortionDenominator is the fixed denominator of every
// LovelacePortion. Portions are exact fractions over this base; no
// floating-point rounding is involved anywhere.
const PortionDenominator uint64 = 1_000_000_000_000_000

// LovelacePortion expresses a share of a whole as an exact fraction
// numerator/PortionDenominator, with numerator ≤ denominator.
type LovelacePortion struct {
	numerator uint64
}

// FullPortion returns the portion representing the whole (exactly 1).
func FullPortion() LovelacePortion {
	return LovelacePortion{numerator: PortionDenominator}
}

// NewPortion validates a numerator against the fixed denominator.
func NewPortion(numerator uint64) (LovelacePortion, error) {
	if numerator > PortionDenominator {
		return LovelacePortion{}, fmt.Errorf("portion numerator %d exceeds denominator %d", numerator, PortionDenominator)
	}
	return LovelacePortion{numerator: numerator}, nil
}

// ParsePortion parses a non-negative decimal numerator over the fixed
// denominator.
func ParsePortion(raw string) (LovelacePortion, error) {
	numerator, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return LovelacePortion{}, fmt.Errorf("portion %q: not a non-negative integer", raw)
	}
	return NewPortion(numerator)
}

// Numerator returns the exact numerator over PortionDenominator.
func (p LovelacePortion) Numerator() uint64 {
	return p.numerator
}

// IsFull reports whether the portion is exactly 1.
func (p LovelacePortion) IsFull() bool {
	return p.numerator == PortionDenominator
}

// ApplyTo scales an amount by the portion, truncating toward zero.
// The result of scaling a valid Lovelace never exceeds the supply
// bound, so the construction cannot fail.
func (p LovelacePortion) ApplyTo(amount Lovelace) Lovelace {
	// 128-bit intermediate to avoid overflow of amount * numerator.
	high, low := bits.Mul64(amount.amount, p.numerator)
	scaled, _ := bits.Div64(high, low, PortionDenominator)
	return Lovelace{amount: scaled}
}

// String renders the numerator as a decimal integer.
func (p LovelacePortion) String() string {
	return strconv.FormatUint(p.numerator, 10)
}

// MarshalText implements encoding.TextMarshaler.
func (p LovelacePortion) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *LovelacePortion) UnmarshalText(data []byte) error {
	parsed, err := ParsePortion(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Set implements pflag.Value.
func (p *LovelacePortion) Set(raw string) error {
	return p.UnmarshalText([]byte(raw))
}

// Type implements pflag.Value.
func (p *LovelacePortion) Type() string {
	return "portion"
}
