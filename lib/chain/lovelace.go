// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package chain

import (
	"fmt"
	"strconv"
)

// maxLovelaceSupply is the protocol's fixed maximum supply:
// 45 billion ada, expressed in lovelace.
const maxLovelaceSupply uint64 = 45_000_000_000_000_000

// Lovelace is a bounded quantity of the chain's native unit. A
// Lovelace value always lies within [0, MaxLovelaceSupply]; amounts
// outside that range are unrepresentable after construction.
type Lovelace struct {
	amount uint64
}

// MaxLovelaceSupply returns the largest representable amount.
func MaxLovelaceSupply() Lovelace {
	return Lovelace{amount: maxLovelaceSupply}
}

// NewLovelace validates a raw amount against the supply bound.
func NewLovelace(amount uint64) (Lovelace, error) {
	if amount > maxLovelaceSupply {
		return Lovelace{}, fmt.Errorf("lovelace amount %d exceeds maximum supply %d", amount, maxLovelaceSupply)
	}
	return Lovelace{amount: amount}, nil
}

// ParseLovelace parses a non-negative decimal amount and validates it
// against the supply bound.
func ParseLovelace(raw string) (Lovelace, error) {
	amount, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return Lovelace{}, fmt.Errorf("lovelace amount %q: not a non-negative integer", raw)
	}
	return NewLovelace(amount)
}

// Uint64 returns the raw amount in lovelace.
func (l Lovelace) Uint64() uint64 {
	return l.amount
}

// String renders the amount as a decimal integer.
func (l Lovelace) String() string {
	return strconv.FormatUint(l.amount, 10)
}

// MarshalText implements encoding.TextMarshaler.
func (l Lovelace) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Lovelace) UnmarshalText(data []byte) error {
	parsed, err := ParseLovelace(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Set implements pflag.Value.
func (l *Lovelace) Set(raw string) error {
	return l.UnmarshalText([]byte(raw))
}

// Type implements pflag.Value.
func (l *Lovelace) Type() string {
	return "lovelace"
}
