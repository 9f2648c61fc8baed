// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package chain

import (
	"encoding/hex"
	"fmt"
)

// TxIDLength is the byte length of a transaction identifier.
const TxIDLength = 32

// TxID identifies a transaction by its 32-byte hash.
type TxID struct {
	hash [TxIDLength]byte
}

// ParseTxID decodes a hex transaction identifier. The decoded value
// must be exactly TxIDLength bytes.
func ParseTxID(raw string) (TxID, error) {
	decoded, err := hex.DecodeString(raw)
	if err != nil {
		return TxID{}, fmt.Errorf("transaction id %q: invalid hex: %w", raw, err)
	}
	if len(decoded) != TxIDLength {
		return TxID{}, fmt.Errorf("transaction id %q: %d bytes, want %d", raw, len(decoded), TxIDLength)
	}
	var id TxID
	copy(id.hash[:], decoded)
	return id, nil
}

// Bytes returns the 32-byte hash.
func (t TxID) Bytes() [TxIDLength]byte {
	return t.hash
}

// String returns the lowercase hex form.
func (t TxID) String() string {
	return hex.EncodeToString(t.hash[:])
}

// MarshalText implements encoding.TextMarshaler.
func (t TxID) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TxID) UnmarshalText(data []byte) error {
	parsed, err := ParseTxID(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
