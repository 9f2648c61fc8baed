// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package chain

import (
	"bytes"
	"fmt"
	"hash/crc32"

	"github.com/fxamacker/cbor/v2"
	"github.com/mr-tron/base58"

	"github.com/Fourierlabs/cardano-node/lib/codec"
)

// addressPayloadTag is the CBOR tag wrapping the serialized address
// payload inside the outer envelope (RFC 8949 tag 24, "encoded CBOR
// data item").
const addressPayloadTag = 24

// addressEnvelope is the outer CBOR structure of a Byron address:
// a two-element array of the tagged payload bytes and a CRC-32
// checksum over those bytes.
type addressEnvelope struct {
	_        struct{} `cbor:",toarray"`
	Payload  cbor.Tag
	Checksum uint32
}

// Address is a payment destination decoded from its checksummed
// base58 text form. Construction verifies the embedded CRC-32, so an
// Address in hand always carries an intact payload.
type Address struct {
	payload []byte
	text    string
}

// ParseAddress decodes a base58 address string and verifies its
// envelope structure and checksum.
func ParseAddress(raw string) (Address, error) {
	decoded, err := base58.Decode(raw)
	if err != nil {
		return Address{}, fmt.Errorf("address %q: invalid base58: %w", raw, err)
	}

	var envelope addressEnvelope
	if err := codec.Unmarshal(decoded, &envelope); err != nil {
		return Address{}, fmt.Errorf("address %q: malformed envelope: %w", raw, err)
	}
	if envelope.Payload.Number != addressPayloadTag {
		return Address{}, fmt.Errorf("address %q: unexpected payload tag %d", raw, envelope.Payload.Number)
	}
	payload, ok := envelope.Payload.Content.([]byte)
	if !ok {
		return Address{}, fmt.Errorf("address %q: payload is not a byte string", raw)
	}

	if computed := crc32.ChecksumIEEE(payload); computed != envelope.Checksum {
		return Address{}, fmt.Errorf("address %q: checksum mismatch (embedded %d, computed %d)", raw, envelope.Checksum, computed)
	}

	return Address{payload: payload, text: raw}, nil
}

// NewAddress builds an Address from a raw payload, computing the
// checksum and canonical text form. Used by collaborators that derive
// addresses from keys rather than parsing user input.
func NewAddress(payload []byte) (Address, error) {
	if len(payload) == 0 {
		return Address{}, fmt.Errorf("address payload is empty")
	}
	text, err := encodeAddress(payload)
	if err != nil {
		return Address{}, err
	}
	return Address{payload: bytes.Clone(payload), text: text}, nil
}

// encodeAddress serializes the envelope deterministically and encodes
// it as base58. encode(decode(x)) reproduces x for any canonically
// encoded address string.
func encodeAddress(payload []byte) (string, error) {
	envelope := addressEnvelope{
		Payload:  cbor.Tag{Number: addressPayloadTag, Content: payload},
		Checksum: crc32.ChecksumIEEE(payload),
	}
	encoded, err := codec.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("encode address envelope: %w", err)
	}
	return base58.Encode(encoded), nil
}

// Payload returns the serialized address payload (the tagged inner
// bytes, checksum stripped).
func (a Address) Payload() []byte {
	return bytes.Clone(a.payload)
}

// IsZero reports whether the Address is the zero value.
func (a Address) IsZero() bool {
	return a.payload == nil
}

// String returns the checksummed base58 text form.
func (a Address) String() string {
	return a.text
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	if a.IsZero() {
		return nil, fmt.Errorf("marshal zero Address")
	}
	return []byte(a.text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(data []byte) error {
	parsed, err := ParseAddress(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Set implements pflag.Value.
func (a *Address) Set(raw string) error {
	return a.UnmarshalText([]byte(raw))
}

// Type implements pflag.Value.
func (a *Address) Type() string {
	return "address"
}
