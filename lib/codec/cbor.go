// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. The chain's on-wire
// structures (address envelopes in particular) are canonical, so the
// same logical value always produces identical bytes and text
// round-trips are byte-exact.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR,
// including tagged items such as the tag-24 address payload.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Valid reports whether data is a single well-formed CBOR item. The
// validate-cbor command's file checks go through this before any
// structural interpretation.
func Valid(data []byte) error {
	return cbor.Wellformed(data)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for
// the entire contents of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
