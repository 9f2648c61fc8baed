// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the chain's standard CBOR encoding
// configuration.
//
// The command surface meets CBOR in two places: the outer envelope of
// a checksummed address (a tagged payload plus a CRC-32), and the
// validate-cbor command's well-formedness and diagnostic checks on
// chain files. Both go through this package so that every caller
// encodes identically without duplicating configuration.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. Same logical data always produces identical bytes, which is
// what makes decode-then-encode of an address byte-exact.
package codec
