// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

// Package chain defines the validated scalar values of the command
// surface: lovelace amounts bounded by total supply, exact lovelace
// portions, checksummed Byron addresses, transaction identifiers,
// transaction inputs and outputs, network identity, and node
// endpoints.
//
// Every type is constructed through a Parse function that either
// returns a fully valid value or an error describing the offending
// input. The zero value of each type is never produced by a successful
// parse, so downstream code can rely on construction implying
// validity. Types additionally implement pflag.Value so command flags
// parse directly into domain values and malformed input fails during
// flag parsing with the option name in the message.
package chain
