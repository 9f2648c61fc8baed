// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

// Package key assembles the key management commands: creating signing
// keys, deriving verification keys, printing key addresses, and
// migrating legacy delegate keys.
package key
