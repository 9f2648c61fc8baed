// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import "fmt"

// ObjectKind names the class of chain object a CBOR file is expected
// to contain. The kind selects which structural decoder an executing
// validator applies after the well-formedness check.
type ObjectKind struct {
	name string
}

// The closed set of validatable chain object kinds.
var (
	KindBlock                 = ObjectKind{name: "block"}
	KindTx                    = ObjectKind{name: "tx"}
	KindDelegationCertificate = ObjectKind{name: "delegation-certificate"}
	KindUpdateProposal        = ObjectKind{name: "update-proposal"}
	KindVote                  = ObjectKind{name: "vote"}
)

var objectKinds = []ObjectKind{
	KindBlock,
	KindTx,
	KindDelegationCertificate,
	KindUpdateProposal,
	KindVote,
}

// ParseObjectKind matches raw against the closed kind set.
func ParseObjectKind(raw string) (ObjectKind, error) {
	for _, kind := range objectKinds {
		if raw == kind.name {
			return kind, nil
		}
	}
	return ObjectKind{}, fmt.Errorf("object kind %q: want one of %s", raw, kindNames())
}

func kindNames() string {
	names := ""
	for i, kind := range objectKinds {
		if i > 0 {
			names += ", "
		}
		names += kind.name
	}
	return names
}

// IsZero reports whether the kind is unset.
func (k ObjectKind) IsZero() bool {
	return k.name == ""
}

// String returns the kind's flag spelling.
func (k ObjectKind) String() string {
	return k.name
}

// MarshalText implements encoding.TextMarshaler.
func (k ObjectKind) MarshalText() ([]byte, error) {
	return []byte(k.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ObjectKind) UnmarshalText(data []byte) error {
	parsed, err := ParseObjectKind(string(data))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Set implements pflag.Value.
func (k *ObjectKind) Set(raw string) error {
	return k.UnmarshalText([]byte(raw))
}

// Type implements pflag.Value.
func (k *ObjectKind) Type() string {
	return "object-kind"
}
