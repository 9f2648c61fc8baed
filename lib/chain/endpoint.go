// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package chain

import (
	"fmt"
	"net/netip"
	"strconv"
)

// Endpoint is a concrete node address: an IP literal and a 16-bit
// port. This layer performs no I/O, so hostnames requiring DNS
// resolution are rejected rather than resolved.
type Endpoint struct {
	addrPort netip.AddrPort
}

// ParseEndpoint parses a "host:port" pair. The host must be an IPv4
// or IPv6 literal (IPv6 in brackets) and the port must fit 16 bits.
func ParseEndpoint(raw string) (Endpoint, error) {
	addrPort, err := netip.ParseAddrPort(raw)
	if err != nil {
		return Endpoint{}, fmt.Errorf("endpoint %q: want ip:port with a concrete IP literal: %w", raw, err)
	}
	return Endpoint{addrPort: addrPort}, nil
}

// Addr returns the endpoint's IP address.
func (e Endpoint) Addr() netip.Addr {
	return e.addrPort.Addr()
}

// Port returns the endpoint's port.
func (e Endpoint) Port() uint16 {
	return e.addrPort.Port()
}

// IsZero reports whether the Endpoint is the zero value.
func (e Endpoint) IsZero() bool {
	return !e.addrPort.IsValid()
}

// String renders the endpoint as "host:port".
func (e Endpoint) String() string {
	if e.IsZero() {
		return ""
	}
	return e.addrPort.String()
}

// MarshalText implements encoding.TextMarshaler.
func (e Endpoint) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Endpoint) UnmarshalText(data []byte) error {
	parsed, err := ParseEndpoint(string(data))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Set implements pflag.Value.
func (e *Endpoint) Set(raw string) error {
	return e.UnmarshalText([]byte(raw))
}

// Type implements pflag.Value.
func (e *Endpoint) Type() string {
	return "endpoint"
}

// Endpoints accumulates repeated endpoint flag occurrences in
// command-line order. It implements pflag.Value; each occurrence
// appends.
type Endpoints []Endpoint

// Set implements pflag.Value.
func (es *Endpoints) Set(raw string) error {
	endpoint, err := ParseEndpoint(raw)
	if err != nil {
		return err
	}
	*es = append(*es, endpoint)
	return nil
}

// String implements pflag.Value.
func (es Endpoints) String() string {
	return joinTokens(len(es), func(i int) string { return es[i].String() })
}

// Type implements pflag.Value.
func (es Endpoints) Type() string {
	return "endpoint"
}

// NodeID numbers a node within the cluster a command addresses.
type NodeID struct {
	id uint64
}

// NewNodeID wraps a raw node number.
func NewNodeID(id uint64) NodeID {
	return NodeID{id: id}
}

// ParseNodeID parses a non-negative node number.
func ParseNodeID(raw string) (NodeID, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return NodeID{}, fmt.Errorf("node id %q: not a non-negative integer", raw)
	}
	return NodeID{id: id}, nil
}

// Uint64 returns the raw node number.
func (n NodeID) Uint64() uint64 {
	return n.id
}

// String renders the node number as a decimal integer.
func (n NodeID) String() string {
	return strconv.FormatUint(n.id, 10)
}

// MarshalText implements encoding.TextMarshaler.
func (n NodeID) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// Set implements pflag.Value.
func (n *NodeID) Set(raw string) error {
	parsed, err := ParseNodeID(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Type implements pflag.Value.
func (n *NodeID) Type() string {
	return "node-id"
}
