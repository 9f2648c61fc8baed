// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package chain

import "testing"

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "ipv4", raw: "127.0.0.1:3000", want: "127.0.0.1:3000"},
		{name: "ipv6", raw: "[::1]:3000", want: "[::1]:3000"},
		{name: "port zero", raw: "10.0.0.1:0", want: "10.0.0.1:0"},
		{name: "max port", raw: "10.0.0.1:65535", want: "10.0.0.1:65535"},
		{name: "port overflow", raw: "10.0.0.1:65536", wantErr: true},
		{name: "hostname requires resolution", raw: "relay.example.com:3000", wantErr: true},
		{name: "missing port", raw: "127.0.0.1", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "garbage", raw: "not-an-endpoint", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEndpoint(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseEndpoint(%q) = %v, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEndpoint(%q): %v", tt.raw, err)
			}
			if got.String() != tt.want {
				t.Errorf("String() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestEndpointsAccumulateInOrder(t *testing.T) {
	var endpoints Endpoints
	raws := []string{"127.0.0.1:3000", "127.0.0.1:3001", "10.1.2.3:7777"}
	for _, raw := range raws {
		if err := endpoints.Set(raw); err != nil {
			t.Fatalf("Set(%q): %v", raw, err)
		}
	}

	if len(endpoints) != len(raws) {
		t.Fatalf("len = %d, want %d", len(endpoints), len(raws))
	}
	for i, raw := range raws {
		if endpoints[i].String() != raw {
			t.Errorf("endpoints[%d] = %s, want %s", i, endpoints[i], raw)
		}
	}
}

func TestParseNodeID(t *testing.T) {
	id, err := ParseNodeID("3")
	if err != nil {
		t.Fatalf("ParseNodeID: %v", err)
	}
	if id.Uint64() != 3 {
		t.Errorf("id = %d, want 3", id.Uint64())
	}

	for _, raw := range []string{"", "-1", "three"} {
		if _, err := ParseNodeID(raw); err == nil {
			t.Errorf("ParseNodeID(%q) succeeded, want error", raw)
		}
	}
}
