// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package command

import "testing"

func TestNewNonEmpty(t *testing.T) {
	sequence, err := NewNonEmpty("--txout", []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("NewNonEmpty: %v", err)
	}
	if sequence.Len() != 3 {
		t.Errorf("Len = %d, want 3", sequence.Len())
	}
	if sequence.Head() != "a" {
		t.Errorf("Head = %q, want \"a\"", sequence.Head())
	}

	items := sequence.Items()
	for i, want := range []string{"a", "b", "c"} {
		if items[i] != want {
			t.Errorf("items[%d] = %q, want %q", i, items[i], want)
		}
	}
}

func TestNewNonEmptyRejectsEmpty(t *testing.T) {
	_, err := NewNonEmpty("--txin", []string(nil))
	if err == nil {
		t.Fatal("empty sequence accepted")
	}
	if got := err.Error(); got != "at least one --txin occurrence is required" {
		t.Errorf("error = %q, want the requirement to name the flag", got)
	}
}

func TestNonEmptyIsolatedFromCaller(t *testing.T) {
	source := []string{"a", "b"}
	sequence, err := NewNonEmpty("--sig-key", source)
	if err != nil {
		t.Fatalf("NewNonEmpty: %v", err)
	}

	source[0] = "mutated"
	if sequence.Head() != "a" {
		t.Error("mutating the source slice changed the sequence")
	}

	items := sequence.Items()
	items[1] = "mutated"
	if sequence.Items()[1] != "b" {
		t.Error("mutating Items() changed the sequence")
	}
}
