// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package config

import "testing"

func TestOverrideMerge(t *testing.T) {
	tests := []struct {
		name    string
		base    Override[string]
		later   Override[string]
		want    string
		wantSet bool
	}{
		{name: "later wins over base", base: SetTo("x"), later: SetTo("y"), want: "y", wantSet: true},
		{name: "absent later keeps base", base: SetTo("x"), later: Unset[string](), want: "x", wantSet: true},
		{name: "base absent takes later", base: Unset[string](), later: SetTo("y"), want: "y", wantSet: true},
		{name: "both absent stays absent", base: Unset[string](), later: Unset[string](), wantSet: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := tt.base.Merge(tt.later)
			value, set := merged.Value()
			if set != tt.wantSet {
				t.Fatalf("IsSet = %v, want %v", set, tt.wantSet)
			}
			if set && value != tt.want {
				t.Errorf("value = %q, want %q", value, tt.want)
			}
		})
	}
}

func TestOverrideMergeAssociative(t *testing.T) {
	slots := []Override[int]{SetTo(1), Unset[int](), SetTo(3)}

	leftFold := slots[0].Merge(slots[1]).Merge(slots[2])
	rightFold := slots[0].Merge(slots[1].Merge(slots[2]))

	if leftFold != rightFold {
		t.Errorf("merge is not associative: %v vs %v", leftFold, rightFold)
	}
	if value, _ := leftFold.Value(); value != 3 {
		t.Errorf("rightmost present value = %d, want 3", value)
	}
}

func TestOverrideOr(t *testing.T) {
	if got := SetTo(7).Or(9); got != 7 {
		t.Errorf("Or on set slot = %d, want 7", got)
	}
	if got := (Unset[int]()).Or(9); got != 9 {
		t.Errorf("Or on absent slot = %d, want 9", got)
	}
}
