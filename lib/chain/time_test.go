// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package chain

import (
	"testing"
	"time"
)

func TestParseStartTime(t *testing.T) {
	got, err := ParseStartTime("1506203091")
	if err != nil {
		t.Fatalf("ParseStartTime: %v", err)
	}
	want := time.Date(2017, time.September, 23, 21, 44, 51, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", got.Location())
	}

	for _, raw := range []string{"", "later", "1.5"} {
		if _, err := ParseStartTime(raw); err == nil {
			t.Errorf("ParseStartTime(%q) succeeded, want error", raw)
		}
	}
}

func TestParseStartTimeBeforeEpoch(t *testing.T) {
	// Negative seconds are within integer range and accepted; the
	// layer applies no range validation beyond the parse.
	got, err := ParseStartTime("-60")
	if err != nil {
		t.Fatalf("ParseStartTime: %v", err)
	}
	if got.Unix() != -60 {
		t.Errorf("Unix() = %d, want -60", got.Unix())
	}
}
