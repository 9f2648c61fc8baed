// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package chain

import (
	"fmt"
	"strconv"
	"time"
)

// EpochNumber counts epochs from the start of the chain.
type EpochNumber uint64

// StartTimeFromUnix converts a count of seconds since the Unix epoch
// into an absolute UTC timestamp. No range validation beyond the
// integer parse applies.
func StartTimeFromUnix(seconds int64) time.Time {
	return time.Unix(seconds, 0).UTC()
}

// ParseStartTime parses a decimal count of seconds since the Unix
// epoch.
func ParseStartTime(raw string) (time.Time, error) {
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("start time %q: not an integer number of seconds since epoch", raw)
	}
	return StartTimeFromUnix(seconds), nil
}
