package main

import (
	"fmt"
	"strconv"
	"time"
)

// Accepted calendar layouts, most to least specific. Inputs without an
// explicit zone are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTimestamp converts a raw epoch-seconds value or a calendar
// string (YYYY-MM-DD[THH:MM[:SS]][Z]) to epoch seconds.
func parseTimestamp(input string) (int64, error) {
	if ts, err := strconv.ParseInt(input, 10, 64); err == nil {
		return ts, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("invalid timestamp %q; accepted formats: unix seconds (1750921805), 2025-06-26T10:21:08Z, 2025-06-26T10:21, 2025-06-26", input)
}
