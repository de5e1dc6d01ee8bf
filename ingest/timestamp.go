package ingest

import (
	"fmt"
	"time"

	"mbp10/domain"
)

// timestampLayout is the original collaborator's ISO 8601 text form, fixed
// at nine fractional digits: 2025-07-17T07:05:09.035793433Z. Go's
// time.RFC3339Nano trims trailing fractional zeros, which would make input
// and output byte-widths inconsistent, so this package uses its own layout
// instead.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// ParseTimestamp parses the collaborator's timestamp text into nanoseconds
// since the Unix epoch.
func ParseTimestamp(s string) (domain.Timestamp, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return 0, fmt.Errorf("ingest: parse timestamp %q: %w", s, err)
	}
	return domain.Timestamp(t.UnixNano()), nil
}

// FormatTimestamp renders ns as the collaborator's fixed-width ISO 8601
// text form.
func FormatTimestamp(ns domain.Timestamp) string {
	return time.Unix(0, int64(ns)).UTC().Format(timestampLayout)
}
