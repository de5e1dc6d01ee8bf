package ingest

import (
	"testing"

	"mbp10/domain"
)

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2025-07-17T07:05:09.035793433Z")
	if err != nil {
		t.Fatal(err)
	}
	// 2025-07-17T07:05:09Z in Unix seconds, plus the fractional part.
	const wantSeconds = 1752735909
	want := domain.Timestamp(wantSeconds*1_000_000_000 + 35793433)
	if ts != want {
		t.Errorf("expected %d, got %d", want, ts)
	}
}

func TestFormatTimestampFixedWidth(t *testing.T) {
	got := FormatTimestamp(domain.Timestamp(1752735909*1_000_000_000 + 5))
	want := "2025-07-17T07:05:09.000000005Z"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	const original = "2025-01-01T00:00:00.000000001Z"
	ts, err := ParseTimestamp(original)
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatTimestamp(ts); got != original {
		t.Errorf("round trip mismatch: expected %s, got %s", original, got)
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	if _, err := ParseTimestamp("not-a-timestamp"); err == nil {
		t.Error("expected error for invalid timestamp")
	}
}
