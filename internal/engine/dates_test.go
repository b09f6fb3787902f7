package engine

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestParseDatePinsToMidday(t *testing.T) {
	d := mustDate(t, "2026-01-30")
	if d.Hour() != 12 || d.Minute() != 0 || d.Second() != 0 {
		t.Fatalf("got %v, want 12:00:00", d)
	}
	if d.Year() != 2026 || d.Month() != time.January || d.Day() != 30 {
		t.Fatalf("got %v, want 2026-01-30", d)
	}
}

func TestParseDateRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"garbage",
		"2026/01/30",
		"2026-1-30",
		"2026-01-3",
		"26-01-30",
		"2026-13-01",
		"2026-00-10",
		"2026-02-30",
		"2026-04-31",
		"2026-01-30T00:00:00",
		"-026-01-30",
		"+026-01-30",
		"2026-+1-30",
		"2026-01-+3",
		"2026- 1-30",
	}
	for _, s := range bad {
		_, err := ParseDate(s)
		if err == nil {
			t.Fatalf("ParseDate(%q): expected error", s)
		}
		var mde MalformedDateError
		if !errors.As(err, &mde) {
			t.Fatalf("ParseDate(%q): got %T, want MalformedDateError", s, err)
		}
		if mde.Input != s {
			t.Fatalf("MalformedDateError.Input=%q, want %q", mde.Input, s)
		}
	}
}

func TestParseDateLeapDay(t *testing.T) {
	if _, err := ParseDate("2024-02-29"); err != nil {
		t.Fatalf("2024-02-29 is valid: %v", err)
	}
	if _, err := ParseDate("2026-02-29"); err == nil {
		t.Fatalf("2026-02-29 is not a real date")
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	for _, s := range []string{"2026-01-01", "2026-12-31", "2026-02-09"} {
		if got := FormatDate(mustDate(t, s)); got != s {
			t.Fatalf("FormatDate=%q, want %q", got, s)
		}
	}
}

func TestStartOfDayPreservesDate(t *testing.T) {
	d := StartOfDay(mustDate(t, "2026-07-04"))
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 || d.Nanosecond() != 0 {
		t.Fatalf("got %v, want midnight", d)
	}
	if FormatDate(d) != "2026-07-04" {
		t.Fatalf("date changed: %v", d)
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2026-01-01", "2026-01-01", 0},
		{"2026-01-01", "2026-01-02", 1},
		{"2026-01-02", "2026-01-01", -1},
		{"2026-01-30", "2026-02-01", 2},  // month boundary
		{"2026-02-28", "2026-03-01", 1},  // non-leap February
		{"2024-02-28", "2024-03-01", 2},  // leap February
		{"2025-12-31", "2026-01-01", 1},  // year boundary
		{"2026-01-01", "2026-12-31", 364},
	}
	for _, c := range cases {
		got := DaysBetween(mustDate(t, c.a), mustDate(t, c.b))
		if got != c.want {
			t.Fatalf("DaysBetween(%s, %s)=%d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDaysBetweenRoundsSubDayDrift(t *testing.T) {
	// A DST-style 23h gap between consecutive midnights still counts as one
	// day; truncation would report zero.
	shifted := time.FixedZone("shifted", 3600)
	a := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 9, 0, 0, 0, 0, shifted)
	if got := DaysBetween(a, b); got != 1 {
		t.Fatalf("DaysBetween across 23h midnights=%d, want 1", got)
	}
}
