package engine

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only date format accepted at the boundary.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a time.Time pinned to 12:00 UTC.
// Mid-day, not midnight: a midnight value sitting on a DST transition can
// land on the wrong calendar day after normalization.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, MalformedDateError{Input: s}
	}
	nums := make([]int, 3)
	for i, p := range parts {
		// Digits only: Atoi alone would let a leading sign through
		// ("2026-+1-30").
		for _, r := range p {
			if r < '0' || r > '9' {
				return time.Time{}, MalformedDateError{Input: s}
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, MalformedDateError{Input: s}
		}
		nums[i] = n
	}
	year, month, day := nums[0], nums[1], nums[2]
	t := time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (2026-02-30 becomes March 2nd), so a
	// round-trip mismatch means the components were not a real date.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, MalformedDateError{Input: s}
	}
	return t, nil
}

// StartOfDay zeroes the time-of-day component, preserving the calendar date.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDate renders a zero-padded YYYY-MM-DD string, the inverse of ParseDate.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the whole-day difference b - a. Rounded, not
// truncated: a DST shift leaves a 23h or 25h "day" and truncation would
// turn that into an off-by-one.
func DaysBetween(a, b time.Time) int {
	diff := StartOfDay(b).Sub(StartOfDay(a))
	return int(math.Round(diff.Hours() / 24))
}
