package engine

import "time"

// ValidateFrequency checks the repeat-interval invariant once, at routine
// construction. IsDue assumes it already holds.
func ValidateFrequency(days int) error {
	if days < 1 {
		return InvalidFrequencyError{Days: days}
	}
	return nil
}

// IsDue reports whether a routine that started on start and repeats every
// `every` days is due on day. The start date itself is always due; daily
// routines are due every day once started.
//
// Pure epoch-day arithmetic — calendar month/day fields are never subtracted
// directly, so month lengths and year boundaries need no special cases.
//
// Precondition: every >= 1 (see ValidateFrequency).
func IsDue(start time.Time, every int, day time.Time) bool {
	diff := DaysBetween(start, day)
	if diff < 0 {
		return false
	}
	if every == 1 {
		return true
	}
	return diff%every == 0
}
