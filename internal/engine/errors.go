package engine

import "fmt"

// MalformedDateError indicates a date string that is not a valid YYYY-MM-DD
// calendar date. Raised at the parse boundary; dates are never coerced.
type MalformedDateError struct {
	Input string
}

func (e MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q (want YYYY-MM-DD)", e.Input)
}

// InvalidFrequencyError indicates a routine repeat interval below one day.
type InvalidFrequencyError struct {
	Days int
}

func (e InvalidFrequencyError) Error() string {
	return fmt.Sprintf("frequency must be at least 1 day, got %d", e.Days)
}
