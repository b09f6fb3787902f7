package engine

import (
	"errors"
	"testing"
)

func TestValidateFrequency(t *testing.T) {
	for _, days := range []int{1, 2, 7, 365} {
		if err := ValidateFrequency(days); err != nil {
			t.Fatalf("ValidateFrequency(%d): %v", days, err)
		}
	}
	for _, days := range []int{0, -1, -7} {
		err := ValidateFrequency(days)
		if err == nil {
			t.Fatalf("ValidateFrequency(%d): expected error", days)
		}
		var ife InvalidFrequencyError
		if !errors.As(err, &ife) {
			t.Fatalf("got %T, want InvalidFrequencyError", err)
		}
		if ife.Days != days {
			t.Fatalf("InvalidFrequencyError.Days=%d, want %d", ife.Days, days)
		}
	}
}

func TestIsDueEveryThirdDay(t *testing.T) {
	start := mustDate(t, "2026-01-01")
	due := []string{"2026-01-01", "2026-01-04", "2026-01-07", "2026-01-10"}
	notDue := []string{"2026-01-02", "2026-01-03", "2026-01-05", "2026-01-06"}

	for _, d := range due {
		if !IsDue(start, 3, mustDate(t, d)) {
			t.Fatalf("expected due on %s", d)
		}
	}
	for _, d := range notDue {
		if IsDue(start, 3, mustDate(t, d)) {
			t.Fatalf("expected not due on %s", d)
		}
	}
}

func TestIsDueMonthBoundary(t *testing.T) {
	start := mustDate(t, "2026-01-30")
	if !IsDue(start, 2, mustDate(t, "2026-01-30")) {
		t.Fatalf("expected due on start date")
	}
	if !IsDue(start, 2, mustDate(t, "2026-02-01")) {
		t.Fatalf("expected due on 2026-02-01")
	}
	if IsDue(start, 2, mustDate(t, "2026-01-31")) {
		t.Fatalf("expected not due on 2026-01-31")
	}
	if IsDue(start, 2, mustDate(t, "2026-02-02")) {
		t.Fatalf("expected not due on 2026-02-02")
	}
}

func TestIsDueWeeklyKeepsWeekday(t *testing.T) {
	// 2026-01-01 is a Thursday; a 7-day routine stays on Thursdays.
	start := mustDate(t, "2026-01-01")
	due := map[string]bool{
		"2026-01-01": true,
		"2026-01-08": true,
		"2026-01-15": true,
		"2026-01-22": true,
		"2026-01-29": true,
	}
	for day := mustDate(t, "2026-01-01"); day.Month() == 1; day = day.AddDate(0, 0, 1) {
		got := IsDue(start, 7, day)
		if got != due[FormatDate(day)] {
			t.Fatalf("IsDue(weekly, %s)=%v, want %v", FormatDate(day), got, due[FormatDate(day)])
		}
	}
}

func TestIsDueDailyAlwaysDueOnceStarted(t *testing.T) {
	start := mustDate(t, "2026-03-15")
	for day := start; DaysBetween(start, day) < 60; day = day.AddDate(0, 0, 1) {
		if !IsDue(start, 1, day) {
			t.Fatalf("daily routine not due on %s", FormatDate(day))
		}
	}
	for _, d := range []string{"2026-03-14", "2026-03-01", "2025-12-31"} {
		if IsDue(start, 1, mustDate(t, d)) {
			t.Fatalf("daily routine due before start on %s", d)
		}
	}
}

func TestIsDueStartDateIdentity(t *testing.T) {
	start := mustDate(t, "2026-06-10")
	for _, every := range []int{1, 2, 3, 7, 30, 365} {
		if !IsDue(start, every, start) {
			t.Fatalf("start date not due for every=%d", every)
		}
	}
}

func TestIsDuePeriodicity(t *testing.T) {
	start := mustDate(t, "2026-01-05")
	for _, every := range []int{2, 3, 7} {
		for offset := 0; offset < 30; offset++ {
			day := start.AddDate(0, 0, offset)
			next := day.AddDate(0, 0, every)
			if IsDue(start, every, day) != IsDue(start, every, next) {
				t.Fatalf("periodicity broken: every=%d offset=%d", every, offset)
			}
		}
	}
}
