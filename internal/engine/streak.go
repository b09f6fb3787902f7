package engine

import (
	"fmt"
	"time"

	"fitfive/internal/storage"
)

// DayStatus classifies a single calendar day against the routine set.
type DayStatus int

const (
	// DayRest: nothing was due.
	DayRest DayStatus = iota
	// DayCompleted: everything due was completed.
	DayCompleted
	// DayMissed: at least one due routine was not completed.
	DayMissed
)

func (s DayStatus) String() string {
	switch s {
	case DayRest:
		return "rest"
	case DayCompleted:
		return "completed"
	case DayMissed:
		return "missed"
	default:
		return fmt.Sprintf("DayStatus(%d)", int(s))
	}
}

// StreakInfo holds current and longest consecutive-completion streaks.
type StreakInfo struct {
	Current int
	Longest int
}

// ClassifyDay returns the status of day given the full routine and
// completion history. A day with no due routine is a rest day; a day where
// every due routine has a completion record is completed; anything else is
// missed. Recomputed from scratch every call — no state is carried between
// days.
func ClassifyDay(day time.Time, routines []storage.Routine, completions []storage.Completion) (DayStatus, error) {
	date := FormatDate(day)

	var due []int64
	for _, r := range routines {
		start, err := ParseDate(r.StartDate)
		if err != nil {
			return DayRest, fmt.Errorf("routine %d: %w", r.ID, err)
		}
		if IsDue(start, r.FrequencyDays, day) {
			due = append(due, r.ID)
		}
	}
	if len(due) == 0 {
		return DayRest, nil
	}

	done := make(map[int64]bool)
	for _, c := range completions {
		if c.CompletedDate == date {
			done[c.RoutineID] = true
		}
	}
	for _, id := range due {
		if !done[id] {
			return DayMissed, nil
		}
	}
	return DayCompleted, nil
}

// CurrentStreak walks backward day-by-day from today and counts fully
// completed scheduled days. Rest days are transparent; the first missed day
// is a hard stop. The scan is bounded by the earliest routine start date,
// before which nothing can be due.
func CurrentStreak(routines []storage.Routine, completions []storage.Completion, today time.Time) (int, error) {
	if len(routines) == 0 {
		return 0, nil
	}
	earliest, err := earliestStart(routines)
	if err != nil {
		return 0, err
	}

	streak := 0
	for cursor := StartOfDay(today); !cursor.Before(earliest); cursor = cursor.AddDate(0, 0, -1) {
		status, err := ClassifyDay(cursor, routines, completions)
		if err != nil {
			return 0, err
		}
		switch status {
		case DayMissed:
			return streak, nil
		case DayCompleted:
			streak++
		}
	}
	return streak, nil
}

// LongestStreak scans forward from the earliest routine start date to today
// and returns the longest run of completed days, with rest days transparent
// and missed days resetting the run.
func LongestStreak(routines []storage.Routine, completions []storage.Completion, today time.Time) (int, error) {
	if len(routines) == 0 {
		return 0, nil
	}
	earliest, err := earliestStart(routines)
	if err != nil {
		return 0, err
	}

	longest, run := 0, 0
	end := StartOfDay(today)
	for cursor := earliest; !cursor.After(end); cursor = cursor.AddDate(0, 0, 1) {
		status, err := ClassifyDay(cursor, routines, completions)
		if err != nil {
			return 0, err
		}
		switch status {
		case DayMissed:
			run = 0
		case DayCompleted:
			run++
			if run > longest {
				longest = run
			}
		}
	}
	return longest, nil
}

// Streaks computes the current and longest streaks in one call.
func Streaks(routines []storage.Routine, completions []storage.Completion, today time.Time) (StreakInfo, error) {
	current, err := CurrentStreak(routines, completions, today)
	if err != nil {
		return StreakInfo{}, err
	}
	longest, err := LongestStreak(routines, completions, today)
	if err != nil {
		return StreakInfo{}, err
	}
	if current > longest {
		longest = current
	}
	return StreakInfo{Current: current, Longest: longest}, nil
}

func earliestStart(routines []storage.Routine) (time.Time, error) {
	var earliest time.Time
	for i, r := range routines {
		start, err := ParseDate(r.StartDate)
		if err != nil {
			return time.Time{}, fmt.Errorf("routine %d: %w", r.ID, err)
		}
		start = StartOfDay(start)
		if i == 0 || start.Before(earliest) {
			earliest = start
		}
	}
	return earliest, nil
}
