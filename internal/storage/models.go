package storage

import "time"

// Dates are stored and passed around as zero-padded YYYY-MM-DD text; the
// engine package owns parsing and rejects anything else.

type Routine struct {
	ID            int64
	Name          string
	StartDate     string
	FrequencyDays int
	Active        bool
	CreatedAt     time.Time
	Exercises     []Exercise
}

type Exercise struct {
	ID           int64
	RoutineID    int64
	Name         string
	TargetSets   int
	TargetReps   int
	TargetWeight *float64
	Position     int
}

// WorkoutTask is a materialized, date-stamped unit of work generated from an
// Exercise. ID is zero until the row is stored.
type WorkoutTask struct {
	ID           int64
	RoutineID    int64
	ExerciseID   int64
	Name         string
	TargetSets   int
	TargetReps   int
	TargetWeight *float64
	TaskDate     string
	Completed    bool
}

// Completion records that every task of a routine was finished on a date.
type Completion struct {
	ID            int64
	RoutineID     int64
	CompletedDate string
}
