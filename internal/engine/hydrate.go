package engine

import (
	"fmt"
	"time"

	"fitfive/internal/storage"
)

// GenerateTasks returns the workout tasks that must be created so that every
// routine due on day has one task per exercise for that day.
//
// Generation is per routine per day: a routine with any existing task dated
// day is skipped entirely, even if its exercise list has grown since that
// task was created. Routines with no exercises never produce tasks.
//
// The function performs no I/O and never returns already-existing tasks;
// the caller persists the result. Output order follows routine order, then
// exercise order, so identical inputs yield identical output.
func GenerateTasks(routines []storage.Routine, existing []storage.WorkoutTask, day time.Time) ([]storage.WorkoutTask, error) {
	date := FormatDate(day)

	hydrated := make(map[int64]bool, len(existing))
	for _, t := range existing {
		if t.TaskDate == date {
			hydrated[t.RoutineID] = true
		}
	}

	var out []storage.WorkoutTask
	for _, r := range routines {
		if hydrated[r.ID] {
			continue
		}
		start, err := ParseDate(r.StartDate)
		if err != nil {
			return nil, fmt.Errorf("routine %d: %w", r.ID, err)
		}
		if !IsDue(start, r.FrequencyDays, day) {
			continue
		}
		for _, ex := range r.Exercises {
			out = append(out, storage.WorkoutTask{
				RoutineID:    r.ID,
				ExerciseID:   ex.ID,
				Name:         ex.Name,
				TargetSets:   ex.TargetSets,
				TargetReps:   ex.TargetReps,
				TargetWeight: ex.TargetWeight,
				TaskDate:     date,
				Completed:    false,
			})
		}
	}
	return out, nil
}
