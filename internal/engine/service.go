package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fitfive/internal/storage"
)

type Service struct {
	db          *sql.DB
	routines    *storage.RoutineRepo
	tasks       *storage.TaskRepo
	completions *storage.CompletionRepo
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:          db,
		routines:    storage.NewRoutineRepo(db),
		tasks:       storage.NewTaskRepo(db),
		completions: storage.NewCompletionRepo(db),
	}
}

func (s *Service) RoutineRepo() *storage.RoutineRepo       { return s.routines }
func (s *Service) TaskRepo() *storage.TaskRepo             { return s.tasks }
func (s *Service) CompletionRepo() *storage.CompletionRepo { return s.completions }

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", errors.New("name is required")
	}
	return n, nil
}

type ExerciseInput struct {
	Name         string
	TargetSets   int
	TargetReps   int
	TargetWeight *float64
}

type CreateRoutineInput struct {
	Name          string
	StartDate     string
	FrequencyDays int
	Exercises     []ExerciseInput
}

// CreateRoutine validates and stores a recurring routine with its exercise
// templates. The start date and frequency invariants are checked here, once;
// downstream scheduling assumes they hold.
func (s *Service) CreateRoutine(ctx context.Context, in CreateRoutineInput) (*storage.Routine, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	start, err := ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	if err := ValidateFrequency(in.FrequencyDays); err != nil {
		return nil, err
	}

	ins := storage.RoutineInsert{
		Name:          name,
		StartDate:     FormatDate(start),
		FrequencyDays: in.FrequencyDays,
	}
	for _, ex := range in.Exercises {
		exName, err := normalizeName(ex.Name)
		if err != nil {
			return nil, fmt.Errorf("exercise: %w", err)
		}
		ins.Exercises = append(ins.Exercises, storage.ExerciseInsert{
			Name:         exName,
			TargetSets:   ex.TargetSets,
			TargetReps:   ex.TargetReps,
			TargetWeight: ex.TargetWeight,
		})
	}

	id, err := s.routines.Create(ctx, ins)
	if err != nil {
		return nil, err
	}
	return s.routines.Get(ctx, id)
}

// AddExercise appends an exercise template to an existing routine. Days the
// routine was already hydrated for are not revisited (generation is per
// routine per day), so the new exercise shows up from the next due day on.
func (s *Service) AddExercise(ctx context.Context, routineID int64, in ExerciseInput) (int64, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return 0, err
	}
	rt, err := s.routines.Get(ctx, routineID)
	if err != nil {
		return 0, err
	}
	if rt == nil {
		return 0, fmt.Errorf("routine %d not found", routineID)
	}
	return s.routines.AddExercise(ctx, routineID, storage.ExerciseInsert{
		Name:         name,
		TargetSets:   in.TargetSets,
		TargetReps:   in.TargetReps,
		TargetWeight: in.TargetWeight,
	})
}

// DeactivateRoutine excludes a routine from future hydration and streaks.
func (s *Service) DeactivateRoutine(ctx context.Context, id int64) error {
	rt, err := s.routines.Get(ctx, id)
	if err != nil {
		return err
	}
	if rt == nil {
		return fmt.Errorf("routine %d not found", id)
	}
	return s.routines.SetActive(ctx, id, false)
}

// TasksForDate hydrates the given day and returns its full task list: due
// routines that have no tasks yet for the date get one task per exercise,
// already-hydrated routines are left alone.
func (s *Service) TasksForDate(ctx context.Context, date string) ([]storage.WorkoutTask, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	routines, err := s.routines.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.tasks.ListByDate(ctx, FormatDate(day))
	if err != nil {
		return nil, err
	}

	fresh, err := GenerateTasks(routines, existing, day)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.InsertNew(ctx, fresh); err != nil {
		return nil, err
	}
	return s.tasks.ListByDate(ctx, FormatDate(day))
}

type CompleteResult struct {
	TaskID           int64
	RoutineID        int64
	RoutineCompleted bool // every task of the routine for that date is now done
	Streak           int  // current streak as of the task's date
}

// CompleteTask marks a task done. When it was the routine's last open task
// for that date, a completion record is appended for the routine/date pair.
func (s *Service) CompleteTask(ctx context.Context, id int64) (*CompleteResult, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("task %d not found", id)
	}
	if t.Completed {
		return nil, fmt.Errorf("task %d is already done", id)
	}

	if err := s.tasks.SetCompleted(ctx, id, true); err != nil {
		return nil, err
	}

	res := &CompleteResult{TaskID: id, RoutineID: t.RoutineID}

	open, err := s.tasks.CountIncomplete(ctx, t.RoutineID, t.TaskDate)
	if err != nil {
		return nil, err
	}
	if open == 0 {
		if err := s.completions.Insert(ctx, t.RoutineID, t.TaskDate); err != nil {
			return nil, err
		}
		res.RoutineCompleted = true
	}

	info, err := s.Streaks(ctx, t.TaskDate)
	if err != nil {
		return nil, err
	}
	res.Streak = info.Current
	return res, nil
}

// ReopenTask undoes a completion: the task goes back to open and the
// routine's completion record for that date is retracted.
func (s *Service) ReopenTask(ctx context.Context, id int64) (*storage.WorkoutTask, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("task %d not found", id)
	}
	if !t.Completed {
		return nil, fmt.Errorf("task %d is not done", id)
	}

	if err := s.tasks.SetCompleted(ctx, id, false); err != nil {
		return nil, err
	}
	if err := s.completions.DeleteForDate(ctx, t.RoutineID, t.TaskDate); err != nil {
		return nil, err
	}
	t.Completed = false
	return t, nil
}

// Streaks computes the current and longest streaks as of today, over all
// active routines and the whole completion history.
func (s *Service) Streaks(ctx context.Context, today string) (StreakInfo, error) {
	day, err := ParseDate(today)
	if err != nil {
		return StreakInfo{}, err
	}
	routines, err := s.routines.ListActive(ctx)
	if err != nil {
		return StreakInfo{}, err
	}
	completions, err := s.completions.ListAll(ctx)
	if err != nil {
		return StreakInfo{}, err
	}
	return Streaks(routines, completions, day)
}
