package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// InsertNew persists freshly generated tasks in one transaction. INSERT OR
// IGNORE against the (exercise_id, task_date) unique index makes concurrent
// hydration attempts converge instead of duplicating rows.
func (r *TaskRepo) InsertNew(ctx context.Context, tasks []WorkoutTask) error {
	if len(tasks) == 0 {
		return nil
	}
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, t := range tasks {
			if _, err := tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO workout_tasks (
					routine_id, exercise_id, name,
					target_sets, target_reps, target_weight,
					task_date, completed
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, t.RoutineID, t.ExerciseID, t.Name, t.TargetSets, t.TargetReps, t.TargetWeight, t.TaskDate, boolToInt(t.Completed)); err != nil {
				return fmt.Errorf("task insert: %w", err)
			}
		}
		return nil
	})
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*WorkoutTask, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, routine_id, exercise_id, name, target_sets, target_reps, target_weight, task_date, completed
		FROM workout_tasks
		WHERE id = ?
	`, id)
	t, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task get: %w", err)
	}
	return t, nil
}

// ListByDate returns the full day view, ordered by routine then id so the
// hydration order is stable across reads.
func (r *TaskRepo) ListByDate(ctx context.Context, date string) ([]WorkoutTask, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, routine_id, exercise_id, name, target_sets, target_reps, target_weight, task_date, completed
		FROM workout_tasks
		WHERE task_date = ?
		ORDER BY routine_id ASC, id ASC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("task list by date: %w", err)
	}
	defer rows.Close()

	var out []WorkoutTask
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("task scan: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task rows: %w", err)
	}
	return out, nil
}

func (r *TaskRepo) SetCompleted(ctx context.Context, id int64, completed bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE workout_tasks SET completed = ? WHERE id = ?`, boolToInt(completed), id)
	if err != nil {
		return fmt.Errorf("task set completed: %w", err)
	}
	return nil
}

// CountIncomplete counts the routine's unfinished tasks for a date.
func (r *TaskRepo) CountIncomplete(ctx context.Context, routineID int64, date string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM workout_tasks
		WHERE routine_id = ? AND task_date = ? AND completed = 0
	`, routineID, date)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("task count incomplete: %w", err)
	}
	return n, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*WorkoutTask, error) {
	var t WorkoutTask
	var weight sql.NullFloat64
	var completed int
	if err := row.Scan(&t.ID, &t.RoutineID, &t.ExerciseID, &t.Name, &t.TargetSets, &t.TargetReps, &weight, &t.TaskDate, &completed); err != nil {
		return nil, err
	}
	if weight.Valid {
		v := weight.Float64
		t.TargetWeight = &v
	}
	t.Completed = completed != 0
	return &t, nil
}
