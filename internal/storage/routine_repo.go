package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type RoutineRepo struct {
	db *sql.DB
}

func NewRoutineRepo(db *sql.DB) *RoutineRepo {
	return &RoutineRepo{db: db}
}

type ExerciseInsert struct {
	Name         string
	TargetSets   int
	TargetReps   int
	TargetWeight *float64
}

type RoutineInsert struct {
	Name          string
	StartDate     string
	FrequencyDays int
	Exercises     []ExerciseInsert
}

// Create inserts a routine and its exercise templates in one transaction.
func (r *RoutineRepo) Create(ctx context.Context, in RoutineInsert) (int64, error) {
	var id int64
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO routines (name, start_date, frequency_days, active)
			VALUES (?, ?, ?, 1)
		`, in.Name, in.StartDate, in.FrequencyDays)
		if err != nil {
			return fmt.Errorf("routine insert: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("routine last insert id: %w", err)
		}
		for i, ex := range in.Exercises {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO exercises (routine_id, name, target_sets, target_reps, target_weight, position)
				VALUES (?, ?, ?, ?, ?, ?)
			`, id, ex.Name, ex.TargetSets, ex.TargetReps, ex.TargetWeight, i); err != nil {
				return fmt.Errorf("exercise insert: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// AddExercise appends an exercise template after the routine's existing ones.
func (r *RoutineRepo) AddExercise(ctx context.Context, routineID int64, in ExerciseInsert) (int64, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(position) + 1, 0) FROM exercises WHERE routine_id = ?
	`, routineID)
	var pos int
	if err := row.Scan(&pos); err != nil {
		return 0, fmt.Errorf("exercise next position: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO exercises (routine_id, name, target_sets, target_reps, target_weight, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`, routineID, in.Name, in.TargetSets, in.TargetReps, in.TargetWeight, pos)
	if err != nil {
		return 0, fmt.Errorf("exercise insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("exercise last insert id: %w", err)
	}
	return id, nil
}

func (r *RoutineRepo) Get(ctx context.Context, id int64) (*Routine, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, start_date, frequency_days, active, created_at
		FROM routines
		WHERE id = ?
	`, id)

	var rt Routine
	var active int
	if err := row.Scan(&rt.ID, &rt.Name, &rt.StartDate, &rt.FrequencyDays, &active, &rt.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("routine get: %w", err)
	}
	rt.Active = active != 0

	exs, err := r.listExercises(ctx, []int64{rt.ID})
	if err != nil {
		return nil, err
	}
	rt.Exercises = exs[rt.ID]
	return &rt, nil
}

// ListActive returns active routines with their exercises, ordered by id.
func (r *RoutineRepo) ListActive(ctx context.Context) ([]Routine, error) {
	return r.list(ctx, true)
}

// ListAll returns every routine, active or not, with exercises.
func (r *RoutineRepo) ListAll(ctx context.Context) ([]Routine, error) {
	return r.list(ctx, false)
}

func (r *RoutineRepo) list(ctx context.Context, activeOnly bool) ([]Routine, error) {
	q := `
		SELECT id, name, start_date, frequency_days, active, created_at
		FROM routines
		ORDER BY id ASC
	`
	if activeOnly {
		q = `
			SELECT id, name, start_date, frequency_days, active, created_at
			FROM routines
			WHERE active = 1
			ORDER BY id ASC
		`
	}
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("routine list: %w", err)
	}
	defer rows.Close()

	var out []Routine
	var ids []int64
	for rows.Next() {
		var rt Routine
		var active int
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.StartDate, &rt.FrequencyDays, &active, &rt.CreatedAt); err != nil {
			return nil, fmt.Errorf("routine scan: %w", err)
		}
		rt.Active = active != 0
		out = append(out, rt)
		ids = append(ids, rt.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("routine rows: %w", err)
	}

	exs, err := r.listExercises(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Exercises = exs[out[i].ID]
	}
	return out, nil
}

func (r *RoutineRepo) listExercises(ctx context.Context, routineIDs []int64) (map[int64][]Exercise, error) {
	byRoutine := make(map[int64][]Exercise, len(routineIDs))
	if len(routineIDs) == 0 {
		return byRoutine, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, routine_id, name, target_sets, target_reps, target_weight, position
		FROM exercises
		ORDER BY routine_id ASC, position ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("exercise list: %w", err)
	}
	defer rows.Close()

	wanted := make(map[int64]bool, len(routineIDs))
	for _, id := range routineIDs {
		wanted[id] = true
	}

	for rows.Next() {
		var ex Exercise
		var weight sql.NullFloat64
		if err := rows.Scan(&ex.ID, &ex.RoutineID, &ex.Name, &ex.TargetSets, &ex.TargetReps, &weight, &ex.Position); err != nil {
			return nil, fmt.Errorf("exercise scan: %w", err)
		}
		if !wanted[ex.RoutineID] {
			continue
		}
		if weight.Valid {
			v := weight.Float64
			ex.TargetWeight = &v
		}
		byRoutine[ex.RoutineID] = append(byRoutine[ex.RoutineID], ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise rows: %w", err)
	}
	return byRoutine, nil
}

func (r *RoutineRepo) SetActive(ctx context.Context, id int64, active bool) error {
	v := 0
	if active {
		v = 1
	}
	_, err := r.db.ExecContext(ctx, `UPDATE routines SET active = ? WHERE id = ?`, v, id)
	if err != nil {
		return fmt.Errorf("routine set active: %w", err)
	}
	return nil
}
