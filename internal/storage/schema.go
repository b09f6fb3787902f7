package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS routines (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			start_date TEXT NOT NULL,
			frequency_days INTEGER NOT NULL,
			active INTEGER DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS exercises (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			routine_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			target_sets INTEGER NOT NULL,
			target_reps INTEGER NOT NULL,
			target_weight REAL,
			position INTEGER NOT NULL DEFAULT 0,

			FOREIGN KEY(routine_id) REFERENCES routines(id)
		);`,
		`CREATE TABLE IF NOT EXISTS workout_tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			routine_id INTEGER NOT NULL,
			exercise_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			target_sets INTEGER NOT NULL,
			target_reps INTEGER NOT NULL,
			target_weight REAL,
			task_date TEXT NOT NULL,
			completed INTEGER DEFAULT 0,

			FOREIGN KEY(routine_id) REFERENCES routines(id),
			FOREIGN KEY(exercise_id) REFERENCES exercises(id)
		);`,
		`CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			routine_id INTEGER NOT NULL,
			completed_date TEXT NOT NULL,

			FOREIGN KEY(routine_id) REFERENCES routines(id)
		);`,
		// At-most-once hydration per exercise/day and one completion per
		// routine/day: two racing dashboard loads converge on the same rows
		// through INSERT OR IGNORE against these indexes.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_workout_tasks_exercise_date ON workout_tasks(exercise_id, task_date);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_completions_routine_date ON completions(routine_id, completed_date);`,
		`CREATE INDEX IF NOT EXISTS idx_exercises_routine_id ON exercises(routine_id);`,
		`CREATE INDEX IF NOT EXISTS idx_workout_tasks_date ON workout_tasks(task_date);`,
		`CREATE INDEX IF NOT EXISTS idx_workout_tasks_routine_date ON workout_tasks(routine_id, task_date);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
