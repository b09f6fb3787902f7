package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type CompletionRepo struct {
	db *sql.DB
}

func NewCompletionRepo(db *sql.DB) *CompletionRepo {
	return &CompletionRepo{db: db}
}

// Insert records that a routine was fulfilled on a date. Re-recording the
// same routine/date is a no-op (unique index + OR IGNORE).
func (r *CompletionRepo) Insert(ctx context.Context, routineID int64, date string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO completions (routine_id, completed_date)
		VALUES (?, ?)
	`, routineID, date)
	if err != nil {
		return fmt.Errorf("completion insert: %w", err)
	}
	return nil
}

func (r *CompletionRepo) ListAll(ctx context.Context) ([]Completion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, routine_id, completed_date
		FROM completions
		ORDER BY completed_date ASC, routine_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("completion list: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		if err := rows.Scan(&c.ID, &c.RoutineID, &c.CompletedDate); err != nil {
			return nil, fmt.Errorf("completion scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion rows: %w", err)
	}
	return out, nil
}

func (r *CompletionRepo) Exists(ctx context.Context, routineID int64, date string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT 1 FROM completions WHERE routine_id = ? AND completed_date = ? LIMIT 1
	`, routineID, date)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("completion exists: %w", err)
	}
	return true, nil
}

// DeleteForDate retracts a routine's completion for a date (undo path).
func (r *CompletionRepo) DeleteForDate(ctx context.Context, routineID int64, date string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM completions WHERE routine_id = ? AND completed_date = ?
	`, routineID, date)
	if err != nil {
		return fmt.Errorf("completion delete: %w", err)
	}
	return nil
}
