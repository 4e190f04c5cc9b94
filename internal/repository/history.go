package repository

import (
	"context"
	"database/sql"

	"github.com/passmint/passmint-go/internal/model"
)

// historyLimit caps how many entries are kept per user. Older rows are
// trimmed on insert so the table never grows past the cap.
const historyLimit = 20

// HistoryRepository handles password history persistence operations.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Insert records a generated password for a user and trims the user's
// history down to the newest historyLimit rows. Both statements run in one
// transaction so a crash cannot leave the trim behind. The entry's ID and
// CreatedAt are filled from the stored row.
func (r *HistoryRepository) Insert(ctx context.Context, entry *model.HistoryEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insert := `INSERT INTO password_history (user_id, password, strength_label) VALUES (?, ?, ?)`

	result, err := tx.ExecContext(ctx, insert, entry.UserID, entry.Password, entry.StrengthLabel)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id

	// created_at is written by the column default; read it back so callers
	// see the stored timestamp rather than reconstructing their own.
	readBack := `SELECT created_at FROM password_history WHERE id = ?`
	if err := tx.QueryRowContext(ctx, readBack, id).Scan(&entry.CreatedAt); err != nil {
		return err
	}

	// MySQL rejects LIMIT inside an IN subquery, hence the derived table.
	trim := `DELETE FROM password_history
		WHERE user_id = ? AND id NOT IN (
			SELECT id FROM (
				SELECT id FROM password_history WHERE user_id = ? ORDER BY id DESC LIMIT ?
			) recent
		)`

	if _, err := tx.ExecContext(ctx, trim, entry.UserID, entry.UserID, historyLimit); err != nil {
		return err
	}

	return tx.Commit()
}

// ListByUser retrieves a user's password history, newest first, capped at
// historyLimit entries.
func (r *HistoryRepository) ListByUser(ctx context.Context, userID int64) ([]model.HistoryEntry, error) {
	query := `SELECT id, user_id, password, strength_label, created_at
		FROM password_history WHERE user_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, historyLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		var e model.HistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Password, &e.StrengthLabel, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Exists reports whether the exact password already appears in the user's
// history. Used as the membership check behind unique generation.
func (r *HistoryRepository) Exists(ctx context.Context, userID int64, password string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM password_history WHERE user_id = ? AND password = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, password).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// DeleteByUser removes all history entries for a user. Deleting an already
// empty history is not an error.
func (r *HistoryRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM password_history WHERE user_id = ?`

	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}
