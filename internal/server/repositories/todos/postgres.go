// Package todos provides the PostgreSQL-backed repository for per-user todo
// rows. Every statement is scoped by both the row id and the owning user id,
// so a write aimed at another user's row matches nothing and changes nothing.
package todos

import (
	"context"
	"fmt"

	"github.com/mkravets/tasklist/internal/dbx"
	"github.com/mkravets/tasklist/internal/server/models"
)

// PostgresRepository implements todo storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByOwner returns the owner's todos, most recently created first.
// The is_checked column is stored as 0/1 and converted to a boolean here.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Todo, error) {
	query := ` SELECT id, text, time, is_checked, user_id FROM todo
		WHERE user_id=$1
		ORDER BY id DESC
		`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select todos: %w", err)
	}
	defer rows.Close()

	var result []*models.Todo
	for rows.Next() {
		var item models.Todo
		var checked int
		if err := rows.Scan(&item.ID, &item.Text, &item.Time, &checked, &item.UserID); err != nil {
			return nil, err
		}
		item.IsChecked = checked != 0
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new todo for its owner and returns the generated ID.
func (r *PostgresRepository) Create(ctx context.Context, todo *models.Todo) (int64, error) {
	query :=
		`INSERT INTO todo (text, time, is_checked, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		todo.Text, todo.Time, boolToInt(todo.IsChecked), todo.UserID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

// The update and delete statements below deliberately treat zero matched
// rows as success: a write aimed at a row the caller does not own must
// report success without touching anything.

func (r *PostgresRepository) UpdateText(ctx context.Context, id, ownerID int64, text string) error {
	return r.exec(ctx, `UPDATE todo SET text=$1 WHERE id=$2 AND user_id=$3`, text, id, ownerID)
}

func (r *PostgresRepository) UpdateTime(ctx context.Context, id, ownerID int64, time *string) error {
	return r.exec(ctx, `UPDATE todo SET time=$1 WHERE id=$2 AND user_id=$3`, time, id, ownerID)
}

func (r *PostgresRepository) UpdateChecked(ctx context.Context, id, ownerID int64, checked bool) error {
	return r.exec(ctx, `UPDATE todo SET is_checked=$1 WHERE id=$2 AND user_id=$3`, boolToInt(checked), id, ownerID)
}

func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) error {
	return r.exec(ctx, `DELETE FROM todo WHERE id=$1 AND user_id=$2`, id, ownerID)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
