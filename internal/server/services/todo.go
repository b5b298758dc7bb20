package services

import (
	"context"
	"database/sql"

	"github.com/mkravets/tasklist/internal/common"
	"github.com/mkravets/tasklist/internal/dbx"
	"github.com/mkravets/tasklist/internal/server/models"
	"github.com/mkravets/tasklist/internal/server/repositories/repomanager"
)

// TodoUpdate carries the optional fields of an update request. A nil field
// is absent and must not be written. Time is doubly indirect: the outer
// pointer marks presence, and the inner value may be nil to clear the
// stored time.
type TodoUpdate struct {
	Text      *string
	Time      **string
	IsChecked *bool
}

// TodoService implements owner-scoped CRUD over todo items. The owner id is
// always supplied by the caller from the authenticated identity, never from
// the request body.
type TodoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTodoService constructs a TodoService over the given database handle.
func NewTodoService(db *sql.DB, m repomanager.RepositoryManager) *TodoService {
	return &TodoService{db: db, repomanager: m}
}

// List returns the owner's todos, most recently created first. The result is
// re-queried fresh on every call.
func (s *TodoService) List(ctx context.Context, ownerID int64) ([]*models.Todo, error) {
	repo := s.repomanager.Todos(s.db)
	return repo.ListByOwner(ctx, ownerID)
}

// Create stores a new todo for ownerID. Text is required; time and isChecked
// default to absent and false.
func (s *TodoService) Create(ctx context.Context, ownerID int64, text string, time *string, isChecked bool) (int64, error) {
	if text == "" {
		return 0, common.ErrorValidation
	}

	repo := s.repomanager.Todos(s.db)
	return repo.Create(ctx, &models.Todo{
		Text:      text,
		Time:      time,
		IsChecked: isChecked,
		UserID:    ownerID,
	})
}

// Update writes only the fields present in upd, each guarded by
// id+ownerID, inside a single transaction. An update touching zero fields is
// a no-op that still succeeds, as is an update aimed at a row the caller
// does not own.
func (s *TodoService) Update(ctx context.Context, id, ownerID int64, upd TodoUpdate) error {
	if upd.Text == nil && upd.Time == nil && upd.IsChecked == nil {
		return nil
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Todos(tx)
		if upd.IsChecked != nil {
			if err := repo.UpdateChecked(ctx, id, ownerID, *upd.IsChecked); err != nil {
				return err
			}
		}
		if upd.Text != nil {
			if err := repo.UpdateText(ctx, id, ownerID, *upd.Text); err != nil {
				return err
			}
		}
		if upd.Time != nil {
			if err := repo.UpdateTime(ctx, id, ownerID, *upd.Time); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the todo if and only if it belongs to ownerID; a mismatch
// deletes nothing and still succeeds.
func (s *TodoService) Delete(ctx context.Context, id, ownerID int64) error {
	repo := s.repomanager.Todos(s.db)
	return repo.Delete(ctx, id, ownerID)
}
