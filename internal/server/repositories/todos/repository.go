package todos

import (
	"context"

	"github.com/mkravets/tasklist/internal/server/models"
)

type Repository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) (int64, error)
	UpdateText(ctx context.Context, id, ownerID int64, text string) error
	UpdateTime(ctx context.Context, id, ownerID int64, time *string) error
	UpdateChecked(ctx context.Context, id, ownerID int64, checked bool) error
	Delete(ctx context.Context, id, ownerID int64) error
}
