package repomanager

import (
	"context"
	"database/sql"

	"github.com/mkravets/tasklist/internal/dbx"
	"github.com/mkravets/tasklist/internal/server/repositories/todos"
	"github.com/mkravets/tasklist/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, which
// lets services run repository calls either directly or inside a transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Todos(db dbx.DBTX) todos.Repository
}
