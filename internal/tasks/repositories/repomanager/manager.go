package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/taskmesh/internal/dbx"
	"github.com/dmitrijs2005/taskmesh/internal/tasks/repositories/tasks"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Tasks(db dbx.DBTX) tasks.Repository
}
