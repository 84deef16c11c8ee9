// Package repomanager hands out repositories bound to a database handle.
// Passing a dbx.DBTX at the call site lets the same factory produce
// repositories that run standalone or inside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/ordertrack/internal/dbx"
	"github.com/dmitrijs2005/ordertrack/internal/server/repositories/orders"
	"github.com/dmitrijs2005/ordertrack/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Orders(db dbx.DBTX) orders.Repository
}
