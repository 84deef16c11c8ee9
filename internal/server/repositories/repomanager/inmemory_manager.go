package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/ordertrack/internal/dbx"
	"github.com/dmitrijs2005/ordertrack/internal/server/repositories/inmemory"
	"github.com/dmitrijs2005/ordertrack/internal/server/repositories/orders"
	"github.com/dmitrijs2005/ordertrack/internal/server/repositories/users"
)

// InMemoryRepositoryManager serves the same repository instances regardless
// of the handle passed in, since there is no database underneath.
type InMemoryRepositoryManager struct {
	users  *inmemory.UserRepository
	orders *inmemory.OrderRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:  inmemory.NewUserRepository(),
		orders: inmemory.NewOrderRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Orders(db dbx.DBTX) orders.Repository {
	return m.orders
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
