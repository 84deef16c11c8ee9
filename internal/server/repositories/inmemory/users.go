// Package inmemory provides map-backed repositories with the same error
// contract as the Postgres ones. They back unit tests and local development
// without a database.
package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/ordertrack/internal/common"
	"github.com/dmitrijs2005/ordertrack/internal/server/models"
	"github.com/google/uuid"
)

type UserRepository struct {
	mu     sync.RWMutex
	byName map[string]*models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byName: make(map[string]*models.User)}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.byName[stored.UserName] = &stored

	result := stored
	return &result, nil
}

func (r *UserRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byName[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}

	result := *user
	return &result, nil
}
