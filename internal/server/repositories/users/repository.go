// Package users persists account records.
package users

import (
	"context"

	"github.com/dmitrijs2005/ordertrack/internal/server/models"
)

type Repository interface {
	// Create inserts a new account. A username collision yields
	// common.ErrorAlreadyExists; the existing account is untouched.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin returns the account with the given username, or
	// common.ErrorNotFound.
	GetUserByLogin(ctx context.Context, userName string) (*models.User, error)
}
