// Package orders persists order rows. Every read and write that targets an
// existing row is conjoined with the owner id, so a caller can never reach
// another account's orders through this interface.
package orders

import (
	"context"

	"github.com/dmitrijs2005/ordertrack/internal/server/models"
)

type Repository interface {
	// Create inserts an order for order.UserID and fills in the generated
	// id and timestamps.
	Create(ctx context.Context, order *models.Order) (*models.Order, error)

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Order, error)

	// Update applies the non-nil patch fields to the order matching
	// (id, userID). A miss — whether the id is absent or owned by someone
	// else — is common.ErrorNotFound.
	Update(ctx context.Context, id, userID string, patch *models.OrderPatch) (*models.Order, error)

	// Delete removes the order matching (id, userID), with the same miss
	// semantics as Update.
	Delete(ctx context.Context, id, userID string) error
}
