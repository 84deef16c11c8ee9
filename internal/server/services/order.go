package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/ordertrack/internal/common"
	"github.com/dmitrijs2005/ordertrack/internal/server/models"
	"github.com/dmitrijs2005/ordertrack/internal/server/repositories/repomanager"
)

// OrderService implements order CRUD. Every operation takes the verified
// account id from the caller (the HTTP gate) and never from request
// payloads, which is what keeps tenants separated.
type OrderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewOrderService(db *sql.DB, m repomanager.RepositoryManager) *OrderService {
	return &OrderService{db: db, repomanager: m}
}

func validateProductName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: productName is required", common.ErrorValidation)
	}
	return nil
}

func validateQuantity(quantity int32) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be positive", common.ErrorValidation)
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", common.ErrorValidation)
	}
	return nil
}

// Create stores a new order owned by userID.
func (s *OrderService) Create(ctx context.Context, userID, productName string, quantity int32, price float64) (*models.Order, error) {
	if err := validateProductName(productName); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:      userID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       price,
	}

	repo := s.repomanager.Orders(s.db)
	o, err := repo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("error creating order: %w", err)
	}
	return o, nil
}

// List returns userID's orders, newest first.
func (s *OrderService) List(ctx context.Context, userID string) ([]*models.Order, error) {
	repo := s.repomanager.Orders(s.db)
	orders, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	return orders, nil
}

// Update applies the non-nil patch fields to the order matching
// (orderID, userID). An order that is absent or owned by another account is
// common.ErrorNotFound either way.
func (s *OrderService) Update(ctx context.Context, userID, orderID string, patch *models.OrderPatch) (*models.Order, error) {
	if patch.ProductName != nil {
		if err := validateProductName(*patch.ProductName); err != nil {
			return nil, err
		}
	}
	if patch.Quantity != nil {
		if err := validateQuantity(*patch.Quantity); err != nil {
			return nil, err
		}
	}
	if patch.Price != nil {
		if err := validatePrice(*patch.Price); err != nil {
			return nil, err
		}
	}

	repo := s.repomanager.Orders(s.db)
	o, err := repo.Update(ctx, orderID, userID, patch)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Delete removes the order matching (orderID, userID), with the same miss
// semantics as Update.
func (s *OrderService) Delete(ctx context.Context, userID, orderID string) error {
	repo := s.repomanager.Orders(s.db)
	return repo.Delete(ctx, orderID, userID)
}
