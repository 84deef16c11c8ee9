package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/ordertrack/internal/common"
	"github.com/dmitrijs2005/ordertrack/internal/server/models"
	"github.com/google/uuid"
)

type OrderRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.Order
	// seq breaks created_at ties so list order stays stable when several
	// orders land within one clock tick.
	seq map[string]int64
	n   int64
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		byID: make(map[string]*models.Order),
		seq:  make(map[string]int64),
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	stored := *order
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.byID[stored.ID] = &stored
	r.n++
	r.seq[stored.ID] = r.n

	result := stored
	return &result, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Order, 0)
	for _, o := range r.byID {
		if o.UserID != userID {
			continue
		}
		c := *o
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return r.seq[result[i].ID] > r.seq[result[j].ID]
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *OrderRepository) Update(ctx context.Context, id, userID string, patch *models.OrderPatch) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.byID[id]
	if !ok || o.UserID != userID {
		return nil, common.ErrorNotFound
	}

	if patch.ProductName != nil {
		o.ProductName = *patch.ProductName
	}
	if patch.Quantity != nil {
		o.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		o.Price = *patch.Price
	}
	o.UpdatedAt = time.Now()

	result := *o
	return &result, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.byID[id]
	if !ok || o.UserID != userID {
		return common.ErrorNotFound
	}

	delete(r.byID, id)
	delete(r.seq, id)
	return nil
}
