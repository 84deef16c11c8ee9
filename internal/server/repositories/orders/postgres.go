package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ordertrack/internal/common"
	"github.com/dmitrijs2005/ordertrack/internal/dbx"
	"github.com/dmitrijs2005/ordertrack/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {

	query :=
		`INSERT INTO orders (user_id, product_name, quantity, price)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		order.UserID, order.ProductName, order.Quantity, order.Price).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return order, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	query :=
		`SELECT id, user_id, product_name, quantity, price, created_at, updated_at
		 FROM orders
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Order, 0)
	for rows.Next() {
		o := &models.Order{}
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductName, &o.Quantity, &o.Price, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id, userID string, patch *models.OrderPatch) (*models.Order, error) {

	// NULL patch arguments keep the current column via COALESCE. The
	// user_id conjunction makes "not yours" and "does not exist"
	// indistinguishable on purpose.
	query :=
		`UPDATE orders
		 SET product_name = COALESCE($3, product_name),
		     quantity     = COALESCE($4, quantity),
		     price        = COALESCE($5, price),
		     updated_at   = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, product_name, quantity, price, created_at, updated_at
		 `

	o := &models.Order{}
	err := r.db.QueryRowContext(ctx, query, id, userID, patch.ProductName, patch.Quantity, patch.Price).
		Scan(&o.ID, &o.UserID, &o.ProductName, &o.Quantity, &o.Price, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return o, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query :=
		`DELETE FROM orders
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
