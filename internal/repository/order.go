package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create runs the whole checkout in one transaction: lock the product rows,
// verify and decrement stock, then insert the order and its items priced at
// the current product price. Any failure rolls back without a partial write.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var total int64
	for i := range o.Items {
		item := &o.Items[i]

		var priceCents int64
		var stock int
		lockQuery := `SELECT price_cents, stock FROM products WHERE id = $1 FOR UPDATE`
		if err = tx.QueryRowContext(ctx, lockQuery, item.ProductID).Scan(&priceCents, &stock); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrProductNotFound
			}
			return fmt.Errorf("lock product: %w", err)
		}

		if stock < item.Quantity {
			return fmt.Errorf("%w: product %s", domain.ErrInsufficientStock, item.ProductID)
		}

		decQuery := `UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1`
		if _, err = tx.ExecContext(ctx, decQuery, item.ProductID, item.Quantity); err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}

		item.UnitPriceCents = priceCents
		total += priceCents * int64(item.Quantity)
	}
	o.TotalCents = total

	orderQuery := `INSERT INTO orders (id, user_id, total_cents, status, created_at)
				   VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(
		ctx, orderQuery, o.ID, o.UserID, o.TotalCents, o.Status, o.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `INSERT INTO order_items (order_id, product_id, quantity, unit_price_cents)
				  VALUES ($1, $2, $3, $4)`
	for _, item := range o.Items {
		if _, err = tx.ExecContext(
			ctx, itemQuery, o.ID, item.ProductID, item.Quantity, item.UnitPriceCents,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	query := `SELECT id, user_id, total_cents, status, created_at
			  FROM orders
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Order
	byID := make(map[string]*domain.Order)
	for rows.Next() {
		var o domain.Order
		if err = rows.Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, &o)
		byID[o.ID] = &o
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return res, nil
	}

	itemQuery := `SELECT i.order_id, i.product_id, i.quantity, i.unit_price_cents
				  FROM order_items i
				  JOIN orders o ON o.id = i.order_id
				  WHERE o.user_id = $1`

	itemRows, err := r.db.QueryWithRetry(ctx, r.strategy, itemQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item domain.OrderItem
		if err = itemRows.Scan(&orderID, &item.ProductID, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}

	return res, itemRows.Err()
}
