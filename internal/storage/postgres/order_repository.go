package postgres

import (
	"context"
	"fmt"

	"github.com/Lersubem/foodstack/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The request_id uniqueness constraint doubles as the idempotency index:
// looking up an order by requestID is an index hit, and at most one order
// per requestID is enforced by the database itself.
const (
	ordersPKConstraint       = "orders_pkey"
	ordersRequestIDIndexName = "orders_request_id_lower_idx"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// CreateOrder inserts the order and its meal lines. It never overwrites: a
// requestID collision returns domain.ErrRequestIDTaken and an orderID
// collision returns domain.ErrOrderIDCollision.
func (r *OrderRepository) CreateOrder(ctx context.Context, order domain.Order) error {
	const orderStmt = `
INSERT INTO orders (id, request_id, created_at)
VALUES ($1, $2, $3)`

	_, err := r.exec(ctx, orderStmt, order.OrderID, order.Request.RequestID, order.OrderTime)
	if err != nil {
		if constraint, ok := uniqueViolationConstraint(err); ok {
			switch constraint {
			case ordersRequestIDIndexName:
				return domain.ErrRequestIDTaken
			case ordersPKConstraint:
				return domain.ErrOrderIDCollision
			}
		}
		return fmt.Errorf("insert order: %w", err)
	}

	const itemStmt = `
INSERT INTO order_items (order_id, position, meal_id, quantity)
VALUES ($1, $2, $3, $4)`

	for i, item := range order.Request.Meals {
		if _, err := r.exec(ctx, itemStmt, order.OrderID, i, item.MealID, item.Quantity); err != nil {
			return fmt.Errorf("insert order item %s: %w", item.MealID, err)
		}
	}
	return nil
}

// GetOrderByID returns the order or nil when absent.
func (r *OrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	const query = `SELECT id, request_id, created_at FROM orders WHERE id = $1`
	return r.queryOrder(ctx, query, orderID)
}

// FindOrderByRequestID returns the order accepted under the requestID,
// matched case-insensitively, or nil when absent.
func (r *OrderRepository) FindOrderByRequestID(ctx context.Context, requestID string) (*domain.Order, error) {
	const query = `SELECT id, request_id, created_at FROM orders WHERE LOWER(request_id) = LOWER($1)`
	return r.queryOrder(ctx, query, requestID)
}

func (r *OrderRepository) queryOrder(ctx context.Context, query string, arg any) (*domain.Order, error) {
	var o domain.Order
	err := r.queryRow(ctx, query, arg).Scan(&o.OrderID, &o.Request.RequestID, &o.OrderTime)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	items, err := r.loadItems(ctx, o.OrderID)
	if err != nil {
		return nil, err
	}
	o.Request.Meals = items
	return &o, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orderID string) ([]domain.OrderRequestItem, error) {
	const query = `
SELECT meal_id, quantity
FROM order_items
WHERE order_id = $1
ORDER BY position ASC`

	rows, err := r.query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderRequestItem
	for rows.Next() {
		var item domain.OrderRequestItem
		if err := rows.Scan(&item.MealID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate order items: %w", rows.Err())
	}
	return items, nil
}

func (r *OrderRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *OrderRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}

func (r *OrderRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
