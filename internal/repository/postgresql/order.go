package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sweetlane/pos-backend-go/internal/domain/order"
	"github.com/sweetlane/pos-backend-go/internal/pkg/database"
)

type orderRepositoryImpl struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) order.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

// Create implements order.OrderRepository.
func (r *orderRepositoryImpl) Create(ctx context.Context, o order.Order) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	orderQuery := `
		INSERT INTO orders (id, user_id, user_name, order_date, total, item_count, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, orderQuery,
		o.ID,
		o.UserID,
		o.UserName,
		o.OrderDate,
		o.Total,
		o.ItemCount,
		o.Status,
	)
	if err != nil {
		return order.Order{}, err
	}

	itemQuery := `
		INSERT INTO order_items (
			id, order_id, product_id, product_name, product_emoji, price, quantity, is_sold_by_weight
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, item := range o.Items {
		_, err := q.Exec(ctx, itemQuery,
			item.ID,
			o.ID,
			item.ProductID,
			item.ProductName,
			item.ProductEmoji,
			item.Price,
			item.Quantity,
			item.IsSoldByWeight,
		)
		if err != nil {
			return order.Order{}, err
		}
	}

	return o, nil
}

// GetByID implements order.OrderRepository.
func (r *orderRepositoryImpl) GetByID(ctx context.Context, id string) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, user_name, order_date, total, item_count, status
		FROM orders
		WHERE id = $1
	`

	var o order.Order
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.UserID,
		&o.UserName,
		&o.OrderDate,
		&o.Total,
		&o.ItemCount,
		&o.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, order.ErrOrderNotFound
		}
		return order.Order{}, err
	}

	itemQuery := `
		SELECT id, order_id, product_id, product_name, product_emoji, price, quantity, is_sold_by_weight
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_name
	`

	rows, err := q.Query(ctx, itemQuery, id)
	if err != nil {
		return order.Order{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item order.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.ProductEmoji,
			&item.Price,
			&item.Quantity,
			&item.IsSoldByWeight,
		)
		if err != nil {
			return order.Order{}, err
		}
		o.Items = append(o.Items, item)
	}

	return o, rows.Err()
}

// List implements order.OrderRepository.
func (r *orderRepositoryImpl) List(ctx context.Context) ([]order.Order, error) {
	return r.list(ctx, nil)
}

// ListByUser implements order.OrderRepository.
func (r *orderRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	return r.list(ctx, &userID)
}

func (r *orderRepositoryImpl) list(ctx context.Context, userID *string) ([]order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, user_name, order_date, total, item_count, status
		FROM orders
		WHERE $1::text IS NULL OR user_id = $1
		ORDER BY order_date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		var o order.Order
		err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.UserName,
			&o.OrderDate,
			&o.Total,
			&o.ItemCount,
			&o.Status,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
