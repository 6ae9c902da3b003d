package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sweetlane/pos-backend-go/internal/domain/order"
	"github.com/sweetlane/pos-backend-go/internal/pkg/database"
)

type cartRepositoryImpl struct {
	db *database.DB
}

func NewCartRepository(db *database.DB) order.CartRepository {
	return &cartRepositoryImpl{db: db}
}

const cartItemColumns = `c.id, c.user_id, c.product_id, c.quantity, c.created_at, c.updated_at,
			   p.name, p.emoji, p.price, p.stock, p.is_sold_by_weight`

func scanCartItem(row pgx.Row) (order.CartItem, error) {
	var item order.CartItem
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.ProductName,
		&item.ProductEmoji,
		&item.ProductPrice,
		&item.ProductStock,
		&item.IsSoldByWeight,
	)
	return item, err
}

// GetItems implements order.CartRepository.
func (r *cartRepositoryImpl) GetItems(ctx context.Context, userID string) ([]order.CartItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.created_at
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []order.CartItem
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// GetItem implements order.CartRepository.
func (r *cartRepositoryImpl) GetItem(ctx context.Context, userID, productID string) (*order.CartItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1 AND c.product_id = $2
	`

	item, err := scanCartItem(q.QueryRow(ctx, query, userID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &item, nil
}

// Upsert implements order.CartRepository.
func (r *cartRepositoryImpl) Upsert(ctx context.Context, item order.CartItem) (order.CartItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO cart_items (id, user_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = NOW()
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, item.ID, item.UserID, item.ProductID, item.Quantity).Scan(&item.ID); err != nil {
		return order.CartItem{}, err
	}

	saved, err := r.GetItem(ctx, item.UserID, item.ProductID)
	if err != nil {
		return order.CartItem{}, err
	}
	if saved == nil {
		return order.CartItem{}, order.ErrCartItemNotFound
	}

	return *saved, nil
}

// RemoveItem implements order.CartRepository.
func (r *cartRepositoryImpl) RemoveItem(ctx context.Context, userID, itemID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return order.ErrCartItemNotFound
	}

	return nil
}

// Clear implements order.CartRepository.
func (r *cartRepositoryImpl) Clear(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}
