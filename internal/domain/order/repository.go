package order

import "context"

// CartRepository defines data access methods for open carts.
type CartRepository interface {
	// GetItems retrieves a user's cart with product details joined.
	GetItems(ctx context.Context, userID string) ([]CartItem, error)

	// GetItem returns nil when the user has no cart row for the product.
	GetItem(ctx context.Context, userID, productID string) (*CartItem, error)

	Upsert(ctx context.Context, item CartItem) (CartItem, error)

	RemoveItem(ctx context.Context, userID, itemID string) error

	// Clear removes all of a user's cart rows.
	Clear(ctx context.Context, userID string) error
}

// OrderRepository defines data access methods for completed orders.
type OrderRepository interface {
	// Create inserts the order and its items.
	Create(ctx context.Context, o Order) (Order, error)

	GetByID(ctx context.Context, id string) (Order, error)

	// List retrieves all orders, newest first, without item rows.
	List(ctx context.Context) ([]Order, error)

	// ListByUser retrieves one user's orders, newest first, without item rows.
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}
