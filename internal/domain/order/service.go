package order

import "context"

// OrderService defines business logic for the cart and checkout flow.
type OrderService interface {
	// AddToCart adds quantity of a product to the caller's cart, checking
	// stock availability against the combined cart quantity.
	AddToCart(ctx context.Context, req AddToCartRequest) (CartItemResponse, error)

	GetCart(ctx context.Context) (CartResponse, error)

	RemoveFromCart(ctx context.Context, itemID string) error

	// Checkout turns the caller's cart into a completed order, decrements
	// stock and clears the cart, all in one transaction.
	Checkout(ctx context.Context) (OrderResponse, error)

	GetOrder(ctx context.Context, id string) (OrderResponse, error)

	// ListOrders returns all orders for staff, or the caller's own otherwise.
	ListOrders(ctx context.Context) ([]OrderResponse, error)
}
