package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// CartItem is one line of a user's open cart. At most one row exists per
// (user, product) pair; adding the same product again raises the quantity.
type CartItem struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	ProductName    string
	ProductEmoji   string
	ProductPrice   decimal.Decimal
	ProductStock   decimal.Decimal
	IsSoldByWeight bool
}

// Total returns price × quantity for this line.
func (c *CartItem) Total() decimal.Decimal {
	return c.ProductPrice.Mul(c.Quantity)
}

// Order is a completed checkout. Item rows are denormalized so history
// survives product edits and deletions.
type Order struct {
	ID        string
	UserID    string
	UserName  string // Denormalized
	OrderDate time.Time
	Total     decimal.Decimal
	ItemCount int
	Status    OrderStatus

	Items []OrderItem
}

type OrderItem struct {
	ID             string
	OrderID        string
	ProductID      *string         // Nil when the product was since deleted
	ProductName    string          // Denormalized
	ProductEmoji   string          // Denormalized
	Price          decimal.Decimal // Price at time of order
	Quantity       decimal.Decimal
	IsSoldByWeight bool
}

// Total returns price × quantity for this line.
func (i *OrderItem) Total() decimal.Decimal {
	return i.Price.Mul(i.Quantity)
}
