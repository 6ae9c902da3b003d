package product

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductRepository defines data access methods for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, p Product) (Product, error)

	GetByID(ctx context.Context, id string) (Product, error)

	GetByBarcode(ctx context.Context, barcode string) (Product, error)

	// Search matches name or barcode, case-insensitive; empty query lists all,
	// ordered by name.
	Search(ctx context.Context, query string) ([]Product, error)

	Update(ctx context.Context, p Product) error

	Delete(ctx context.Context, id string) error

	// AdjustStock atomically adds delta to the product's stock and returns the
	// updated row. Negative deltas fail with ErrInsufficientStock when stock
	// would go below zero.
	AdjustStock(ctx context.Context, id string, delta decimal.Decimal) (Product, error)

	CreateRestockRecord(ctx context.Context, r RestockRecord) (RestockRecord, error)

	ListRestockRecords(ctx context.Context) ([]RestockRecord, error)
}
