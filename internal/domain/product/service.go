package product

import "context"

// ProductService defines business logic for catalog management.
type ProductService interface {
	Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error)

	Get(ctx context.Context, id string) (ProductResponse, error)

	// Search lists products matching a name or barcode fragment.
	Search(ctx context.Context, query string) ([]ProductResponse, error)

	Update(ctx context.Context, req UpdateProductRequest) (ProductResponse, error)

	Delete(ctx context.Context, id string) error

	// Restock adds stock and writes an audit record naming the acting user.
	Restock(ctx context.Context, req RestockRequest) (ProductResponse, error)

	ListRestockRecords(ctx context.Context) ([]RestockRecordResponse, error)
}
