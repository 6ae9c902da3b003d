package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/sweetlane/pos-backend-go/internal/domain/product"
	"github.com/sweetlane/pos-backend-go/internal/pkg/database"
)

type productRepositoryImpl struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) product.ProductRepository {
	return &productRepositoryImpl{db: db}
}

const productColumns = `id, name, emoji, barcode, price, stock, is_sold_by_weight, created_at, updated_at`

func scanProduct(row pgx.Row) (product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Emoji,
		&p.Barcode,
		&p.Price,
		&p.Stock,
		&p.IsSoldByWeight,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create implements product.ProductRepository.
func (r *productRepositoryImpl) Create(ctx context.Context, p product.Product) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO products (id, name, emoji, barcode, price, stock, is_sold_by_weight)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productColumns

	created, err := scanProduct(q.QueryRow(ctx, query,
		p.ID,
		p.Name,
		p.Emoji,
		p.Barcode,
		p.Price,
		p.Stock,
		p.IsSoldByWeight,
	))
	if err != nil {
		return product.Product{}, err
	}

	return created, nil
}

// GetByID implements product.ProductRepository.
func (r *productRepositoryImpl) GetByID(ctx context.Context, id string) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	found, err := scanProduct(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrProductNotFound
		}
		return product.Product{}, err
	}

	return found, nil
}

// GetByBarcode implements product.ProductRepository.
func (r *productRepositoryImpl) GetByBarcode(ctx context.Context, barcode string) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`

	found, err := scanProduct(q.QueryRow(ctx, query, barcode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrProductNotFound
		}
		return product.Product{}, err
	}

	return found, nil
}

// Search implements product.ProductRepository.
func (r *productRepositoryImpl) Search(ctx context.Context, query string) ([]product.Product, error) {
	q := GetQuerier(ctx, r.db)

	sqlQuery := `
		SELECT ` + productColumns + `
		FROM products
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR barcode LIKE '%' || $1 || '%'
		ORDER BY name
	`

	rows, err := q.Query(ctx, sqlQuery, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// Update implements product.ProductRepository.
func (r *productRepositoryImpl) Update(ctx context.Context, p product.Product) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE products
		SET name = $1, emoji = $2, barcode = $3, price = $4, is_sold_by_weight = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query, p.Name, p.Emoji, p.Barcode, p.Price, p.IsSoldByWeight, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// Delete implements product.ProductRepository.
func (r *productRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// AdjustStock implements product.ProductRepository. The WHERE guard makes the
// decrement atomic: a concurrent checkout cannot drive stock below zero.
func (r *productRepositoryImpl) AdjustStock(ctx context.Context, id string, delta decimal.Decimal) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE products
		SET stock = stock + $1, updated_at = NOW()
		WHERE id = $2 AND stock + $1 >= 0
		RETURNING ` + productColumns

	updated, err := scanProduct(q.QueryRow(ctx, query, delta, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the product is gone or the guard rejected the decrement.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return product.Product{}, getErr
			}
			return product.Product{}, product.ErrInsufficientStock
		}
		return product.Product{}, err
	}

	return updated, nil
}

// CreateRestockRecord implements product.ProductRepository.
func (r *productRepositoryImpl) CreateRestockRecord(ctx context.Context, rec product.RestockRecord) (product.RestockRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO restock_records (
			id, product_id, product_name, product_emoji, quantity_added,
			stock_before, stock_after, user_id, user_name, restock_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, product_id, product_name, product_emoji, quantity_added,
				  stock_before, stock_after, user_id, user_name, restock_date
	`

	var created product.RestockRecord
	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.ProductID,
		rec.ProductName,
		rec.ProductEmoji,
		rec.QuantityAdded,
		rec.StockBefore,
		rec.StockAfter,
		rec.UserID,
		rec.UserName,
		rec.RestockDate,
	).Scan(
		&created.ID,
		&created.ProductID,
		&created.ProductName,
		&created.ProductEmoji,
		&created.QuantityAdded,
		&created.StockBefore,
		&created.StockAfter,
		&created.UserID,
		&created.UserName,
		&created.RestockDate,
	)
	if err != nil {
		return product.RestockRecord{}, err
	}

	return created, nil
}

// ListRestockRecords implements product.ProductRepository.
func (r *productRepositoryImpl) ListRestockRecords(ctx context.Context) ([]product.RestockRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, product_id, product_name, product_emoji, quantity_added,
			   stock_before, stock_after, user_id, user_name, restock_date
		FROM restock_records
		ORDER BY restock_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []product.RestockRecord
	for rows.Next() {
		var rec product.RestockRecord
		err := rows.Scan(
			&rec.ID,
			&rec.ProductID,
			&rec.ProductName,
			&rec.ProductEmoji,
			&rec.QuantityAdded,
			&rec.StockBefore,
			&rec.StockAfter,
			&rec.UserID,
			&rec.UserName,
			&rec.RestockDate,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
