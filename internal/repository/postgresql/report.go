package postgresql

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sweetlane/pos-backend-go/internal/domain/report"
	"github.com/sweetlane/pos-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// GetSalesTotals implements report.ReportRepository.
func (r *reportRepositoryImpl) GetSalesTotals(ctx context.Context) (decimal.Decimal, int64, decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(o.total), 0),
			   COUNT(o.id),
			   COALESCE((SELECT SUM(quantity) FROM order_items), 0)
		FROM orders o
		WHERE o.status = 'completed'
	`

	var (
		total     decimal.Decimal
		orders    int64
		itemsSold decimal.Decimal
	)
	if err := q.QueryRow(ctx, query).Scan(&total, &orders, &itemsSold); err != nil {
		return decimal.Zero, 0, decimal.Zero, err
	}

	return total, orders, itemsSold, nil
}

// GetSalesSince implements report.ReportRepository.
func (r *reportRepositoryImpl) GetSalesSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = 'completed' AND order_date >= $1
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, since).Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

// GetTopProducts implements report.ReportRepository.
func (r *reportRepositoryImpl) GetTopProducts(ctx context.Context, limit int) ([]report.TopProduct, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.product_name, i.product_emoji, SUM(i.quantity) AS total_sold
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.status = 'completed'
		GROUP BY i.product_name, i.product_emoji
		ORDER BY total_sold DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []report.TopProduct
	for rows.Next() {
		var p report.TopProduct
		if err := rows.Scan(&p.ProductName, &p.ProductEmoji, &p.TotalSold); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}
