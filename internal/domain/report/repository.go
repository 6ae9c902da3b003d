package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportRepository defines the aggregate queries behind the reports screen.
type ReportRepository interface {
	GetSalesTotals(ctx context.Context) (total decimal.Decimal, orders int64, itemsSold decimal.Decimal, err error)

	GetSalesSince(ctx context.Context, since time.Time) (decimal.Decimal, error)

	GetTopProducts(ctx context.Context, limit int) ([]TopProduct, error)
}
