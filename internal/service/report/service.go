package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sweetlane/pos-backend-go/internal/domain/report"
)

const topProductsLimit = 10

type reportService struct {
	reportRepo report.ReportRepository
}

// NewReportService creates a new sales reporting service.
func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) GetSalesReport(ctx context.Context) (report.SalesReport, error) {
	total, orders, itemsSold, err := s.reportRepo.GetSalesTotals(ctx)
	if err != nil {
		return report.SalesReport{}, fmt.Errorf("failed to get sales totals: %w", err)
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	last7Days, err := s.reportRepo.GetSalesSince(ctx, weekAgo)
	if err != nil {
		return report.SalesReport{}, fmt.Errorf("failed to get recent sales: %w", err)
	}

	topProducts, err := s.reportRepo.GetTopProducts(ctx, topProductsLimit)
	if err != nil {
		return report.SalesReport{}, fmt.Errorf("failed to get top products: %w", err)
	}

	average := decimal.Zero
	if orders > 0 {
		average = total.Div(decimal.NewFromInt(orders)).Round(2)
	}

	return report.SalesReport{
		TotalSales:        total,
		TotalOrders:       orders,
		AverageOrderValue: average,
		TotalItemsSold:    itemsSold,
		Last7DaysSales:    last7Days,
		TopProducts:       topProducts,
	}, nil
}
