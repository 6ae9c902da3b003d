package report

import "context"

// ReportService assembles the sales report.
type ReportService interface {
	GetSalesReport(ctx context.Context) (SalesReport, error)
}
