package payroll

import (
	"context"
	"time"

	"github.com/sweetlane/pos-backend-go/internal/domain/user"
)

// PayrollService computes monthly payroll figures. "No data" is a valid
// terminal state: months without entries yield zeroed summaries, not errors.
type PayrollService interface {
	// ComputeSummary derives one user's payroll for the given month from
	// their attendance entries and expenses.
	ComputeSummary(ctx context.Context, u user.User, year int, month time.Month) (MonthlySummary, error)

	// ComputeMonth derives summaries for every enabled user plus month totals.
	ComputeMonth(ctx context.Context, year int, month time.Month) (MonthReport, error)
}
