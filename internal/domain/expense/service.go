package expense

import (
	"context"
	"time"
)

// ExpenseService defines business logic for staff expenses.
type ExpenseService interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)

	// ListByUser retrieves a user's expenses in the inclusive date range.
	ListByUser(ctx context.Context, userID string, start, end time.Time) ([]ExpenseResponse, error)

	// ListByPeriod retrieves all expenses in the inclusive date range.
	ListByPeriod(ctx context.Context, start, end time.Time) ([]ExpenseResponse, error)

	Delete(ctx context.Context, id string) error
}
