package expense

import (
	"context"
	"time"
)

// ExpenseRepository defines data access methods for staff expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)

	// ListByUser retrieves a user's expenses in the inclusive date range.
	ListByUser(ctx context.Context, userID string, start, end time.Time) ([]Expense, error)

	// ListByPeriod retrieves all expenses in the inclusive date range.
	ListByPeriod(ctx context.Context, start, end time.Time) ([]Expense, error)

	Delete(ctx context.Context, id string) error
}
