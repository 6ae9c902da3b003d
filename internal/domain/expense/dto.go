package expense

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sweetlane/pos-backend-go/internal/pkg/validator"
)

type CreateExpenseRequest struct {
	UserID   string          `json:"user_id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Notes    string          `json:"notes"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than 0",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate returns the request date at day granularity.
func (r *CreateExpenseRequest) ParsedDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}

type ExpenseResponse struct {
	ID       string          `json:"id"`
	UserID   string          `json:"user_id"`
	UserName string          `json:"user_name"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	Notes    string          `json:"notes,omitempty"`
}

func ToResponse(e Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:       e.ID,
		UserID:   e.UserID,
		UserName: e.UserName,
		Category: e.Category,
		Amount:   e.Amount,
		Date:     e.Date.Format("2006-01-02"),
		Notes:    e.Notes,
	}
}
