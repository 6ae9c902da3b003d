package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is money paid out on behalf of a staff member (advances, uniforms,
// till shortages). It is deducted from that user's monthly payroll.
type Expense struct {
	ID        string
	UserID    string
	UserName  string // Denormalized for history
	Category  string
	Amount    decimal.Decimal
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}
