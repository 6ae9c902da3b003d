package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog item. Stock carries three decimal places because
// weighed goods sell in fractional kilograms.
type Product struct {
	ID             string
	Name           string
	Emoji          string
	Barcode        string
	Price          decimal.Decimal
	Stock          decimal.Decimal
	IsSoldByWeight bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UnitLabel returns the unit shown on receipts and stock screens.
func (p *Product) UnitLabel() string {
	if p.IsSoldByWeight {
		return "KGS"
	}
	return "PCS"
}

// RestockRecord is one audit row of stock being added.
type RestockRecord struct {
	ID            string
	ProductID     string
	ProductName   string // Denormalized
	ProductEmoji  string // Denormalized
	QuantityAdded decimal.Decimal
	StockBefore   decimal.Decimal
	StockAfter    decimal.Decimal
	UserID        string
	UserName      string // Denormalized
	RestockDate   time.Time
}
