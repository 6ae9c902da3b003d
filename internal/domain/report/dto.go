package report

import "github.com/shopspring/decimal"

// TopProduct is one row of the best-sellers list.
type TopProduct struct {
	ProductName  string          `json:"product_name"`
	ProductEmoji string          `json:"product_emoji"`
	TotalSold    decimal.Decimal `json:"total_sold"`
}

// SalesReport aggregates order history for the reports screen.
type SalesReport struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalOrders       int64           `json:"total_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	TotalItemsSold    decimal.Decimal `json:"total_items_sold"`
	Last7DaysSales    decimal.Decimal `json:"last_7_days_sales"`
	TopProducts       []TopProduct    `json:"top_products"`
}
