package order

import (
	"github.com/shopspring/decimal"
	"github.com/sweetlane/pos-backend-go/internal/pkg/validator"
)

type AddToCartRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

func (r *AddToCartRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProductID) {
		errs = append(errs, validator.ValidationError{
			Field:   "product_id",
			Message: "product_id is required",
		})
	}

	if !r.Quantity.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must be greater than 0",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CartItemResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	ProductEmoji   string          `json:"product_emoji"`
	Price          decimal.Decimal `json:"price"`
	Quantity       decimal.Decimal `json:"quantity"`
	IsSoldByWeight bool            `json:"is_sold_by_weight"`
	ItemTotal      decimal.Decimal `json:"item_total"`
}

func ToCartItemResponse(c CartItem) CartItemResponse {
	return CartItemResponse{
		ID:             c.ID,
		ProductID:      c.ProductID,
		ProductName:    c.ProductName,
		ProductEmoji:   c.ProductEmoji,
		Price:          c.ProductPrice,
		Quantity:       c.Quantity,
		IsSoldByWeight: c.IsSoldByWeight,
		ItemTotal:      c.Total(),
	}
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type OrderItemResponse struct {
	ProductName    string          `json:"product_name"`
	ProductEmoji   string          `json:"product_emoji"`
	Price          decimal.Decimal `json:"price"`
	Quantity       decimal.Decimal `json:"quantity"`
	IsSoldByWeight bool            `json:"is_sold_by_weight"`
	ItemTotal      decimal.Decimal `json:"item_total"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	UserName  string              `json:"user_name"`
	OrderDate string              `json:"order_date"`
	Total     decimal.Decimal     `json:"total"`
	ItemCount int                 `json:"item_count"`
	Status    string              `json:"status"`
	Items     []OrderItemResponse `json:"items,omitempty"`
}

func ToOrderResponse(o Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductName:    item.ProductName,
			ProductEmoji:   item.ProductEmoji,
			Price:          item.Price,
			Quantity:       item.Quantity,
			IsSoldByWeight: item.IsSoldByWeight,
			ItemTotal:      item.Total(),
		})
	}

	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		UserName:  o.UserName,
		OrderDate: o.OrderDate.Format("2006-01-02 15:04:05"),
		Total:     o.Total,
		ItemCount: o.ItemCount,
		Status:    string(o.Status),
		Items:     items,
	}
}
