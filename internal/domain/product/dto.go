package product

import (
	"github.com/shopspring/decimal"
	"github.com/sweetlane/pos-backend-go/internal/pkg/validator"
)

type CreateProductRequest struct {
	Name           string          `json:"name"`
	Emoji          string          `json:"emoji"`
	Barcode        string          `json:"barcode"`
	Price          decimal.Decimal `json:"price"`
	Stock          decimal.Decimal `json:"stock"`
	IsSoldByWeight bool            `json:"is_sold_by_weight"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !r.Price.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must be greater than 0",
		})
	}

	if r.Stock.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "stock",
			Message: "stock must not be negative",
		})
	}

	if r.Barcode != "" && !validator.IsValidBarcode(r.Barcode) {
		errs = append(errs, validator.ValidationError{
			Field:   "barcode",
			Message: "barcode must contain digits only",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProductRequest struct {
	ID             string           `json:"-"`
	Name           *string          `json:"name,omitempty"`
	Emoji          *string          `json:"emoji,omitempty"`
	Barcode        *string          `json:"barcode,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	IsSoldByWeight *bool            `json:"is_sold_by_weight,omitempty"`
}

func (r *UpdateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Price != nil && !r.Price.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must be greater than 0",
		})
	}

	if r.Barcode != nil && *r.Barcode != "" && !validator.IsValidBarcode(*r.Barcode) {
		errs = append(errs, validator.ValidationError{
			Field:   "barcode",
			Message: "barcode must contain digits only",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RestockRequest struct {
	ProductID string          `json:"-"`
	Quantity  decimal.Decimal `json:"quantity"`
}

func (r *RestockRequest) Validate() error {
	if !r.Quantity.IsPositive() {
		return validator.ValidationErrors{{
			Field:   "quantity",
			Message: "quantity must be greater than 0",
		}}
	}
	return nil
}

type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Emoji          string          `json:"emoji"`
	Barcode        string          `json:"barcode,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Stock          decimal.Decimal `json:"stock"`
	IsSoldByWeight bool            `json:"is_sold_by_weight"`
	UnitLabel      string          `json:"unit_label"`
}

func ToResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Emoji:          p.Emoji,
		Barcode:        p.Barcode,
		Price:          p.Price,
		Stock:          p.Stock,
		IsSoldByWeight: p.IsSoldByWeight,
		UnitLabel:      p.UnitLabel(),
	}
}

type RestockRecordResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	ProductEmoji  string          `json:"product_emoji"`
	QuantityAdded decimal.Decimal `json:"quantity_added"`
	StockBefore   decimal.Decimal `json:"stock_before"`
	StockAfter    decimal.Decimal `json:"stock_after"`
	UserName      string          `json:"user_name"`
	RestockDate   string          `json:"restock_date"`
}

func ToRestockResponse(r RestockRecord) RestockRecordResponse {
	return RestockRecordResponse{
		ID:            r.ID,
		ProductID:     r.ProductID,
		ProductName:   r.ProductName,
		ProductEmoji:  r.ProductEmoji,
		QuantityAdded: r.QuantityAdded,
		StockBefore:   r.StockBefore,
		StockAfter:    r.StockAfter,
		UserName:      r.UserName,
		RestockDate:   r.RestockDate.Format("2006-01-02 15:04:05"),
	}
}
