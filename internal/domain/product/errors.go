package product

import "errors"

// Product domain errors
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrBarcodeExists     = errors.New("barcode already assigned to another product")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrInsufficientStock = errors.New("insufficient stock")
)
