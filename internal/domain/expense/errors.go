package expense

import "errors"

var (
	ErrExpenseNotFound = errors.New("expense not found")
)
