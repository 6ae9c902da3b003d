package response

import (
	"errors"
	"net/http"

	"github.com/sweetlane/pos-backend-go/internal/domain/attendance"
	"github.com/sweetlane/pos-backend-go/internal/domain/auth"
	"github.com/sweetlane/pos-backend-go/internal/domain/expense"
	"github.com/sweetlane/pos-backend-go/internal/domain/order"
	"github.com/sweetlane/pos-backend-go/internal/domain/payroll"
	"github.com/sweetlane/pos-backend-go/internal/domain/product"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
	"github.com/sweetlane/pos-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrCannotDisableSelf):
		BadRequest(w, "You cannot disable your own account", nil)
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrStaffAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrSalaryNotConfigured):
		BadRequest(w, "Monthly salary is not configured for this user", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, "Attendance entry not found")
	case errors.Is(err, attendance.ErrEntryExists):
		Conflict(w, "An attendance entry already exists for this day")
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Cannot record attendance for a future date", nil)
	case errors.Is(err, attendance.ErrInvalidCalculation):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrSalaryRequired):
		BadRequest(w, "Set the user's monthly salary before recording attendance", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Period must be a valid YYYY-MM month", nil)

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")

	// Product domain errors
	case errors.Is(err, product.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, product.ErrBarcodeExists):
		Conflict(w, "Barcode already registered")
	case errors.Is(err, product.ErrInvalidQuantity):
		BadRequest(w, "Quantity must be greater than zero", nil)
	case errors.Is(err, product.ErrInsufficientStock):
		Conflict(w, "Not enough stock")

	// Order domain errors
	case errors.Is(err, order.ErrCartEmpty):
		BadRequest(w, "Cart is empty", nil)
	case errors.Is(err, order.ErrCartItemNotFound):
		NotFound(w, "Cart item not found")
	case errors.Is(err, order.ErrOrderNotFound):
		NotFound(w, "Order not found")
	case errors.Is(err, order.ErrInsufficientStock):
		Conflict(w, "Not enough stock for the requested quantity")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
