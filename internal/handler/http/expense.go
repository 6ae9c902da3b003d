package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sweetlane/pos-backend-go/internal/domain/expense"
	"github.com/sweetlane/pos-backend-go/internal/handler/http/response"
	"github.com/sweetlane/pos-backend-go/internal/pkg/validator"
)

type ExpenseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type expenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &expenseHandlerImpl{expenseService: expenseService}
}

// Create implements ExpenseHandler.
func (h *expenseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req expense.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.expenseService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense recorded", result)
}

// List implements ExpenseHandler. The period defaults to the current month;
// user_id narrows to one user.
func (h *expenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	start, end, ok := periodParams(r)
	if !ok {
		response.BadRequest(w, "start_date and end_date must be YYYY-MM-DD dates", nil)
		return
	}

	var (
		result []expense.ExpenseResponse
		err    error
	)
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		result, err = h.expenseService.ListByUser(r.Context(), userID, start, end)
	} else {
		result, err = h.expenseService.ListByPeriod(r.Context(), start, end)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements ExpenseHandler.
func (h *expenseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.expenseService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense deleted", nil)
}

func periodParams(r *http.Request) (time.Time, time.Time, bool) {
	rawStart := r.URL.Query().Get("start_date")
	rawEnd := r.URL.Query().Get("end_date")

	if rawStart == "" && rawEnd == "" {
		now := time.Now().UTC()
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), true
	}

	start, okStart := validator.IsValidDate(rawStart)
	end, okEnd := validator.IsValidDate(rawEnd)
	if !okStart || !okEnd || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
