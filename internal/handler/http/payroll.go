package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sweetlane/pos-backend-go/internal/domain/payroll"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
	"github.com/sweetlane/pos-backend-go/internal/handler/http/response"
	"github.com/sweetlane/pos-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetMonth(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	userRepo       user.UserRepository
}

func NewPayrollHandler(payrollService payroll.PayrollService, userRepo user.UserRepository) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		userRepo:       userRepo,
	}
}

// GetSummary implements PayrollHandler: one user's payroll for ?month=YYYY-MM,
// defaulting to the current month.
func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	u, err := h.userRepo.GetByID(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.ComputeSummary(r.Context(), u, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonth implements PayrollHandler: the whole-staff month view.
func (h *payrollHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.ComputeMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func monthParam(r *http.Request) (int, time.Month, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}

	parsed, ok := validator.IsValidMonth(raw)
	if !ok {
		return 0, 0, payroll.ErrInvalidPeriod
	}
	return parsed.Year(), parsed.Month(), nil
}
