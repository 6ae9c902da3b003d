package attendance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sweetlane/pos-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type RecordDayRequest struct {
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`      // YYYY-MM-DD
	Status   string  `json:"status"`    // present, reset, absent_with_permission, absent_without_permission
	CheckIn  *string `json:"check_in"`  // HH:MM, required for present/reset
	CheckOut *string `json:"check_out"` // HH:MM, required for present/reset
	Notes    string  `json:"notes"`
}

func (r *RecordDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, reset, absent_with_permission, absent_without_permission",
		})
	}

	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, ok := validator.IsValidClockTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be in HH:MM format",
			})
		}
	}

	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, ok := validator.IsValidClockTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate returns the request date at day granularity.
func (r *RecordDayRequest) ParsedDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}

// ClockTimes combines the request date with the HH:MM clock fields. Either
// pointer is nil when the corresponding field was omitted.
func (r *RecordDayRequest) ClockTimes(date time.Time) (checkIn, checkOut *time.Time) {
	if r.CheckIn != nil && *r.CheckIn != "" {
		if t, ok := validator.IsValidClockTime(*r.CheckIn); ok {
			at := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
			checkIn = &at
		}
	}
	if r.CheckOut != nil && *r.CheckOut != "" {
		if t, ok := validator.IsValidClockTime(*r.CheckOut); ok {
			at := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
			checkOut = &at
		}
	}
	return checkIn, checkOut
}

type UpdateEntryRequest struct {
	ID string `json:"-"`
	RecordDayRequest
}

type EntryFilter struct {
	UserID    *string `json:"user_id,omitempty"`
	StartDate string  `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate   string  `json:"end_date"`   // YYYY-MM-DD, inclusive
}

func (f *EntryFilter) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(f.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(f.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EntryResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	UserName      string          `json:"user_name"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	IsPresent     bool            `json:"is_present"`
	CheckIn       *string         `json:"check_in,omitempty"`
	CheckOut      *string         `json:"check_out,omitempty"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	DailyPay      decimal.Decimal `json:"daily_pay"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

type DayResultResponse struct {
	IsValid           bool            `json:"is_valid"`
	ValidationMessage string          `json:"validation_message,omitempty"`
	Status            string          `json:"status"`
	IsPresent         bool            `json:"is_present"`
	RegularHours      decimal.Decimal `json:"regular_hours"`
	OvertimeHours     decimal.Decimal `json:"overtime_hours"`
	DailyPay          decimal.Decimal `json:"daily_pay"`
	NeedsSalaryInput  bool            `json:"needs_salary_input"`
}

func clockToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}

func ToEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		UserName:      e.UserName,
		Date:          e.Date.Format("2006-01-02"),
		Status:        string(e.Status),
		IsPresent:     e.Status == StatusPresent,
		CheckIn:       clockToString(e.CheckIn),
		CheckOut:      clockToString(e.CheckOut),
		RegularHours:  e.RegularHours,
		OvertimeHours: e.OvertimeHours,
		TotalHours:    e.TotalHours(),
		DailyPay:      e.DailyPay,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToDayResultResponse(r DayResult) DayResultResponse {
	return DayResultResponse{
		IsValid:           r.IsValid,
		ValidationMessage: r.ValidationMessage,
		Status:            string(r.Status),
		IsPresent:         r.IsPresent,
		RegularHours:      r.RegularHours,
		OvertimeHours:     r.OvertimeHours,
		DailyPay:          r.DailyPay,
		NeedsSalaryInput:  r.NeedsSalaryInput,
	}
}
