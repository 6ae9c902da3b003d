package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent                 Status = "present"
	StatusReset                   Status = "reset"
	StatusAbsentWithPermission    Status = "absent_with_permission"
	StatusAbsentWithoutPermission Status = "absent_without_permission"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusReset, StatusAbsentWithPermission, StatusAbsentWithoutPermission:
		return true
	}
	return false
}

// RequiresClockTimes reports whether entries with this status must carry
// check-in and check-out times. Reset days are worked and paid, so their
// hours matter just like a present day's.
func (s Status) RequiresClockTimes() bool {
	return s == StatusPresent || s == StatusReset
}

// IsAbsence reports whether s is one of the two absence variants.
func (s Status) IsAbsence() bool {
	return s == StatusAbsentWithPermission || s == StatusAbsentWithoutPermission
}

// Entry is one day's attendance fact for one user. Hours and pay are the
// values computed when the entry was recorded; they are a display snapshot,
// monthly payroll recomputes from raw hours and current salary terms.
type Entry struct {
	ID            string
	UserID        string
	UserName      string // Denormalized for history
	Date          time.Time
	Status        Status
	CheckIn       *time.Time
	CheckOut      *time.Time
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	DailyPay      decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TotalHours returns regular plus overtime hours.
func (e *Entry) TotalHours() decimal.Decimal {
	return e.RegularHours.Add(e.OvertimeHours)
}

// DayResult is the outcome of a single-day calculation. Invalid results carry
// a message and zeroed figures; they are never persisted but may be shown as
// a preview.
type DayResult struct {
	IsValid           bool
	ValidationMessage string
	Status            Status
	IsPresent         bool
	RegularHours      decimal.Decimal
	OvertimeHours     decimal.Decimal
	DailyPay          decimal.Decimal
	NeedsSalaryInput  bool
}

// MonthlyStats aggregates one user's entries over one month.
type MonthlyStats struct {
	WorkedDays                int
	RestDays                  int
	RestPayout                decimal.Decimal
	WithPermissionAbsences    int
	WithoutPermissionAbsences int
	AbsenceDeductions         decimal.Decimal
	DailyRate                 decimal.Decimal
}
