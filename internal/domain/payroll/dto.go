package payroll

import (
	"github.com/shopspring/decimal"
)

// MonthlySummary is one user's payroll for one month. It is derived fresh
// from attendance entries and expenses on every request, never cached.
type MonthlySummary struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Month    string `json:"month"` // YYYY-MM

	PresentDays               int `json:"present_days"`
	RestDays                  int `json:"rest_days"`
	WithPermissionAbsences    int `json:"with_permission_absences"`
	WithoutPermissionAbsences int `json:"without_permission_absences"`

	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	TotalHours    decimal.Decimal `json:"total_hours"`

	MonthlySalary     decimal.Decimal `json:"monthly_salary"`
	DailyRate         decimal.Decimal `json:"daily_rate"`
	OvertimePay       decimal.Decimal `json:"overtime_pay"`
	RestPayout        decimal.Decimal `json:"rest_payout"`
	AbsenceDeductions decimal.Decimal `json:"absence_deductions"`
	ExpensesTotal     decimal.Decimal `json:"expenses_total"`
	VirtualDaysPay    decimal.Decimal `json:"virtual_days_pay"`
	FinalPayroll      decimal.Decimal `json:"final_payroll"`

	NeedsSalaryInput bool `json:"needs_salary_input"`
}

// MonthTotals sums the numeric summary fields across all users for reporting.
type MonthTotals struct {
	Users                     int             `json:"users"`
	PresentDays               int             `json:"present_days"`
	RestDays                  int             `json:"rest_days"`
	WithPermissionAbsences    int             `json:"with_permission_absences"`
	WithoutPermissionAbsences int             `json:"without_permission_absences"`
	OvertimeHours             decimal.Decimal `json:"overtime_hours"`
	TotalHours                decimal.Decimal `json:"total_hours"`
	OvertimePay               decimal.Decimal `json:"overtime_pay"`
	RestPayout                decimal.Decimal `json:"rest_payout"`
	AbsenceDeductions         decimal.Decimal `json:"absence_deductions"`
	ExpensesTotal             decimal.Decimal `json:"expenses_total"`
	VirtualDaysPay            decimal.Decimal `json:"virtual_days_pay"`
	FinalPayroll              decimal.Decimal `json:"final_payroll"`
}

// MonthReport is the month view: one summary per user plus the totals row.
type MonthReport struct {
	Month     string           `json:"month"` // YYYY-MM
	Summaries []MonthlySummary `json:"summaries"`
	Totals    MonthTotals      `json:"totals"`
}
