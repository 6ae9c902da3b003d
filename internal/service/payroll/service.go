package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sweetlane/pos-backend-go/internal/domain/attendance"
	"github.com/sweetlane/pos-backend-go/internal/domain/expense"
	"github.com/sweetlane/pos-backend-go/internal/domain/payroll"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
	attendancesvc "github.com/sweetlane/pos-backend-go/internal/service/attendance"
)

type payrollService struct {
	entryRepo   attendance.EntryRepository
	expenseRepo expense.ExpenseRepository
	userRepo    user.UserRepository
	engine      *attendancesvc.Engine
}

// NewPayrollService creates a new payroll service.
func NewPayrollService(
	entryRepo attendance.EntryRepository,
	expenseRepo expense.ExpenseRepository,
	userRepo user.UserRepository,
	engine *attendancesvc.Engine,
) payroll.PayrollService {
	return &payrollService{
		entryRepo:   entryRepo,
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		engine:      engine,
	}
}

func (s *payrollService) ComputeSummary(ctx context.Context, u user.User, year int, month time.Month) (payroll.MonthlySummary, error) {
	if month < time.January || month > time.December || year < 2000 || year > 2200 {
		return payroll.MonthlySummary{}, payroll.ErrInvalidPeriod
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(year, month, attendance.DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)

	filter := attendance.EntryFilter{
		UserID:    &u.ID,
		StartDate: monthStart.Format("2006-01-02"),
		EndDate:   monthEnd.Format("2006-01-02"),
	}
	entries, err := s.entryRepo.List(ctx, filter)
	if err != nil {
		return payroll.MonthlySummary{}, fmt.Errorf("failed to list entries: %w", err)
	}

	expenses, err := s.expenseRepo.ListByUser(ctx, u.ID, monthStart, monthEnd)
	if err != nil {
		return payroll.MonthlySummary{}, fmt.Errorf("failed to list expenses: %w", err)
	}

	stats := s.engine.ComputeMonthly(u, year, month, entries, time.Now())

	summary := payroll.MonthlySummary{
		UserID:   u.ID,
		UserName: u.Name,
		Month:    monthStart.Format("2006-01"),

		PresentDays:               stats.WorkedDays,
		RestDays:                  stats.RestDays,
		WithPermissionAbsences:    stats.WithPermissionAbsences,
		WithoutPermissionAbsences: stats.WithoutPermissionAbsences,

		RegularHours:  decimal.Zero,
		OvertimeHours: decimal.Zero,
		TotalHours:    decimal.Zero,

		MonthlySalary:     u.MonthlySalary,
		DailyRate:         stats.DailyRate,
		OvertimePay:       decimal.Zero,
		RestPayout:        stats.RestPayout,
		AbsenceDeductions: stats.AbsenceDeductions,
		ExpensesTotal:     decimal.Zero,
		VirtualDaysPay:    decimal.Zero,
		FinalPayroll:      decimal.Zero,
	}

	for _, entry := range entries {
		summary.RegularHours = summary.RegularHours.Add(entry.RegularHours)
		summary.OvertimeHours = summary.OvertimeHours.Add(entry.OvertimeHours)
	}
	summary.TotalHours = summary.RegularHours.Add(summary.OvertimeHours)

	for _, e := range expenses {
		summary.ExpensesTotal = summary.ExpensesTotal.Add(e.Amount)
	}

	if !u.MonthlySalary.IsPositive() {
		summary.NeedsSalaryInput = true
		return summary, nil
	}

	hourlyRate := s.engine.HourlyRate(u, year, month)
	summary.OvertimePay = summary.OvertimeHours.Mul(hourlyRate).Mul(u.EffectiveOvertimeMultiplier()).Round(2)

	// Short months are padded with paid virtual days to keep salaries level
	// across the year.
	if attendance.DaysInMonth(year, month) == 28 {
		virtualDays := decimal.NewFromInt(int64(s.engine.Policy().ShortMonthVirtualDays))
		summary.VirtualDaysPay = s.engine.DailyRate(u, year, month).Mul(virtualDays).Round(2)
	}

	final := u.MonthlySalary.
		Add(summary.OvertimePay).
		Add(summary.RestPayout).
		Sub(summary.AbsenceDeductions).
		Sub(summary.ExpensesTotal).
		Add(summary.VirtualDaysPay)
	if final.IsNegative() {
		final = decimal.Zero
	}
	summary.FinalPayroll = final.Round(2)

	return summary, nil
}

func (s *payrollService) ComputeMonth(ctx context.Context, year int, month time.Month) (payroll.MonthReport, error) {
	users, err := s.userRepo.ListEnabled(ctx, false)
	if err != nil {
		return payroll.MonthReport{}, fmt.Errorf("failed to list users: %w", err)
	}

	report := payroll.MonthReport{
		Month:     time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
		Summaries: make([]payroll.MonthlySummary, 0, len(users)),
		Totals: payroll.MonthTotals{
			OvertimeHours:     decimal.Zero,
			TotalHours:        decimal.Zero,
			OvertimePay:       decimal.Zero,
			RestPayout:        decimal.Zero,
			AbsenceDeductions: decimal.Zero,
			ExpensesTotal:     decimal.Zero,
			VirtualDaysPay:    decimal.Zero,
			FinalPayroll:      decimal.Zero,
		},
	}

	for _, u := range users {
		summary, err := s.ComputeSummary(ctx, u, year, month)
		if err != nil {
			return payroll.MonthReport{}, err
		}
		report.Summaries = append(report.Summaries, summary)

		t := &report.Totals
		t.Users++
		t.PresentDays += summary.PresentDays
		t.RestDays += summary.RestDays
		t.WithPermissionAbsences += summary.WithPermissionAbsences
		t.WithoutPermissionAbsences += summary.WithoutPermissionAbsences
		t.OvertimeHours = t.OvertimeHours.Add(summary.OvertimeHours)
		t.TotalHours = t.TotalHours.Add(summary.TotalHours)
		t.OvertimePay = t.OvertimePay.Add(summary.OvertimePay)
		t.RestPayout = t.RestPayout.Add(summary.RestPayout)
		t.AbsenceDeductions = t.AbsenceDeductions.Add(summary.AbsenceDeductions)
		t.ExpensesTotal = t.ExpensesTotal.Add(summary.ExpensesTotal)
		t.VirtualDaysPay = t.VirtualDaysPay.Add(summary.VirtualDaysPay)
		t.FinalPayroll = t.FinalPayroll.Add(summary.FinalPayroll)
	}

	return report, nil
}
