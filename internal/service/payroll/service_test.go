package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetlane/pos-backend-go/internal/domain/attendance"
	"github.com/sweetlane/pos-backend-go/internal/domain/expense"
	"github.com/sweetlane/pos-backend-go/internal/domain/payroll"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
	attendancesvc "github.com/sweetlane/pos-backend-go/internal/service/attendance"
)

type fakeEntryRepo struct {
	entries []attendance.Entry
}

func (r *fakeEntryRepo) Create(_ context.Context, e attendance.Entry) (attendance.Entry, error) {
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *fakeEntryRepo) GetByID(_ context.Context, _ string) (attendance.Entry, error) {
	return attendance.Entry{}, attendance.ErrEntryNotFound
}

func (r *fakeEntryRepo) GetByUserAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Entry, error) {
	return nil, nil
}

func (r *fakeEntryRepo) List(_ context.Context, filter attendance.EntryFilter) ([]attendance.Entry, error) {
	start, _ := time.Parse("2006-01-02", filter.StartDate)
	end, _ := time.Parse("2006-01-02", filter.EndDate)

	var out []attendance.Entry
	for _, entry := range r.entries {
		if filter.UserID != nil && entry.UserID != *filter.UserID {
			continue
		}
		if entry.Date.Before(start) || entry.Date.After(end) {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *fakeEntryRepo) Update(_ context.Context, _ attendance.Entry) error { return nil }

func (r *fakeEntryRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeExpenseRepo struct {
	expenses []expense.Expense
}

func (r *fakeExpenseRepo) Create(_ context.Context, e expense.Expense) (expense.Expense, error) {
	r.expenses = append(r.expenses, e)
	return e, nil
}

func (r *fakeExpenseRepo) ListByUser(_ context.Context, userID string, start, end time.Time) ([]expense.Expense, error) {
	var out []expense.Expense
	for _, e := range r.expenses {
		if e.UserID != userID || e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeExpenseRepo) ListByPeriod(_ context.Context, start, end time.Time) ([]expense.Expense, error) {
	var out []expense.Expense
	for _, e := range r.expenses {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeUserRepo struct {
	users []user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context, _ bool) ([]user.User, error) { return r.users, nil }

func (r *fakeUserRepo) ListEnabled(_ context.Context, includeDevelopers bool) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		if !u.IsEnabled {
			continue
		}
		if u.Role == user.RoleDeveloper && !includeDevelopers {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, _ user.User) error { return nil }

func (r *fakeUserRepo) Delete(_ context.Context, _ string) error { return nil }

func worker(id, salary string) user.User {
	return user.User{
		ID:            id,
		Username:      "worker-" + id,
		Name:          "Worker " + id,
		Role:          user.RoleUser,
		MonthlySalary: decimal.RequireFromString(salary),
		IsEnabled:     true,
	}
}

func entryOn(userID string, year int, month time.Month, day int, status attendance.Status, regular, overtime string) attendance.Entry {
	return attendance.Entry{
		ID:            userID + "-" + time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
		UserID:        userID,
		Date:          time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Status:        status,
		RegularHours:  decimal.RequireFromString(regular),
		OvertimeHours: decimal.RequireFromString(overtime),
	}
}

func newTestService(users []user.User, entries []attendance.Entry, expenses []expense.Expense) payroll.PayrollService {
	engine := attendancesvc.NewEngine(attendance.DefaultCyclePolicy())
	return NewPayrollService(
		&fakeEntryRepo{entries: entries},
		&fakeExpenseRepo{expenses: expenses},
		&fakeUserRepo{users: users},
		engine,
	)
}

func TestComputeSummary_FullMonthFigures(t *testing.T) {
	t.Parallel()

	u := worker("u1", "3000")

	// April 2026, 30 days: seven Present days close a cycle, one unexcused
	// absence, 2h overtime on one day, 50 in expenses.
	entries := []attendance.Entry{
		entryOn("u1", 2026, time.April, 1, attendance.StatusPresent, "8", "0"),
		entryOn("u1", 2026, time.April, 2, attendance.StatusPresent, "8", "0"),
		entryOn("u1", 2026, time.April, 3, attendance.StatusPresent, "8", "2"),
		entryOn("u1", 2026, time.April, 4, attendance.StatusPresent, "8", "0"),
		entryOn("u1", 2026, time.April, 5, attendance.StatusPresent, "8", "0"),
		entryOn("u1", 2026, time.April, 6, attendance.StatusPresent, "8", "0"),
		entryOn("u1", 2026, time.April, 7, attendance.StatusPresent, "8", "0"),
		entryOn("u1", 2026, time.April, 9, attendance.StatusAbsentWithoutPermission, "0", "0"),
	}
	expenses := []expense.Expense{
		{ID: "x1", UserID: "u1", Amount: decimal.RequireFromString("50"), Date: time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)},
	}

	svc := newTestService([]user.User{u}, entries, expenses)

	summary, err := svc.ComputeSummary(context.Background(), u, 2026, time.April)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.PresentDays)
	assert.Equal(t, 1, summary.RestDays)
	assert.Equal(t, 1, summary.WithoutPermissionAbsences)
	assert.True(t, summary.OvertimeHours.Equal(decimal.NewFromInt(2)))
	assert.True(t, summary.TotalHours.Equal(decimal.NewFromInt(58)))

	// hourly 12.50: overtime pay 2 x 12.50 x 1.5 = 37.50
	assert.True(t, summary.OvertimePay.Equal(decimal.RequireFromString("37.5")), "overtime pay: %s", summary.OvertimePay)
	// daily 100: one rest day earned, one unexcused absence deducted
	assert.True(t, summary.RestPayout.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.AbsenceDeductions.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.ExpensesTotal.Equal(decimal.NewFromInt(50)))
	assert.True(t, summary.VirtualDaysPay.IsZero(), "no virtual days in a 30-day month")

	// 3000 + 37.50 + 100 - 100 - 50 = 2987.50
	assert.True(t, summary.FinalPayroll.Equal(decimal.RequireFromString("2987.5")), "final payroll: %s", summary.FinalPayroll)
}

func TestComputeSummary_ShortMonthVirtualDays(t *testing.T) {
	t.Parallel()

	u := worker("u1", "2800")
	svc := newTestService([]user.User{u}, []attendance.Entry{
		entryOn("u1", 2026, time.February, 2, attendance.StatusPresent, "8", "0"),
	}, nil)

	summary, err := svc.ComputeSummary(context.Background(), u, 2026, time.February)
	require.NoError(t, err)

	// February 2026 has 28 days: 2 virtual days at 100 per day.
	assert.True(t, summary.VirtualDaysPay.Equal(decimal.NewFromInt(200)), "virtual days pay: %s", summary.VirtualDaysPay)
	assert.True(t, summary.FinalPayroll.Equal(decimal.NewFromInt(3000)), "final payroll: %s", summary.FinalPayroll)
}

func TestComputeSummary_NeverNegative(t *testing.T) {
	t.Parallel()

	u := worker("u1", "100")
	expenses := []expense.Expense{
		{ID: "x1", UserID: "u1", Amount: decimal.RequireFromString("900"), Date: time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)},
	}
	svc := newTestService([]user.User{u}, nil, expenses)

	summary, err := svc.ComputeSummary(context.Background(), u, 2026, time.April)
	require.NoError(t, err)

	assert.True(t, summary.FinalPayroll.IsZero(), "final payroll clamps at zero: %s", summary.FinalPayroll)
}

func TestComputeSummary_EmptyMonth(t *testing.T) {
	t.Parallel()

	u := worker("u1", "3000")
	svc := newTestService([]user.User{u}, nil, nil)

	summary, err := svc.ComputeSummary(context.Background(), u, 2026, time.March)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.PresentDays)
	assert.True(t, summary.TotalHours.IsZero())
	assert.True(t, summary.OvertimePay.IsZero())
	assert.True(t, summary.FinalPayroll.Equal(decimal.NewFromInt(3000)), "an empty month still pays base salary: %s", summary.FinalPayroll)
}

func TestComputeSummary_MissingSalary(t *testing.T) {
	t.Parallel()

	u := worker("u1", "0")
	svc := newTestService([]user.User{u}, []attendance.Entry{
		entryOn("u1", 2026, time.April, 1, attendance.StatusPresent, "8", "0"),
	}, nil)

	summary, err := svc.ComputeSummary(context.Background(), u, 2026, time.April)
	require.NoError(t, err)

	assert.True(t, summary.NeedsSalaryInput)
	assert.Equal(t, 1, summary.PresentDays, "day counts survive a missing salary")
	assert.True(t, summary.FinalPayroll.IsZero())
}

func TestComputeSummary_InvalidPeriod(t *testing.T) {
	t.Parallel()

	u := worker("u1", "3000")
	svc := newTestService([]user.User{u}, nil, nil)

	_, err := svc.ComputeSummary(context.Background(), u, 2026, time.Month(13))
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestComputeMonth_TotalsAcrossUsers(t *testing.T) {
	t.Parallel()

	users := []user.User{
		worker("u1", "3000"),
		worker("u2", "1500"),
		{ID: "dev", Username: "dev", Name: "Dev", Role: user.RoleDeveloper, MonthlySalary: decimal.NewFromInt(1), IsEnabled: true},
		{ID: "off", Username: "off", Name: "Off", Role: user.RoleUser, MonthlySalary: decimal.NewFromInt(1), IsEnabled: false},
	}
	entries := []attendance.Entry{
		entryOn("u1", 2026, time.April, 1, attendance.StatusPresent, "8", "2"),
		entryOn("u2", 2026, time.April, 1, attendance.StatusPresent, "8", "0"),
	}

	svc := newTestService(users, entries, nil)

	report, err := svc.ComputeMonth(context.Background(), 2026, time.April)
	require.NoError(t, err)

	assert.Equal(t, "2026-04", report.Month)
	require.Len(t, report.Summaries, 2, "developers and disabled users are excluded")
	assert.Equal(t, 2, report.Totals.Users)
	assert.Equal(t, 2, report.Totals.PresentDays)
	assert.True(t, report.Totals.OvertimeHours.Equal(decimal.NewFromInt(2)))

	// u1: 3000 + 2 x 12.50 x 1.5 = 3037.50; u2: 1500
	assert.True(t, report.Totals.FinalPayroll.Equal(decimal.RequireFromString("4537.5")), "total payroll: %s", report.Totals.FinalPayroll)
}

func TestComputeMonth_NoUsers(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil)

	report, err := svc.ComputeMonth(context.Background(), 2026, time.April)
	require.NoError(t, err)

	assert.Empty(t, report.Summaries)
	assert.Equal(t, 0, report.Totals.Users)
	assert.True(t, report.Totals.FinalPayroll.IsZero())
}
