package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetlane/pos-backend-go/internal/domain/attendance"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
)

func testUser(salary string) user.User {
	return user.User{
		ID:            "e7a1b2c3-0000-0000-0000-000000000001",
		Username:      "kassir",
		Name:          "Kassir One",
		Role:          user.RoleUser,
		MonthlySalary: decimal.RequireFromString(salary),
	}
}

func clockAt(date time.Time, hour, minute int) *time.Time {
	t := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)
	return &t
}

func presentOn(year int, month time.Month, day int) attendance.Entry {
	return attendance.Entry{
		Date:   time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Status: attendance.StatusPresent,
	}
}

func statusOn(year int, month time.Month, day int, status attendance.Status) attendance.Entry {
	return attendance.Entry{
		Date:   time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Status: status,
	}
}

func TestCalculateDay_FullShift(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("3000")
	date := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)

	result := engine.CalculateDay(u, date, attendance.StatusPresent, clockAt(date, 8, 0), clockAt(date, 16, 0), false)

	require.True(t, result.IsValid)
	assert.True(t, result.IsPresent)
	assert.False(t, result.NeedsSalaryInput)
	assert.True(t, result.RegularHours.Equal(decimal.NewFromInt(8)), "regular hours: %s", result.RegularHours)
	assert.True(t, result.OvertimeHours.IsZero(), "overtime hours: %s", result.OvertimeHours)

	// 3000 / 30 days / 8 hours = 12.50 per hour
	assert.True(t, result.DailyPay.Equal(decimal.RequireFromString("100")), "daily pay: %s", result.DailyPay)
}

func TestCalculateDay_OvertimePastWindow(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("3000")
	u.OvertimeMultiplier = decimal.RequireFromString("1.5")
	date := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)

	result := engine.CalculateDay(u, date, attendance.StatusPresent, clockAt(date, 8, 0), clockAt(date, 18, 0), false)

	require.True(t, result.IsValid)
	assert.True(t, result.RegularHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, result.OvertimeHours.Equal(decimal.NewFromInt(2)), "overtime hours: %s", result.OvertimeHours)

	// 8 x 12.50 + 2 x 12.50 x 1.5 = 137.50
	assert.True(t, result.DailyPay.Equal(decimal.RequireFromString("137.5")), "daily pay: %s", result.DailyPay)
}

func TestCalculateDay_PartialAndClampedShifts(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("3000")
	date := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		inHour   int
		inMin    int
		outHour  int
		outMin   int
		regular  string
		overtime string
	}{
		{"late arrival", 10, 0, 16, 0, "6", "0"},
		{"early departure", 8, 0, 12, 30, "4.5", "0"},
		{"early arrival clamped", 6, 0, 16, 0, "8", "0"},
		{"early arrival with overtime", 6, 0, 17, 15, "8", "1.25"},
		{"entirely outside window", 17, 0, 19, 0, "0", "2"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := engine.CalculateDay(u, date, attendance.StatusPresent,
				clockAt(date, tt.inHour, tt.inMin), clockAt(date, tt.outHour, tt.outMin), false)

			require.True(t, result.IsValid)
			assert.True(t, result.RegularHours.Equal(decimal.RequireFromString(tt.regular)),
				"regular hours: %s", result.RegularHours)
			assert.True(t, result.OvertimeHours.Equal(decimal.RequireFromString(tt.overtime)),
				"overtime hours: %s", result.OvertimeHours)
		})
	}
}

func TestCalculateDay_AbsencesCarryNothing(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("3000")
	date := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)

	for _, status := range []attendance.Status{
		attendance.StatusAbsentWithPermission,
		attendance.StatusAbsentWithoutPermission,
	} {
		result := engine.CalculateDay(u, date, status, clockAt(date, 8, 0), clockAt(date, 16, 0), false)

		require.True(t, result.IsValid)
		assert.False(t, result.IsPresent)
		assert.True(t, result.RegularHours.IsZero())
		assert.True(t, result.OvertimeHours.IsZero())
		assert.True(t, result.DailyPay.IsZero())
	}
}

func TestCalculateDay_InvalidInputs(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("3000")
	date := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)

	missing := engine.CalculateDay(u, date, attendance.StatusPresent, clockAt(date, 8, 0), nil, false)
	assert.False(t, missing.IsValid)
	assert.Equal(t, "specify check-in and check-out times", missing.ValidationMessage)

	inverted := engine.CalculateDay(u, date, attendance.StatusPresent, clockAt(date, 16, 0), clockAt(date, 8, 0), false)
	assert.False(t, inverted.IsValid)
	assert.NotEmpty(t, inverted.ValidationMessage)

	unknown := engine.CalculateDay(u, date, attendance.Status("holiday"), clockAt(date, 8, 0), clockAt(date, 16, 0), false)
	assert.False(t, unknown.IsValid)
}

func TestCalculateDay_LongMonthBonus(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("3100")

	// 2026-01-31: a 31-day month, cycle not reached.
	date := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	result := engine.CalculateDay(u, date, attendance.StatusPresent, clockAt(date, 8, 0), clockAt(date, 16, 0), false)

	require.True(t, result.IsValid)
	assert.True(t, result.RegularHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, result.OvertimeHours.Equal(decimal.NewFromInt(8)), "overtime hours: %s", result.OvertimeHours)

	// The 30th of a 30-day month gets no bonus.
	date = time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC)
	result = engine.CalculateDay(u, date, attendance.StatusPresent, clockAt(date, 8, 0), clockAt(date, 16, 0), false)

	require.True(t, result.IsValid)
	assert.True(t, result.OvertimeHours.IsZero())
}

func TestCalculateDay_CycleReachedConvertsToOvertime(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("3000")
	date := time.Date(2026, time.April, 7, 0, 0, 0, 0, time.UTC)

	result := engine.CalculateDay(u, date, attendance.StatusPresent, clockAt(date, 8, 0), clockAt(date, 16, 0), true)

	require.True(t, result.IsValid)
	assert.True(t, result.RegularHours.IsZero(), "regular hours: %s", result.RegularHours)
	assert.True(t, result.OvertimeHours.Equal(decimal.NewFromInt(8)), "overtime hours: %s", result.OvertimeHours)

	// A Reset entry on the same day keeps its hours at the regular rate.
	rest := engine.CalculateDay(u, date, attendance.StatusReset, clockAt(date, 8, 0), clockAt(date, 16, 0), true)

	require.True(t, rest.IsValid)
	assert.False(t, rest.IsPresent)
	assert.True(t, rest.RegularHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, rest.OvertimeHours.IsZero())
}

func TestCalculateDay_MissingSalaryIsSoft(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("0")
	date := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)

	result := engine.CalculateDay(u, date, attendance.StatusPresent, clockAt(date, 8, 0), clockAt(date, 16, 0), false)

	require.True(t, result.IsValid)
	assert.True(t, result.NeedsSalaryInput)
	assert.True(t, result.RegularHours.Equal(decimal.NewFromInt(8)), "hours still computed without a salary")
	assert.True(t, result.DailyPay.IsZero())
}

func TestCalculateDay_Deterministic(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("2750")
	date := time.Date(2026, time.March, 19, 0, 0, 0, 0, time.UTC)

	first := engine.CalculateDay(u, date, attendance.StatusPresent, clockAt(date, 7, 45), clockAt(date, 17, 20), true)
	second := engine.CalculateDay(u, date, attendance.StatusPresent, clockAt(date, 7, 45), clockAt(date, 17, 20), true)

	assert.Equal(t, first, second)
}

func TestCycleReached(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())

	fullWeek := []attendance.Entry{
		presentOn(2026, time.April, 1),
		presentOn(2026, time.April, 2),
		presentOn(2026, time.April, 3),
		presentOn(2026, time.April, 4),
		presentOn(2026, time.April, 5),
		presentOn(2026, time.April, 6),
	}

	day7 := time.Date(2026, time.April, 7, 0, 0, 0, 0, time.UTC)
	assert.True(t, engine.CycleReached(day7, fullWeek), "6 prior Present days close the first 7-day cycle")

	// An absence mid-run breaks it.
	broken := append([]attendance.Entry{}, fullWeek...)
	broken[3] = statusOn(2026, time.April, 4, attendance.StatusAbsentWithoutPermission)
	assert.False(t, engine.CycleReached(day7, broken))

	// A day with no entry breaks it too.
	gapped := fullWeek[:3]
	assert.False(t, engine.CycleReached(day7, gapped))

	// Day 8 is not a reset point no matter the run.
	day8 := time.Date(2026, time.April, 8, 0, 0, 0, 0, time.UTC)
	assert.False(t, engine.CycleReached(day8, append(fullWeek, presentOn(2026, time.April, 7))))

	// The second cycle is 6 days long: days 8..12 Present reach day 13.
	second := []attendance.Entry{
		presentOn(2026, time.April, 1),
		presentOn(2026, time.April, 2),
		presentOn(2026, time.April, 3),
		presentOn(2026, time.April, 4),
		presentOn(2026, time.April, 5),
		presentOn(2026, time.April, 6),
		presentOn(2026, time.April, 7),
		presentOn(2026, time.April, 8),
		presentOn(2026, time.April, 9),
		presentOn(2026, time.April, 10),
		presentOn(2026, time.April, 11),
		presentOn(2026, time.April, 12),
	}
	day13 := time.Date(2026, time.April, 13, 0, 0, 0, 0, time.UTC)
	assert.True(t, engine.CycleReached(day13, second))
}

func TestResetDays_MonthLengths(t *testing.T) {
	t.Parallel()

	policy := attendance.DefaultCyclePolicy()

	assert.Equal(t, []int{7, 13, 19, 25, 31}, policy.ResetDays(2026, time.January))
	assert.Equal(t, []int{7, 13, 19, 25, 30}, policy.ResetDays(2026, time.April))
	assert.Equal(t, []int{7, 13, 19, 25, 28}, policy.ResetDays(2026, time.February))
	assert.Equal(t, []int{7, 13, 19, 25, 29}, policy.ResetDays(2028, time.February))
}

func TestComputeMonthly_CountsAndRates(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("3000")
	now := time.Date(2026, time.May, 15, 12, 0, 0, 0, time.UTC)

	entries := []attendance.Entry{
		presentOn(2026, time.April, 1),
		presentOn(2026, time.April, 2),
		presentOn(2026, time.April, 3),
		presentOn(2026, time.April, 4),
		presentOn(2026, time.April, 5),
		presentOn(2026, time.April, 6),
		presentOn(2026, time.April, 7), // closes the first 7-day cycle
		statusOn(2026, time.April, 8, attendance.StatusReset),
		presentOn(2026, time.April, 9),
		statusOn(2026, time.April, 10, attendance.StatusAbsentWithPermission),
		presentOn(2026, time.April, 11),
		statusOn(2026, time.April, 12, attendance.StatusAbsentWithoutPermission),
		statusOn(2026, time.April, 13, attendance.StatusAbsentWithoutPermission),
	}

	stats := engine.ComputeMonthly(u, 2026, time.April, entries, now)

	assert.Equal(t, 9, stats.WorkedDays, "reset and absence entries are not worked days")
	assert.Equal(t, 1, stats.RestDays)
	assert.Equal(t, 1, stats.WithPermissionAbsences)
	assert.Equal(t, 2, stats.WithoutPermissionAbsences)

	// 3000 / 30 = 100 per day
	assert.True(t, stats.DailyRate.Equal(decimal.NewFromInt(100)), "daily rate: %s", stats.DailyRate)
	assert.True(t, stats.RestPayout.Equal(decimal.NewFromInt(100)), "rest payout: %s", stats.RestPayout)
	assert.True(t, stats.AbsenceDeductions.Equal(decimal.NewFromInt(200)), "deductions: %s", stats.AbsenceDeductions)
}

func TestComputeMonthly_RunCarriesAcrossReset(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("3000")
	now := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	// Present 1..4, Reset on 5, Present 6..8: the reset neither counts
	// toward the 7-day run nor breaks it, so day 8 closes the cycle.
	entries := []attendance.Entry{
		presentOn(2026, time.April, 1),
		presentOn(2026, time.April, 2),
		presentOn(2026, time.April, 3),
		presentOn(2026, time.April, 4),
		statusOn(2026, time.April, 5, attendance.StatusReset),
		presentOn(2026, time.April, 6),
		presentOn(2026, time.April, 7),
		presentOn(2026, time.April, 8),
	}

	stats := engine.ComputeMonthly(u, 2026, time.April, entries, now)

	assert.Equal(t, 7, stats.WorkedDays)
	assert.Equal(t, 1, stats.RestDays)
}

func TestComputeMonthly_GapBreaksRun(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("3000")
	now := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	// Seven Present days with a hole on the 4th: no rest day earned.
	entries := []attendance.Entry{
		presentOn(2026, time.April, 1),
		presentOn(2026, time.April, 2),
		presentOn(2026, time.April, 3),
		presentOn(2026, time.April, 5),
		presentOn(2026, time.April, 6),
		presentOn(2026, time.April, 7),
		presentOn(2026, time.April, 8),
	}

	stats := engine.ComputeMonthly(u, 2026, time.April, entries, now)

	assert.Equal(t, 7, stats.WorkedDays)
	assert.Equal(t, 0, stats.RestDays)
}

func TestComputeMonthly_CurrentMonthStopsAtToday(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("3000")

	entries := []attendance.Entry{
		presentOn(2026, time.April, 1),
		presentOn(2026, time.April, 2),
		presentOn(2026, time.April, 20),
	}

	// "Today" is the 10th: the entry on the 20th is out of range.
	now := time.Date(2026, time.April, 10, 9, 30, 0, 0, time.UTC)
	stats := engine.ComputeMonthly(u, 2026, time.April, entries, now)

	assert.Equal(t, 2, stats.WorkedDays)
}

func TestComputeMonthly_EmptyMonth(t *testing.T) {
	t.Parallel()

	engine := NewEngine(attendance.DefaultCyclePolicy())
	u := testUser("3000")
	now := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	stats := engine.ComputeMonthly(u, 2026, time.April, nil, now)

	assert.Equal(t, 0, stats.WorkedDays)
	assert.Equal(t, 0, stats.RestDays)
	assert.True(t, stats.RestPayout.IsZero())
	assert.True(t, stats.AbsenceDeductions.IsZero())
}
