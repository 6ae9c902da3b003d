package attendance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sweetlane/pos-backend-go/internal/domain/attendance"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
)

// Engine computes hours and pay from raw attendance facts. Every method is a
// pure function of its inputs; the engine holds no state beyond the policy.
type Engine struct {
	policy attendance.CyclePolicy
}

func NewEngine(policy attendance.CyclePolicy) *Engine {
	return &Engine{policy: policy}
}

// Policy returns the cycle policy the engine was built with.
func (e *Engine) Policy() attendance.CyclePolicy {
	return e.policy
}

// HourlyRate returns the base pay per scheduled hour for the given month:
// monthly salary / days in month / shift hours.
func (e *Engine) HourlyRate(u user.User, year int, month time.Month) decimal.Decimal {
	days := decimal.NewFromInt(int64(attendance.DaysInMonth(year, month)))
	hours := decimal.NewFromInt(int64(e.policy.ShiftHours))
	return u.MonthlySalary.Div(days).Div(hours)
}

// DailyRate returns one day's wage for the given month.
func (e *Engine) DailyRate(u user.User, year int, month time.Month) decimal.Decimal {
	days := decimal.NewFromInt(int64(attendance.DaysInMonth(year, month)))
	return u.MonthlySalary.Div(days)
}

// CalculateDay computes hours and pay for a single day. cycleReached tells the
// engine that this date closes a full run of consecutive working days (see
// CycleReached); a Present entry on such a day is paid entirely as overtime,
// the mandatory rest having been worked through.
//
// Invalid inputs produce an invalid result with a message, never an error:
// the caller decides whether to surface it or refuse a save.
func (e *Engine) CalculateDay(u user.User, date time.Time, status attendance.Status, checkIn, checkOut *time.Time, cycleReached bool) attendance.DayResult {
	result := attendance.DayResult{
		Status:        status,
		RegularHours:  decimal.Zero,
		OvertimeHours: decimal.Zero,
		DailyPay:      decimal.Zero,
	}

	if !status.Valid() {
		result.ValidationMessage = "unknown attendance status"
		return result
	}

	// Absences carry no hours and no pay, clock times or not.
	if status.IsAbsence() {
		result.IsValid = true
		return result
	}

	if checkIn == nil || checkOut == nil {
		result.ValidationMessage = "specify check-in and check-out times"
		return result
	}
	if !checkOut.After(*checkIn) {
		result.ValidationMessage = "checkout must be after check-in"
		return result
	}

	winStart, winEnd := e.policy.ScheduleWindow(date)

	regular := overlapHours(*checkIn, *checkOut, winStart, winEnd)
	maxRegular := decimal.NewFromInt(int64(e.policy.ShiftHours))
	if regular.Cmp(maxRegular) > 0 {
		regular = maxRegular
	}

	overtime := decimal.Zero
	if checkOut.After(winEnd) {
		overtime = hoursBetween(winEnd, *checkOut)
	}

	// The 31st of a long month is a flat bonus day on the 30-day pay cycle.
	if date.Day() == 31 && attendance.DaysInMonth(date.Year(), date.Month()) == 31 {
		overtime = overtime.Add(decimal.NewFromInt(int64(e.policy.LongMonthOvertimeHours)))
	}

	// Working through a reached rest point converts the whole shift to
	// overtime. A Reset entry keeps its hours at the regular rate.
	if status == attendance.StatusPresent && cycleReached {
		overtime = overtime.Add(regular)
		regular = decimal.Zero
	}

	result.IsValid = true
	result.IsPresent = status == attendance.StatusPresent
	result.RegularHours = regular
	result.OvertimeHours = overtime

	if !u.MonthlySalary.IsPositive() {
		// Soft warning: the preview renders with zero pay, saving is blocked.
		result.NeedsSalaryInput = true
		return result
	}

	rate := e.HourlyRate(u, date.Year(), date.Month())
	pay := regular.Mul(rate).Add(overtime.Mul(rate).Mul(u.EffectiveOvertimeMultiplier()))
	result.DailyPay = pay.Round(2)

	return result
}

// CycleReached reports whether date closes a work cycle: it sits on a cycle
// reset point of the month and the run of consecutive Present days leading
// into it fills the current threshold. entries are the same month's entries,
// in any order; only days before date are considered.
func (e *Engine) CycleReached(date time.Time, entries []attendance.Entry) bool {
	if !e.policy.IsResetDay(date) {
		return false
	}

	byDay := entriesByDay(date.Year(), date.Month(), entries)

	run := 0
	cycle := 0
	for day := 1; day < date.Day(); day++ {
		entry, ok := byDay[day]
		if !ok {
			run = 0
			continue
		}
		switch entry.Status {
		case attendance.StatusPresent:
			run++
			if run >= e.policy.ThresholdAt(cycle) {
				run = 0
				cycle++
			}
		case attendance.StatusReset:
			// The rest itself: neither counts nor breaks the run.
		default:
			run = 0
		}
	}

	return run+1 >= e.policy.ThresholdAt(cycle)
}

// ComputeMonthly aggregates one user's entries for a month. Days are walked
// from the 1st through the end of the month or today, whichever is earlier;
// days without an entry are uncounted and break the consecutive run.
func (e *Engine) ComputeMonthly(u user.User, year int, month time.Month, entries []attendance.Entry, now time.Time) attendance.MonthlyStats {
	stats := attendance.MonthlyStats{
		RestPayout:        decimal.Zero,
		AbsenceDeductions: decimal.Zero,
		DailyRate:         decimal.Zero,
	}

	lastDay := attendance.DaysInMonth(year, month)
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if now.Before(monthStart) {
		lastDay = 0
	} else if now.Year() == year && now.Month() == month {
		lastDay = now.Day()
	}

	byDay := entriesByDay(year, month, entries)

	run := 0
	cycle := 0
	for day := 1; day <= lastDay; day++ {
		entry, ok := byDay[day]
		if !ok {
			run = 0
			continue
		}

		switch entry.Status {
		case attendance.StatusPresent:
			stats.WorkedDays++
			run++
			if run >= e.policy.ThresholdAt(cycle) {
				stats.RestDays++
				run = 0
				cycle++
			}
		case attendance.StatusReset:
			// Excluded from every tally; the run carries across it.
		case attendance.StatusAbsentWithPermission:
			stats.WithPermissionAbsences++
			run = 0
		case attendance.StatusAbsentWithoutPermission:
			stats.WithoutPermissionAbsences++
			run = 0
		}
	}

	if u.MonthlySalary.IsPositive() {
		dailyRate := e.DailyRate(u, year, month)
		stats.DailyRate = dailyRate.Round(2)
		stats.RestPayout = dailyRate.Mul(decimal.NewFromInt(int64(stats.RestDays))).Round(2)
		stats.AbsenceDeductions = dailyRate.Mul(decimal.NewFromInt(int64(stats.WithoutPermissionAbsences))).Round(2)
	}

	return stats
}

// entriesByDay indexes entries by day of month, dropping any dated outside
// the target month.
func entriesByDay(year int, month time.Month, entries []attendance.Entry) map[int]attendance.Entry {
	byDay := make(map[int]attendance.Entry, len(entries))
	for _, entry := range entries {
		if entry.Date.Year() == year && entry.Date.Month() == month {
			byDay[entry.Date.Day()] = entry
		}
	}
	return byDay
}

// overlapHours returns the overlap of [from, to) and [winStart, winEnd) in
// hours, zero when they do not intersect.
func overlapHours(from, to, winStart, winEnd time.Time) decimal.Decimal {
	if from.Before(winStart) {
		from = winStart
	}
	if to.After(winEnd) {
		to = winEnd
	}
	if !to.After(from) {
		return decimal.Zero
	}
	return hoursBetween(from, to)
}

// hoursBetween returns to−from in hours, rounded to two decimal places.
func hoursBetween(from, to time.Time) decimal.Decimal {
	minutes := int64(to.Sub(from) / time.Minute)
	return decimal.NewFromInt(minutes).Div(decimal.NewFromInt(60)).Round(2)
}
