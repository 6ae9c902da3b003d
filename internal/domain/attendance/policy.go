package attendance

import "time"

// CyclePolicy encodes the shop's wage-cycle convention: a fixed 8-hour shift,
// a 7-on/6-on rest rotation, a flat overtime bonus on the 31st of long months
// and a virtual-day bonus for short ones. The day numbers 7/13/19/25 fall out
// of the cycle lengths; they are not hardcoded anywhere else.
type CyclePolicy struct {
	ShiftStartHour         int   // Local hour the scheduled shift begins
	ShiftHours             int   // Scheduled shift length in hours
	CycleLengths           []int // Consecutive working days before each rest day; last value repeats
	LongMonthOvertimeHours int   // Flat overtime on the 31st of a 31-day month
	ShortMonthVirtualDays  int   // Paid virtual days added for 28-day months
}

// DefaultCyclePolicy returns the policy the shop has always run on.
func DefaultCyclePolicy() CyclePolicy {
	return CyclePolicy{
		ShiftStartHour:         8,
		ShiftHours:             8,
		CycleLengths:           []int{7, 6},
		LongMonthOvertimeHours: 8,
		ShortMonthVirtualDays:  2,
	}
}

// ThresholdAt returns the consecutive-working-day threshold for the n-th rest
// cycle of a month (0-based). Past the configured sequence the last length
// repeats.
func (p CyclePolicy) ThresholdAt(n int) int {
	if len(p.CycleLengths) == 0 {
		return 7
	}
	if n >= len(p.CycleLengths) {
		return p.CycleLengths[len(p.CycleLengths)-1]
	}
	return p.CycleLengths[n]
}

// ResetDays returns the calendar days of the month that end a work cycle:
// the cumulative cycle positions plus the last day of the month.
func (p CyclePolicy) ResetDays(year int, month time.Month) []int {
	last := DaysInMonth(year, month)
	var days []int
	sum := 0
	for n := 0; ; n++ {
		sum += p.ThresholdAt(n)
		if sum >= last {
			break
		}
		days = append(days, sum)
	}
	return append(days, last)
}

// IsResetDay reports whether date sits on a cycle reset point.
func (p CyclePolicy) IsResetDay(date time.Time) bool {
	for _, d := range p.ResetDays(date.Year(), date.Month()) {
		if date.Day() == d {
			return true
		}
	}
	return false
}

// ScheduleWindow returns the scheduled shift window [start, end) for a date.
func (p CyclePolicy) ScheduleWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), p.ShiftStartHour, 0, 0, 0, date.Location())
	return start, start.Add(time.Duration(p.ShiftHours) * time.Hour)
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
