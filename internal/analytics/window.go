package analytics

import (
	"time"
)

// day truncates a time to its calendar date in UTC.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// monthStart returns the first day of the month t falls into, in UTC.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthWindow returns the default reporting window: the first day of the
// current month through today. This is month-to-date, not the full month.
func MonthWindow(today time.Time) (start, end time.Time) {
	return monthStart(today), day(today)
}

// MonthWindowAt returns the reporting window for an explicitly requested
// month, given as its first day.
//
// For the current month the window ends at today. For any other month the
// window ends at day 28 of that month. The day-28 end is a long-standing
// approximation that undercounts months with 29 to 31 days; callers and
// tests depend on it, so changing it to a real end-of-month is a breaking
// behavior change.
func MonthWindowAt(today, month time.Time) (start, end time.Time) {
	start = monthStart(month)

	if today.Year() == start.Year() && today.Month() == start.Month() {
		return start, day(today)
	}

	return start, start.AddDate(0, 0, 27)
}

// HistoryStart returns the start of the trend window for a reporting
// window starting at windowStart: 180 days back, truncated to the first
// day of that month. The fixed 180 days is an approximation of six
// calendar months and is kept for compatibility with existing outputs.
func HistoryStart(windowStart time.Time) time.Time {
	return monthStart(windowStart.AddDate(0, 0, -180))
}
