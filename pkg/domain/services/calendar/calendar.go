// Package calendar implements C1: pure date/calendar utilities shared by
// every other planning component. Nothing here carries state.
package calendar

import "github.com/sporadicmrp/planner/pkg/domain/entities"

// DayDelta returns the number of calendar days from a to b (b - a).
func DayDelta(a, b entities.Date) int {
	return b.Sub(a)
}

// MonthBucket returns the "YYYY-MM" bucket d falls into.
func MonthBucket(d entities.Date) string {
	return d.MonthBucket()
}

// DaysBetween enumerates every calendar day in the closed interval
// [start, end], inclusive. Returns an empty slice if start is after end.
func DaysBetween(start, end entities.Date) []entities.Date {
	if start.After(end) {
		return nil
	}
	n := end.Sub(start) + 1
	days := make([]entities.Date, 0, n)
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Clamp restricts d to the closed interval [lo, hi].
func Clamp(d, lo, hi entities.Date) entities.Date {
	return entities.ClampDate(d, lo, hi)
}
