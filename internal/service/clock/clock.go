package clock

import "time"

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// RoundToMonday returns the next Monday at 00:00 strictly after t.
// A Monday input therefore maps to the following Monday. The loop is
// bounded: a Monday is reached within seven steps.
func RoundToMonday(t time.Time) time.Time {
	t = t.AddDate(0, 0, 1)
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, 1)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Diff returns the signed duration from a to b.
//
// With excludeWeekends false this is the literal wall-clock difference.
// With excludeWeekends true, an endpoint sitting inside a weekend is
// treated as the following Monday 00:00, every full non-weekend day
// between the adjusted endpoints counts as 24h, weekend days count as
// zero, and the sub-day remainder is preserved. For all inputs
// Diff(a, b, w) == -Diff(b, a, w).
func Diff(a, b time.Time, excludeWeekends bool) time.Duration {
	if !excludeWeekends {
		return b.Sub(a)
	}
	if b.Before(a) {
		return -Diff(b, a, true)
	}
	if IsWeekend(a) {
		a = RoundToMonday(a)
	}
	if IsWeekend(b) {
		b = RoundToMonday(b)
	}

	// Walk whole days from a towards b, counting business days only.
	// Both endpoints inside the same weekend collapse onto the same
	// Monday, so a never overtakes b here.
	days := 0
	cur := a
	for !cur.AddDate(0, 0, 1).After(b) {
		if !IsWeekend(cur) {
			days++
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return time.Duration(days)*24*time.Hour + b.Sub(cur)
}
