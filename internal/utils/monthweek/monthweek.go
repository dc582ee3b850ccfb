// Package monthweek computes week-of-month numbers and their date windows.
// Weeks are anchored to the day of month (week 1 starts on the 1st) and are
// clipped to the containing month: the final window may be shorter than seven
// days and never rolls into the next month.
package monthweek

import "time"

// Number returns the 1-based week-of-month for the given date.
func Number(t time.Time) int {
	return (t.Day()+firstWeekday(t)-1)/7 + 1
}

// Range returns the inclusive start and end dates of the week-of-month window
// containing t. Both dates fall within t's month.
func Range(t time.Time) (start, end time.Time) {
	week := Number(t)

	// End is derived from the unclamped start so that a short first week
	// (month starting mid-week) does not spill into the second window.
	startDay := (week-1)*7 - firstWeekday(t) + 1
	endDay := startDay + 6
	if startDay < 1 {
		startDay = 1
	}
	if last := lastDay(t); endDay > last {
		endDay = last
	}

	y, m, _ := t.Date()
	start = time.Date(y, m, startDay, 0, 0, 0, 0, t.Location())
	end = time.Date(y, m, endDay, 0, 0, 0, 0, t.Location())
	return start, end
}

// firstWeekday returns the weekday index (0=Monday..6=Sunday) of day 1 of t's month.
func firstWeekday(t time.Time) int {
	y, m, _ := t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	return (int(first.Weekday()) + 6) % 7
}

// lastDay returns the number of days in t's month.
func lastDay(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
