package core

import "time"

// RangeUnit selects the calendar window used for timesheet views.
type RangeUnit string

const (
	UnitDay   RangeUnit = "day"
	UnitWeek  RangeUnit = "week"
	UnitMonth RangeUnit = "month"
)

// Range is an inclusive [Start, End] window. End carries millisecond
// precision (23:59:59.999) so a whole calendar day is covered without
// touching the next one.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the inclusive range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Bounds computes the calendar window containing ref in ref's location.
// Weeks start on Monday. An unknown unit falls back to day.
func Bounds(ref time.Time, unit RangeUnit) Range {
	switch unit {
	case UnitWeek:
		// Back up to Monday: Sunday rewinds six days, any other weekday
		// rewinds (weekday - 1) days.
		diff := 1 - int(ref.Weekday())
		if ref.Weekday() == time.Sunday {
			diff = -6
		}
		monday := startOfDay(ref.AddDate(0, 0, diff))
		return Range{Start: monday, End: endOfDay(monday.AddDate(0, 0, 6))}
	case UnitMonth:
		y, m, _ := ref.Date()
		start := time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
		// Day zero of the next month is the last day of this one.
		end := time.Date(y, m+1, 0, 23, 59, 59, lastInstantNanos, ref.Location())
		return Range{Start: start, End: end}
	default:
		return Range{Start: startOfDay(ref), End: endOfDay(ref)}
	}
}

const lastInstantNanos = int(999 * time.Millisecond)

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, lastInstantNanos, t.Location())
}
