package calendar

import (
	"fmt"
	"time"
)

// Day is a calendar date with no time-of-day component.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// DayIn returns the calendar day of t as seen from loc.
func DayIn(t time.Time, loc *time.Location) Day {
	return DayOf(t.In(loc))
}

// Start returns midnight of d in loc.
func (d Day) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays normalizes through time.Date, so month and year boundaries roll over.
func (d Day) AddDays(n int) Day {
	return DayOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

func (d Day) Compare(o Day) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Day) Equal(o Day) bool  { return d.Compare(o) == 0 }
func (d Day) Before(o Day) bool { return d.Compare(o) < 0 }
func (d Day) After(o Day) bool  { return d.Compare(o) > 0 }

func (d Day) Weekday() time.Weekday {
	return d.Start(time.UTC).Weekday()
}

// String formats the day as 2006-01-02.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Short formats the day as M/D without padding.
func (d Day) Short() string {
	return fmt.Sprintf("%d/%d", int(d.Month), d.Day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
