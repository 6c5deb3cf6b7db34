package calendar

import (
	"fmt"
	"time"
)

// WeekStartDay selects which weekday opens a statistical week.
type WeekStartDay string

const (
	Monday WeekStartDay = "mon"
	Sunday WeekStartDay = "sun"
)

// ParseWeekStart accepts the stored short form as well as the full weekday name.
func ParseWeekStart(s string) (WeekStartDay, error) {
	switch s {
	case "mon", "monday":
		return Monday, nil
	case "sun", "sunday":
		return Sunday, nil
	}
	return "", fmt.Errorf("unknown week start %q", s)
}

func (w WeekStartDay) first() time.Weekday {
	if w == Sunday {
		return time.Sunday
	}
	return time.Monday
}

// Index maps a weekday onto its slot in a seven-day breakdown, 0 being the
// first day of the week.
func (w WeekStartDay) Index(wd time.Weekday) int {
	return (int(wd) - int(w.first()) + 7) % 7
}

// Weekday is the inverse of Index.
func (w WeekStartDay) Weekday(index int) time.Weekday {
	return time.Weekday((int(w.first()) + index%7 + 7) % 7)
}

// StartOf returns the first day of the week containing d.
func (w WeekStartDay) StartOf(d Day) Day {
	return d.AddDays(-w.Index(d.Weekday()))
}
