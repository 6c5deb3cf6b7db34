// Package stats aggregates focus logs into weekly and daily summaries.
package stats

import (
	"time"

	"github.com/sadopc/pomotask/internal/calendar"
	"github.com/sadopc/pomotask/internal/focuslog"
)

// WeeklyStats summarizes one week of focus logs.
type WeeklyStats struct {
	TotalFocusMinutes int
	PomodoroCount     int
	// DailyBreakdown counts logs per day; index 0 is the configured first
	// day of the week.
	DailyBreakdown [7]int
	StartDate      time.Time
	EndDate        time.Time
}

type DailyStats struct {
	Date          time.Time
	FocusMinutes  int
	PomodoroCount int
}

// WeekStart returns midnight of the first day of ref's week, in ref's location.
func WeekStart(ref time.Time, start calendar.WeekStartDay) time.Time {
	loc := ref.Location()
	return start.StartOf(calendar.DayOf(ref)).Start(loc)
}

// WeekEnd returns the last representable millisecond of ref's week.
func WeekEnd(ref time.Time, start calendar.WeekStartDay) time.Time {
	first := start.StartOf(calendar.DayOf(ref))
	return first.AddDays(7).Start(ref.Location()).Add(-time.Millisecond)
}

// CalculateWeeklyStats sums the logs completed within ref's week, both ends
// inclusive. Logs are read in ref's location.
func CalculateWeeklyStats(logs []focuslog.FocusLog, start calendar.WeekStartDay, ref time.Time) WeeklyStats {
	ws := WeeklyStats{
		StartDate: WeekStart(ref, start),
		EndDate:   WeekEnd(ref, start),
	}
	loc := ref.Location()
	for _, fl := range logs {
		if fl.CompletedAt.Before(ws.StartDate) || fl.CompletedAt.After(ws.EndDate) {
			continue
		}
		ws.TotalFocusMinutes += fl.DurationMinutes
		ws.PomodoroCount++
		ws.DailyBreakdown[start.Index(fl.CompletedAt.In(loc).Weekday())]++
	}
	return ws
}

// CalculateDailyStats sums the logs whose UTC calendar day matches date's.
func CalculateDailyStats(logs []focuslog.FocusLog, date time.Time) DailyStats {
	ds := DailyStats{Date: date}
	day := calendar.DayIn(date, time.UTC)
	for _, fl := range logs {
		if !calendar.DayIn(fl.CompletedAt, time.UTC).Equal(day) {
			continue
		}
		ds.FocusMinutes += fl.DurationMinutes
		ds.PomodoroCount++
	}
	return ds
}

// Busiest returns the breakdown index with the most logs, or -1 for an
// empty week. Ties go to the earlier day.
func (ws WeeklyStats) Busiest() int {
	best, idx := 0, -1
	for i, n := range ws.DailyBreakdown {
		if n > best {
			best, idx = n, i
		}
	}
	return idx
}
