package stats

import (
	"fmt"
	"time"

	"github.com/sadopc/pomotask/internal/calendar"
)

// DurationParts splits a minute count into hours and minutes.
type DurationParts struct {
	Hours   int
	Minutes int
}

func FormatDurationParts(minutes int) DurationParts {
	return DurationParts{Hours: minutes / 60, Minutes: minutes % 60}
}

// FormatDuration renders minutes as "1h 45m", or "45m" under an hour.
func FormatDuration(minutes int) string {
	p := FormatDurationParts(minutes)
	if p.Hours > 0 {
		return fmt.Sprintf("%dh %dm", p.Hours, p.Minutes)
	}
	return fmt.Sprintf("%dm", p.Minutes)
}

// RelativeTime describes how long ago date was, switching to a plain date
// after a week.
func RelativeTime(date, now time.Time) string {
	mins := int(now.Sub(date) / time.Minute)
	hours := mins / 60
	days := hours / 24
	switch {
	case mins < 1:
		return "今"
	case mins < 60:
		return fmt.Sprintf("%d分前", mins)
	case hours < 24:
		return fmt.Sprintf("%d時間前", hours)
	case days < 7:
		return fmt.Sprintf("%d日前", days)
	}
	return date.Format("2006/1/2")
}

type LabelFormat int

const (
	LabelShort LabelFormat = iota
	LabelLong
)

var (
	shortLabels = [7]string{"月", "火", "水", "木", "金", "土", "日"}
	longLabels  = [7]string{"月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日", "日曜日"}
)

// DayLabel names a Monday-first day index. Out of range indexes give "".
func DayLabel(index int, format LabelFormat) string {
	if index < 0 || index > 6 {
		return ""
	}
	if format == LabelLong {
		return longLabels[index]
	}
	return shortLabels[index]
}

// WeekdayLabels lists the seven labels in breakdown order for start.
func WeekdayLabels(start calendar.WeekStartDay, format LabelFormat) []string {
	labels := make([]string, 7)
	for i := range labels {
		labels[i] = DayLabel(calendar.Monday.Index(start.Weekday(i)), format)
	}
	return labels
}
