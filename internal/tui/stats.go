package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/sadopc/pomotask/internal/calendar"
	"github.com/sadopc/pomotask/internal/clock"
	"github.com/sadopc/pomotask/internal/focuslog"
	"github.com/sadopc/pomotask/internal/settings"
	"github.com/sadopc/pomotask/internal/stats"
	"github.com/sadopc/pomotask/internal/task"
)

const recentLogCount = 5

type statsModel struct {
	logs     *focuslog.Log
	settings *settings.Service
	tasks    *task.List
	clock    clock.Clock
	width    int
	height   int

	offset    int // weeks back from the current one
	weekStart calendar.WeekStartDay
	weekly    stats.WeeklyStats
	daily     stats.DailyStats
	lastWeek  int
	recent    []focuslog.FocusLog

	chart barchart.Model
}

func newStatsModel(logs *focuslog.Log, st *settings.Service, tasks *task.List, c clock.Clock) statsModel {
	return statsModel{
		logs:      logs,
		settings:  st,
		tasks:     tasks,
		clock:     c,
		weekStart: st.Get().WeekStart,
		chart:     barchart.New(60, 12),
	}
}

func (m *statsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type statsDataMsg struct {
	logs []focuslog.FocusLog
}

func (m statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return statsDataMsg{logs: m.logs.All()}
	}
}

func (m statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		m.compute(msg.logs)
		m.buildChart()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			m.offset++
			return m, m.refresh()
		case key.Matches(msg, keys.Right):
			if m.offset > 0 {
				m.offset--
			}
			return m, m.refresh()
		}
	}
	return m, nil
}

func (m *statsModel) compute(logs []focuslog.FocusLog) {
	now := m.clock.Now()
	ref := now.AddDate(0, 0, -7*m.offset)
	m.weekStart = m.settings.Get().WeekStart

	m.weekly = stats.CalculateWeeklyStats(logs, m.weekStart, ref)
	m.daily = stats.CalculateDailyStats(logs, now)
	m.lastWeek = m.logs.TotalMinutesForWeek(m.weekly.StartDate.AddDate(0, 0, -7))

	sorted := make([]focuslog.FocusLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})
	if len(sorted) > recentLogCount {
		sorted = sorted[:recentLogCount]
	}
	m.recent = sorted
}

func (m *statsModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if m.height > 30 {
		chartHeight = 14
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	labels := stats.WeekdayLabels(m.weekStart, stats.LabelShort)
	bars := make([]barchart.BarData, 0, len(labels))
	for i, label := range labels {
		style := lipgloss.NewStyle().Foreground(colorPrimary)
		if i == m.weekly.Busiest() {
			style = lipgloss.NewStyle().Foreground(colorAccent)
		}
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{{
				Name:  label,
				Value: float64(m.weekly.DailyBreakdown[i]),
				Style: style,
			}},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m statsModel) view() string {
	w := m.width - 4
	now := m.clock.Now()
	ws := m.weekly

	endDay := calendar.DayOf(ws.EndDate)
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s – %s", calendar.DayOf(ws.StartDate).Short(), endDay.Short()))
	if m.offset == 0 {
		dateLabel += mutedStyle.Render("  (this week)")
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, titleStyle.Render("Weekly Stats"), "  ", dateLabel)

	summary := []string{
		fmt.Sprintf("  %-14s %s (%s min)", "Focus time", highlightStyle.Render(stats.FormatDuration(ws.TotalFocusMinutes)), humanize.Comma(int64(ws.TotalFocusMinutes))),
		fmt.Sprintf("  %-14s %s", "Pomodoros", highlightStyle.Render(humanize.Comma(int64(ws.PomodoroCount)))),
		fmt.Sprintf("  %-14s %s", "Previous week", mutedStyle.Render(stats.FormatDuration(m.lastWeek))),
	}
	if best := ws.Busiest(); best >= 0 {
		wd := m.weekStart.Weekday(best)
		label := stats.DayLabel(calendar.Monday.Index(wd), stats.LabelLong)
		summary = append(summary, fmt.Sprintf("  %-14s %s", "Busiest day", accentStyle.Render(label)))
	}
	summary = append(summary, fmt.Sprintf("  %-14s %s in %d pomodoros · %d%% of today's tasks done",
		"Today", stats.FormatDuration(m.daily.FocusMinutes), m.daily.PomodoroCount, m.tasks.CompletionRate(now)))

	recent := m.renderRecent(now)
	nav := mutedStyle.Render("  ←/→: previous/next week")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", m.chart.View(), "", strings.Join(summary, "\n"), "", recent, "", nav,
		),
	)
}

func (m statsModel) renderRecent(now time.Time) string {
	if len(m.recent) == 0 {
		return mutedStyle.Render("  No focus sessions yet")
	}
	titles := taskTitles(m.tasks)

	rows := []string{subtitleStyle.Render("  Recent")}
	for _, fl := range m.recent {
		name := titles[fl.TaskID]
		if name == "" {
			name = "—"
		}
		rows = append(rows, fmt.Sprintf("  %-8s %-8s %s",
			stats.FormatDuration(fl.DurationMinutes),
			stats.RelativeTime(fl.CompletedAt, now),
			truncate(name, 40),
		))
	}
	return strings.Join(rows, "\n")
}

// taskTitles maps task ids to titles for lookups from focus logs.
func taskTitles(l *task.List) map[string]string {
	out := make(map[string]string)
	for _, t := range l.Tasks() {
		out[t.ID] = t.Title
	}
	return out
}
