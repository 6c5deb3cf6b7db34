package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/pomotask/internal/export"
	"github.com/sadopc/pomotask/internal/logging"
	"github.com/sadopc/pomotask/internal/pomodoro"
	"github.com/sadopc/pomotask/internal/task"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTasks viewState = iota
	viewPomodoro
	viewStats
	viewFeed
	viewSettings
)

var viewNames = []string{"Tasks", "Pomodoro", "Stats", "Feed", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

// machineEventMsg carries a pomodoro event from the machine's goroutine into
// the program loop.
type machineEventMsg pomodoro.Event

// focusTaskMsg asks the pomodoro view to start focusing on a task.
type focusTaskMsg struct {
	task task.Task
}

type exportDoneMsg struct {
	result export.Result
}

// dataChangedMsg tells every view to reload from its service.
type dataChangedMsg struct{}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func dataChanged() tea.Msg { return dataChangedMsg{} }

// saveFailed logs a storage error and shows the generic notification. The
// change stays in memory and is written again with the next change.
func saveFailed(log logging.Logger, what string, err error) tea.Cmd {
	log.Errorf("save %s: %v", what, err)
	return func() tea.Msg {
		return statusMsg{
			text:    fmt.Sprintf("Couldn't save %s. Changes are kept and will be saved with the next one.", what),
			isError: true,
		}
	}
}

// --- Helpers ---

// formatClock renders seconds as MM:SS.
func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// parseSchedule turns the form's date and time fields into a schedule.
// Dates are YYYY-MM-DD, "today" or "tomorrow"; times are HH:MM. Both are
// read in now's location.
func parseSchedule(date, clock string, now time.Time) (*time.Time, bool, error) {
	date = strings.TrimSpace(strings.ToLower(date))
	clock = strings.TrimSpace(clock)
	if date == "" {
		if clock != "" {
			return nil, false, task.ErrTimeWithoutSchedule
		}
		return nil, false, nil
	}

	loc := now.Location()
	var day time.Time
	switch date {
	case "today":
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	case "tomorrow":
		day = time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, loc)
	default:
		d, err := time.ParseInLocation("2006-01-02", date, loc)
		if err != nil {
			return nil, false, errors.New("date must be YYYY-MM-DD")
		}
		day = d
	}

	if clock == "" {
		return &day, false, nil
	}
	c, err := time.Parse("15:04", clock)
	if err != nil {
		return nil, false, errors.New("time must be HH:MM")
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, loc)
	return &at, true, nil
}

func parseMinutes(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("enter a whole number of minutes")
	}
	return n, nil
}

// validateMinutes builds a huh validator for a minute count in [lo, hi].
func validateMinutes(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := parseMinutes(s)
		if err != nil {
			return err
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}
