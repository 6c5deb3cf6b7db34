package task

import (
	"fmt"
	"time"

	"github.com/sadopc/pomotask/internal/calendar"
)

// Status is the eligibility class of a task at a given moment.
type Status string

const (
	StatusExecutable Status = "executable"
	StatusScheduled  Status = "scheduled"
	StatusTimeLocked Status = "time-locked"
	StatusCompleted  Status = "completed"
)

const (
	reasonCompleted   = "既に完了済み"
	reasonImmediate   = "すぐに実行可能"
	reasonExecutable  = "実行可能"
	reasonSoon        = "もうすぐ実行可能"
	reasonScheduledAt = "%sに実行予定"
)

// Verdict is the outcome of Evaluate.
type Verdict struct {
	Executable bool
	Status     Status
	Reason     string
}

// Evaluate decides whether the task's action may run at now. Calendar days
// are compared in now's location.
func Evaluate(t Task, now time.Time) Verdict {
	if t.IsCompleted {
		return Verdict{Status: StatusCompleted, Reason: reasonCompleted}
	}
	if t.ScheduledAt == nil {
		return Verdict{Executable: true, Status: StatusExecutable, Reason: reasonImmediate}
	}

	at := t.ScheduledAt.In(now.Location())
	scheduledDay := calendar.DayOf(at)
	today := calendar.DayOf(now)

	switch {
	case scheduledDay.After(today):
		return Verdict{
			Status: StatusScheduled,
			Reason: fmt.Sprintf(reasonScheduledAt, scheduledDay.Short()),
		}
	case scheduledDay.Before(today):
		return executable()
	case !t.HasTime:
		return executable()
	case at.After(now):
		return Verdict{
			Status: StatusTimeLocked,
			Reason: fmt.Sprintf(reasonScheduledAt, clockTime(at)),
		}
	}
	return executable()
}

func executable() Verdict {
	return Verdict{Executable: true, Status: StatusExecutable, Reason: reasonExecutable}
}

func IsEnabled(t Task, now time.Time) bool {
	return Evaluate(t, now).Executable
}

// Groups partitions tasks for the list view. Scheduled and time-locked tasks
// share Locked.
type Groups struct {
	Executable []Task
	Locked     []Task
	Completed  []Task
}

func GroupByStatus(tasks []Task, now time.Time) Groups {
	var g Groups
	for _, t := range tasks {
		switch Evaluate(t, now).Status {
		case StatusCompleted:
			g.Completed = append(g.Completed, t)
		case StatusExecutable:
			g.Executable = append(g.Executable, t)
		default:
			g.Locked = append(g.Locked, t)
		}
	}
	return g
}

// TimeUntilExecutable is only defined for timed tasks; ok is false otherwise.
func TimeUntilExecutable(t Task, now time.Time) (d time.Duration, ok bool) {
	if t.ScheduledAt == nil || !t.HasTime {
		return 0, false
	}
	if wait := t.ScheduledAt.Sub(now); wait > 0 {
		return wait, true
	}
	return 0, true
}

func FormatTimeUntilExecutable(t Task, now time.Time) (string, bool) {
	wait, ok := TimeUntilExecutable(t, now)
	if !ok {
		return "", false
	}
	if wait == 0 {
		return reasonImmediate, true
	}
	total := int(wait / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	switch {
	case h > 0:
		return fmt.Sprintf("%d時間%d分後に実行可能", h, m), true
	case m > 0:
		return fmt.Sprintf("%d分後に実行可能", m), true
	}
	return reasonSoon, true
}

// FormatScheduleChip renders M/D, or M/D HH:MM for timed schedules.
func FormatScheduleChip(at time.Time, hasTime bool) string {
	day := calendar.DayOf(at).Short()
	if !hasTime {
		return day
	}
	return day + " " + clockTime(at)
}

func clockTime(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
