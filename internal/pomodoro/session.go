package pomodoro

import (
	"errors"
	"time"
)

// State is the phase a session is in.
type State int

const (
	StateIdle State = iota
	StateFocus
	StateBreak
	StatePaused
)

// String returns a human-readable string for the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateFocus:
		return "FOCUS"
	case StateBreak:
		return "BREAK"
	case StatePaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

const (
	DefaultFocusDuration = 25 * 60
	DefaultBreakDuration = 5 * 60
)

// ErrInvalidTransition is returned when a command does not apply to the
// current state.
var ErrInvalidTransition = errors.New("invalid pomodoro transition")

// ResumePolicy picks the phase a paused session returns to.
type ResumePolicy string

const (
	// ResumeIntoFocus always resumes into FOCUS, even when a break was paused.
	ResumeIntoFocus ResumePolicy = "focus"
	// ResumeIntoPrevious resumes into whichever phase was paused.
	ResumeIntoPrevious ResumePolicy = "previous"
)

// Session is one live pomodoro session. Durations and counters are in seconds.
type Session struct {
	ID             string
	State          State
	FocusDuration  int
	BreakDuration  int
	ElapsedTime    int
	TotalFocusTime int
	StartedAt      *time.Time
	PausedAt       *time.Time
}

// maxTime is the length of the phase the session is measured against.
func (s Session) maxTime() int {
	if s.State == StateFocus {
		return s.FocusDuration
	}
	return s.BreakDuration
}

// Snapshot is a session plus the values derived from it.
type Snapshot struct {
	Session
	RemainingTime int
	Progress      float64
	IsRunning     bool
}

func snapshotOf(s Session, running bool) Snapshot {
	max := s.maxTime()
	remaining := max - s.ElapsedTime
	if remaining < 0 {
		remaining = 0
	}
	var progress float64
	if max > 0 {
		progress = float64(s.ElapsedTime) / float64(max) * 100
		if progress > 100 {
			progress = 100
		}
	}
	if s.StartedAt != nil {
		t := *s.StartedAt
		s.StartedAt = &t
	}
	if s.PausedAt != nil {
		t := *s.PausedAt
		s.PausedAt = &t
	}
	return Snapshot{Session: s, RemainingTime: remaining, Progress: progress, IsRunning: running}
}

// Remaining is RemainingTime as a duration.
func (s Snapshot) Remaining() time.Duration {
	return time.Duration(s.RemainingTime) * time.Second
}
