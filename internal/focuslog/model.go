package focuslog

import (
	"errors"
	"time"
)

// ErrInvalidDuration is returned when a log is added with a non-positive length.
var ErrInvalidDuration = errors.New("focus duration must be positive")

type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

// FocusLog records one finished focus interval.
type FocusLog struct {
	ID              string     `json:"id"`
	TaskID          string     `json:"taskId,omitempty"`
	DurationMinutes int        `json:"durationMinutes"`
	CompletedAt     time.Time  `json:"completedAt"`
	Message         string     `json:"message,omitempty"`
	Visibility      Visibility `json:"visibility"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// Entry is what callers provide; the log fills in ID and CreatedAt.
type Entry struct {
	TaskID          string
	DurationMinutes int
	CompletedAt     time.Time
	Message         string
	Visibility      Visibility
}
