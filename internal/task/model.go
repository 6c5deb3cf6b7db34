package task

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when no task carries the requested id.
	ErrNotFound = errors.New("task not found")

	// ErrTimeWithoutSchedule is returned when hasTime is set without a scheduled instant.
	ErrTimeWithoutSchedule = errors.New("a timed task needs a scheduled date")

	// ErrEmptyTitle is returned by ValidateTitle for blank titles.
	ErrEmptyTitle = errors.New("title must not be empty")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	HasTime     bool       `json:"hasTime"`
	Priority    Priority   `json:"priority,omitempty"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Valid checks the schedule invariant.
func (t Task) Valid() error {
	if t.HasTime && t.ScheduledAt == nil {
		return ErrTimeWithoutSchedule
	}
	return nil
}

// ValidateTitle is meant for the input layer; the list itself trusts its callers.
func ValidateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Patch holds the fields of an update. Nil fields are left alone.
type Patch struct {
	Title         *string
	Description   *string
	ScheduledAt   *time.Time
	ClearSchedule bool
	HasTime       *bool
	Priority      *Priority
	IsCompleted   *bool
}

func (p Patch) apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.ClearSchedule {
		t.ScheduledAt = nil
		t.HasTime = false
	}
	if p.ScheduledAt != nil {
		at := *p.ScheduledAt
		t.ScheduledAt = &at
	}
	if p.HasTime != nil {
		t.HasTime = *p.HasTime
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.IsCompleted != nil {
		t.IsCompleted = *p.IsCompleted
	}
	return t
}
