package focuslog

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sadopc/pomotask/internal/clock"
)

// Gateway is the slice of the persistence store the log needs.
type Gateway interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Remove(key string) error
}

// Log keeps every focus log of the user in insertion order.
type Log struct {
	mu    sync.RWMutex
	gw    Gateway
	key   string
	clock clock.Clock
	logs  []FocusLog
}

func NewLog(gw Gateway, key string, c clock.Clock) *Log {
	return &Log{gw: gw, key: key, clock: c}
}

func (l *Log) Load() error {
	data, err := l.gw.Load(l.key)
	if err != nil {
		return fmt.Errorf("load focus logs: %w", err)
	}
	var logs []FocusLog
	if len(data) > 0 {
		if err := json.Unmarshal(data, &logs); err != nil {
			return fmt.Errorf("decode focus logs: %w", err)
		}
	}
	l.mu.Lock()
	l.logs = logs
	l.mu.Unlock()
	return nil
}

// Add appends a log. Visibility defaults to public.
func (l *Log) Add(e Entry) (FocusLog, error) {
	if e.DurationMinutes <= 0 {
		return FocusLog{}, ErrInvalidDuration
	}
	if e.Visibility == "" {
		e.Visibility = Public
	}
	now := l.clock.Now()
	if e.CompletedAt.IsZero() {
		e.CompletedAt = now
	}
	fl := FocusLog{
		ID:              uuid.NewString(),
		TaskID:          e.TaskID,
		DurationMinutes: e.DurationMinutes,
		CompletedAt:     e.CompletedAt,
		Message:         e.Message,
		Visibility:      e.Visibility,
		CreatedAt:       now,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs = append(l.logs, fl)
	return fl, l.saveLocked()
}

// All returns a copy of every log.
func (l *Log) All() []FocusLog {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]FocusLog, len(l.logs))
	copy(out, l.logs)
	return out
}

// ForWeek returns the logs completed in the seven days starting at the
// midnight of start, in start's location.
func (l *Log) ForWeek(start time.Time) []FocusLog {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := from.AddDate(0, 0, 7)

	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []FocusLog
	for _, fl := range l.logs {
		if !fl.CompletedAt.Before(from) && fl.CompletedAt.Before(to) {
			out = append(out, fl)
		}
	}
	return out
}

func (l *Log) TotalMinutesForWeek(start time.Time) int {
	total := 0
	for _, fl := range l.ForWeek(start) {
		total += fl.DurationMinutes
	}
	return total
}

// DeleteAll drops every log from memory and storage.
func (l *Log) DeleteAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs = nil
	if err := l.gw.Remove(l.key); err != nil {
		return fmt.Errorf("delete focus logs: %w", err)
	}
	return nil
}

func (l *Log) saveLocked() error {
	data, err := json.Marshal(l.logs)
	if err != nil {
		return fmt.Errorf("encode focus logs: %w", err)
	}
	if err := l.gw.Save(l.key, data); err != nil {
		return fmt.Errorf("save focus logs: %w", err)
	}
	return nil
}
