package task

import (
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sadopc/pomotask/internal/calendar"
	"github.com/sadopc/pomotask/internal/clock"
)

// Gateway is the slice of the persistence store the list needs.
type Gateway interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}

// List owns the task collection for one run of the app. Every mutation
// updates memory first and then writes the whole collection; a failed write
// is returned but memory is kept.
type List struct {
	mu    sync.RWMutex
	gw    Gateway
	key   string
	clock clock.Clock
	tasks []Task
}

func NewList(gw Gateway, key string, c clock.Clock) *List {
	return &List{gw: gw, key: key, clock: c}
}

// Load replaces the in-memory collection with the stored one.
func (l *List) Load() error {
	data, err := l.gw.Load(l.key)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	var tasks []Task
	if len(data) > 0 {
		if err := json.Unmarshal(data, &tasks); err != nil {
			return fmt.Errorf("decode tasks: %w", err)
		}
	}
	l.mu.Lock()
	l.tasks = tasks
	l.mu.Unlock()
	return nil
}

// Tasks returns a copy of the collection in insertion order.
func (l *List) Tasks() []Task {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) Get(id string) (Task, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, fmt.Errorf("get task %s: %w", id, ErrNotFound)
	}
	return l.tasks[i], nil
}

// Add appends a new task. The title is taken as given.
func (l *List) Add(title string, scheduledAt *time.Time, hasTime bool) (Task, error) {
	return l.AddWith(title, scheduledAt, hasTime, Patch{})
}

// AddWith is Add with extra fields such as priority and description applied
// before the single save.
func (l *List) AddWith(title string, scheduledAt *time.Time, hasTime bool, extra Patch) (Task, error) {
	now := l.clock.Now()
	t := Task{
		ID:        uuid.NewString(),
		Title:     title,
		HasTime:   hasTime,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if scheduledAt != nil {
		at := *scheduledAt
		t.ScheduledAt = &at
	}
	t = extra.apply(t)
	if err := t.Valid(); err != nil {
		return Task{}, err
	}

	l.mu.Lock()
	l.tasks = append(l.tasks, t)
	err := l.saveLocked()
	l.mu.Unlock()
	return t, err
}

func (l *List) Update(id string, p Patch) (Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return Task{}, fmt.Errorf("update task %s: %w", id, ErrNotFound)
	}
	updated := p.apply(l.tasks[i])
	if err := updated.Valid(); err != nil {
		return Task{}, err
	}
	updated.UpdatedAt = l.clock.Now()
	l.tasks[i] = updated
	return updated, l.saveLocked()
}

func (l *List) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete task %s: %w", id, ErrNotFound)
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return l.saveLocked()
}

// Toggle flips the completion flag.
func (l *List) Toggle(id string) (Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return Task{}, fmt.Errorf("toggle task %s: %w", id, ErrNotFound)
	}
	l.tasks[i].IsCompleted = !l.tasks[i].IsCompleted
	l.tasks[i].UpdatedAt = l.clock.Now()
	return l.tasks[i], l.saveLocked()
}

// ForDate returns the tasks scheduled on day, read in loc.
func (l *List) ForDate(day calendar.Day, loc *time.Location) []Task {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []Task
	for _, t := range l.tasks {
		if t.ScheduledAt != nil && calendar.DayIn(*t.ScheduledAt, loc).Equal(day) {
			out = append(out, t)
		}
	}
	return out
}

// Today returns the tasks scheduled today that are already unlocked; timed
// tasks appear once their time has come.
func (l *List) Today(now time.Time) []Task {
	var out []Task
	for _, t := range l.ForDate(calendar.DayOf(now), now.Location()) {
		if t.HasTime && t.ScheduledAt.After(now) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Upcoming returns the tasks scheduled from tomorrow on.
func (l *List) Upcoming(now time.Time) []Task {
	l.mu.RLock()
	defer l.mu.RUnlock()
	today := calendar.DayOf(now)
	var out []Task
	for _, t := range l.tasks {
		if t.ScheduledAt != nil && calendar.DayIn(*t.ScheduledAt, now.Location()).After(today) {
			out = append(out, t)
		}
	}
	return out
}

// CompletionRate is the rounded share of Today's tasks that are done, 0..100.
func (l *List) CompletionRate(now time.Time) int {
	today := l.Today(now)
	if len(today) == 0 {
		return 0
	}
	done := 0
	for _, t := range today {
		if t.IsCompleted {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(today)) * 100))
}

func (l *List) indexOf(id string) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *List) saveLocked() error {
	data, err := json.Marshal(l.tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := l.gw.Save(l.key, data); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
