package pomodoro

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sadopc/pomotask/internal/clock"
)

const tickInterval = time.Second

// EventKind tells subscribers what happened.
type EventKind int

const (
	// EventChanged follows every state mutation, ticks included.
	EventChanged EventKind = iota
	// EventCompleted fires once when a phase runs out and the machine flips
	// to the other phase.
	EventCompleted
)

type Event struct {
	Kind EventKind
	// Phase is the phase that just finished; only set for EventCompleted.
	Phase    State
	Snapshot Snapshot
}

// Config sets up a Machine. Zero durations fall back to the defaults.
type Config struct {
	FocusDuration int
	BreakDuration int
	ResumePolicy  ResumePolicy
}

// Machine drives one pomodoro session. It owns at most one tick handle at a
// time; every command that leaves FOCUS/BREAK cancels it before returning,
// and a tick that was already in flight is dropped by the generation check.
type Machine struct {
	mu      sync.Mutex
	clock   clock.Clock
	sched   clock.Scheduler
	cfg     Config
	session Session

	pausedFrom State
	ticking    bool
	stopTick   func()
	gen        uint64

	subs   map[int]func(Event)
	nextID int
}

func NewMachine(cfg Config, c clock.Clock, sched clock.Scheduler) *Machine {
	if cfg.FocusDuration <= 0 {
		cfg.FocusDuration = DefaultFocusDuration
	}
	if cfg.BreakDuration <= 0 {
		cfg.BreakDuration = DefaultBreakDuration
	}
	if cfg.ResumePolicy == "" {
		cfg.ResumePolicy = ResumeIntoFocus
	}
	m := &Machine{
		clock: c,
		sched: sched,
		cfg:   cfg,
		subs:  make(map[int]func(Event)),
	}
	m.session = m.freshSession()
	return m
}

func (m *Machine) freshSession() Session {
	return Session{
		ID:            uuid.NewString(),
		State:         StateIdle,
		FocusDuration: m.cfg.FocusDuration,
		BreakDuration: m.cfg.BreakDuration,
	}
}

// Subscribe registers fn for every event. Callbacks run after the machine
// lock is released, on the goroutine that caused the event.
func (m *Machine) Subscribe(fn func(Event)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return snapshotOf(m.session, m.ticking)
}

func (m *Machine) StartFocus() { m.startPhase(StateFocus) }
func (m *Machine) StartBreak() { m.startPhase(StateBreak) }

func (m *Machine) startPhase(phase State) {
	m.mu.Lock()
	now := m.clock.Now()
	m.session.State = phase
	m.session.ElapsedTime = 0
	m.session.StartedAt = &now
	m.session.PausedAt = nil
	m.startTickingLocked()
	events := m.changedLocked()
	m.mu.Unlock()
	m.publish(events)
}

// Pause freezes a running FOCUS or BREAK.
func (m *Machine) Pause() error {
	m.mu.Lock()
	if m.session.State != StateFocus && m.session.State != StateBreak {
		state := m.session.State
		m.mu.Unlock()
		return fmt.Errorf("pause from %s: %w", state, ErrInvalidTransition)
	}
	m.stopTickingLocked()
	now := m.clock.Now()
	m.pausedFrom = m.session.State
	m.session.State = StatePaused
	m.session.PausedAt = &now
	events := m.changedLocked()
	m.mu.Unlock()
	m.publish(events)
	return nil
}

// Resume continues a paused session without resetting ElapsedTime.
func (m *Machine) Resume() error {
	m.mu.Lock()
	if m.session.State != StatePaused {
		state := m.session.State
		m.mu.Unlock()
		return fmt.Errorf("resume from %s: %w", state, ErrInvalidTransition)
	}
	next := StateFocus
	if m.cfg.ResumePolicy == ResumeIntoPrevious && m.pausedFrom == StateBreak {
		next = StateBreak
	}
	m.session.State = next
	m.session.PausedAt = nil
	m.startTickingLocked()
	events := m.changedLocked()
	m.mu.Unlock()
	m.publish(events)
	return nil
}

// Stop returns to IDLE. TotalFocusTime is kept.
func (m *Machine) Stop() {
	m.mu.Lock()
	m.stopTickingLocked()
	m.session.State = StateIdle
	m.session.ElapsedTime = 0
	m.session.StartedAt = nil
	m.session.PausedAt = nil
	events := m.changedLocked()
	m.mu.Unlock()
	m.publish(events)
}

// Reset returns to IDLE with a new session id and zeroed counters.
func (m *Machine) Reset() {
	m.mu.Lock()
	m.stopTickingLocked()
	m.session = m.freshSession()
	events := m.changedLocked()
	m.mu.Unlock()
	m.publish(events)
}

// Configure changes durations and resume policy. A running phase keeps
// counting against the new lengths from the next tick on.
func (m *Machine) Configure(cfg Config) {
	m.mu.Lock()
	if cfg.FocusDuration > 0 {
		m.cfg.FocusDuration = cfg.FocusDuration
		m.session.FocusDuration = cfg.FocusDuration
	}
	if cfg.BreakDuration > 0 {
		m.cfg.BreakDuration = cfg.BreakDuration
		m.session.BreakDuration = cfg.BreakDuration
	}
	if cfg.ResumePolicy != "" {
		m.cfg.ResumePolicy = cfg.ResumePolicy
	}
	events := m.changedLocked()
	m.mu.Unlock()
	m.publish(events)
}

func (m *Machine) tick(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || !m.ticking {
		m.mu.Unlock()
		return
	}

	var events []Event
	max := m.session.maxTime()
	m.session.ElapsedTime++
	if m.session.ElapsedTime >= max {
		finished := m.session.State
		m.session.ElapsedTime = max
		m.stopTickingLocked()
		if finished == StateFocus {
			m.session.State = StateBreak
		} else {
			m.session.State = StateFocus
		}
		events = append(events, m.changedLocked()...)
		events = append(events, Event{
			Kind:     EventCompleted,
			Phase:    finished,
			Snapshot: snapshotOf(m.session, m.ticking),
		})
	} else {
		if m.session.State == StateFocus {
			m.session.TotalFocusTime++
		}
		events = m.changedLocked()
	}
	m.mu.Unlock()
	m.publish(events)
}

func (m *Machine) startTickingLocked() {
	m.stopTickingLocked()
	m.gen++
	gen := m.gen
	m.ticking = true
	m.stopTick = m.sched.Every(tickInterval, func() { m.tick(gen) })
}

func (m *Machine) stopTickingLocked() {
	if m.stopTick != nil {
		m.stopTick()
		m.stopTick = nil
	}
	m.ticking = false
	m.gen++
}

func (m *Machine) changedLocked() []Event {
	return []Event{{Kind: EventChanged, Snapshot: snapshotOf(m.session, m.ticking)}}
}

func (m *Machine) publish(events []Event) {
	m.mu.Lock()
	subs := make([]func(Event), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, e := range events {
		for _, fn := range subs {
			fn(e)
		}
	}
}
