// Package timer implements the live focus stopwatch as an explicit
// session object. The process using it owns one instance and hands it
// to whatever view needs it; there is no ambient shared state.
package timer

import (
	"errors"
	"math"
	"sync"
	"time"

	"focusos/models"
)

// MinCommitSeconds is the shortest session worth logging. Commits
// below it are rejected and the timer keeps running state.
const MinCommitSeconds = 36

// LiveTag marks timer-originated sessions in the store.
const LiveTag = "Live-Focus"

// State is the timer's lifecycle position.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

var (
	// ErrTooShort is returned by Commit when elapsed time is under
	// MinCommitSeconds. The timer state is left unchanged.
	ErrTooShort = errors.New("session too short to log")
	// ErrNotRunning is returned when an operation needs an active session.
	ErrNotRunning = errors.New("no active session")
)

// Timer accrues elapsed time only while Running, against a wall clock.
type Timer struct {
	mu        sync.Mutex
	state     State
	track     string
	topic     string
	accrued   time.Duration
	resumedAt time.Time
	now       func() time.Time
}

// New returns an idle timer on the system clock.
func New() *Timer {
	return &Timer{now: time.Now}
}

// NewWithClock returns an idle timer on a caller-supplied clock.
func NewWithClock(now func() time.Time) *Timer {
	return &Timer{now: now}
}

// Start begins a session for a track. An empty topic falls back to
// "Focus Session". Starting over an active session discards it.
func (t *Timer) Start(track, topic string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if topic == "" {
		topic = "Focus Session"
	}
	t.track = track
	t.topic = topic
	t.accrued = 0
	t.resumedAt = t.now()
	t.state = Running
}

// Pause freezes the elapsed clock. No-op unless Running.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Running {
		return
	}
	t.accrued += t.now().Sub(t.resumedAt)
	t.state = Paused
}

// Resume restarts the elapsed clock. No-op unless Paused.
func (t *Timer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Paused {
		return
	}
	t.resumedAt = t.now()
	t.state = Running
}

// Discard resets to Idle without producing a session.
func (t *Timer) Discard() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reset()
}

// State reports the current lifecycle position.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Track reports the track the active session was started for.
func (t *Timer) Track() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.track
}

// Elapsed reports total accrued time.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed()
}

// Commit ends the session and builds the single Session record to
// submit to the entry store. Sessions under MinCommitSeconds are
// rejected with ErrTooShort and the timer keeps its current state, so
// the user can keep going instead of losing the time.
func (t *Timer) Commit() (models.Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == Idle {
		return models.Session{}, ErrNotRunning
	}

	seconds := t.elapsed().Seconds()
	if seconds < MinCommitSeconds {
		return models.Session{}, ErrTooShort
	}

	// Two decimals, matching what the log view shows.
	hours := math.Round(seconds/3600*100) / 100

	session := models.Session{
		Category:    t.track,
		SubCategory: t.topic,
		Tags:        []string{LiveTag},
		Focused:     hours,
		Assigned:    0,
	}
	t.reset()
	return session, nil
}

func (t *Timer) elapsed() time.Duration {
	total := t.accrued
	if t.state == Running {
		total += t.now().Sub(t.resumedAt)
	}
	return total
}

func (t *Timer) reset() {
	t.state = Idle
	t.track = ""
	t.topic = ""
	t.accrued = 0
}
