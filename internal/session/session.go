package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Navigable day window relative to today.
const (
	MinOffset = -3
	MaxOffset = 6
)

// Action is one navigation transition on a session.
type Action string

const (
	ActionPrevious Action = "previous"
	ActionReset    Action = "reset"
	ActionNext     Action = "next"
)

var (
	// ErrExpired is returned for a step on a session past its inactivity
	// window, or on a session that never existed.
	ErrExpired = errors.New("session expired")
	// ErrOutOfRange is returned for a step beyond the navigable window;
	// the session offset is left unchanged.
	ErrOutOfRange = errors.New("day offset out of range")
	// ErrUnknownAction is returned for an unrecognized action.
	ErrUnknownAction = errors.New("unknown navigation action")
)

type record struct {
	mu           sync.Mutex
	offset       int
	lastActivity time.Time
}

// Arena owns all live navigation sessions, keyed by id. Steps on one session
// are serialized through its own lock, so two steps can never interleave
// their refetch and rerender. Expired sessions are rejected on access and
// reclaimed by Sweep.
type Arena struct {
	mu       sync.RWMutex
	sessions map[string]*record
	timeout  time.Duration
	now      func() time.Time
}

// NewArena creates an empty arena with the given inactivity timeout.
func NewArena(timeout time.Duration) *Arena {
	return &Arena{
		sessions: make(map[string]*record),
		timeout:  timeout,
		now:      time.Now,
	}
}

// Create registers a new session at offset 0 and returns its id.
func (a *Arena) Create() string {
	id := uuid.NewString()

	a.mu.Lock()
	a.sessions[id] = &record{lastActivity: a.now()}
	a.mu.Unlock()

	return id
}

// Step applies one navigation action. On an accepted transition the offset
// is committed, the activity clock reset, and fn invoked with the new offset
// while the session lock is held. Rejected transitions leave the session
// untouched. The returned int is the session's offset after the call.
func (a *Arena) Step(id string, action Action, fn func(offset int) error) (int, error) {
	a.mu.RLock()
	rec, ok := a.sessions[id]
	a.mu.RUnlock()
	if !ok {
		return 0, ErrExpired
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	now := a.now()
	if now.Sub(rec.lastActivity) >= a.timeout {
		a.mu.Lock()
		delete(a.sessions, id)
		a.mu.Unlock()
		return rec.offset, ErrExpired
	}

	next := rec.offset
	switch action {
	case ActionPrevious:
		next--
	case ActionNext:
		next++
	case ActionReset:
		next = 0
	default:
		return rec.offset, ErrUnknownAction
	}

	if next < MinOffset || next > MaxOffset {
		return rec.offset, ErrOutOfRange
	}

	rec.offset = next
	rec.lastActivity = now

	if fn != nil {
		if err := fn(next); err != nil {
			return next, err
		}
	}
	return next, nil
}

// Sweep drops every session whose inactivity window has elapsed and reports
// how many were removed.
func (a *Arena) Sweep() int {
	now := a.now()

	a.mu.RLock()
	snapshot := make(map[string]*record, len(a.sessions))
	for id, rec := range a.sessions {
		snapshot[id] = rec
	}
	a.mu.RUnlock()

	var expired []string
	for id, rec := range snapshot {
		rec.mu.Lock()
		idle := now.Sub(rec.lastActivity)
		rec.mu.Unlock()
		if idle >= a.timeout {
			expired = append(expired, id)
		}
	}

	if len(expired) == 0 {
		return 0
	}

	a.mu.Lock()
	for _, id := range expired {
		delete(a.sessions, id)
	}
	a.mu.Unlock()

	return len(expired)
}

// Len reports the number of live sessions.
func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.sessions)
}
