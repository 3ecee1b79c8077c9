package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session is the logged-in state of one user. It replaces a global "current
// account": every operation receives the session explicitly.
type Session struct {
	ID           uuid.UUID
	Username     string
	Owner        string
	Locale       string
	Currency     string
	Sorted       bool
	LoggedInAt   time.Time
	LastActivity time.Time

	ended bool
}

// ToggleSort flips the movement ordering and returns the new state.
func (s *Session) ToggleSort() bool {
	s.Sorted = !s.Sorted
	return s.Sorted
}

// WelcomeName is the first token of the owner's name.
func (s *Session) WelcomeName() string {
	first, _, _ := strings.Cut(strings.TrimSpace(s.Owner), " ")
	return first
}

func (s *Session) Active() bool {
	return s != nil && !s.ended
}

func (s *Session) End() {
	s.ended = true
}

func (s *Session) Touch(now time.Time) {
	s.LastActivity = now
}

// Expired reports whether the session has been idle for longer than idle.
// A zero idle duration never expires.
func (s *Session) Expired(now time.Time, idle time.Duration) bool {
	if idle <= 0 {
		return false
	}
	return now.Sub(s.LastActivity) > idle
}
