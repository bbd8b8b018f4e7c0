package employee

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one user's private form and record list.
type Session struct {
	ID    string
	Form  *Form
	Store *Store

	lastSeen time.Time
}

type Sessions struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*Session
}

type SessionsOption func(*Sessions)

func WithClock(now func() time.Time) SessionsOption {
	return func(s *Sessions) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSessions(ttl time.Duration, opts ...SessionsOption) *Sessions {
	s := &Sessions{
		ttl:      ttl,
		now:      time.Now,
		sessions: map[string]*Session{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns the session for id, starting a new one when id is empty or
// unknown. The second result reports whether a session was created.
func (s *Sessions) Open(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.sessions[id]; ok && id != "" {
		sess.lastSeen = now
		return sess, false
	}

	store := NewStore()
	sess := &Session{
		ID:       uuid.NewString(),
		Form:     NewForm(store, NewRecordID),
		Store:    store,
		lastSeen: now,
	}
	s.sessions[sess.ID] = sess
	return sess, true
}

// Sweep drops sessions idle for longer than the ttl and returns how many
// were removed. A non-positive ttl keeps every session.
func (s *Sessions) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
