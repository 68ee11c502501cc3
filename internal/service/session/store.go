package session

import (
	"sync"
	"time"

	"github.com/dmoura/edubot/internal/model/session"
)

// DefaultTTL is how long a session stays usable after its last refresh.
const DefaultTTL = 300 * time.Second

// Store keeps per-user sessions in memory. It is the only shared mutable
// state in the pipeline and is safe for concurrent use. Sessions do not
// survive a restart.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[int64]session.Session
}

// NewStore bootstraps an empty in-memory store. A non-positive ttl falls
// back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[int64]session.Session),
	}
}

// IsStale reports whether the user has no usable session: none exists, or
// the last refresh is older than the TTL.
func (s *Store) IsStale(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return true
	}
	return s.now().Sub(sess.LastUsed) > s.ttl
}

// Update unconditionally overwrites the user's session with the given topic
// and the current time. Sending a new qualifying message always refreshes.
func (s *Store) Update(userID int64, topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = session.Session{
		UserID:   userID,
		Topic:    topic,
		LastUsed: s.now(),
	}
}

// EvictIfStale removes the user's session when it has expired. Expiry is
// lazy: callers invoke this on access rather than via a background sweep.
func (s *Store) EvictIfStale(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return
	}
	if s.now().Sub(sess.LastUsed) > s.ttl {
		delete(s.sessions, userID)
	}
}

// Get returns the user's session when one exists and is still fresh.
func (s *Store) Get(userID int64) (session.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok || s.now().Sub(sess.LastUsed) > s.ttl {
		return session.Session{}, false
	}
	return sess, true
}
