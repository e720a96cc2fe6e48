package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"go-landdeals-backend/internal/domain"
)

// Session owns one visitor's NavigationState. Handlers mutate it through
// Update, which serializes actions within the session: each click or submit
// runs to completion before the next is applied, matching the
// single-threaded UI model. Sessions are never shared.
type Session struct {
	ID string

	mu  sync.Mutex
	nav domain.NavigationState

	lastSeen time.Time
}

// Nav returns a snapshot of the current navigation state.
func (s *Session) Nav() domain.NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav
}

// Update applies fn to the navigation state under the session lock. If fn
// returns an error the state is left unchanged.
func (s *Session) Update(fn func(*domain.NavigationState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.nav
	if err := fn(&next); err != nil {
		return err
	}
	s.nav = next
	return nil
}

// Store holds all live sessions. State is confined per session; the store
// lock only guards the map itself.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore creates a session store. Sessions idle longer than ttl are
// dropped by the background sweep.
func NewStore(ttl time.Duration) *Store {
	st := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
	go st.sweep()
	return st
}

// Get returns the session with the given id, refreshing its idle timer.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		s.mu.Lock()
		s.lastSeen = time.Now()
		s.mu.Unlock()
	}
	return s, ok
}

// Create mints a new session with the default navigation state.
func (st *Store) Create() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		nav:      domain.NewNavigationState(),
		lastSeen: time.Now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Count returns the number of live sessions.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *Store) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	for range ticker.C {
		cutoff := time.Now().Add(-st.ttl)
		st.mu.Lock()
		for id, s := range st.sessions {
			s.mu.Lock()
			stale := s.lastSeen.Before(cutoff)
			s.mu.Unlock()
			if stale {
				delete(st.sessions, id)
			}
		}
		st.mu.Unlock()
	}
}
