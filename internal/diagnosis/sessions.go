package diagnosis

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds one diagnosis Context per session. Sessions are created on
// first contact and live for the lifetime of the process; there is no
// persistence behind them.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Context
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Context),
	}
}

// Get returns the context for a session id
func (s *Store) Get(id string) (*Context, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ctx, ok := s.sessions[id]
	return ctx, ok
}

// Create issues a new session with a fresh context
func (s *Store) Create() (string, *Context) {
	id := uuid.NewString()
	ctx := NewContext()
	s.mu.Lock()
	s.sessions[id] = ctx
	s.mu.Unlock()
	return id, ctx
}

// GetOrCreate returns the context for id, or a new session when id is empty
// or unknown. The returned id is the one the caller should hand back to the
// client.
func (s *Store) GetOrCreate(id string) (string, *Context) {
	if id != "" {
		if ctx, ok := s.Get(id); ok {
			return id, ctx
		}
	}
	return s.Create()
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
