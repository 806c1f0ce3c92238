package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	identity  Identity
	expiresAt time.Time
}

// MemoryStore is an in-process implementation of Store. Entries expire after
// the configured TTL and are dropped lazily on lookup.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates a new MemoryStore whose sessions last for ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create binds the identity to a fresh opaque token and returns it.
func (s *MemoryStore) Create(identity Identity) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memoryEntry{
		identity:  identity,
		expiresAt: s.now().Add(s.ttl),
	}
	return token, nil
}

// Get resolves a token, dropping it when expired.
func (s *MemoryStore) Get(token string) (Identity, bool, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return Identity{}, false, nil
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return Identity{}, false, nil
	}
	return entry.identity, true, nil
}

// Delete invalidates a token. Unknown tokens are ignored.
func (s *MemoryStore) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
