package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in-process. Suitable for single-instance
// deployments and tests; records vanish on restart.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		m: make(map[string]Session),
	}
}

// Save also sweeps records whose expiry has passed. The Manager only
// deletes expired sessions it happens to read, so without the sweep a
// token that is never presented again would stay in the map forever.
func (s *MemoryStore) Save(ctx context.Context, token string, sess Session) error {
	s.mu.Lock()

	now := time.Now()

	for t, existing := range s.m {
		if now.After(existing.ExpiresAt) {
			delete(s.m, t)
		}
	}

	s.m[token] = sess
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (Session, bool, error) {
	s.mu.RLock()
	sess, ok := s.m[token]
	s.mu.RUnlock()

	return sess, ok, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.m, token)
	s.mu.Unlock()

	return nil
}
