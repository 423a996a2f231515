package session

import (
	"context"
	"sync"
	"time"

	"zyro-visual/internal/entity"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory. A janitor prunes expired
// entries periodically; Get also checks expiry so pruning is only hygiene.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	done     chan struct{}
	stopOnce sync.Once
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*Session),
		done:     make(chan struct{}),
	}
	go s.janitor(time.Hour)
	return s
}

func (s *MemoryStore) Create(_ context.Context, user *entity.User) (*Session, error) {
	sess := &Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		ExpiresAt: time.Now().Add(TTL),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	copied := *sess
	return &copied, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, nil
	}

	copied := *sess
	return &copied, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// Close stops the janitor goroutine.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *MemoryStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, sess := range s.sessions {
				if now.After(sess.ExpiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
