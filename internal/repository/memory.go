package repository

import (
	"context"
	"sync"

	"github.com/shaqnxtgen/tic-tac-toe-web/internal/entity"
)

type memorySession struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

// NewMemorySessionRepository keeps sessions in process memory, for running
// without redis and for tests. Sessions are cloned on the way in and out so
// callers never share board state with the store.
func NewMemorySessionRepository() SessionRepository {
	return &memorySession{
		sessions: make(map[string]*entity.Session),
	}
}

func (that *memorySession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ID] = session.Clone()

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return &entity.Session{}, ErrSessionNotFound
	}

	return session.Clone(), nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.sessions, id)

	return nil
}
