package memory

import (
	"context"
	"sync"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// SessionRepository keeps device sessions in a map. It is safe for concurrent use.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]*access.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[kernel.UUID]*access.Session)}
}

func (r *SessionRepository) Get(_ context.Context, id kernel.UUID) (*access.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("sessionId", id)
	}
	return s.Clone(), nil
}

func (r *SessionRepository) Save(_ context.Context, s *access.Session) error {
	if err := s.ID().Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID()] = s.Clone()
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, id kernel.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}
