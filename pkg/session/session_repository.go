package session

import (
	"context"
	"sync"

	"gogiieum/entities"
)

type (
	SessionRepository interface {
		Get(ctx context.Context) (entities.Session, error)
		Update(ctx context.Context, apply func(*entities.Session) error) (entities.Session, error)
	}

	sessionRepository struct {
		mu      sync.RWMutex
		session entities.Session
	}
)

// NewSessionRepository starts the session on the landing screen. State lives
// only in memory and resets with the process.
func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		session: entities.Session{
			Screen: entities.Screen{Kind: entities.ScreenLanding},
		},
	}
}

func (r *sessionRepository) Get(ctx context.Context) (entities.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.session, nil
}

// Update applies one mutation atomically; the next read observes it in full.
func (r *sessionRepository) Update(ctx context.Context, apply func(*entities.Session) error) (entities.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := apply(&r.session); err != nil {
		return r.session, err
	}
	return r.session, nil
}
