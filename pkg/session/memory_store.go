package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"parth-agrotech/domain"
)

type memoryStore struct {
	cache *expirable.LRU[string, domain.Session]
	now   func() time.Time
}

// NewMemoryStore keeps at most size sessions, each for ttl.
func NewMemoryStore(size int, ttl time.Duration) SessionStore {
	return &memoryStore{
		cache: expirable.NewLRU[string, domain.Session](size, nil, ttl),
		now:   time.Now,
	}
}

func (s *memoryStore) Save(_ context.Context, session domain.Session) error {
	s.cache.Add(session.ID, session)
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (domain.Session, error) {
	session, ok := s.cache.Get(id)
	if !ok || !session.ExpiresAt.After(s.now()) {
		return domain.Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.cache.Remove(id)
	return nil
}

func (s *memoryStore) DeleteByUser(_ context.Context, userID string) error {
	for _, session := range s.cache.Values() {
		if session.UserID == userID {
			s.cache.Remove(session.ID)
		}
	}
	return nil
}
