package session

import (
	"context"
	"sync"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/gin-gonic/gin"
)

type MemoryStore struct {
	mu  sync.RWMutex
	ids map[entity.Role]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ids: make(map[entity.Role]string)}
}

func (s *MemoryStore) Get(_ context.Context, role entity.Role) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id := s.ids[role]
	if id == "" {
		return "", ErrNoSession
	}
	return id, nil
}

func (s *MemoryStore) Set(_ context.Context, role entity.Role, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids[role] = id
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, role entity.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ids, role)
	return nil
}

// MemoryFactory hands the same store to every request.
func MemoryFactory(store *MemoryStore) Factory {
	return func(*gin.Context) Store {
		return store
	}
}
