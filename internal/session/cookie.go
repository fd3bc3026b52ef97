package session

import (
	"context"
	"time"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/gin-gonic/gin"
)

// CookieStore keeps identifiers in the browser under the role's storage key.
type CookieStore struct {
	c      *gin.Context
	maxAge int
	secure bool
}

func NewCookieStore(c *gin.Context, ttl time.Duration, secure bool) *CookieStore {
	return &CookieStore{c: c, maxAge: int(ttl.Seconds()), secure: secure}
}

func (s *CookieStore) Get(_ context.Context, role entity.Role) (string, error) {
	id, err := s.c.Cookie(role.StorageKey())
	if err != nil || id == "" {
		return "", ErrNoSession
	}
	return id, nil
}

func (s *CookieStore) Set(_ context.Context, role entity.Role, id string) error {
	s.c.SetCookie(role.StorageKey(), id, s.maxAge, "/", "", s.secure, true)
	return nil
}

func (s *CookieStore) Clear(_ context.Context, role entity.Role) error {
	s.c.SetCookie(role.StorageKey(), "", -1, "/", "", s.secure, true)
	return nil
}

func CookieFactory(ttl time.Duration, secure bool) Factory {
	return func(c *gin.Context) Store {
		return NewCookieStore(c, ttl, secure)
	}
}
