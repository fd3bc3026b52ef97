// Package session keeps role-scoped session identifiers.
//
// An identifier is an opaque string; its presence for a role means the actor is signed in
// as that role. Stores never check authenticity.
package session

import (
	"context"
	"errors"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/gin-gonic/gin"
)

var ErrNoSession = errors.New("no session")

type Store interface {
	// Get returns ErrNoSession when the role has no identifier.
	Get(ctx context.Context, role entity.Role) (string, error)
	Set(ctx context.Context, role entity.Role, id string) error
	Clear(ctx context.Context, role entity.Role) error
}

// Factory binds a Store to the request being served.
type Factory func(c *gin.Context) Store

// ClearAll removes the identifiers of every role.
func ClearAll(ctx context.Context, store Store) error {
	var errs []error
	for _, role := range entity.Roles {
		if err := store.Clear(ctx, role); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
