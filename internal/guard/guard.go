// Package guard decides whether a request may reach role-protected content.
package guard

import (
	"context"
	"errors"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/session"
)

type State int

const (
	Authorized State = iota
	Redirecting
)

func (s State) String() string {
	if s == Authorized {
		return "authorized"
	}
	return "redirecting"
}

type Decision struct {
	State      State
	Role       entity.Role
	Identifier string
	// Location is the login path when State is Redirecting.
	Location string
}

// Decide reads the role's identifier once. Any non-empty identifier authorizes; it is not
// verified. A store failure is returned alongside a Redirecting decision.
func Decide(ctx context.Context, store session.Store, role entity.Role) (Decision, error) {
	id, err := store.Get(ctx, role)
	if err == nil && id != "" {
		return Decision{State: Authorized, Role: role, Identifier: id}, nil
	}

	decision := Decision{State: Redirecting, Role: role, Location: role.LoginPath()}
	if err != nil && !errors.Is(err, session.ErrNoSession) {
		return decision, err
	}
	return decision, nil
}
