package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

// LoginResult is what the remote API returns for a client or vendor login.
type LoginResult struct {
	ID    string `json:"_id" validate:"required"`
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Token string `json:"token" validate:"required"`
}

type AdminAccount struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  *string   `json:"-" db:"password"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}
