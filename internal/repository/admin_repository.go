package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrAdminNotFound = errors.New("admin account not found")
	ErrUsernameTaken = errors.New("username already taken")
)

const uniqueViolation = "23505"

type AdminRepositoryInterface interface {
	GetByUsername(ctx context.Context, username string) (entity.AdminAccount, error)
	Create(ctx context.Context, username, passwordHash string) (entity.AdminAccount, error)
}

type AdminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (entity.AdminAccount, error) {
	query := `SELECT id, username, password, created_at FROM admin_accounts WHERE username = $1`

	var account entity.AdminAccount
	err := r.db.GetContext(ctx, &account, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.AdminAccount{}, ErrAdminNotFound
		}
		return entity.AdminAccount{}, fmt.Errorf("failed to get admin account: %w", err)
	}

	return account, nil
}

func (r *AdminRepository) Create(ctx context.Context, username, passwordHash string) (entity.AdminAccount, error) {
	query := `INSERT INTO admin_accounts (username, password) VALUES ($1, $2) RETURNING id, username, created_at`

	var account entity.AdminAccount
	err := r.db.QueryRowxContext(ctx, query, username, passwordHash).StructScan(&account)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return entity.AdminAccount{}, ErrUsernameTaken
		}
		return entity.AdminAccount{}, fmt.Errorf("failed to create admin account: %w", err)
	}

	return account, nil
}
