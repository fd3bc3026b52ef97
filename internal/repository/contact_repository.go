package repository

import (
	"context"
	"fmt"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/jmoiron/sqlx"
)

type ContactRepositoryInterface interface {
	Create(ctx context.Context, req *entity.CreateContactMessageRequest) (entity.ContactMessage, error)
	GetAll(ctx context.Context, limit, offset int) ([]entity.ContactMessage, error)
	Count(ctx context.Context) (int, error)
}

type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, req *entity.CreateContactMessageRequest) (entity.ContactMessage, error) {
	query := `INSERT INTO contact_messages (name, email, subject, message)
              VALUES ($1, $2, $3, $4)
              RETURNING id, name, email, subject, message, created_at`

	var msg entity.ContactMessage
	if err := r.db.QueryRowxContext(ctx, query, req.Name, req.Email, req.Subject, req.Message).StructScan(&msg); err != nil {
		return entity.ContactMessage{}, fmt.Errorf("failed to insert contact message: %w", err)
	}

	return msg, nil
}

func (r *ContactRepository) GetAll(ctx context.Context, limit, offset int) ([]entity.ContactMessage, error) {
	query := `SELECT id, name, email, subject, message, created_at
              FROM contact_messages
              ORDER BY created_at DESC
              LIMIT $1 OFFSET $2`

	messages := []entity.ContactMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to get contact messages: %w", err)
	}

	return messages, nil
}

func (r *ContactRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM contact_messages`); err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	return total, nil
}
