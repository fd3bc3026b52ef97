package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/model/response"
	"github.com/dinerozz/planzo-web/internal/pagination"
	"github.com/dinerozz/planzo-web/internal/repository"
	"github.com/dinerozz/planzo-web/pkg/utils"
)

var ErrInvalidMessage = errors.New("invalid contact message")

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type ContactService struct {
	repo repository.ContactRepositoryInterface
}

func NewContactService(repo repository.ContactRepositoryInterface) *ContactService {
	return &ContactService{repo: repo}
}

// Submit stores a contact form message. Invalid input never reaches the repository.
func (s *ContactService) Submit(ctx context.Context, req *entity.CreateContactMessageRequest) (entity.ContactMessage, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if err := utils.ValidateStruct(req); err != nil {
		return entity.ContactMessage{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	return s.repo.Create(ctx, req)
}

func (s *ContactService) List(ctx context.Context, filter entity.ContactMessageFilter) ([]entity.ContactMessage, response.PaginationMeta, error) {
	page, perPage := pagination.Normalize(filter.Page, filter.PerPage, defaultPerPage, maxPerPage)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	messages, err := s.repo.GetAll(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	return messages, pagination.NewMeta(page, perPage, total), nil
}
