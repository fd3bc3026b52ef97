package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created []entity.CreateContactMessageRequest
	stored  []entity.ContactMessage
	limit   int
	offset  int
	err     error
}

func (f *fakeRepo) Create(_ context.Context, req *entity.CreateContactMessageRequest) (entity.ContactMessage, error) {
	if f.err != nil {
		return entity.ContactMessage{}, f.err
	}
	f.created = append(f.created, *req)
	return entity.ContactMessage{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeRepo) GetAll(_ context.Context, limit, offset int) ([]entity.ContactMessage, error) {
	f.limit, f.offset = limit, offset
	return f.stored, f.err
}

func (f *fakeRepo) Count(_ context.Context) (int, error) {
	return 45, f.err
}

func TestSubmit(t *testing.T) {
	repo := &fakeRepo{}
	srv := NewContactService(repo)

	msg, err := srv.Submit(context.Background(), &entity.CreateContactMessageRequest{
		Name:    "  Dana ",
		Email:   "dana@example.com",
		Subject: "Venue",
		Message: "Do you cover weddings?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana", msg.Name)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	require.Len(t, repo.created, 1)
}

func TestSubmit_InvalidNeverReachesRepository(t *testing.T) {
	cases := map[string]entity.CreateContactMessageRequest{
		"bad email":     {Name: "Dana", Email: "not-an-email", Message: "hi"},
		"missing name":  {Email: "dana@example.com", Message: "hi"},
		"blank message": {Name: "Dana", Email: "dana@example.com", Message: "   "},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &fakeRepo{}
			_, err := NewContactService(repo).Submit(context.Background(), &req)
			assert.True(t, errors.Is(err, ErrInvalidMessage))
			assert.Empty(t, repo.created)
		})
	}
}

func TestList(t *testing.T) {
	repo := &fakeRepo{stored: []entity.ContactMessage{{Name: "a"}}}
	srv := NewContactService(repo)

	messages, meta, err := srv.List(context.Background(), entity.ContactMessageFilter{Page: 3, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Equal(t, 10, repo.limit)
	assert.Equal(t, 20, repo.offset)
	assert.Equal(t, 3, meta.CurrentPage)
	assert.Equal(t, 5, meta.TotalPages)
	assert.Equal(t, 45, meta.TotalItems)
}

func TestList_Defaults(t *testing.T) {
	repo := &fakeRepo{}
	_, meta, err := NewContactService(repo).List(context.Background(), entity.ContactMessageFilter{PerPage: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, maxPerPage, repo.limit)
	assert.Equal(t, 0, repo.offset)
}
