package admin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/model/response"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeContacts struct {
	filter entity.ContactMessageFilter
	err    error
}

func (f *fakeContacts) List(_ context.Context, filter entity.ContactMessageFilter) ([]entity.ContactMessage, response.PaginationMeta, error) {
	f.filter = filter
	if f.err != nil {
		return nil, response.PaginationMeta{}, f.err
	}
	return []entity.ContactMessage{{Name: "Dana", Email: "dana@example.com", Message: "Hi"}},
		response.PaginationMeta{CurrentPage: filter.Page, PerPage: filter.PerPage, TotalItems: 11, TotalPages: 3}, nil
}

func serve(contacts ContactLister, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/contact-messages", NewAdminHandler(contacts, slog.New(slog.NewTextHandler(io.Discard, nil))).GetContactMessages)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestGetContactMessages(t *testing.T) {
	contacts := &fakeContacts{}
	w := serve(contacts, "/admin/contact-messages?page=2&per_page=5")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.ContactMessageFilter{Page: 2, PerPage: 5}, contacts.filter)
	assert.Contains(t, w.Body.String(), `"meta":{"current_page":2,"per_page":5,"total_items":11,"total_pages":3}`)
	assert.Contains(t, w.Body.String(), `"name":"Dana"`)
}

func TestGetContactMessages_Failure(t *testing.T) {
	w := serve(&fakeContacts{err: errors.New("connection reset")}, "/admin/contact-messages")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestGetContactMessages_BadQuery(t *testing.T) {
	w := serve(&fakeContacts{}, "/admin/contact-messages?page=x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
