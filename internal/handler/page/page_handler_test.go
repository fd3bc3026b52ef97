package page

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/notify"
	"github.com/dinerozz/planzo-web/internal/service/contact"
	"github.com/dinerozz/planzo-web/internal/service/vendor"
	"github.com/dinerozz/planzo-web/web"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContacts struct {
	submitted []entity.CreateContactMessageRequest
	err       error
}

func (f *fakeContacts) Submit(_ context.Context, req *entity.CreateContactMessageRequest) (entity.ContactMessage, error) {
	if f.err != nil {
		return entity.ContactMessage{}, f.err
	}
	f.submitted = append(f.submitted, *req)
	return entity.ContactMessage{Name: req.Name}, nil
}

type fakeVendors struct {
	list *entity.VendorList
	err  error
	slow bool
}

func (f *fakeVendors) Load(_ context.Context, n notify.Notifier) vendor.Listing {
	if f.slow {
		return vendor.Listing{State: vendor.StateLoading, Message: vendor.LoadingMessage}
	}
	return vendor.BuildListing(f.list, f.err, n)
}

func newRouter(t *testing.T, h *PageHandler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(notify.Middleware())
	r.GET("/about", h.About)
	r.GET("/contact", h.Contact)
	r.POST("/contact", h.SubmitContact)
	r.GET("/vendors", h.Vendors)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func vendors(n int) *entity.VendorList {
	list := &entity.VendorList{}
	for i := 1; i <= n; i++ {
		list.Vendors = append(list.Vendors, entity.Vendor{ID: fmt.Sprintf("v%d", i), Name: fmt.Sprintf("Vendor %02d", i), Rating: 4})
	}
	return list
}

func TestAbout(t *testing.T) {
	r := newRouter(t, NewPageHandler(&fakeContacts{}, &fakeVendors{}))
	w := get(r, "/about")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "About Planzo")
}

func TestVendors_Empty(t *testing.T) {
	r := newRouter(t, NewPageHandler(&fakeContacts{}, &fakeVendors{list: &entity.VendorList{Vendors: []entity.Vendor{}}}))
	w := get(r, "/vendors")

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, vendor.EmptyMessage)
	assert.NotContains(t, body, "Error loading vendors")
	assert.NotContains(t, body, vendor.LoadingMessage)
}

func TestVendors_ErrorShowsToastAndInlineMessage(t *testing.T) {
	r := newRouter(t, NewPageHandler(&fakeContacts{}, &fakeVendors{err: fmt.Errorf("timeout")}))
	w := get(r, "/vendors")

	body := w.Body.String()
	assert.Contains(t, body, `class="toast toast-error"`)
	assert.Contains(t, body, "Error loading vendors: timeout")
	assert.NotContains(t, body, vendor.EmptyMessage)
}

func TestVendors_Loading(t *testing.T) {
	r := newRouter(t, NewPageHandler(&fakeContacts{}, &fakeVendors{slow: true}))
	w := get(r, "/vendors")

	body := w.Body.String()
	assert.Contains(t, body, vendor.LoadingMessage)
	assert.Contains(t, body, `http-equiv="refresh"`)
}

func TestVendors_Pagination(t *testing.T) {
	r := newRouter(t, NewPageHandler(&fakeContacts{}, &fakeVendors{list: vendors(30)}))

	first := get(r, "/vendors").Body.String()
	assert.Contains(t, first, "Vendor 01")
	assert.NotContains(t, first, "Vendor 13")
	assert.Contains(t, first, `<span class="disabled">Previous</span>`)
	assert.Contains(t, first, `href="/vendors?page=2" rel="next"`)

	last := get(r, "/vendors?page=3").Body.String()
	assert.Contains(t, last, "Vendor 30")
	assert.Contains(t, last, `href="/vendors?page=2" rel="prev"`)
	assert.Contains(t, last, `<span class="disabled">Next</span>`)

	middle := get(r, "/vendors?page=2").Body.String()
	assert.Contains(t, middle, `rel="prev"`)
	assert.Contains(t, middle, `rel="next"`)
}

func TestVendors_PageOutOfRangeRedirects(t *testing.T) {
	r := newRouter(t, NewPageHandler(&fakeContacts{}, &fakeVendors{list: vendors(3)}))

	for _, page := range []string{"0", "2", "abc"} {
		w := get(r, "/vendors?page="+page)
		assert.Equal(t, http.StatusFound, w.Code, page)
		assert.Equal(t, "/vendors", w.Header().Get("Location"))
	}
}

func postForm(r http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContact(t *testing.T) {
	contacts := &fakeContacts{}
	r := newRouter(t, NewPageHandler(contacts, &fakeVendors{}))

	w := postForm(r, url.Values{"name": {"Dana"}, "email": {"dana@example.com"}, "message": {"Hello"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "toast-success")
	require.Len(t, contacts.submitted, 1)
	assert.Equal(t, "Dana", contacts.submitted[0].Name)
}

func TestSubmitContact_Invalid(t *testing.T) {
	contacts := &fakeContacts{err: fmt.Errorf("%w: bad email", contact.ErrInvalidMessage)}
	r := newRouter(t, NewPageHandler(contacts, &fakeVendors{}))

	w := postForm(r, url.Values{"name": {"Dana"}, "email": {"nope"}, "message": {"Hello"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "toast-error")
	assert.Contains(t, w.Body.String(), `value="Dana"`)
}
