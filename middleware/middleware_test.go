package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/session"
	"github.com/dinerozz/planzo-web/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func guardedRouter(store *session.MemoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	stores := session.MemoryFactory(store)

	r.GET("/client", ClientGuard(stores, discard), func(c *gin.Context) { c.String(http.StatusOK, "client content") })
	r.GET("/vendor", VendorGuard(stores, discard), func(c *gin.Context) { c.String(http.StatusOK, "vendor content") })
	r.GET("/admin", AdminGuard(stores, discard), func(c *gin.Context) { c.String(http.StatusOK, "admin content") })
	return r
}

func TestGuards_RedirectWithoutIdentifier(t *testing.T) {
	r := guardedRouter(session.NewMemoryStore())

	cases := []struct {
		path     string
		location string
	}{
		{"/client", "/login"},
		{"/vendor", "/vendor/login"},
		{"/admin", "/admin/login"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tc.location, w.Header().Get("Location"))
			assert.NotContains(t, w.Body.String(), "content")
		})
	}
}

func TestGuards_RenderChildrenWithIdentifier(t *testing.T) {
	store := session.NewMemoryStore()
	for _, role := range entity.Roles {
		require.NoError(t, store.Set(context.Background(), role, string(role)+"-token"))
	}
	r := guardedRouter(store)

	for _, path := range []string{"/client", "/vendor", "/admin"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, w.Header().Get("Location"))
			assert.Equal(t, path[1:]+" content", w.Body.String())
		})
	}
}

func TestGuards_CookieIdentifier(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/vendor", VendorGuard(session.CookieFactory(time.Hour, false), discard), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(IdentifierKey(entity.RoleVendor)))
	})

	req := httptest.NewRequest(http.MethodGet, "/vendor", nil)
	req.AddCookie(&http.Cookie{Name: "vendorId", Value: "v-42"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "v-42", w.Body.String())
}

func TestRequireIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := []byte("secret")
	store := session.NewMemoryStore()

	r := gin.New()
	r.GET("/me", ClientGuard(session.MemoryFactory(store), discard), RequireIdentity(entity.RoleClient, secret), func(c *gin.Context) {
		c.String(http.StatusOK, Identity(c).AccountID)
	})

	require.NoError(t, store.Set(context.Background(), entity.RoleClient, "forged"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := utils.GenerateToken(secret, "acc-7", "client", "api", time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), entity.RoleClient, token))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acc-7", w.Body.String())
}

func TestRequireIdentity_RoleMismatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := []byte("secret")
	store := session.NewMemoryStore()

	token, err := utils.GenerateToken(secret, "acc-7", "client", "", time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), entity.RoleVendor, token))

	r := gin.New()
	r.GET("/vendor/me", VendorGuard(session.MemoryFactory(store), discard), RequireIdentity(entity.RoleVendor, secret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/vendor/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"https://planzo.app"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://planzo.app")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://planzo.app", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/about", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
	out := buf.String()
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "path=/about")
	assert.Contains(t, out, "status=201")
}
