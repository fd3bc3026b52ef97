package account

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dinerozz/planzo-web/internal/apiclient"
	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/session"
	"github.com/dinerozz/planzo-web/middleware"
	"github.com/dinerozz/planzo-web/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("secret")

type fakeClientAPI struct {
	tokens []string
}

func (f *fakeClientAPI) ListBookings(_ context.Context, token string) (*entity.BookingList, error) {
	f.tokens = append(f.tokens, token)
	return &entity.BookingList{Bookings: []entity.Booking{{ID: "b1", EventID: "e1", ClientID: "c1", TicketCount: 2, Status: entity.BookingStatusConfirmed}}}, nil
}

func (f *fakeClientAPI) ListTickets(_ context.Context, token string) (*entity.TicketList, error) {
	f.tokens = append(f.tokens, token)
	return &entity.TicketList{}, nil
}

func (f *fakeClientAPI) GetWallet(_ context.Context, token string) (*entity.Wallet, error) {
	f.tokens = append(f.tokens, token)
	if token == "expired" {
		return nil, &apiclient.APIError{Status: http.StatusUnauthorized, Message: "Token expired"}
	}
	return &entity.Wallet{ID: "w1", OwnerID: "c1", Balance: decimal.NewFromInt(120)}, nil
}

func (f *fakeClientAPI) ListNotifications(_ context.Context, token string) (*entity.NotificationList, error) {
	f.tokens = append(f.tokens, token)
	return &entity.NotificationList{}, nil
}

func newRouter(t *testing.T, api ClientAPI, apiToken string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	token, err := utils.GenerateToken(secret, "c1", "client", apiToken, time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), entity.RoleClient, token))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAccountHandler(api)
	r := gin.New()
	me := r.Group("/me", middleware.ClientGuard(session.MemoryFactory(store), logger), middleware.RequireIdentity(entity.RoleClient, secret))
	me.GET("/bookings", h.GetBookings)
	me.GET("/tickets", h.GetTickets)
	me.GET("/wallet", h.GetWallet)
	me.GET("/notifications", h.GetNotifications)
	return r
}

func do(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestAccountEndpointsUseSessionAPIToken(t *testing.T) {
	api := &fakeClientAPI{}
	r := newRouter(t, api, "remote-token")

	for _, path := range []string{"/me/bookings", "/me/tickets", "/me/wallet", "/me/notifications"} {
		w := do(r, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"success":true`, path)
	}
	assert.Equal(t, []string{"remote-token", "remote-token", "remote-token", "remote-token"}, api.tokens)
}

func TestWalletBody(t *testing.T) {
	w := do(newRouter(t, &fakeClientAPI{}, "remote-token"), "/me/wallet")
	assert.Contains(t, w.Body.String(), `"balance":"120"`)
}

func TestMissingAPIToken(t *testing.T) {
	api := &fakeClientAPI{}
	w := do(newRouter(t, api, ""), "/me/bookings")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, api.tokens)
}

func TestRemoteUnauthorizedPassesThrough(t *testing.T) {
	w := do(newRouter(t, &fakeClientAPI{}, "expired"), "/me/wallet")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Token expired","success":false}`, w.Body.String())
}
