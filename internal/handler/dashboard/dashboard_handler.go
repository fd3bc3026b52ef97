package dashboard

import (
	"context"
	"net/http"

	"github.com/dinerozz/planzo-web/internal/apiclient"
	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/notify"
	"github.com/dinerozz/planzo-web/middleware"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type VendorAPI interface {
	ListVendorBookings(ctx context.Context, token string) (*entity.BookingList, error)
	ListReviews(ctx context.Context, vendorID string) (*entity.ReviewList, error)
}

type DashboardHandler struct {
	api VendorAPI
}

func NewDashboardHandler(api VendorAPI) *DashboardHandler {
	return &DashboardHandler{api: api}
}

// Dashboard renders the signed-in vendor's bookings and reviews.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	identity := middleware.Identity(c)
	n := notify.FromContext(c)

	var (
		bookings *entity.BookingList
		reviews  *entity.ReviewList
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		bookings, err = h.api.ListVendorBookings(ctx, identity.APIToken)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = h.api.ListReviews(ctx, identity.AccountID)
		return err
	})

	data := gin.H{"Title": "Dashboard"}
	if err := g.Wait(); err != nil {
		message := "Error loading dashboard: " + apiclient.Message(err)
		n.Error(message)
		data["Error"] = message
	}
	if bookings != nil {
		data["Bookings"] = bookings.Bookings
	}
	if reviews != nil {
		data["Reviews"] = reviews.Reviews
	}
	data["Toasts"] = n.Toasts()

	c.HTML(http.StatusOK, "dashboard.html", data)
}
