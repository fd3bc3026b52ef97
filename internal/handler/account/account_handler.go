package account

import (
	"context"
	"net/http"

	"github.com/dinerozz/planzo-web/internal/apiclient"
	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/model/response/wrapper"
	"github.com/dinerozz/planzo-web/middleware"
	"github.com/gin-gonic/gin"
)

// ClientAPI is the part of the Planzo API that acts on behalf of a signed-in client.
type ClientAPI interface {
	ListBookings(ctx context.Context, token string) (*entity.BookingList, error)
	ListTickets(ctx context.Context, token string) (*entity.TicketList, error)
	GetWallet(ctx context.Context, token string) (*entity.Wallet, error)
	ListNotifications(ctx context.Context, token string) (*entity.NotificationList, error)
}

type AccountHandler struct {
	api ClientAPI
}

func NewAccountHandler(api ClientAPI) *AccountHandler {
	return &AccountHandler{api: api}
}

func apiToken(c *gin.Context) (string, bool) {
	identity := middleware.Identity(c)
	if identity == nil || identity.APIToken == "" {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "Session has no API credentials", Success: false})
		return "", false
	}
	return identity.APIToken, true
}

func respond(c *gin.Context, data interface{}, err error) {
	if err != nil {
		c.JSON(apiclient.HTTPStatus(err), wrapper.ErrorWrapper{Message: apiclient.Message(err), Success: false})
		return
	}
	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: data, Success: true})
}

// GetBookings godoc
// @Summary      My bookings
// @Tags         account
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.Booking}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Failure      502  {object}  wrapper.ErrorWrapper
// @Router       /me/bookings [get]
func (h *AccountHandler) GetBookings(c *gin.Context) {
	token, ok := apiToken(c)
	if !ok {
		return
	}
	list, err := h.api.ListBookings(c.Request.Context(), token)
	if err != nil {
		respond(c, nil, err)
		return
	}
	respond(c, list.Bookings, nil)
}

// GetTickets godoc
// @Summary      My tickets
// @Tags         account
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.Ticket}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Failure      502  {object}  wrapper.ErrorWrapper
// @Router       /me/tickets [get]
func (h *AccountHandler) GetTickets(c *gin.Context) {
	token, ok := apiToken(c)
	if !ok {
		return
	}
	list, err := h.api.ListTickets(c.Request.Context(), token)
	if err != nil {
		respond(c, nil, err)
		return
	}
	respond(c, list.Tickets, nil)
}

// GetWallet godoc
// @Summary      My wallet
// @Tags         account
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.Wallet}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Failure      502  {object}  wrapper.ErrorWrapper
// @Router       /me/wallet [get]
func (h *AccountHandler) GetWallet(c *gin.Context) {
	token, ok := apiToken(c)
	if !ok {
		return
	}
	wallet, err := h.api.GetWallet(c.Request.Context(), token)
	respond(c, wallet, err)
}

// GetNotifications godoc
// @Summary      My notifications
// @Tags         account
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.Notification}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Failure      502  {object}  wrapper.ErrorWrapper
// @Router       /me/notifications [get]
func (h *AccountHandler) GetNotifications(c *gin.Context) {
	token, ok := apiToken(c)
	if !ok {
		return
	}
	list, err := h.api.ListNotifications(c.Request.Context(), token)
	if err != nil {
		respond(c, nil, err)
		return
	}
	respond(c, list.Notifications, nil)
}
