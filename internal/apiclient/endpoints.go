package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dinerozz/planzo-web/internal/entity"
)

func (c *Client) ListVendors(ctx context.Context) (*entity.VendorList, error) {
	var list entity.VendorList
	if err := c.getPublic(ctx, "/vendors", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) ListCategories(ctx context.Context) (*entity.CategoryList, error) {
	var list entity.CategoryList
	if err := c.getPublic(ctx, "/categories", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) ListEvents(ctx context.Context, page, perPage int) (*entity.EventPage, error) {
	query := url.Values{
		"page":  []string{strconv.Itoa(page)},
		"limit": []string{strconv.Itoa(perPage)},
	}

	var events entity.EventPage
	if err := c.getPublic(ctx, "/events", query, &events); err != nil {
		return nil, err
	}
	return &events, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*entity.Event, error) {
	var reply struct {
		Event entity.Event `json:"event"`
	}
	if err := c.getPublic(ctx, "/events/"+url.PathEscape(id), nil, &reply); err != nil {
		return nil, err
	}
	return &reply.Event, nil
}

func (c *Client) ListReviews(ctx context.Context, vendorID string) (*entity.ReviewList, error) {
	var list entity.ReviewList
	if err := c.getPublic(ctx, "/vendors/"+url.PathEscape(vendorID)+"/reviews", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) ListBookings(ctx context.Context, token string) (*entity.BookingList, error) {
	var list entity.BookingList
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, token, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) ListVendorBookings(ctx context.Context, token string) (*entity.BookingList, error) {
	var list entity.BookingList
	if err := c.do(ctx, http.MethodGet, "/vendor/bookings", nil, token, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) ListTickets(ctx context.Context, token string) (*entity.TicketList, error) {
	var list entity.TicketList
	if err := c.do(ctx, http.MethodGet, "/tickets", nil, token, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetWallet(ctx context.Context, token string) (*entity.Wallet, error) {
	var reply entity.WalletResponse
	if err := c.do(ctx, http.MethodGet, "/wallet", nil, token, nil, &reply); err != nil {
		return nil, err
	}
	return &reply.Wallet, nil
}

func (c *Client) ListNotifications(ctx context.Context, token string) (*entity.NotificationList, error) {
	var list entity.NotificationList
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, token, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Login signs a client or vendor in against the remote API.
func (c *Client) Login(ctx context.Context, role entity.Role, email, password string) (*entity.LoginResult, error) {
	var path string
	switch role {
	case entity.RoleClient:
		path = "/auth/login"
	case entity.RoleVendor:
		path = "/vendor/auth/login"
	default:
		return nil, fmt.Errorf("remote login not supported for role %q", role)
	}

	body := map[string]string{"email": email, "password": password}

	var result entity.LoginResult
	if err := c.do(ctx, http.MethodPost, path, nil, "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
