package page

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/notify"
	"github.com/dinerozz/planzo-web/internal/pagination"
	"github.com/dinerozz/planzo-web/internal/service/contact"
	"github.com/dinerozz/planzo-web/internal/service/vendor"
	"github.com/gin-gonic/gin"
)

const (
	vendorsPerPage = 12
	loadingRefresh = 2
)

type ContactSubmitter interface {
	Submit(ctx context.Context, req *entity.CreateContactMessageRequest) (entity.ContactMessage, error)
}

type VendorLoader interface {
	Load(ctx context.Context, n notify.Notifier) vendor.Listing
}

type PageHandler struct {
	contacts ContactSubmitter
	vendors  VendorLoader
}

func NewPageHandler(contacts ContactSubmitter, vendors VendorLoader) *PageHandler {
	return &PageHandler{contacts: contacts, vendors: vendors}
}

type pageLink struct {
	Number  int
	Href    string
	Current bool
}

func render(c *gin.Context, status int, name string, data gin.H) {
	data["Toasts"] = notify.FromContext(c).Toasts()
	c.HTML(status, name, data)
}

func (h *PageHandler) About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", gin.H{"Title": "About"})
}

func (h *PageHandler) Contact(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", gin.H{
		"Title": "Contact",
		"Form":  entity.CreateContactMessageRequest{},
	})
}

func (h *PageHandler) SubmitContact(c *gin.Context) {
	n := notify.FromContext(c)

	var form entity.CreateContactMessageRequest
	if err := c.ShouldBind(&form); err != nil {
		n.Error("Please check the form and try again")
		render(c, http.StatusBadRequest, "contact.html", gin.H{"Title": "Contact", "Form": form})
		return
	}

	if _, err := h.contacts.Submit(c.Request.Context(), &form); err != nil {
		status := http.StatusInternalServerError
		message := "Could not send your message, please try again later"
		if errors.Is(err, contact.ErrInvalidMessage) {
			status = http.StatusBadRequest
			message = "Please provide your name, a valid email and a message"
		}
		n.Error(message)
		render(c, status, "contact.html", gin.H{"Title": "Contact", "Form": form})
		return
	}

	n.Success("Thanks! Your message has been sent.")
	render(c, http.StatusOK, "contact.html", gin.H{
		"Title": "Contact",
		"Form":  entity.CreateContactMessageRequest{},
	})
}

// Vendors renders the vendor listing. The remote list is flat, so it is paged here.
func (h *PageHandler) Vendors(c *gin.Context) {
	listing := h.vendors.Load(c.Request.Context(), notify.FromContext(c))

	data := gin.H{"Title": "Vendors", "Listing": listing}
	if listing.State == vendor.StateLoading {
		data["Refresh"] = loadingRefresh
	}

	if listing.State == vendor.StateList {
		totalPages := pagination.TotalPages(len(listing.Vendors), vendorsPerPage)

		current := 1
		if raw := c.Query("page"); raw != "" {
			requested, err := strconv.Atoi(raw)
			if err != nil {
				requested = 0
			}
			// Go rejects pages outside [1, totalPages].
			if err := pagination.Render(totalPages, 1, func(p int) { current = p }).Go(requested); err != nil {
				c.Redirect(http.StatusFound, "/vendors")
				return
			}
		}

		var target int
		ctrl := pagination.Render(totalPages, current, func(p int) { target = p })

		data["Vendors"] = pagination.Slice(listing.Vendors, current, vendorsPerPage)
		if ctrl.Prev() == nil {
			data["Prev"] = vendorsHref(target)
		}
		if ctrl.Next() == nil {
			data["Next"] = vendorsHref(target)
		}

		var pages []pageLink
		for _, p := range ctrl.Pages(5) {
			pages = append(pages, pageLink{Number: p, Href: vendorsHref(p), Current: p == current})
		}
		data["Pages"] = pages
	}

	render(c, http.StatusOK, "vendors.html", data)
}

func vendorsHref(page int) string {
	return fmt.Sprintf("/vendors?page=%d", page)
}
