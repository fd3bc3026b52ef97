package admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/model/response"
	"github.com/dinerozz/planzo-web/internal/model/response/wrapper"
	"github.com/gin-gonic/gin"
)

type ContactLister interface {
	List(ctx context.Context, filter entity.ContactMessageFilter) ([]entity.ContactMessage, response.PaginationMeta, error)
}

type AdminHandler struct {
	contacts ContactLister
	logger   *slog.Logger
}

func NewAdminHandler(contacts ContactLister, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{contacts: contacts, logger: logger}
}

// GetContactMessages godoc
// @Summary      List contact messages
// @Description  Messages sent through the Contact page, newest first
// @Tags         admin
// @Produce      json
// @Param        page      query     int  false  "Page number"
// @Param        per_page  query     int  false  "Items per page"
// @Success      200  {object}  wrapper.PaginatedResponseWrapper{data=[]entity.ContactMessage}
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /admin/contact-messages [get]
func (h *AdminHandler) GetContactMessages(c *gin.Context) {
	var filter entity.ContactMessageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid query parameters: " + err.Error(), Success: false})
		return
	}

	messages, meta, err := h.contacts.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list contact messages", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: "Failed to load contact messages", Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.PaginatedResponseWrapper{
		Data:    messages,
		Meta:    meta,
		Success: true,
	})
}
