package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/model/response/wrapper"
	"github.com/dinerozz/planzo-web/internal/notify"
	authService "github.com/dinerozz/planzo-web/internal/service/auth"
	"github.com/dinerozz/planzo-web/internal/session"
	"github.com/gin-gonic/gin"
)

type Authenticator interface {
	Login(ctx context.Context, store session.Store, role entity.Role, email, password string) (string, error)
	Logout(ctx context.Context, store session.Store, role entity.Role) error
}

type AuthHandler struct {
	srv    Authenticator
	stores session.Factory
	logger *slog.Logger
}

func NewAuthHandler(srv Authenticator, stores session.Factory, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{srv: srv, stores: stores, logger: logger}
}

// HomePath is where a role lands after signing in.
func HomePath(role entity.Role) string {
	switch role {
	case entity.RoleVendor:
		return "/vendor/dashboard"
	case entity.RoleAdmin:
		return "/admin/contact-messages"
	default:
		return "/vendors"
	}
}

func heading(role entity.Role) string {
	switch role {
	case entity.RoleVendor:
		return "Vendor login"
	case entity.RoleAdmin:
		return "Admin login"
	default:
		return "Login"
	}
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, role entity.Role, email string) {
	c.HTML(status, "login.html", gin.H{
		"Title":   heading(role),
		"Heading": heading(role),
		"Action":  role.LoginPath(),
		"Role":    string(role),
		"Email":   email,
		"Toasts":  notify.FromContext(c).Toasts(),
	})
}

func (h *AuthHandler) LoginPage(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.renderLogin(c, http.StatusOK, role, "")
	}
}

func (h *AuthHandler) Login(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := notify.FromContext(c)

		var req entity.LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			n.Error("Email and password are required")
			h.renderLogin(c, http.StatusBadRequest, role, req.Email)
			return
		}

		if _, err := h.srv.Login(c.Request.Context(), h.stores(c), role, req.Email, req.Password); err != nil {
			if errors.Is(err, authService.ErrInvalidCredentials) {
				n.Error("Invalid credentials")
				h.renderLogin(c, http.StatusUnauthorized, role, req.Email)
				return
			}

			h.logger.Error("login failed", slog.String("role", string(role)), slog.String("error", err.Error()))
			n.Error("Login is unavailable right now, please try again later")
			h.renderLogin(c, http.StatusBadGateway, role, req.Email)
			return
		}

		c.Redirect(http.StatusFound, HomePath(role))
	}
}

// Logout clears the session. With ?role= only that role is signed out.
func (h *AuthHandler) Logout(c *gin.Context) {
	role, ok := h.logout(c)
	if !ok {
		return
	}

	redirect := entity.RoleClient.LoginPath()
	if role != "" {
		redirect = role.LoginPath()
	}
	c.Redirect(http.StatusFound, redirect)
}

// LogoutJSON godoc
// @Summary Sign out
// @Description Clears the session identifiers; with role only that role is signed out
// @Tags auth
// @Produce json
// @Param role query string false "Role to sign out" Enums(client, vendor, admin)
// @Success 200 {object} wrapper.SuccessWrapper
// @Failure 400 {object} wrapper.ErrorWrapper
// @Router /logout [post]
func (h *AuthHandler) LogoutJSON(c *gin.Context) {
	if _, ok := h.logout(c); !ok {
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{
		Message: "Signed out",
		Success: true,
	})
}

func (h *AuthHandler) logout(c *gin.Context) (entity.Role, bool) {
	role := entity.Role(c.Query("role"))
	if role != "" && !role.Valid() {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "unknown role: " + string(role),
			Success: false,
		})
		return "", false
	}

	if err := h.srv.Logout(c.Request.Context(), h.stores(c), role); err != nil {
		h.logger.Warn("logout failed", slog.String("error", err.Error()))
	}

	return role, true
}
