package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/guard"
	"github.com/dinerozz/planzo-web/internal/metrics"
	"github.com/dinerozz/planzo-web/internal/model/response/wrapper"
	"github.com/dinerozz/planzo-web/internal/session"
	"github.com/dinerozz/planzo-web/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// IdentifierKey is the gin context key holding the role's identifier once a guard let the
// request through.
func IdentifierKey(role entity.Role) string {
	return string(role) + "_id"
}

// RequireRole lets the request through when the role has a session identifier and
// redirects to the role's login path otherwise.
func RequireRole(role entity.Role, stores session.Factory, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := guard.Decide(c.Request.Context(), stores(c), role)
		if err != nil {
			logger.Warn("session lookup failed",
				slog.String("role", string(role)),
				slog.String("error", err.Error()))
		}

		metrics.ObserveGuard(string(role), decision.State.String())

		if decision.State == guard.Redirecting {
			c.Redirect(http.StatusFound, decision.Location)
			c.Abort()
			return
		}

		c.Set(IdentifierKey(role), decision.Identifier)
		c.Next()
	}
}

func ClientGuard(stores session.Factory, logger *slog.Logger) gin.HandlerFunc {
	return RequireRole(entity.RoleClient, stores, logger)
}

func VendorGuard(stores session.Factory, logger *slog.Logger) gin.HandlerFunc {
	return RequireRole(entity.RoleVendor, stores, logger)
}

func AdminGuard(stores session.Factory, logger *slog.Logger) gin.HandlerFunc {
	return RequireRole(entity.RoleAdmin, stores, logger)
}

// RequireIdentity verifies the identifier a guard stored for the role and exposes its
// claims under "identity". Guards only check presence; handlers that act on behalf of the
// actor need this.
func RequireIdentity(role entity.Role, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.ValidateToken(secret, c.GetString(IdentifierKey(role)))
		if err != nil || claims.Role != string(role) {
			c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "Invalid session identifier", Success: false})
			c.Abort()
			return
		}

		c.Set("identity", claims)
		c.Next()
	}
}

// Identity returns the claims set by RequireIdentity.
func Identity(c *gin.Context) *utils.IdentityClaims {
	claims, _ := c.Get("identity")
	identity, _ := claims.(*utils.IdentityClaims)
	return identity
}

// CORS allows credentialed requests from the configured origins and from localhost.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		_, ok := allowed[origin]
		if origin != "" && (ok || strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:")) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestLogger tags every request with an id and logs method, route, status and latency.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)
		metrics.ObserveRequest(c.Request.Method, c.FullPath(), status, duration)

		logger.Info("request",
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", duration))
	}
}
