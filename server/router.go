package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dinerozz/planzo-web/docs"
	"github.com/dinerozz/planzo-web/internal/entity"
	accountHandler "github.com/dinerozz/planzo-web/internal/handler/account"
	adminHandler "github.com/dinerozz/planzo-web/internal/handler/admin"
	authHandler "github.com/dinerozz/planzo-web/internal/handler/auth"
	dashboardHandler "github.com/dinerozz/planzo-web/internal/handler/dashboard"
	pageHandler "github.com/dinerozz/planzo-web/internal/handler/page"
	vendorHandler "github.com/dinerozz/planzo-web/internal/handler/vendor"
	"github.com/dinerozz/planzo-web/internal/metrics"
	"github.com/dinerozz/planzo-web/internal/notify"
	"github.com/dinerozz/planzo-web/internal/session"
	"github.com/dinerozz/planzo-web/middleware"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterHandler struct {
	pageHandler      *pageHandler.PageHandler
	authHandler      *authHandler.AuthHandler
	vendorHandler    *vendorHandler.VendorHandler
	accountHandler   *accountHandler.AccountHandler
	dashboardHandler *dashboardHandler.DashboardHandler
	adminHandler     *adminHandler.AdminHandler

	stores      session.Factory
	secret      []byte
	corsOrigins []string
	logger      *slog.Logger
	health      map[string]func(context.Context) error
}

func setupRouter(h *RouterHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(middleware.RequestLogger(h.logger))
	r.Use(middleware.CORS(h.corsOrigins))
	r.Use(notify.Middleware())

	r.GET("/health", h.healthCheck)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	docs.SwaggerInfo.Title = "Planzo web API"
	docs.SwaggerInfo.Description = "JSON API of the Planzo web tier"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/api/v1"

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/about") })
	r.GET("/about", h.pageHandler.About)
	r.GET("/contact", h.pageHandler.Contact)
	r.POST("/contact", h.pageHandler.SubmitContact)

	for _, role := range entity.Roles {
		r.GET(role.LoginPath(), h.authHandler.LoginPage(role))
		r.POST(role.LoginPath(), h.authHandler.Login(role))
	}
	r.POST("/logout", h.authHandler.Logout)
	r.POST("/api/v1/logout", h.authHandler.LogoutJSON)

	clientGuard := middleware.ClientGuard(h.stores, h.logger)
	vendorGuard := middleware.VendorGuard(h.stores, h.logger)
	adminGuard := middleware.AdminGuard(h.stores, h.logger)

	r.GET("/vendors", clientGuard, h.pageHandler.Vendors)
	r.GET("/vendor/dashboard", vendorGuard, middleware.RequireIdentity(entity.RoleVendor, h.secret), h.dashboardHandler.Dashboard)
	r.GET("/admin/contact-messages", adminGuard, h.adminHandler.GetContactMessages)

	clientRoutes := r.Group("/api/v1")
	clientRoutes.Use(clientGuard)
	{
		clientRoutes.GET("/vendors", h.vendorHandler.GetVendors)
		clientRoutes.GET("/vendors/:id/reviews", h.vendorHandler.GetVendorReviews)
		clientRoutes.GET("/events", h.vendorHandler.GetEvents)
		clientRoutes.GET("/events/:id", h.vendorHandler.GetEvent)
		clientRoutes.GET("/categories", h.vendorHandler.GetCategories)

		me := clientRoutes.Group("/me")
		me.Use(middleware.RequireIdentity(entity.RoleClient, h.secret))
		{
			me.GET("/bookings", h.accountHandler.GetBookings)
			me.GET("/tickets", h.accountHandler.GetTickets)
			me.GET("/wallet", h.accountHandler.GetWallet)
			me.GET("/notifications", h.accountHandler.GetNotifications)
		}
	}

	adminRoutes := r.Group("/api/v1/admin")
	adminRoutes.Use(adminGuard)
	{
		adminRoutes.GET("/contact-messages", h.adminHandler.GetContactMessages)
	}

	return r
}

func (h *RouterHandler) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{}
	for name, check := range h.health {
		if err := check(ctx); err != nil {
			status = http.StatusServiceUnavailable
			checks[name] = err.Error()
			continue
		}
		checks[name] = "ok"
	}

	state := "healthy"
	if status != http.StatusOK {
		state = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":    state,
		"timestamp": time.Now().Unix(),
		"service":   "planzo-web",
		"checks":    checks,
	})
}
