package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dinerozz/planzo-web/config"
	"github.com/dinerozz/planzo-web/internal/apiclient"
	"github.com/dinerozz/planzo-web/internal/cache"
	accountHandler "github.com/dinerozz/planzo-web/internal/handler/account"
	adminHandler "github.com/dinerozz/planzo-web/internal/handler/admin"
	authHandler "github.com/dinerozz/planzo-web/internal/handler/auth"
	dashboardHandler "github.com/dinerozz/planzo-web/internal/handler/dashboard"
	pageHandler "github.com/dinerozz/planzo-web/internal/handler/page"
	vendorHandler "github.com/dinerozz/planzo-web/internal/handler/vendor"
	"github.com/dinerozz/planzo-web/internal/realtime"
	"github.com/dinerozz/planzo-web/internal/repository"
	"github.com/dinerozz/planzo-web/internal/service/auth"
	"github.com/dinerozz/planzo-web/internal/service/contact"
	"github.com/dinerozz/planzo-web/internal/service/vendor"
	"github.com/dinerozz/planzo-web/internal/session"
	"github.com/dinerozz/planzo-web/web"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RunServer(config *config.Config, logger *slog.Logger) {
	switch config.Env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
		log.Println("🚀 Starting server in PRODUCTION mode")
	case "dev", "development":
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode")
	default:
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode (default)")
	}

	db, err := repository.NewRepository(config.DB)
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	defer db.Close()

	var (
		redisClient *redis.Client
		cacheSrv    *cache.Service
	)
	redisClient, err = cache.NewClient(config.Redis)
	if err != nil {
		if config.Session.Backend == "redis" {
			log.Fatal("❌ Redis is required for SESSION_BACKEND=redis:", err)
		}
		log.Println("⚠️ Redis unavailable, running without listing cache:", err)
	} else {
		defer redisClient.Close()
		cacheSrv = cache.NewService(redisClient)
	}

	clientOpts := []apiclient.Option{apiclient.WithLogger(logger)}
	if cacheSrv != nil {
		clientOpts = append(clientOpts, apiclient.WithCache(cacheSrv, config.API.CacheTTL))
	}
	api := apiclient.New(config.API.BaseURL, config.API.Timeout, clientOpts...)

	var stores session.Factory
	switch config.Session.Backend {
	case "redis":
		stores = session.RedisFactory(redisClient, config.Session.TTL, config.Session.Secure)
	default:
		stores = session.CookieFactory(config.Session.TTL, config.Session.Secure)
	}

	contactRepo := repository.NewContactRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	contactSrv := contact.NewContactService(contactRepo)
	authSrv := auth.NewAuthService(adminRepo, api, config.Session.Secret, config.Session.TTL)
	vendorSrv := vendor.NewVendorService(api, config.API.RenderBudget, logger)

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatal("❌ Failed to parse templates:", err)
	}

	routerHandler := &RouterHandler{
		pageHandler:      pageHandler.NewPageHandler(contactSrv, vendorSrv),
		authHandler:      authHandler.NewAuthHandler(authSrv, stores, logger),
		vendorHandler:    vendorHandler.NewVendorHandler(api),
		accountHandler:   accountHandler.NewAccountHandler(api),
		dashboardHandler: dashboardHandler.NewDashboardHandler(api),
		adminHandler:     adminHandler.NewAdminHandler(contactSrv, logger),
		stores:           stores,
		secret:           []byte(config.Session.Secret),
		corsOrigins:      config.Server.CORSOrigins,
		logger:           logger,
		health: map[string]func(context.Context) error{
			"database": db.PingContext,
		},
	}
	if cacheSrv != nil {
		routerHandler.health["redis"] = cacheSrv.Health
	}

	r := setupRouter(routerHandler)
	r.SetHTMLTemplate(tmpl)

	rtCtx, stopRealtime := context.WithCancel(context.Background())
	defer stopRealtime()
	var invalidator CacheInvalidator
	if cacheSrv != nil {
		invalidator = cacheSrv
	}
	go watchRealtime(rtCtx, realtime.Config{
		URL:          config.Realtime.URL,
		Cookie:       config.Realtime.Cookie,
		PollInterval: config.Realtime.PollInterval,
	}, invalidator, logger)

	srv := &http.Server{
		Addr:    ":" + config.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("✅ Server starting on port %s", config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	gracefulShutdown(srv)
}

func gracefulShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("🔄 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	log.Println("✅ Server gracefully stopped")
}
