package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/easymenu/internal/api"
	"github.com/aaravmahajanofficial/easymenu/internal/api/handlers"
	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/aaravmahajanofficial/easymenu/internal/cache"
	"github.com/aaravmahajanofficial/easymenu/internal/config"
	"github.com/aaravmahajanofficial/easymenu/internal/health"
	"github.com/aaravmahajanofficial/easymenu/internal/metrics"
	repository "github.com/aaravmahajanofficial/easymenu/internal/repositories"
	service "github.com/aaravmahajanofficial/easymenu/internal/services"
	"github.com/aaravmahajanofficial/easymenu/internal/store"
	"github.com/aaravmahajanofficial/easymenu/internal/telemetry"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						EasyMenu API
//	@version					1.0
//	@description				Digital menu with cart pricing and WhatsApp checkout.
//	@host						localhost:8080
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the session token.
func main() {

	// .env is optional
	_ = godotenv.Load()

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Init(context.Background(), cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	sessionRepo := repository.NewSessionRepo(redisClient, cfg)
	catalogCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	catalogStore := store.NewCatalogStore(repos.Catalog, catalogCache, cfg.Menu.StoreKey)

	menuOptions, err := service.NewMenuOptions(cfg.Menu)
	if err != nil {
		slog.Error("❌ Invalid menu configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	menuService := service.NewMenuService(catalogStore, menuOptions)
	cartService := service.NewCartService(catalogStore, menuOptions)
	orderService := service.NewOrderService(catalogStore, menuOptions)
	shareService := service.NewShareService(catalogStore, menuOptions)
	catalogService := service.NewCatalogService(catalogStore, menuOptions)
	sessionService := service.NewSessionService(sessionRepo, cfg.Security)

	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey), sessionRepo)
	rateLimiter := middleware.NewRateLimiter(cfg.RateConfig.PublicRPS, cfg.RateConfig.PublicBurst)

	healthChecker, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("store", cfg.Menu.StoreKey))

	// Setup router
	routerMux := api.NewRouter(api.Handlers{
		Menu:    handlers.NewMenuHandler(menuService),
		Cart:    handlers.NewCartHandler(cartService),
		Order:   handlers.NewOrderHandler(orderService),
		Share:   handlers.NewShareHandler(shareService),
		Session: handlers.NewSessionHandler(sessionService),
		Catalog: handlers.NewCatalogHandler(catalogService),
	}, authMiddleware, rateLimiter)
	routerMux.Handle("GET /health", healthChecker.Handler())

	// Middleware chaining, metrics innermost so it sees the matched pattern
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "easymenu")
	handler = cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(handler)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
