package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/thedemodev/superdesk-publisher/internal/channel"
	"github.com/thedemodev/superdesk-publisher/internal/client"
	"github.com/thedemodev/superdesk-publisher/internal/config"
	"github.com/thedemodev/superdesk-publisher/internal/handler"
	"github.com/thedemodev/superdesk-publisher/internal/infrastructure/database"
	"github.com/thedemodev/superdesk-publisher/internal/logger"
	"github.com/thedemodev/superdesk-publisher/internal/metrics"
	"github.com/thedemodev/superdesk-publisher/internal/middleware"
	"github.com/thedemodev/superdesk-publisher/internal/realtime"
	"github.com/thedemodev/superdesk-publisher/internal/repository"
	"github.com/thedemodev/superdesk-publisher/internal/service"
	"github.com/thedemodev/superdesk-publisher/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLogger(logger.New(os.Stdout, cfg.LogLevel))

	// Connect to database and apply migrations
	poolConfig := database.PoolConfigFrom(cfg)
	if err := database.Migrate(poolConfig, cfg.MigrationsDir); err != nil {
		logger.Fatal("Failed to run migrations",
			slog.String("error", err.Error()))
	}

	pool, err := database.NewPostgres(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Publishing backend
	api := client.NewHTTPClient(cfg.PublisherAPIURL,
		client.WithToken(cfg.PublisherAPIToken),
		client.WithHTTPClient(&http.Client{Timeout: cfg.PublisherAPITimeout}),
	)

	// Push channel. The interfaces stay nil when it is disabled.
	var (
		ch     *channel.Channel
		source service.PackageSource
		status handler.ChannelStatus
	)
	if cfg.ChannelEnabled() {
		ch = channel.New(
			channel.BuildURL(cfg.WSProtocol, cfg.WSDomain, cfg.WSPort, cfg.WSPath, cfg.PublisherAPIToken),
			channel.WithLogger(logger.WithComponent("channel")),
		)
		source, status = ch, ch
		ch.Open()
	} else {
		logger.Info("Push channel disabled, WS_DOMAIN is not set")
	}

	feedCtx, stopFeed := context.WithCancel(context.Background())
	feed := service.NewFeedService(source, realtime.DefaultBuffer)
	go feed.Run(feedCtx)

	// Initialize services
	sessionService := service.NewSessionService(
		api,
		repository.NewPostgresPublishJobRepository(pool),
		validator.NewValidator(),
		service.WithLiveURLScheme(cfg.LiveURLScheme),
		service.WithNotifier(feed),
	)

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(sessionService)
	eventsHandler := handler.NewEventsHandler(feed, handler.DefaultHeartbeat)
	healthHandler := handler.NewHealthHandler(pool, status)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics(handler.EventsPath))
	router.Use(middleware.AccessLog())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET(middleware.MetricsPath, gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	sessionHandler.Register(v1)
	v1.GET("/events", eventsHandler.Stream)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop the event sources first so open streams end
	if ch != nil {
		logger.Info("Closing push channel")
		ch.Close()
	}
	stopFeed()
	feed.Close()

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Closing session service")
	sessionService.Close()

	logger.Info("Server exited")
}
