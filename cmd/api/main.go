package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fitpro-warsaw/fitpro-api/config"
	"github.com/fitpro-warsaw/fitpro-api/internal/handlers"
	"github.com/fitpro-warsaw/fitpro-api/internal/middleware"
	"github.com/fitpro-warsaw/fitpro-api/internal/plancache"
	"github.com/fitpro-warsaw/fitpro-api/internal/services"
	"github.com/fitpro-warsaw/fitpro-api/pkg/gemini"
	"github.com/fitpro-warsaw/fitpro-api/pkg/httpclient"
	"github.com/fitpro-warsaw/fitpro-api/pkg/logger"
	"github.com/fitpro-warsaw/fitpro-api/pkg/metrics"
	"github.com/fitpro-warsaw/fitpro-api/pkg/profiling"
	"github.com/fitpro-warsaw/fitpro-api/pkg/telegram"
	"github.com/fitpro-warsaw/fitpro-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting FitPro API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	if !cfg.TelegramConfigured() {
		logger.Warn("Telegram credentials not configured: questionnaire and booking notifications will fail")
	}
	if !cfg.GeminiConfigured() {
		logger.Warn("Gemini API key not configured: workout generation will fail")
	}

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Initialize metrics
	metrics.Init()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Continuous profiling (opt-in)
	if cfg.Profiling.Enabled {
		stopProfiler, err := profiling.InitProfiler(
			cfg.Profiling,
			cfg.Observability.ServiceName,
			cfg.Observability.ServiceNamespace,
			cfg.Observability.ServiceVersion,
			cfg.Observability.ServiceInstanceID,
			cfg.Server.AppEnv,
		)
		if err != nil {
			logger.Fatal("Failed to initialize profiler", zap.Error(err))
		}
		defer stopProfiler()
	}

	// Outbound HTTP clients. Gemini gets a longer timeout: generating a
	// multi-day plan routinely takes tens of seconds.
	telegramHTTP := httpclient.NewStandardClient()
	geminiHTTP := httpclient.NewClientWithTimeout(90 * time.Second)

	notifier := telegram.NewNotifier(cfg.Telegram, telegramHTTP)
	modelClient := gemini.NewClient(cfg.Gemini, geminiHTTP)
	planCache := plancache.New(cfg.PlanCache)

	// Initialize services
	planService := services.NewPlanService(modelClient, planCache)
	intakeService := services.NewIntakeService(notifier)
	bookingService := services.NewBookingService(notifier)

	// Initialize handlers
	planHandler := handlers.NewPlanHandler(planService)
	intakeHandler := handlers.NewIntakeHandler(intakeService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	healthHandler := handlers.NewHealthHandler(cfg.TelegramConfigured, cfg.GeminiConfigured)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName)) // OpenTelemetry tracing
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS configuration - only the site's own origins are allowed
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Rate limiters: the Gemini endpoint is expensive and gets the
	// strictest limit, the notification forms a spam-prevention limit.
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	formRateLimiter := middleware.NewRateLimiter(5, 10)       // 5 req/sec, burst of 10
	generateRateLimiter := middleware.NewRateLimiter(0.2, 3)  // 1 req/5sec, burst of 3
	defer generalRateLimiter.Stop()
	defer formRateLimiter.Stop()
	defer generateRateLimiter.Stop()

	// Utility endpoints (not versioned - operational endpoints)
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.POST("/generate-workout", generateRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(64*1024), planHandler.GenerateWorkout)
	v1.POST("/send-questionnaire", formRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(256*1024), intakeHandler.SendQuestionnaire)
	v1.POST("/send-booking", formRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(64*1024), bookingHandler.SendBooking)

	// Create HTTP server. Write timeout must cover a full Gemini call.
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
