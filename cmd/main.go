package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/faceglow/reminder-service/internal/consumer"
	"github.com/faceglow/reminder-service/internal/dispatcher"
	"github.com/faceglow/reminder-service/internal/events"
	"github.com/faceglow/reminder-service/internal/handler"
	"github.com/faceglow/reminder-service/internal/middleware"
	"github.com/faceglow/reminder-service/internal/repository"
	"github.com/faceglow/reminder-service/internal/scheduler"
	"github.com/faceglow/reminder-service/internal/service"
	"github.com/faceglow/reminder-service/internal/shared/config"
	"github.com/faceglow/reminder-service/internal/shared/logger"
	"github.com/faceglow/reminder-service/internal/shared/mongodb"
	"github.com/faceglow/reminder-service/internal/shared/rabbitmq"
)

func main() {
	// Initialize logger
	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting Reminder Service...")

	// Load .env if present
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", "error", err)
	}

	// Initialize MongoDB
	mongoClient, err := mongodb.NewMongoClient(cfg.MongoDB.URI, cfg.MongoDB.Database)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(context.Background())

	// Initialize repositories
	scheduleRepo := repository.NewScheduleRepository(mongoClient)
	preferencesRepo := repository.NewPreferencesRepository(mongoClient)
	historyRepo := repository.NewHistoryRepository(mongoClient)
	tokenRepo := repository.NewTokenRepository(mongoClient)
	profileRepo := repository.NewProfileRepository(mongoClient)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelIndexes()
	if err := scheduleRepo.EnsureIndexes(indexCtx); err != nil {
		log.Error("Failed to ensure schedule indexes", "error", err)
	}
	if err := preferencesRepo.EnsureIndexes(indexCtx); err != nil {
		log.Error("Failed to ensure preferences indexes", "error", err)
	}
	if err := historyRepo.EnsureIndexes(indexCtx); err != nil {
		log.Error("Failed to ensure history indexes", "error", err)
	}
	if err := tokenRepo.EnsureIndexes(indexCtx); err != nil {
		log.Error("Failed to ensure token indexes", "error", err)
	}

	// Initialize delivery channels
	emailService := service.NewEmailService(cfg.Email, log)
	pushService := service.NewPushService(cfg.Push, log)

	// Initialize RabbitMQ eventing when configured
	var eventPublisher dispatcher.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQClient, err := rabbitmq.NewRabbitMQClient(cfg.RabbitMQ.URL)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ", "error", err)
		}
		defer rabbitMQClient.Close()

		publisher, err := events.NewPublisher(rabbitMQClient, log)
		if err != nil {
			log.Fatal("Failed to initialize event publisher", "error", err)
		}
		eventPublisher = publisher

		purgeConsumer := consumer.NewEventConsumer(rabbitMQClient, scheduleRepo, preferencesRepo, tokenRepo, profileRepo, log)
		go func() {
			if err := purgeConsumer.Start(); err != nil {
				log.Error("Failed to start account event consumer", "error", err)
			}
		}()
	} else {
		log.Info("RabbitMQ not configured, eventing disabled")
	}

	// Initialize dispatcher
	dedupWindow := time.Duration(cfg.Dispatcher.DedupWindowMinutes) * time.Minute
	reminderDispatcher := dispatcher.NewDispatcher(
		scheduleRepo,
		preferencesRepo,
		historyRepo,
		tokenRepo,
		profileRepo,
		emailService,
		pushService,
		eventPublisher,
		dedupWindow,
		log,
	)

	// Internal minute scheduler, unless an external cron drives the
	// process endpoint instead
	if cfg.Dispatcher.CronSpec != "off" {
		reminderScheduler := scheduler.NewReminderScheduler(reminderDispatcher, cfg.Dispatcher.CronSpec, log)
		if err := reminderScheduler.Start(); err != nil {
			log.Fatal("Failed to start reminder scheduler", "error", err)
		}
		defer reminderScheduler.Stop()
	} else {
		log.Info("Internal scheduler disabled, expecting external trigger")
	}

	// Initialize HTTP handlers
	processHandler := handler.NewProcessHandler(reminderDispatcher, log)
	scheduleHandler := handler.NewScheduleHandler(scheduleRepo, log)
	preferencesHandler := handler.NewPreferencesHandler(preferencesRepo, log)
	tokenHandler := handler.NewTokenHandler(tokenRepo, log)
	historyHandler := handler.NewHistoryHandler(historyRepo, log)

	// Initialize rate limiter
	rateLimiter := middleware.NewClientRateLimiter(cfg.Server.RateLimitPerClient, cfg.Server.RateLimitBurst)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Health check endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes with rate limiting
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimitMiddleware(rateLimiter))
	{
		// Dispatcher trigger (cron target)
		reminders := v1.Group("/reminders")
		{
			reminders.POST("/process", processHandler.Process)
			reminders.GET("/process", processHandler.Process)
		}

		// Practice schedules
		schedules := v1.Group("/schedules")
		{
			schedules.GET("", scheduleHandler.GetSchedules)
			schedules.POST("", scheduleHandler.CreateSchedule)
			schedules.PUT("/:id", scheduleHandler.UpdateSchedule)
			schedules.DELETE("/:id", scheduleHandler.DeleteSchedule)
		}

		// Reminder preferences
		preferences := v1.Group("/preferences")
		{
			preferences.GET("/:user_id", preferencesHandler.GetPreferences)
			preferences.PUT("/:user_id", preferencesHandler.UpdatePreferences)
		}

		// Device tokens
		tokens := v1.Group("/tokens")
		{
			tokens.POST("", tokenHandler.RegisterToken)
			tokens.DELETE("/:token", tokenHandler.DeleteToken)
		}

		// Reminder history
		v1.GET("/history", historyHandler.GetHistory)
	}

	// CORS wraps the whole router so preflight requests are answered
	// before they reach any route
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
	}).Handler(router)

	// Start HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: corsHandler,
	}

	go func() {
		log.Info("Reminder Service started", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down Reminder Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Reminder Service stopped")
}
