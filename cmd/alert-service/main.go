package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-stock-alert/internal/alerter/config"
	delivery "golang-stock-alert/internal/alerter/delivery/http"
	"golang-stock-alert/internal/alerter/repository"
	"golang-stock-alert/internal/alerter/service"
	"golang-stock-alert/pkg/logger"
	"golang-stock-alert/pkg/postgres"
	"golang-stock-alert/pkg/redis"
	"golang-stock-alert/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the stock alert service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Stock Alert Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize Telegram notifier
	notifier, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
	}

	// Initialize repositories
	stockRepo := repository.NewStockRepository(db.DB)
	alertRepo := repository.NewAlertRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	notificationRepo := repository.NewNotificationRepository(db.DB)
	quoteRepo, err := repository.NewNaverQuoteRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize quote repository", logger.ErrorField(err))
	}

	// Initialize services
	monitoringSvc := service.NewMonitoringService(stockRepo, alertRepo, quoteRepo, notificationRepo, notifier, redisClient, appLogger)
	stockSvc := service.NewStockService(stockRepo, appLogger)
	alertSvc := service.NewAlertService(alertRepo, stockRepo, userRepo, appLogger)
	userSvc := service.NewUserService(userRepo, notificationRepo, appLogger)

	marketHours, err := service.NewMarketHours(cfg.Market)
	if err != nil {
		appLogger.Fatal("Failed to initialize market hours gate", logger.ErrorField(err))
	}

	scheduler, err := service.NewMonitoringScheduler(cfg.Monitoring, monitoringSvc, marketHours, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize monitoring scheduler", logger.ErrorField(err))
	}

	// Start monitoring scheduler
	go func() {
		if err := scheduler.Start(ctx); err != nil {
			appLogger.Error("Monitoring scheduler stopped", logger.ErrorField(err))
		}
	}()

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")

	stockHandler := delivery.NewStockHandler(stockSvc, monitoringSvc, appLogger)
	stockHandler.RegisterRoutes(apiV1.Group("/stocks"))

	alertHandler := delivery.NewAlertHandler(alertSvc, appLogger)
	alertHandler.RegisterRoutes(apiV1.Group("/alerts"))

	userHandler := delivery.NewUserHandler(userSvc, appLogger)
	userHandler.RegisterRoutes(apiV1.Group("/users"))

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func main() {
	rootCmd := &cobra.Command{Use: "alert-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing alert-service CLI: %s\n", err)
		os.Exit(1)
	}
}
