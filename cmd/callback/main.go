package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkamau/pesapal-callback/internal/pkg/config"
	"github.com/mkamau/pesapal-callback/internal/pkg/database"
	"github.com/mkamau/pesapal-callback/internal/pkg/health"
	"github.com/mkamau/pesapal-callback/internal/pkg/logger"
	"github.com/mkamau/pesapal-callback/internal/pkg/middleware"
	"github.com/mkamau/pesapal-callback/internal/pkg/server"
	"github.com/mkamau/pesapal-callback/services/callback/handler"
	"github.com/mkamau/pesapal-callback/services/callback/repository"
	"github.com/mkamau/pesapal-callback/services/callback/usecase"
)

func main() {
	appName := "pesapal-callback-endpoint"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("db_driver", configs.Database.Driver),
	)

	// Select the storage backend variant
	backend, err := database.New(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize storage backend", logger.Err(err))
	}

	// Initialize repository
	transactionRepo := repository.NewTransactionRepo(configs, backend, zapLogger)

	// Schema provisioning is a startup side task, never on the request path.
	// A failure here is logged and the service keeps running: the table
	// usually exists already.
	schemaCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := transactionRepo.EnsureSchema(schemaCtx); err != nil {
		zapLogger.Warn("Failed to ensure transactions table", logger.Err(err))
	}
	cancel()

	// Initialize UseCase
	callbackUC := usecase.NewCallbackUC(configs, transactionRepo, zapLogger)

	// Initialize handlers
	callbackHandler := handler.NewCallbackHandler(callbackUC, zapLogger)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register routes
	health.RegisterHealthEndpoints(e, appName)
	callbackHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
