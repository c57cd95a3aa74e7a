package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mapeo-backend/config"
	deliveryHttp "mapeo-backend/internal/delivery/http"
	"mapeo-backend/internal/delivery/http/handler"
	"mapeo-backend/internal/delivery/http/middleware"
	"mapeo-backend/internal/infrastructure/cache"
	"mapeo-backend/internal/infrastructure/database"
	"mapeo-backend/internal/repository"
	"mapeo-backend/internal/service"
	"mapeo-backend/internal/usecase"
	"mapeo-backend/pkg/credentials"
	"mapeo-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Provider    *database.Provider
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized.
// A failed database or Redis connection aborts startup; main exits non-zero.
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	provider := database.NewProvider()
	if _, err := provider.Connect(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.Provider = provider

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, provider, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, provider *database.Provider, redisClient *redis.Client) *http.Server {
	customValidator := validator.NewValidator()
	verifier := credentials.ForScheme(cfg.Auth.Scheme)
	log := logrus.StandardLogger()

	// Repositories
	usuarioRepo := repository.NewUsuarioRepository()
	direccionRepo := repository.NewDireccionRepository()
	embarazadaRepo := repository.NewEmbarazadaRepository()
	riesgoRepo := repository.NewRiesgoRepository()
	seguimientoRepo := repository.NewSeguimientoRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	sessions := service.NewRedisSessionRegistry(redisClient, log)
	auditService := service.NewAuditService(log, auditLogRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(provider, log, usuarioRepo, verifier, sessions, auditService)
	usuarioUsecase := usecase.NewUsuarioUsecase(provider, log, usuarioRepo)
	direccionUsecase := usecase.NewDireccionUsecase(provider, log, direccionRepo)
	embarazadaUsecase := usecase.NewEmbarazadaUsecase(provider, log, embarazadaRepo, direccionRepo, auditService)
	riesgoUsecase := usecase.NewRiesgoUsecase(provider, log, riesgoRepo, embarazadaRepo)
	seguimientoUsecase := usecase.NewSeguimientoUsecase(provider, log, seguimientoRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	usuarioHandler := handler.NewUsuarioHandler(usuarioUsecase, customValidator)
	direccionHandler := handler.NewDireccionHandler(direccionUsecase, customValidator)
	embarazadaHandler := handler.NewEmbarazadaHandler(embarazadaUsecase, customValidator)
	riesgoHandler := handler.NewRiesgoHandler(riesgoUsecase, customValidator)
	seguimientoHandler := handler.NewSeguimientoHandler(seguimientoUsecase, customValidator)

	// Middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	router := deliveryHttp.NewRouter(
		authHandler,
		usuarioHandler,
		direccionHandler,
		embarazadaHandler,
		riesgoHandler,
		seguimientoHandler,
		corsMiddleware,
		loggingMiddleware,
	)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database pool and redis connection.
func (app *App) Close() {
	if app.Provider != nil {
		if db, err := app.Provider.Get(); err == nil {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
