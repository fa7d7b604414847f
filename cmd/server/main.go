package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pinpin/travel-backend/internal/api"
	"github.com/pinpin/travel-backend/internal/cache"
	"github.com/pinpin/travel-backend/internal/client"
	"github.com/pinpin/travel-backend/internal/config"
	"github.com/pinpin/travel-backend/internal/logger"
	"github.com/pinpin/travel-backend/internal/repository/postgres"
	"github.com/pinpin/travel-backend/internal/service"
	"github.com/pinpin/travel-backend/internal/storage"
	"github.com/pinpin/travel-backend/internal/token"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputPath: cfg.LogPath,
	})
	defer logger.Sync()

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Session tokens
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// Avatar image storage
	images, err := storage.NewMinioStore(storage.MinioConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
	})
	if err != nil {
		logger.Fatal("failed to connect to image storage", zap.Error(err))
	}

	// Weather cache is best-effort; the server runs without it.
	var weatherCache service.WeatherCache
	if rdb, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		logger.Warn("weather cache unavailable", zap.Error(err))
	} else {
		weatherCache = cache.NewWeatherCache(rdb, cfg.WeatherCacheTTL)
	}

	// Initialize services
	services := service.NewServices(repos, service.Dependencies{
		Issuer:       issuer,
		Images:       images,
		Places:       client.NewPlacesClient(cfg.PlacesBaseURL, cfg.PlacesAPIKey),
		Weather:      client.NewOpenWeatherClient(cfg.OpenWeatherURL, cfg.OpenWeatherAPIKey),
		WeatherCache: weatherCache,
	})

	// Initialize router
	router := api.NewRouter(services, repos, issuer, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
