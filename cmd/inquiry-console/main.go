package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"inquiry-console/internal/auth"
	"inquiry-console/internal/config"
	"inquiry-console/internal/db"
	httphandler "inquiry-console/internal/http"
	"inquiry-console/internal/http/middleware"
	"inquiry-console/internal/logger"
	"inquiry-console/internal/repository"
	"inquiry-console/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	analyticsRepo := repository.NewAnalyticsRepository(database)
	directoryRepo := repository.NewDirectoryRepository(database)
	emailRepo := repository.NewEmailRepository(database)

	tokens := auth.NewTokens(cfg.Auth.AccessSecret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TokenTTLMin)*time.Minute)
	provider := auth.NewAccountProvider(database, tokens)

	authService := service.NewAuthService(provider, appLogger)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	directoryService := service.NewDirectoryService(directoryRepo)
	emailService := service.NewEmailService(emailRepo, directoryRepo, appLogger)

	handler := httphandler.NewHandler(authService, analyticsService, directoryService, emailService, appLogger)
	router := httphandler.NewRouter(cfg, appLogger)
	handler.Register(router, middleware.Auth(tokens))

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		appLogger.Info().Str("addr", addr).Msg("starting inquiry console")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("forced shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
