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

	"github.com/isdelr/rocket-be/internal/api"
	"github.com/isdelr/rocket-be/internal/auth"
	"github.com/isdelr/rocket-be/internal/config"
	"github.com/isdelr/rocket-be/internal/database"
	"github.com/isdelr/rocket-be/internal/logger"
	"github.com/isdelr/rocket-be/internal/services"
	"github.com/isdelr/rocket-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.LogLevel, !cfg.IsProduction())

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if cfg.SeedDatabase {
		err = database.Reset(db)
	} else {
		err = database.Migrate(db)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up auth primitives
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL)
	log.Info().Dur("token_ttl", tokens.TTL()).Int("bcrypt_cost", hasher.Cost()).Msg("Auth configured")

	// Set up services
	userService := services.NewUserService(db, hasher)
	messageService := services.NewMessageService(db)
	itemService := services.NewItemService(db)
	authService := services.NewAuthService(userService, hasher, tokens)

	if cfg.SeedDatabase {
		if err := services.SeedDemoData(context.Background(), userService, messageService, itemService); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed database")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run(ctx)

	// Set up router
	router := api.NewRouter(cfg, db, hub, tokens, api.Services{
		Auth:     authService,
		Users:    userService,
		Messages: messageService,
		Items:    itemService,
	})

	// Set up server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Str("env", cfg.AppEnv).Msg("Server starting")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("ListenAndServe failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("Server exiting")
}
