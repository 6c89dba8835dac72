package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/irisdrone/tracker/auth"
	"github.com/irisdrone/tracker/config"
	"github.com/irisdrone/tracker/database"
	"github.com/irisdrone/tracker/handlers"
	"github.com/irisdrone/tracker/logging"
	"github.com/irisdrone/tracker/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if cfg.Security.SecretKey == config.DefaultSecret {
		logging.Warn().Msg("Using default SECRET_KEY. Set SECRET_KEY before deploying")
	}

	// Connect to database
	db, err := database.Open(cfg.Database.URL)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to start server")
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logging.Fatal().Err(err).Msg("Failed to migrate database")
	}
	if cfg.Database.SeedOnStart {
		admin := database.AdminCredentials{
			Username: cfg.Security.AdminUsername,
			Password: cfg.Security.AdminPassword,
		}
		if _, err := database.Seed(db, admin); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed database")
		}
	}

	tokens, err := auth.NewTokenManager(cfg.Security.SecretKey, cfg.Security.TokenTTL)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize token manager")
	}
	store := database.NewStore(db)
	authService := auth.NewService(store, tokens)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.New(handlers.New(store, authService), authService, router.Options{
		CORSOrigins: cfg.Security.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Str("env", cfg.Server.Env).Msg("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Server forced to shut down")
	}
}
