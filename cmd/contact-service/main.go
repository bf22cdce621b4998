package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/contact-service/internal/auth"
	"github.com/vasiliy-maslov/contact-service/internal/config"
	"github.com/vasiliy-maslov/contact-service/internal/contact"
	"github.com/vasiliy-maslov/contact-service/internal/db"
	contactHttp "github.com/vasiliy-maslov/contact-service/internal/handler/http"
	"github.com/vasiliy-maslov/contact-service/internal/logger"
	"github.com/vasiliy-maslov/contact-service/internal/user"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"), ".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Setup(cfg.Log)
	log.Info().Msg("Starting contact-service...")

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pg, err := db.New(connectCtx, cfg.Postgres)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if cfg.Postgres.AutoMigrate {
		if err := pg.Migrate(); err != nil {
			pg.Close()
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	userRepository := user.NewRepository(pg.Pool)
	contactRepository := contact.NewRepository(pg.Pool)

	router := contactHttp.NewRouter(
		user.NewService(userRepository),
		auth.NewService(userRepository),
		contact.NewService(contactRepository),
	)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
		IdleTimeout:  cfg.App.IdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Str("port", cfg.App.Port).Msg("Could not listen")
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	<-stopCh

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	pg.Close()

	log.Info().Msg("Contact-service stopped gracefully.")
}
