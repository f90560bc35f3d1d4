package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shaqnxtgen/tic-tac-toe-web/internal/config"
	"github.com/shaqnxtgen/tic-tac-toe-web/internal/repository"
	"github.com/shaqnxtgen/tic-tac-toe-web/internal/repository/storage"
	"github.com/shaqnxtgen/tic-tac-toe-web/internal/service"
	"github.com/shaqnxtgen/tic-tac-toe-web/transport/rest"
)

var ErrUnknownStorage = errors.New("unknown storage type")

const (
	storageMemory = "memory"
	storageRedis  = "redis"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var sessionRepo repository.SessionRepository

	switch conf.Storage {
	case storageRedis:
		client, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = client.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		sessionRepo = repository.NewRedisSessionRepository(client)
	case storageMemory:
		sessionRepo = repository.NewMemorySessionRepository()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStorage, conf.Storage)
	}

	sessionService := service.NewSessionService(sessionRepo)
	gamePlayService := service.NewGamePlayService(logger, sessionService)

	router := rest.NewRouter(logger, gamePlayService)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage)

	if err := rest.Start(ctx, logger, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}
