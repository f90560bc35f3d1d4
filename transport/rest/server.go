package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires the game API routes and returns an http.Handler.
func NewRouter(logger *slog.Logger, gamePlayService gamePlayService) http.Handler {
	router := chi.NewRouter()

	h := newHandlers(logger, gamePlayService)

	router.Get("/ping", pingHandler)
	router.Post("/new_game", h.NewGame)
	router.Post("/make_move", h.MakeMove)
	router.Get("/game/{gameID}", h.GetGame)

	return router
}

// Start - serves the handler until ctx is canceled, then shuts down
// gracefully.
func Start(ctx context.Context, logger *slog.Logger, port string, handler http.Handler) error {
	log := logger.With("component", "rest")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start server: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	log.Info("server stopped")

	return nil
}
