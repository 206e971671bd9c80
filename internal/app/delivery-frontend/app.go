// Package deliveryfrontend собирает гейтвей клиентской части платформы
// доставки: хранилище сессий, клиент удалённого API, маршруты и HTTP-сервер.
package deliveryfrontend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/delivery-frontend/internal/apiclient"
	"github.com/magabrotheeeer/delivery-frontend/internal/config"
	"github.com/magabrotheeeer/delivery-frontend/internal/session"
)

type App struct {
	server   *http.Server
	logger   *slog.Logger
	sessions *session.Store
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	sessions, err := session.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	api := apiclient.NewClient(cfg.BaseURL, cfg.TimeoutAPI)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, api, sessions)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		sessions: sessions,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.sessions.Db.Close(); closeErr != nil {
			a.logger.Error("failed to close session store", slog.Any("err", closeErr))
		}
		return err
	}
}
