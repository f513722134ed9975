// Package clinicscheduler собирает приложение: хранилище, миграции,
// сервисы и HTTP-сервер с корректным завершением работы.
package clinicscheduler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/clinic-scheduler/internal/config"
	"github.com/magabrotheeeer/clinic-scheduler/internal/lib/password"
	"github.com/magabrotheeeer/clinic-scheduler/internal/migrations"
	authservice "github.com/magabrotheeeer/clinic-scheduler/internal/services/auth"
	profileservice "github.com/magabrotheeeer/clinic-scheduler/internal/services/profile"
	scheduleservice "github.com/magabrotheeeer/clinic-scheduler/internal/services/schedule"
	"github.com/magabrotheeeer/clinic-scheduler/internal/storage"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	hasher := password.NewHasher(cfg.BcryptCost)
	authService := authservice.New(db, db, hasher)
	profileService := profileservice.New(db, hasher)
	scheduleService := scheduleservice.New(db)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, cfg, authService, profileService, scheduleService)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
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
		_ = a.db.Close()
		return err
	}
}
