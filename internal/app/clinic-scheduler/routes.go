// Package clinicscheduler предоставляет маршруты для основного приложения.
package clinicscheduler

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/clinic-scheduler/internal/config"
	"github.com/magabrotheeeer/clinic-scheduler/internal/http/handlers/appointments/list"
	"github.com/magabrotheeeer/clinic-scheduler/internal/http/handlers/auth/adminlogin"
	"github.com/magabrotheeeer/clinic-scheduler/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/clinic-scheduler/internal/http/handlers/auth/register"
	profileread "github.com/magabrotheeeer/clinic-scheduler/internal/http/handlers/profile/read"
	profileupdate "github.com/magabrotheeeer/clinic-scheduler/internal/http/handlers/profile/update"
	"github.com/magabrotheeeer/clinic-scheduler/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/clinic-scheduler/internal/services/auth"
	profileservice "github.com/magabrotheeeer/clinic-scheduler/internal/services/profile"
	scheduleservice "github.com/magabrotheeeer/clinic-scheduler/internal/services/schedule"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	authService *authservice.Service, profileService *profileservice.Service,
	scheduleService *scheduleservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Post("/register", register.New(logger, authService).ServeHTTP)
	r.Post("/login", login.New(logger, authService).ServeHTTP)
	r.Post("/admin-login", adminlogin.New(logger, authService).ServeHTTP)

	// Группа личного кабинета
	r.Route("/api", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, cfg.RPS, cfg.Burst))
		r.Get("/profile", profileread.New(logger, profileService).ServeHTTP)
		r.Put("/profile", profileupdate.New(logger, profileService).ServeHTTP)
		r.Get("/appointments", list.New(logger, scheduleService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
