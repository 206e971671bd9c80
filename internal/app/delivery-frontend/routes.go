// Package deliveryfrontend предоставляет маршруты гейтвея.
package deliveryfrontend

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/delivery-frontend/internal/apiclient"
	"github.com/magabrotheeeer/delivery-frontend/internal/config"
	"github.com/magabrotheeeer/delivery-frontend/internal/form"
	"github.com/magabrotheeeer/delivery-frontend/internal/guard"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/handlers/auth/logout"
	complaintsubmit "github.com/magabrotheeeer/delivery-frontend/internal/http/handlers/complaint/submit"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/handlers/courier/assign"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/handlers/health"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/handlers/pages/authpage"
	ratingsubmit "github.com/magabrotheeeer/delivery-frontend/internal/http/handlers/rating/submit"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/handlers/user/adduser"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/middlewarectx"
	libjwt "github.com/magabrotheeeer/delivery-frontend/internal/lib/jwt"
	"github.com/magabrotheeeer/delivery-frontend/internal/session"
)

// RegisterRoutes регистрирует все маршруты гейтвея.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, api *apiclient.Client, sessions *session.Store) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	decoder := libjwt.NewDecoder()
	authGuard := guard.New(sessions, logger)
	submitRouter := form.NewRouter(api, logger)

	// Публичные страницы входа и регистрации под гвардом:
	// авторизованного пользователя уводим на его домашнюю страницу.
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.GuardMiddleware(authGuard, cfg.CookieName, logger))
		r.Get("/login", authpage.New(logger, "login").ServeHTTP)
		r.Get("/register", authpage.New(logger, "register").ServeHTTP)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		// Открытые конечные точки
		r.Post("/login", login.New(logger, api, sessions, cfg.TTL, cfg.CookieName).ServeHTTP)
		r.Post("/logout", logout.New(logger, sessions, cfg.CookieName).ServeHTTP)
		r.Post("/users", adduser.New(logger, submitRouter).ServeHTTP)

		// Группа с обязательной сессией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(sessions, decoder, cfg.CookieName, logger))
			r.Post("/complaints", complaintsubmit.New(logger, api).ServeHTTP)
			r.Post("/ratings", ratingsubmit.New(logger, api).ServeHTTP)
			r.Post("/couriers/assign-restaurant", assign.New(logger, api).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
