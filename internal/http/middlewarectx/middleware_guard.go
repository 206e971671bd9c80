package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/delivery-frontend/internal/guard"
)

// GuardMiddleware возвращает middleware публичных страниц входа и регистрации.
// Для каждого запроса гвард монтируется заново, читает сохранённую сессию один
// раз и либо пропускает запрос дальше, либо перенаправляет авторизованного
// пользователя на домашнюю страницу его роли.
func GuardMiddleware(g *guard.Guard, cookieName string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.GuardMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			var sessionID string
			if cookie, err := r.Cookie(cookieName); err == nil {
				sessionID = cookie.Value
			}

			decision := g.Mount(sessionID).Decision(r.Context())
			if decision.Show {
				next.ServeHTTP(w, r)
				return
			}

			log.Info("authenticated user redirected from auth page",
				slog.String("destination", decision.Redirect))
			http.Redirect(w, r, decision.Redirect, http.StatusFound)
		})
	}
}
