// Package middlewarectx содержит HTTP middleware гейтвея: загрузку сохранённой
// сессии в контекст запроса, гвард публичных страниц и ограничение частоты
// запросов.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/delivery-frontend/internal/http/response"
	libjwt "github.com/magabrotheeeer/delivery-frontend/internal/lib/jwt"
	"github.com/magabrotheeeer/delivery-frontend/internal/lib/sl"
	"github.com/magabrotheeeer/delivery-frontend/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// SessionID — ключ идентификатора сессии в контексте
	SessionID Key = "session_id"
	// Token — ключ токена пользователя в контексте
	Token Key = "token"
	// Role — ключ роли пользователя в контексте
	Role Key = "role"
	// UserID — ключ идентификатора пользователя из claims токена
	UserID Key = "user_id"
)

// Service описывает интерфейс чтения сохранённой сессии.
type Service interface {
	Identity(ctx context.Context, sessionID string) (models.SessionIdentity, error)
}

// SessionMiddleware возвращает middleware, которое загружает сохранённую
// сессию по cookie и кладёт токен, роль и идентификатор пользователя в
// контекст запроса. Запрос без сессии или без токена получает 401.
func SessionMiddleware(sessions Service, decoder *libjwt.Decoder, cookieName string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			cookie, err := r.Cookie(cookieName)
			if err != nil {
				log.Error("missing session cookie")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("please login first"))
				return
			}

			identity, err := sessions.Identity(r.Context(), cookie.Value)
			if err != nil {
				log.Error("failed to read session", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("please login first"))
				return
			}
			if !identity.Authenticated() {
				log.Info("session has no token")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("please login first"))
				return
			}

			claims, err := decoder.DecodeClaims(identity.Token)
			if err != nil {
				log.Error("failed to decode token claims", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid session token"))
				return
			}

			ctx := context.WithValue(r.Context(), SessionID, cookie.Value)
			ctx = context.WithValue(ctx, Token, identity.Token)
			ctx = context.WithValue(ctx, Role, identity.Role)
			ctx = context.WithValue(ctx, UserID, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
