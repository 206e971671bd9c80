// Package logout реализует HTTP-обработчик выхода: удаляет пару токен/роль
// сессии и гасит cookie.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/delivery-frontend/internal/http/response"
	"github.com/magabrotheeeer/delivery-frontend/internal/lib/sl"
)

// Service описывает интерфейс удаления сессии.
type Service interface {
	Invalidate(ctx context.Context, sessionID string) error
}

type Handler struct {
	log        *slog.Logger
	sessions   Service
	cookieName string
}

// New создает новый Handler выхода.
func New(log *slog.Logger, sessions Service, cookieName string) *Handler {
	return &Handler{
		log:        log,
		sessions:   sessions,
		cookieName: cookieName,
	}
}

// ServeHTTP обрабатывает запрос на выход.
//
// @Summary Выход пользователя
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response "Сессия удалена"
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if cookie, err := r.Cookie(h.cookieName); err == nil {
		if err := h.sessions.Invalidate(r.Context(), cookie.Value); err != nil {
			log.Error("failed to invalidate session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to logout"))
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	log.Info("user logged out")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "logged out",
	}))
}
