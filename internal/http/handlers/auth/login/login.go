// Package login реализует HTTP-обработчик входа.
//
// Обработчик пересылает учётные данные удалённому API, а полученную пару
// токен/роль сохраняет как сессию под новым идентификатором и отдаёт его
// клиенту в cookie. Роль приводится к нижнему регистру — в этом виде её
// ожидают гвард и таблица домашних страниц.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/delivery-frontend/internal/apiclient"
	"github.com/magabrotheeeer/delivery-frontend/internal/guard"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/response"
	"github.com/magabrotheeeer/delivery-frontend/internal/lib/sl"
	"github.com/magabrotheeeer/delivery-frontend/internal/models"
)

// Request — учётные данные для входа.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс входа через удалённый API.
type Service interface {
	Login(ctx context.Context, email, password string) (*apiclient.LoginResponse, error)
}

// SessionSaver сохраняет пару токен/роль новой сессии.
type SessionSaver interface {
	Save(ctx context.Context, id string, identity models.SessionIdentity, ttl time.Duration) error
}

type Handler struct {
	log        *slog.Logger
	api        Service
	sessions   SessionSaver
	ttl        time.Duration
	cookieName string
	validate   *validator.Validate
}

// New создает новый Handler входа.
func New(log *slog.Logger, api Service, sessions SessionSaver, ttl time.Duration, cookieName string) *Handler {
	return &Handler{
		log:        log,
		api:        api,
		sessions:   sessions,
		ttl:        ttl,
		cookieName: cookieName,
		validate:   validator.New(),
	}
}

// ServeHTTP обрабатывает запрос на вход.
//
// @Summary Вход пользователя
// @Tags auth
// @Accept  json
// @Produce json
// @Param   request body Request true "Email и пароль"
// @Success 200 {object} response.Response "Сессия создана"
// @Failure 401 {object} response.ErrorResponse "Неверные учётные данные"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	loginResp, err := h.api.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apiclient.ErrLoginFailed) {
			log.Info("login rejected", slog.String("email", req.Email))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid email or password"))
			return
		}
		log.Error("login request failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to login"))
		return
	}

	role := strings.ToLower(loginResp.Role)
	sessionID := uuid.NewString()
	identity := models.SessionIdentity{Token: loginResp.Token, Role: role}
	if err := h.sessions.Save(r.Context(), sessionID, identity, h.ttl); err != nil {
		log.Error("failed to save session", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to login"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.ttl.Seconds()),
		HttpOnly: true,
	})

	log.Info("user logged in", slog.String("role", role))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"role":     role,
		"redirect": guard.Destination(role),
	}))
}
