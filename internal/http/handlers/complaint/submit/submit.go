// Package submit реализует HTTP-обработчик формы жалоб и пожеланий.
//
// Текст ограничен 250 символами, идентификатор покупателя берётся из claims
// токена сессии. Единственный структурированный ответ бэкенда, который
// превращается в отдельное сообщение, — 404 от сервиса жалоб.
package submit

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/delivery-frontend/internal/apiclient"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/response"
	"github.com/magabrotheeeer/delivery-frontend/internal/lib/sl"
)

// MaxLength максимальная длина текста жалобы.
const MaxLength = 250

// Request — тело формы жалобы.
type Request struct {
	Message string `json:"message"`
}

// Service описывает интерфейс отправки жалобы на удалённый API.
type Service interface {
	SubmitComplaint(ctx context.Context, token, customerID, message string) error
}

type Handler struct {
	log *slog.Logger
	api Service
}

// New создает новый Handler жалоб.
func New(log *slog.Logger, api Service) *Handler {
	return &Handler{log: log, api: api}
}

// ServeHTTP обрабатывает отправку жалобы.
//
// @Summary Отправка жалобы или пожелания
// @Tags complaints
// @Accept  json
// @Produce json
// @Param   request body Request true "Текст жалобы, не более 250 символов"
// @Success 200 {object} response.Response "Жалоба принята"
// @Failure 400 {object} response.ErrorResponse "Пустой или слишком длинный текст"
// @Failure 503 {object} response.ErrorResponse "Сервис жалоб недоступен"
// @Router /complaints [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.complaint.submit"

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

	message := strings.TrimSpace(req.Message)
	if message == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("please enter your complaint"))
		return
	}
	if len([]rune(message)) > MaxLength {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("complaint must not exceed 250 characters"))
		return
	}

	token, _ := r.Context().Value(middlewarectx.Token).(string)
	customerID, _ := r.Context().Value(middlewarectx.UserID).(string)

	if err := h.api.SubmitComplaint(r.Context(), token, customerID, message); err != nil {
		if errors.Is(err, apiclient.ErrComplaintServiceUnavailable) {
			log.Error("complaint service unavailable")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("complaint service is not available"))
			return
		}
		log.Error("failed to submit complaint", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to submit complaint, please try again"))
		return
	}

	log.Info("complaint submitted")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "complaint submitted successfully",
	}))
}
