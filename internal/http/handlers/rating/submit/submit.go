// Package submit реализует HTTP-обработчик оценки ресторана: звёзды от 1 до 5
// и необязательный текстовый отзыв.
package submit

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/delivery-frontend/internal/apiclient"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/response"
	"github.com/magabrotheeeer/delivery-frontend/internal/lib/sl"
)

// Request — тело формы оценки.
type Request struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Review       string `json:"review"`
}

// Service описывает интерфейс отправки оценки на удалённый API.
type Service interface {
	SubmitRating(ctx context.Context, token string, rating apiclient.RatingRequest) error
}

type Handler struct {
	log      *slog.Logger
	api      Service
	validate *validator.Validate
}

// New создает новый Handler оценок.
func New(log *slog.Logger, api Service) *Handler {
	return &Handler{
		log:      log,
		api:      api,
		validate: validator.New(),
	}
}

// ServeHTTP обрабатывает отправку оценки.
//
// @Summary Оценка ресторана
// @Tags ratings
// @Accept  json
// @Produce json
// @Param   request body Request true "Ресторан, оценка 1..5 и отзыв"
// @Success 200 {object} response.Response "Оценка сохранена"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Router /ratings [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rating.submit"

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

	token, _ := r.Context().Value(middlewarectx.Token).(string)
	customerID, _ := r.Context().Value(middlewarectx.UserID).(string)

	rating := apiclient.RatingRequest{
		CustomerID:   customerID,
		RestaurantID: req.RestaurantID,
		Rating:       req.Rating,
		Review:       req.Review,
	}
	if err := h.api.SubmitRating(r.Context(), token, rating); err != nil {
		log.Error("failed to submit rating", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to submit rating"))
		return
	}

	log.Info("rating submitted", slog.Int("rating", req.Rating))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "rating submitted successfully",
	}))
}
