// Package assign реализует HTTP-обработчик привязки курьера к ресторану
// по названию. Идентификатор курьера берётся из claims токена сессии.
package assign

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/delivery-frontend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/response"
	"github.com/magabrotheeeer/delivery-frontend/internal/lib/sl"
)

// Request — тело формы привязки.
type Request struct {
	RestaurantName string `json:"restaurantName" validate:"required"`
}

// Service описывает интерфейс привязки курьера на удалённом API.
type Service interface {
	AssignRestaurantByName(ctx context.Context, token, courierID, restaurantName string) error
}

type Handler struct {
	log      *slog.Logger
	api      Service
	validate *validator.Validate
}

// New создает новый Handler привязки курьера.
func New(log *slog.Logger, api Service) *Handler {
	return &Handler{
		log:      log,
		api:      api,
		validate: validator.New(),
	}
}

// ServeHTTP обрабатывает привязку курьера к ресторану.
//
// @Summary Привязка курьера к ресторану по названию
// @Tags couriers
// @Accept  json
// @Produce json
// @Param   request body Request true "Название ресторана"
// @Success 200 {object} response.Response "Курьер привязан"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Router /couriers/assign-restaurant [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.courier.assign"

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
	courierID, _ := r.Context().Value(middlewarectx.UserID).(string)

	if err := h.api.AssignRestaurantByName(r.Context(), token, courierID, req.RestaurantName); err != nil {
		log.Error("failed to assign restaurant", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to assign restaurant"))
		return
	}

	log.Info("courier assigned to restaurant", slog.String("restaurant", req.RestaurantName))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "restaurant assigned successfully",
	}))
}
