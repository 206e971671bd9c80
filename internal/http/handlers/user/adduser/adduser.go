// Package adduser реализует HTTP-обработчик создания пользователя.
//
// Обработчик проверяет форму на уровне типов (email, длина пароля, допустимая
// роль), затем прогоняет черновик через тот же диалог формы, что и встроенный
// клиент: открытие, заполнение полей, отправку на выбранную по роли конечную
// точку удалённого API.
package adduser

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/delivery-frontend/internal/form"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/response"
	"github.com/magabrotheeeer/delivery-frontend/internal/lib/sl"
	"github.com/magabrotheeeer/delivery-frontend/internal/models"
)

// Request — поля формы создания пользователя. Дополнительные поля обязательны
// не всегда: их проверяет сама форма по выбранной роли.
type Request struct {
	Name               string `json:"name" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=6"`
	Phone              string `json:"phone" validate:"required"`
	Role               string `json:"role" validate:"required,oneof=customer courier restaurant_owner admin"`
	Address            string `json:"address"`
	City               string `json:"city"`
	District           string `json:"district"`
	BusinessHoursStart string `json:"businessHoursStart"`
	BusinessHoursEnd   string `json:"businessHoursEnd"`
	CuisineType        string `json:"cuisineType"`
	DeliveryType       string `json:"deliveryType"`
}

type Handler struct {
	log      *slog.Logger
	router   *form.Router
	validate *validator.Validate
}

// New создает новый Handler с переданным логгером и маршрутизатором отправки.
func New(log *slog.Logger, router *form.Router) *Handler {
	return &Handler{
		log:      log,
		router:   router,
		validate: validator.New(),
	}
}

// ServeHTTP обрабатывает запрос на создание пользователя.
//
// @Summary Создание пользователя с ролью
// @Tags users
// @Accept  json
// @Produce json
// @Param   request body Request true "Поля формы создания пользователя"
// @Success 200 {object} response.Response "Пользователь создан"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или незаполненные поля роли"
// @Failure 500 {object} response.ErrorResponse "Отправка на удалённый API не удалась"
// @Router /users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.adduser"

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

	var userAdded bool
	f := form.New(h.router, log, func() { userAdded = true }, nil)
	f.Open()

	fields := map[string]string{
		models.FieldName:               req.Name,
		models.FieldEmail:              req.Email,
		models.FieldPassword:           req.Password,
		models.FieldPhone:              req.Phone,
		models.FieldAddress:            req.Address,
		models.FieldCity:               req.City,
		models.FieldDistrict:           req.District,
		models.FieldBusinessHoursStart: req.BusinessHoursStart,
		models.FieldBusinessHoursEnd:   req.BusinessHoursEnd,
		models.FieldCuisineType:        req.CuisineType,
	}
	if req.DeliveryType != "" {
		fields[models.FieldDeliveryType] = req.DeliveryType
	}

	if err := f.SetRole(models.Role(req.Role)); err != nil {
		log.Error("failed to set role", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("unsupported role"))
		return
	}
	for name, value := range fields {
		if err := f.SetField(name, value); err != nil {
			log.Error("failed to set field", slog.String("field", name), sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("field "+name+" has an unsupported value"))
			return
		}
	}

	if err := f.Submit(r.Context()); err != nil {
		var missingErr *form.MissingFieldsError
		if errors.As(err, &missingErr) {
			log.Error("required fields for role are empty", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(missingErr.Error()))
			return
		}
		log.Error("submission failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(f.Err()))
		return
	}

	if !userAdded {
		// Submit без ошибки всегда зовёт OnUserAdded, сюда попадать не должно.
		log.Error("submission succeeded without user-added signal")
	}

	log.Info("user created", slog.String("role", req.Role))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "User created successfully.",
		"role":    req.Role,
	}))
}
