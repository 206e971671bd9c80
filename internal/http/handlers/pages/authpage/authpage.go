// Package authpage отдает описания публичных страниц входа и регистрации.
// Сами страницы защищает гвард: авторизованный пользователь сюда не попадает.
package authpage

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/delivery-frontend/internal/form/schema"
	"github.com/magabrotheeeer/delivery-frontend/internal/http/response"
	"github.com/magabrotheeeer/delivery-frontend/internal/models"
)

type Handler struct {
	log  *slog.Logger
	view string
}

// New создает Handler страницы с указанным именем представления.
func New(log *slog.Logger, view string) *Handler {
	return &Handler{log: log, view: view}
}

// ServeHTTP отдает описание страницы: имя представления, базовые поля формы
// и дополнительные поля по ролям, чтобы клиент мог отрисовать форму без
// повторного запроса.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData(map[string]any{
		"view":       h.view,
		"baseFields": schema.BaseFields(),
		"extraFields": map[string][]string{
			string(models.RoleCustomer):        schema.ExtraFields(models.RoleCustomer),
			string(models.RoleRestaurantOwner): schema.ExtraFields(models.RoleRestaurantOwner),
			string(models.RoleCourier):         schema.ExtraFields(models.RoleCourier),
			string(models.RoleAdmin):           schema.ExtraFields(models.RoleAdmin),
		},
	}))
}
