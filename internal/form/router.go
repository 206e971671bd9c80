package form

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/delivery-frontend/internal/lib/sl"
	"github.com/magabrotheeeer/delivery-frontend/internal/models"
)

// registerEndpoint конечная точка регистрации для всех ролей, кроме admin.
const registerEndpoint = "/register"

// endpointOverrides роли, которые отправляются не на общую регистрацию.
var endpointOverrides = map[models.Role]string{
	models.RoleAdmin: "/admin/add-admin",
}

// ErrSubmitFailed единственная ошибка, которую маршрутизатор показывает наружу.
// Детали сетевого сбоя уходят в лог, пользователю они не нужны.
var ErrSubmitFailed = errors.New("failed to create user")

// ErrRoleUnset отправка без выбранной роли. Компонент формы до этого не
// доводит: роль — обязательное поле.
var ErrRoleUnset = errors.New("role is not selected")

// Sender отправляет JSON-тело на конечную точку удалённого API
// и возвращает код ответа.
type Sender interface {
	PostJSON(ctx context.Context, path string, body any) (int, error)
}

// Router выбирает конечную точку по роли черновика и выполняет отправку.
// Других побочных эффектов у него нет.
type Router struct {
	sender Sender
	log    *slog.Logger
}

// NewRouter создает маршрутизатор отправки.
func NewRouter(sender Sender, log *slog.Logger) *Router {
	return &Router{sender: sender, log: log}
}

// Endpoint возвращает конечную точку для роли: admin уходит на создание
// администратора, все остальные конкретные роли — на общую регистрацию.
func Endpoint(role models.Role) string {
	if path, ok := endpointOverrides[role]; ok {
		return path
	}
	return registerEndpoint
}

// Submit отправляет полный черновик на выбранную по роли конечную точку.
// Сервер сам игнорирует ключи, не относящиеся к роли. Любой сетевой сбой или
// не-2xx ответ сводится к ErrSubmitFailed.
func (rt *Router) Submit(ctx context.Context, draft models.UserDraft) error {
	const op = "form.Router.Submit"

	if !draft.Role.Valid() {
		rt.log.Error("submit without a concrete role", slog.String("op", op))
		return ErrRoleUnset
	}

	path := Endpoint(draft.Role)
	status, err := rt.sender.PostJSON(ctx, path, draft)
	if err != nil {
		rt.log.Error("submit request failed", slog.String("op", op),
			slog.String("endpoint", path), sl.Err(err))
		return ErrSubmitFailed
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		rt.log.Error("submit rejected", slog.String("op", op),
			slog.String("endpoint", path), slog.Int("status", status))
		return ErrSubmitFailed
	}

	rt.log.Info("user submitted", slog.String("op", op),
		slog.String("endpoint", path), slog.String("role", string(draft.Role)))
	return nil
}
