// Package guard решает, показывать ли пользователю публичные страницы входа
// и регистрации или увести его на домашнюю страницу его роли. Сохранённая
// сессия читается ровно один раз за монтирование: гвард одноразовый, за
// сменой сессии он не следит — для повторной проверки его монтируют заново.
package guard

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/delivery-frontend/internal/lib/sl"
	"github.com/magabrotheeeer/delivery-frontend/internal/models"
)

// destinations соответствие роль → домашняя страница.
var destinations = map[models.Role]string{
	models.RoleAdmin:           "/admin",
	models.RoleCustomer:        "/customer-dashboard",
	models.RoleRestaurantOwner: "/restaurant-dashboard",
	models.RoleCourier:         "/courier-dashboard",
}

// fallbackDestination куда вести авторизованного пользователя с неизвестной ролью.
const fallbackDestination = "/home"

// Decision результат оценки гварда: либо показать защищаемое содержимое,
// либо перенаправить на Redirect.
type Decision struct {
	Show     bool
	Redirect string
}

// Destination возвращает домашнюю страницу для роли в сыром виде.
// Неизвестная роль ведёт на общую домашнюю страницу.
func Destination(role string) string {
	if dest, ok := destinations[models.Role(role)]; ok {
		return dest
	}
	return fallbackDestination
}

// IdentityReader читает сохранённую сессию по её идентификатору.
type IdentityReader interface {
	Identity(ctx context.Context, sessionID string) (models.SessionIdentity, error)
}

// Guard фабрика одноразовых оценок сохранённой сессии.
type Guard struct {
	ids IdentityReader
	log *slog.Logger
}

// New создает гвард поверх хранилища сессий.
func New(ids IdentityReader, log *slog.Logger) *Guard {
	return &Guard{ids: ids, log: log}
}

// Mount монтирует гвард для одной сессии. Решение будет вычислено при первом
// обращении и дальше не пересматривается.
func (g *Guard) Mount(sessionID string) *Mount {
	return &Mount{guard: g, sessionID: sessionID}
}

// Mount одно монтирование гварда.
type Mount struct {
	guard     *Guard
	sessionID string
	resolved  bool
	decision  Decision
}

// Decision возвращает решение гварда, вычисляя его при первом вызове.
// Нет токена — показываем содержимое; токен есть — перенаправляем на домашнюю
// страницу роли. Ошибка чтения хранилища не блокирует публичные страницы.
func (m *Mount) Decision(ctx context.Context) Decision {
	const op = "guard.Mount.Decision"
	if m.resolved {
		return m.decision
	}
	m.resolved = true

	identity, err := m.guard.ids.Identity(ctx, m.sessionID)
	if err != nil {
		m.guard.log.Error("failed to read session", slog.String("op", op), sl.Err(err))
		m.decision = Decision{Show: true}
		return m.decision
	}

	if !identity.Authenticated() {
		m.decision = Decision{Show: true}
		return m.decision
	}

	m.decision = Decision{Redirect: Destination(identity.Role)}
	return m.decision
}
