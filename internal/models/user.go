// Package models содержит доменную модель клиентской части платформы доставки еды:
// черновик создаваемого пользователя, роли учётных записей и сохранённую сессию.
// Структуры используются формой регистрации, гвардом и при обращении к удалённому API.
package models

import "fmt"

// Role роль учётной записи, выбранная при создании пользователя.
// Значения совместимы с проводным форматом удалённого API.
type Role string

const (
	// RoleUnset роль ещё не выбрана в форме
	RoleUnset Role = ""
	// RoleCustomer покупатель
	RoleCustomer Role = "customer"
	// RoleCourier курьер
	RoleCourier Role = "courier"
	// RoleRestaurantOwner владелец ресторана
	RoleRestaurantOwner Role = "restaurant_owner"
	// RoleAdmin администратор
	RoleAdmin Role = "admin"
)

// Valid сообщает, является ли роль одной из четырёх конкретных ролей.
// RoleUnset конкретной ролью не считается.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleCourier, RoleRestaurantOwner, RoleAdmin:
		return true
	}
	return false
}

// ParseRole преобразует строку в Role. Пустая строка — RoleUnset.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if r == RoleUnset || r.Valid() {
		return r, nil
	}
	return RoleUnset, fmt.Errorf("unknown role: %q", s)
}

// DeliveryType способ получения заказа у ресторана.
type DeliveryType string

const (
	// DeliveryTypeDelivery доставка курьером, значение по умолчанию
	DeliveryTypeDelivery DeliveryType = "DELIVERY"
	// DeliveryTypePickup самовывоз
	DeliveryTypePickup DeliveryType = "PICKUP"
)

// Имена полей черновика в проводном формате (camelCase, как их ждёт API).
const (
	FieldName               = "name"
	FieldEmail              = "email"
	FieldPassword           = "password"
	FieldPhone              = "phone"
	FieldRole               = "role"
	FieldAddress            = "address"
	FieldCity               = "city"
	FieldDistrict           = "district"
	FieldBusinessHoursStart = "businessHoursStart"
	FieldBusinessHoursEnd   = "businessHoursEnd"
	FieldCuisineType        = "cuisineType"
	FieldDeliveryType       = "deliveryType"
)

// UserDraft черновик создаваемого пользователя — суперсет полей по всем ролям.
// Поля, не относящиеся к выбранной роли, сохраняются до явного сброса и
// отправляются вместе с остальными: сервер игнорирует лишние ключи.
type UserDraft struct {
	Name               string       `json:"name"`
	Email              string       `json:"email"`
	Password           string       `json:"password"`
	Phone              string       `json:"phone"`
	Role               Role         `json:"role"`
	Address            string       `json:"address"`
	City               string       `json:"city"`
	District           string       `json:"district"`
	BusinessHoursStart string       `json:"businessHoursStart"`
	BusinessHoursEnd   string       `json:"businessHoursEnd"`
	CuisineType        string       `json:"cuisineType"`
	DeliveryType       DeliveryType `json:"deliveryType"`
}

// DefaultUserDraft возвращает черновик с пустыми полями и deliveryType=DELIVERY.
func DefaultUserDraft() UserDraft {
	return UserDraft{DeliveryType: DeliveryTypeDelivery}
}

// WithField возвращает копию черновика с заменённым единственным полем.
// Роль и deliveryType принимают только допустимые значения перечислений,
// остальные поля — произвольные строки. Неизвестное имя поля — ошибка.
func (d UserDraft) WithField(name, value string) (UserDraft, error) {
	switch name {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPassword:
		d.Password = value
	case FieldPhone:
		d.Phone = value
	case FieldRole:
		role, err := ParseRole(value)
		if err != nil {
			return d, err
		}
		d.Role = role
	case FieldAddress:
		d.Address = value
	case FieldCity:
		d.City = value
	case FieldDistrict:
		d.District = value
	case FieldBusinessHoursStart:
		d.BusinessHoursStart = value
	case FieldBusinessHoursEnd:
		d.BusinessHoursEnd = value
	case FieldCuisineType:
		d.CuisineType = value
	case FieldDeliveryType:
		switch DeliveryType(value) {
		case DeliveryTypeDelivery, DeliveryTypePickup:
			d.DeliveryType = DeliveryType(value)
		default:
			return d, fmt.Errorf("unknown delivery type: %q", value)
		}
	default:
		return d, fmt.Errorf("unknown draft field: %q", name)
	}
	return d, nil
}

// FieldValue возвращает значение поля по проводному имени.
func (d UserDraft) FieldValue(name string) (string, bool) {
	switch name {
	case FieldName:
		return d.Name, true
	case FieldEmail:
		return d.Email, true
	case FieldPassword:
		return d.Password, true
	case FieldPhone:
		return d.Phone, true
	case FieldRole:
		return string(d.Role), true
	case FieldAddress:
		return d.Address, true
	case FieldCity:
		return d.City, true
	case FieldDistrict:
		return d.District, true
	case FieldBusinessHoursStart:
		return d.BusinessHoursStart, true
	case FieldBusinessHoursEnd:
		return d.BusinessHoursEnd, true
	case FieldCuisineType:
		return d.CuisineType, true
	case FieldDeliveryType:
		return string(d.DeliveryType), true
	}
	return "", false
}

// SessionIdentity сохранённая сессия: токен и роль в сыром виде.
// Роль не проверяется на допустимость — гвард сам решает, куда вести
// пользователя с неизвестной ролью. Отсутствие токена — единственный
// признак неавторизованного пользователя.
type SessionIdentity struct {
	Token string
	Role  string
}

// Authenticated сообщает, есть ли у сессии токен.
func (s SessionIdentity) Authenticated() bool {
	return s.Token != ""
}
