// Package schema определяет, какие поля формы создания пользователя обязательны
// для выбранной роли. Соответствие роль → дополнительные поля задано таблицей,
// поэтому добавление роли — изменение данных, а не логики.
package schema

import "github.com/magabrotheeeer/delivery-frontend/internal/models"

// baseFields всегда обязательные поля, независимо от роли.
var baseFields = []string{
	models.FieldName,
	models.FieldEmail,
	models.FieldPassword,
	models.FieldPhone,
	models.FieldRole,
}

// extraFields дополнительные обязательные поля для ролей, которым они нужны.
// Роли без записи в таблице дополнительных полей не имеют.
var extraFields = map[models.Role][]string{
	models.RoleCustomer: {
		models.FieldCity,
		models.FieldDistrict,
		models.FieldAddress,
	},
	models.RoleRestaurantOwner: {
		models.FieldCity,
		models.FieldDistrict,
		models.FieldAddress,
		models.FieldBusinessHoursStart,
		models.FieldBusinessHoursEnd,
		models.FieldCuisineType,
		models.FieldDeliveryType,
	},
}

// BaseFields возвращает базовый набор обязательных полей.
func BaseFields() []string {
	out := make([]string, len(baseFields))
	copy(out, baseFields)
	return out
}

// ExtraFields возвращает упорядоченный набор дополнительных обязательных полей
// для роли. Для courier, admin и невыбранной роли набор пуст.
func ExtraFields(role models.Role) []string {
	extra, ok := extraFields[role]
	if !ok {
		return nil
	}
	out := make([]string, len(extra))
	copy(out, extra)
	return out
}

// RequiredFields возвращает полный упорядоченный набор обязательных полей для
// роли: базовые поля, затем дополнительные.
func RequiredFields(role models.Role) []string {
	return append(BaseFields(), ExtraFields(role)...)
}

// MissingFields возвращает обязательные для роли черновика поля, оставшиеся
// пустыми. deliveryType сюда попасть не может: у него всегда есть значение
// по умолчанию.
func MissingFields(draft models.UserDraft) []string {
	var missing []string
	for _, name := range RequiredFields(draft.Role) {
		if value, ok := draft.FieldValue(name); ok && value == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
