package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/delivery-frontend/internal/models"
)

func TestDefaultUserDraft(t *testing.T) {
	draft := models.DefaultUserDraft()

	assert.Empty(t, draft.Name)
	assert.Empty(t, draft.Email)
	assert.Empty(t, draft.Password)
	assert.Empty(t, draft.Phone)
	assert.Equal(t, models.RoleUnset, draft.Role)
	assert.Equal(t, models.DeliveryTypeDelivery, draft.DeliveryType)
}

func TestUserDraft_WithField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
	}{
		{name: "set name", field: models.FieldName, value: "Ali"},
		{name: "set email", field: models.FieldEmail, value: "ali@example.com"},
		{name: "set valid role", field: models.FieldRole, value: "customer"},
		{name: "set unknown role", field: models.FieldRole, value: "superuser", wantErr: true},
		{name: "set pickup delivery type", field: models.FieldDeliveryType, value: "PICKUP"},
		{name: "set invalid delivery type", field: models.FieldDeliveryType, value: "TELEPORT", wantErr: true},
		{name: "set unknown field", field: "nickname", value: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := models.DefaultUserDraft()
			updated, err := draft.WithField(tt.field, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			got, ok := updated.FieldValue(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestUserDraft_WithField_DoesNotMutateOthers(t *testing.T) {
	draft := models.DefaultUserDraft()
	draft, err := draft.WithField(models.FieldCity, "Istanbul")
	require.NoError(t, err)

	updated, err := draft.WithField(models.FieldDistrict, "Kadikoy")
	require.NoError(t, err)

	assert.Equal(t, "Istanbul", updated.City)
	assert.Equal(t, "Kadikoy", updated.District)
	assert.Equal(t, models.DeliveryTypeDelivery, updated.DeliveryType)
	// Исходная копия не изменилась.
	assert.Empty(t, draft.District)
}

func TestParseRole(t *testing.T) {
	role, err := models.ParseRole("restaurant_owner")
	require.NoError(t, err)
	assert.Equal(t, models.RoleRestaurantOwner, role)

	role, err = models.ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUnset, role)

	_, err = models.ParseRole("bogus_role")
	assert.Error(t, err)
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, models.RoleCustomer.Valid())
	assert.True(t, models.RoleCourier.Valid())
	assert.True(t, models.RoleRestaurantOwner.Valid())
	assert.True(t, models.RoleAdmin.Valid())
	assert.False(t, models.RoleUnset.Valid())
	assert.False(t, models.Role("bogus_role").Valid())
}

func TestSessionIdentity_Authenticated(t *testing.T) {
	assert.False(t, models.SessionIdentity{}.Authenticated())
	assert.False(t, models.SessionIdentity{Role: "admin"}.Authenticated())
	assert.True(t, models.SessionIdentity{Token: "t"}.Authenticated())
}
