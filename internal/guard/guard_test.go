package guard_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/delivery-frontend/internal/guard"
	"github.com/magabrotheeeer/delivery-frontend/internal/models"
)

type IdentityReaderMock struct {
	mock.Mock
}

func (m *IdentityReaderMock) Identity(ctx context.Context, sessionID string) (models.SessionIdentity, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(models.SessionIdentity), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestDestination(t *testing.T) {
	tests := []struct {
		name string
		role string
		want string
	}{
		{name: "admin", role: "admin", want: "/admin"},
		{name: "customer", role: "customer", want: "/customer-dashboard"},
		{name: "restaurant owner", role: "restaurant_owner", want: "/restaurant-dashboard"},
		{name: "courier", role: "courier", want: "/courier-dashboard"},
		{name: "unknown role falls back", role: "bogus_role", want: "/home"},
		{name: "empty role falls back", role: "", want: "/home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guard.Destination(tt.role))
		})
	}
}

func TestMount_Decision_NoToken(t *testing.T) {
	idsMock := new(IdentityReaderMock)
	// Роль без токена аутентификацией не считается.
	idsMock.On("Identity", mock.Anything, "sid-1").
		Return(models.SessionIdentity{Role: "admin"}, nil).Once()

	g := guard.New(idsMock, newNoopLogger())
	decision := g.Mount("sid-1").Decision(context.Background())

	assert.True(t, decision.Show)
	assert.Empty(t, decision.Redirect)
	idsMock.AssertExpectations(t)
}

func TestMount_Decision_Authenticated(t *testing.T) {
	idsMock := new(IdentityReaderMock)
	idsMock.On("Identity", mock.Anything, "sid-2").
		Return(models.SessionIdentity{Token: "jwt", Role: "restaurant_owner"}, nil).Once()

	g := guard.New(idsMock, newNoopLogger())
	decision := g.Mount("sid-2").Decision(context.Background())

	assert.False(t, decision.Show)
	assert.Equal(t, "/restaurant-dashboard", decision.Redirect)
}

func TestMount_Decision_UnknownRole(t *testing.T) {
	idsMock := new(IdentityReaderMock)
	idsMock.On("Identity", mock.Anything, "sid-3").
		Return(models.SessionIdentity{Token: "jwt", Role: "bogus_role"}, nil).Once()

	g := guard.New(idsMock, newNoopLogger())
	decision := g.Mount("sid-3").Decision(context.Background())

	assert.Equal(t, "/home", decision.Redirect)
}

func TestMount_Decision_StoreError(t *testing.T) {
	idsMock := new(IdentityReaderMock)
	idsMock.On("Identity", mock.Anything, "sid-4").
		Return(models.SessionIdentity{}, errors.New("redis: connection refused")).Once()

	g := guard.New(idsMock, newNoopLogger())
	decision := g.Mount("sid-4").Decision(context.Background())

	// Недоступное хранилище не должно блокировать публичные страницы.
	assert.True(t, decision.Show)
}

func TestMount_Decision_EvaluatedOnce(t *testing.T) {
	idsMock := new(IdentityReaderMock)
	idsMock.On("Identity", mock.Anything, "sid-5").
		Return(models.SessionIdentity{Token: "jwt", Role: "customer"}, nil).Once()

	g := guard.New(idsMock, newNoopLogger())
	m := g.Mount("sid-5")

	first := m.Decision(context.Background())
	second := m.Decision(context.Background())
	third := m.Decision(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	idsMock.AssertNumberOfCalls(t, "Identity", 1)
}

func TestMount_SeparateMountsReevaluate(t *testing.T) {
	idsMock := new(IdentityReaderMock)
	idsMock.On("Identity", mock.Anything, "sid-6").
		Return(models.SessionIdentity{}, nil).Once()
	idsMock.On("Identity", mock.Anything, "sid-6").
		Return(models.SessionIdentity{Token: "jwt", Role: "courier"}, nil).Once()

	g := guard.New(idsMock, newNoopLogger())

	assert.True(t, g.Mount("sid-6").Decision(context.Background()).Show)
	assert.Equal(t, "/courier-dashboard", g.Mount("sid-6").Decision(context.Background()).Redirect)
	idsMock.AssertNumberOfCalls(t, "Identity", 2)
}
