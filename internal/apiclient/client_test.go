package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/delivery-frontend/internal/apiclient"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return apiclient.NewClient(srv.URL, 5*time.Second)
}

func TestPostJSON(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	status, err := client.PostJSON(context.Background(), "/register", map[string]string{"name": "Ayse"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "/register", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Ayse", gotBody["name"])
}

func TestPostJSON_ReturnsStatusAsIs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	status, err := client.PostJSON(context.Background(), "/register", nil)

	// Неуспешный статус не является ошибкой транспорта.
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestLogin_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req apiclient.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ayse@example.com", req.Email)
		assert.Equal(t, "secret123", req.Password)

		json.NewEncoder(w).Encode(apiclient.LoginResponse{
			Token: "jwt-token",
			Email: req.Email,
			Role:  "CUSTOMER",
		})
	})

	resp, err := client.Login(context.Background(), "ayse@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "CUSTOMER", resp.Role)
}

func TestLogin_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	resp, err := client.Login(context.Background(), "ayse@example.com", "wrong")

	assert.ErrorIs(t, err, apiclient.ErrLoginFailed)
	assert.Nil(t, resp)
}

func TestSubmitComplaint(t *testing.T) {
	var gotAuth string
	var gotReq apiclient.ComplaintRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/complaints/submit", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.WriteHeader(http.StatusOK)
	})

	err := client.SubmitComplaint(context.Background(), "jwt-token", "42", "cold food")

	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt-token", gotAuth)
	assert.Equal(t, apiclient.ComplaintRequest{CustomerID: "42", Message: "cold food"}, gotReq)
}

func TestSubmitComplaint_ServiceUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.SubmitComplaint(context.Background(), "jwt-token", "42", "cold food")

	assert.ErrorIs(t, err, apiclient.ErrComplaintServiceUnavailable)
}

func TestSubmitRating(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK},
		{name: "created", status: http.StatusCreated},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/feedback/submit", r.URL.Path)
				w.WriteHeader(tt.status)
			})

			err := client.SubmitRating(context.Background(), "jwt-token", apiclient.RatingRequest{
				CustomerID:   "42",
				RestaurantID: "7",
				Rating:       5,
				Review:       "great",
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssignRestaurantByName(t *testing.T) {
	var gotPath, gotName string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotName = r.URL.Query().Get("restaurantName")
		w.WriteHeader(http.StatusOK)
	})

	err := client.AssignRestaurantByName(context.Background(), "jwt-token", "9", "Deniz Balik & Kebap")

	require.NoError(t, err)
	assert.Equal(t, "/couriers/9/assign-restaurant-by-name", gotPath)
	// Название с пробелами и спецсимволами должно пережить кодирование.
	assert.Equal(t, "Deniz Balik & Kebap", gotName)
}
