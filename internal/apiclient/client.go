// Package apiclient реализует HTTP-клиент удалённого API платформы доставки.
// Все запросы гейтвея к бэкенду проходят через этот клиент: регистрация,
// вход, жалобы, оценки и привязка курьера к ресторану.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrLoginFailed неверная пара email/пароль или отказ бэкенда.
var ErrLoginFailed = errors.New("invalid email or password")

// ErrComplaintServiceUnavailable сервис жалоб недоступен (бэкенд ответил 404).
// Единственный случай, когда статус ответа превращается в отдельное сообщение.
var ErrComplaintServiceUnavailable = errors.New("complaint service is not available")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создает клиент удалённого API платформы доставки.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// PostJSON отправляет тело на конечную точку и возвращает код ответа.
// Тело ответа не читается: вызывающим хватает статуса.
func (c *Client) PostJSON(ctx context.Context, path string, body any) (int, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, "", body)
	if err != nil {
		return 0, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Login выполняет вход и возвращает токен вместе с ролью пользователя.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	const op = "apiclient.Login"
	req, err := c.newRequest(ctx, http.MethodPost, "/login", "", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrLoginFailed
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &loginResp, nil
}

// SubmitComplaint отправляет жалобу покупателя.
func (c *Client) SubmitComplaint(ctx context.Context, token, customerID, message string) error {
	const op = "apiclient.SubmitComplaint"
	req, err := c.newRequest(ctx, http.MethodPost, "/complaints/submit", token, ComplaintRequest{
		CustomerID: customerID,
		Message:    message,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrComplaintServiceUnavailable
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%s: unexpected status %s", op, resp.Status)
	}
	return nil
}

// SubmitRating отправляет оценку ресторана с необязательным отзывом.
func (c *Client) SubmitRating(ctx context.Context, token string, rating RatingRequest) error {
	const op = "apiclient.SubmitRating"
	req, err := c.newRequest(ctx, http.MethodPost, "/feedback/submit", token, rating)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%s: unexpected status %s", op, resp.Status)
	}
	return nil
}

// AssignRestaurantByName привязывает курьера к ресторану по его названию.
// Название передаётся параметром запроса, тело пустое.
func (c *Client) AssignRestaurantByName(ctx context.Context, token, courierID, restaurantName string) error {
	const op = "apiclient.AssignRestaurantByName"
	path := fmt.Sprintf("/couriers/%s/assign-restaurant-by-name?restaurantName=%s",
		url.PathEscape(courierID), url.QueryEscape(restaurantName))
	req, err := c.newRequest(ctx, http.MethodPost, path, token, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %s", op, resp.Status)
	}
	return nil
}
