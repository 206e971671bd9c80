package apiclient

// LoginRequest тело запроса входа.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse ответ бэкенда на вход. Роль приходит в том регистре,
// в котором её хранит бэкенд.
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ComplaintRequest тело жалобы покупателя.
type ComplaintRequest struct {
	CustomerID string `json:"customerId"`
	Message    string `json:"message"`
}

// RatingRequest оценка ресторана покупателем.
type RatingRequest struct {
	CustomerID   string `json:"customerId"`
	RestaurantID string `json:"restaurantId"`
	Rating       int    `json:"rating"`
	Review       string `json:"review"`
}
