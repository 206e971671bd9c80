// Package jwt реализует клиентский разбор JWT токена платформы доставки.
//
// Гейтвей токены не выпускает и секрета подписи не знает: подпись проверяет
// удалённый API при каждом запросе. Здесь токен только декодируется, чтобы
// достать идентификатор пользователя и роль из claims.
package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims пользовательские данные, хранящиеся в токене платформы.
type CustomClaims struct {
	ID                   string `json:"id"`    // Идентификатор пользователя
	Email                string `json:"email"` // Электронная почта
	Role                 string `json:"role"`  // Роль пользователя
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT
}

// Decoder извлекает claims из токена без проверки подписи.
type Decoder struct {
	parser *jwt.Parser
}

// NewDecoder создает новый Decoder.
func NewDecoder() *Decoder {
	return &Decoder{parser: jwt.NewParser()}
}

// DecodeClaims разбирает токен и возвращает CustomClaims.
func (d *Decoder) DecodeClaims(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.DecodeClaims"
	token, _, err := d.parser.ParseUnverified(tokenStr, &CustomClaims{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected claims type", op)
	}
	return claims, nil
}
