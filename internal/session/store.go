// Package session хранит сохранённую сессию пользователя: токен и роль
// под фиксированными ключами в redis. Это аналог localStorage браузерного
// клиента — гейтвей кладёт пару при входе и читает её при каждой оценке гварда.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/delivery-frontend/internal/config"
	"github.com/magabrotheeeer/delivery-frontend/internal/models"
)

// Store redis-хранилище сессий.
type Store struct {
	Db *redis.Client
}

// InitServer подключается к redis и проверяет соединение.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Store, error) {
	const op = "session.Initserver"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{Db: db}, nil
}

func tokenKey(id string) string {
	return "session:" + id + ":token"
}

func roleKey(id string) string {
	return "session:" + id + ":role"
}

// Save сохраняет пару токен/роль сессии с одинаковым временем жизни.
func (s *Store) Save(ctx context.Context, id string, identity models.SessionIdentity, ttl time.Duration) error {
	const op = "session.Save"
	if err := s.Db.Set(ctx, tokenKey(id), identity.Token, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.Db.Set(ctx, roleKey(id), identity.Role, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Identity читает пару токен/роль. Отсутствующие ключи — не ошибка:
// возвращается пустая SessionIdentity, что и означает "не авторизован".
func (s *Store) Identity(ctx context.Context, id string) (models.SessionIdentity, error) {
	const op = "session.Identity"
	var identity models.SessionIdentity

	token, err := s.Db.Get(ctx, tokenKey(id)).Result()
	if err != nil && err != redis.Nil {
		return identity, fmt.Errorf("%s: %w", op, err)
	}
	identity.Token = token

	role, err := s.Db.Get(ctx, roleKey(id)).Result()
	if err != nil && err != redis.Nil {
		return identity, fmt.Errorf("%s: %w", op, err)
	}
	identity.Role = role

	return identity, nil
}

// Invalidate удаляет пару токен/роль сессии.
func (s *Store) Invalidate(ctx context.Context, id string) error {
	const op = "session.Invalidate"
	if err := s.Db.Del(ctx, tokenKey(id), roleKey(id)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
