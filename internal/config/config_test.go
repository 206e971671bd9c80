package config

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput перехватывает вывод log.Fatal
func captureOutput(f func()) (string, bool) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	oldFlags := log.Flags()
	log.SetFlags(0)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(oldFlags)
	}()

	panicked := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
			}
		}()
		f()
	}()

	return buf.String(), panicked
}

func writeTempConfig(t *testing.T, content string) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Remove(tmpFile.Name()))
	})

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	originalPath := os.Getenv("CONFIG_PATH")
	t.Cleanup(func() {
		require.NoError(t, os.Setenv("CONFIG_PATH", originalPath))
	})
	require.NoError(t, os.Setenv("CONFIG_PATH", tmpFile.Name()))
}

func TestMustLoad_ValidConfig(t *testing.T) {
	writeTempConfig(t, `
env: test
http_server:
  addresshttp: ":8080"
  timeouthttp: 30s
  idle_timeout: 60s
redis_connection:
  addressredis: "localhost:6379"
  password: "redis_pass"
  user: "redis_user"
  db: 1
  max_retries: 3
  dial_timeout: 5s
  timeoutredis: 10s
api_client:
  base_url: "http://localhost:8081/api"
  timeoutapi: 10s
session:
  ttl: 24h
  cookie_name: "session_id"
`)

	output, panicked := captureOutput(func() {
		cfg := MustLoad()

		assert.Equal(t, "test", cfg.Env)
		assert.Equal(t, ":8080", cfg.AddressHTTP)
		assert.Equal(t, 30*time.Second, cfg.TimeoutHTTP)
		assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
		assert.Equal(t, "localhost:6379", cfg.AddressRedis)
		assert.Equal(t, "redis_pass", cfg.Password)
		assert.Equal(t, "redis_user", cfg.User)
		assert.Equal(t, 1, cfg.DB)
		assert.Equal(t, 3, cfg.MaxRetries)
		assert.Equal(t, 5*time.Second, cfg.DialTimeout)
		assert.Equal(t, 10*time.Second, cfg.TimeoutRedis)
		assert.Equal(t, "http://localhost:8081/api", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.TimeoutAPI)
		assert.Equal(t, 24*time.Hour, cfg.TTL)
		assert.Equal(t, "session_id", cfg.CookieName)
	})

	assert.Empty(t, output)
	assert.False(t, panicked)
}

func TestConfig_String(t *testing.T) {
	writeTempConfig(t, `
env: prod
http_server:
  addresshttp: ":9090"
redis_connection:
  addressredis: "redis:6379"
api_client:
  base_url: "http://backend:8080"
session:
  cookie_name: "session_id"
`)

	var cfg *Config
	output, panicked := captureOutput(func() {
		cfg = MustLoad()
	})
	assert.Empty(t, output)
	assert.False(t, panicked)

	s := cfg.String()
	assert.Contains(t, s, "Env: prod")
	assert.Contains(t, s, "BaseURL: http://backend:8080")
	assert.Contains(t, s, "CookieName: session_id")
}
