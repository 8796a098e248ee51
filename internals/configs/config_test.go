package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "schoolpay")
	t.Setenv("DB_SSLMODE", "disable")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "12h")
	t.Setenv("PG_KEY", "pg-key")
	t.Setenv("API_KEY", "api-key")
	t.Setenv("ADMIN_EMAIL", "root@example.com")
	t.Setenv("ADMIN_PASSWORD", "bootstrap-secret")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "schoolpay", cfg.DBUser)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "pg-key", cfg.PGKey)
	assert.Equal(t, "api-key", cfg.PGAPIKey)

	// Admin bootstrap credentials travel through Config, not call-site
	// env reads.
	assert.Equal(t, "root@example.com", cfg.AdminEmail)
	assert.Equal(t, "bootstrap-secret", cfg.AdminPassword)
}

func TestLoadConfig_BadExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	cfg := LoadConfig()
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}
