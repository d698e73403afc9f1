package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_TTL_HOURS", "abc")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.AllowRegister)
	assert.Equal(t, "secret", cfg.JWTSecret)
}

func TestLoadProdNeedsSecret(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "rahasia")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.False(t, cfg.AllowRegister)
	assert.Equal(t, "rahasia", cfg.JWTSecret)
}

func TestLoadCompany(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("COMPANY_NAME", "PT Maju Jaya")
	t.Setenv("COMPANY_PHONE", "0812")
	t.Setenv("ALLOW_REGISTER", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "PT Maju Jaya", cfg.Company.Name)
	assert.Equal(t, "0812", cfg.Company.Phone)
	assert.False(t, cfg.AllowRegister)
}
