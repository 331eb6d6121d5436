package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		ServerPort: "8080",
		ServerHost: "0.0.0.0",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBName:     "portfolio",
		DBSSLMode:  "disable",
	}
}

func TestValidateConfig(t *testing.T) {
	t.Run("accepts a minimal development config", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(validTestConfig()))
	})

	t.Run("rejects non-numeric port", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.ServerPort = "http"
		assert.Error(t, ValidateConfig(cfg))
	})

	t.Run("rejects missing database name", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.DBName = ""
		assert.Error(t, ValidateConfig(cfg))
	})

	t.Run("rejects unknown ssl mode", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.DBSSLMode = "maybe"
		assert.Error(t, ValidateConfig(cfg))
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("FRONTEND_ORIGIN", "")
	t.Setenv("GEMINI_API_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.GeminiAPIURL)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := validTestConfig()
	cfg.DBPassword = "secret"

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=portfolio sslmode=disable",
		cfg.DatabaseDSN())
}
