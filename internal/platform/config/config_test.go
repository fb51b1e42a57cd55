package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, "development", cfg.Env())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, 512, cfg.CatalogCacheSize)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com,")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	t.Setenv("CATALOG_CACHE_SIZE", "-4")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env())
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Zero(t, cfg.CatalogCacheSize)
}
