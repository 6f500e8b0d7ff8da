package config_test

import (
	"testing"

	"daily/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	conf, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", conf.Server.Port)
	assert.Equal(t, "daily", conf.App.Name)
	assert.Equal(t, "redis", conf.App.RateLimiter.Backend)
	assert.Equal(t, 100, conf.App.RateLimiter.MaxRequests)
	assert.Equal(t, "disable", conf.DB.Postgres.Write.SSLMode)
	assert.Equal(t, "http://localhost:8080/api/", conf.Client.BaseURL)
	assert.Zero(t, conf.Client.TimeoutSeconds)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_RATE_LIMITER_BACKEND", "memory")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("DB_POSTGRES_READ_HOST", "replica")
	t.Setenv("CACHE_REDIS_PRIMARY_DB", "2")
	t.Setenv("CLIENT_TIMEOUT_SECONDS", "15")

	conf, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", conf.Server.Port)
	assert.Equal(t, "memory", conf.App.RateLimiter.Backend)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, conf.App.CORS.AllowedOrigins)
	assert.Equal(t, "replica", conf.DB.Postgres.Read.Host)
	assert.Equal(t, 2, conf.Cache.Redis.Primary.DB)
	assert.Equal(t, 15, conf.Client.TimeoutSeconds)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("CLIENT_TIMEOUT_SECONDS", "soon")

	_, err := config.Load()

	assert.Error(t, err)
}
