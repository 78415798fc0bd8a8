package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, time.Hour, cfg.JWT.TTL())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "2112", cfg.Metrics.Port)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "acervo")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "acervo")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("JWT_EXPIRE_MINUTES", "15")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL())
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "host=db port=5432 user=acervo password=pw dbname=acervo sslmode=disable TimeZone=UTC", cfg.Database.DSN())
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestNewLogger(t *testing.T) {
	logger, err := (&LogConfig{Level: "debug", Format: "json"}).NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger, err = (&LogConfig{Level: "warn", Format: "text"}).NewLogger()
	require.NoError(t, err)
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	_, err = (&LogConfig{Level: "loud"}).NewLogger()
	assert.Error(t, err)
}
