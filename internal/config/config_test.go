package config_test

import (
	"testing"
	"time"

	"gasvision/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "8081", cfg.AdminPort)
	assert.Equal(t, config.StoreMongo, cfg.StoreDriver)
	assert.Equal(t, "mongodb://localhost:27017/", cfg.MongoURI)
	assert.Equal(t, "gasvision_db", cfg.MongoDB)
	assert.Equal(t, config.SessionMemory, cfg.SessionBackend)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.WriteThrough)
	assert.True(t, cfg.IsDev())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"STORE_DRIVER":    "sqlite",
		"SQLITE_PATH":     "/tmp/x.db",
		"SESSION_BACKEND": "redis",
		"SESSION_TTL":     "5m",
		"WRITE_THROUGH":   "false",
		"GO_ENV":          "prod",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.False(t, cfg.WriteThrough)
	assert.False(t, cfg.IsDev())
}

func TestLoadFrom_Rejects(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"STORE_DRIVER": "oracle"})
	assert.ErrorContains(t, err, "STORE_DRIVER")

	_, err = config.LoadFrom(map[string]string{"SESSION_BACKEND": "memcached"})
	assert.ErrorContains(t, err, "SESSION_BACKEND")

	_, err = config.LoadFrom(map[string]string{"SESSION_TTL": "0s"})
	assert.ErrorContains(t, err, "SESSION_TTL")

	_, err = config.LoadFrom(map[string]string{"SESSION_TTL": "soon"})
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"STORE_DRIVER": "postgres"})
	require.NoError(t, err)
	assert.Contains(t, cfg.PostgresDSN(), "host=localhost port=5432")

	cfg.DatabaseURL = "postgres://u:p@db/x"
	assert.Equal(t, "postgres://u:p@db/x", cfg.PostgresDSN())
}
