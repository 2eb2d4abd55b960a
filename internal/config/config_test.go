package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "GIN_MODE", "STORE", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "DATABASE_DSN", "UPSERT_ON_UPDATE", "STRICT_DELETE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.False(t, cfg.UpsertOnUpdate)
	assert.False(t, cfg.StrictDelete)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE", StoreSQL)
	t.Setenv("DATABASE_DSN", "host=db user=jeopardy dbname=jeopardy")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("UPSERT_ON_UPDATE", "true")
	t.Setenv("STRICT_DELETE", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreSQL, cfg.Store)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.UpsertOnUpdate)
	assert.True(t, cfg.StrictDelete)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown store", env: map[string]string{"STORE": "mongo"}},
		{name: "sql without dsn", env: map[string]string{"STORE": StoreSQL, "DATABASE_DSN": ""}},
		{name: "bad redis db", env: map[string]string{"STORE": StoreMemory, "REDIS_DB": "one"}},
		{name: "bad bool", env: map[string]string{"STORE": StoreMemory, "STRICT_DELETE": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
