package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Run("empty environment yields zero config", func(t *testing.T) {
		cfg := &StructuredConfig{}
		require.NoError(t, parseEnv(cfg))
		assert.Equal(t, &StructuredConfig{}, cfg)
	})

	t.Run("nested prefixes map to nested fields", func(t *testing.T) {
		t.Setenv("SERVER_ADDRESS", "localhost:8080")
		t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
		t.Setenv("ADAPTER_ADDRESS", "http://localhost:8080")
		t.Setenv("ADAPTER_REQUEST_TIMEOUT", "15s")
		t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://waylight@localhost:5432/waylight")
		t.Setenv("STORAGE_QUEUE_PATH", "/var/lib/waylight/queue.db")
		t.Setenv("WORKERS_SYNC_INTERVAL", "5m")
		t.Setenv("CONFIG", "/etc/waylight/config.json")

		cfg := &StructuredConfig{}
		require.NoError(t, parseEnv(cfg))

		assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
		assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
		assert.Equal(t, "postgres://waylight@localhost:5432/waylight", cfg.Storage.DB.DSN)
		assert.Equal(t, "/var/lib/waylight/queue.db", cfg.Storage.Queue.Path)
		assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
		assert.Equal(t, "/etc/waylight/config.json", cfg.JSONFilePath)
	})

	t.Run("malformed duration is an error", func(t *testing.T) {
		t.Setenv("WORKERS_SYNC_INTERVAL", "not-a-duration")

		cfg := &StructuredConfig{}
		require.Error(t, parseEnv(cfg))
	})
}
