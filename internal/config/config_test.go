package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8880, cfg.App.Port)
	assert.Equal(t, "careerconnect", cfg.Mongo.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "message.sent", cfg.Kafka.Topic)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
app:
  env: production
  port: 9000
  token_ttl_hours: 24
mongodb:
  database: careerconnect_test
kafka:
  enabled: true
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, "careerconnect_test", cfg.Mongo.Database)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)

	// untouched keys keep defaults
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}
