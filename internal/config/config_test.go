package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("log_level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10, cfg.API.PageSize)
	assert.Equal(t, 3, cfg.API.Retry.MaxAttempts)
	assert.Equal(t, 3, cfg.Feed.PrefetchThreshold)
	require.NotNil(t, cfg.Feed.MountRadius)
	assert.Equal(t, 2, *cfg.Feed.MountRadius)
	assert.Equal(t, 5*time.Second, cfg.Feed.AutoplayInterval)
	assert.Equal(t, time.Second, cfg.Feed.TickInterval)
	assert.Nil(t, cfg.Feed.InitialItemID)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "shorts_feed", cfg.RabbitMQ.Exchange)
	assert.Empty(t, cfg.RabbitMQ.URL)
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("SHORTS_TOKEN", "secret-token")

	cfg, err := Parse([]byte(`
auth:
  token: ${SHORTS_TOKEN}
feed:
  initial_item_id: 42
  mount_radius: 4
`))
	require.NoError(t, err)

	assert.Equal(t, "secret-token", cfg.Auth.Token)
	require.NotNil(t, cfg.Feed.InitialItemID)
	assert.Equal(t, int64(42), *cfg.Feed.InitialItemID)
	assert.Equal(t, 4, *cfg.Feed.MountRadius)
}

func TestParse_ExplicitZeroMountRadius(t *testing.T) {
	cfg, err := Parse([]byte("feed:\n  mount_radius: 0\n"))
	require.NoError(t, err)

	require.NotNil(t, cfg.Feed.MountRadius)
	assert.Equal(t, 0, *cfg.Feed.MountRadius)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: http://market.test\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://market.test", cfg.API.BaseURL)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("feed: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
