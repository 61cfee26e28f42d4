package main_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	main "github.com/fwojciec/atelier/cmd/atelier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5000/api", cfg.APIURL)
		assert.Equal(t, "http://localhost:3000", cfg.SiteURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, 500*time.Millisecond, cfg.Retry.Delay)
		assert.Equal(t, 2, cfg.Retry.MaxRetries)
		assert.False(t, cfg.Retry.Disabled)
		assert.NotEmpty(t, cfg.DBPath)
	})

	t.Run("reads values from yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		data := `api_url: https://api.studio.example/api
site_url: https://studio.example
db_path: /tmp/studio.db
timeout: 3s
rate_limit: 2.5
retry:
  delay: 1s
  max_retries: 4
  exponential: true
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		cfg, err := main.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "https://api.studio.example/api", cfg.APIURL)
		assert.Equal(t, "https://studio.example", cfg.SiteURL)
		assert.Equal(t, "/tmp/studio.db", cfg.DBPath)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
		assert.InDelta(t, 2.5, cfg.RateLimit, 0.001)
		assert.Equal(t, time.Second, cfg.Retry.Delay)
		assert.Equal(t, 4, cfg.Retry.MaxRetries)
		assert.True(t, cfg.Retry.Exponential)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig("testdata/invalid.yaml")

		require.Error(t, err)
	})
}

func TestConfig_Override(t *testing.T) {
	t.Parallel()

	cfg, err := main.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	cfg.Override(main.Globals{
		APIURL:  "https://other.example/api",
		DB:      "/tmp/other.db",
		NoRetry: true,
	})

	assert.Equal(t, "https://other.example/api", cfg.APIURL)
	assert.Equal(t, "http://localhost:3000", cfg.SiteURL)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.True(t, cfg.Retry.Disabled)
}
