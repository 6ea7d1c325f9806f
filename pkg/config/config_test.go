package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8888", cfg.Server.Addr)
	assert.Equal(t, "data/books.json", cfg.Dataset.BooksPath)
	assert.Equal(t, int64(2), cfg.Scrape.MaxBrowsers)
	assert.True(t, cfg.Scrape.Headless)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BOOKHUB_SERVER_ADDR", ":9999")
	t.Setenv("BOOKHUB_LOG_LEVEL", "debug")
	t.Setenv("BOOKHUB_SCRAPE_MAX_BROWSERS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, int64(5), cfg.Scrape.MaxBrowsers)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":7777"
  shutdown_timeout: 5s
scrape:
  timeout: 10s
`), 0o644))
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7777", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.Scrape.Timeout)
	// untouched keys keep their defaults
	assert.Equal(t, "data/record.json", cfg.Dataset.RecordsPath)
}

func TestEnvTransform(t *testing.T) {
	assert.Equal(t, "server.addr", envTransform("BOOKHUB_SERVER_ADDR"))
	assert.Equal(t, "scrape.max_browsers", envTransform("BOOKHUB_SCRAPE_MAX_BROWSERS"))
	assert.Equal(t, "dataset.books_path", envTransform("BOOKHUB_DATASET_BOOKS_PATH"))
}
