// Package config loads server configuration from defaults, an optional
// YAML file and BOOKHUB_-prefixed environment variables, in that order
// of precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "BOOKHUB_CONFIG"

var defaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/bookhub/config.yaml",
}

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Dataset DatasetConfig `koanf:"dataset"`
	Scrape  ScrapeConfig  `koanf:"scrape"`
	Log     LogConfig     `koanf:"log"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatasetConfig struct {
	BooksPath        string `koanf:"books_path"`
	RecordsPath      string `koanf:"records_path"`
	AnnouncementPath string `koanf:"announcement_path"`
}

type ScrapeConfig struct {
	BaseURL     string        `koanf:"base_url"`
	Timeout     time.Duration `koanf:"timeout"`
	MaxBrowsers int64         `koanf:"max_browsers"`
	Headless    bool          `koanf:"headless"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8888",
			ShutdownTimeout: 10 * time.Second,
		},
		Dataset: DatasetConfig{
			BooksPath:        "data/books.json",
			RecordsPath:      "data/record.json",
			AnnouncementPath: "data/announcement.json",
		},
		Scrape: ScrapeConfig{
			BaseURL:     "https://search.books.com.tw",
			Timeout:     30 * time.Second,
			MaxBrowsers: 2,
			Headless:    true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the effective configuration. A missing config file is not
// an error; defaults plus environment cover the common case.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// BOOKHUB_SERVER_ADDR -> server.addr, BOOKHUB_SCRAPE_MAX_BROWSERS ->
	// scrape.max_browsers, and so on. Only the first underscore separates
	// the section from the key.
	if err := k.Load(env.Provider("BOOKHUB_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "BOOKHUB_"))
	section, key, found := strings.Cut(s, "_")
	if !found {
		return s
	}
	return section + "." + key
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	for _, p := range defaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
