// Package config loads process configuration from the environment, reading a
// local .env file first when one exists.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Address      string
	DatabasePath string
	CatalogPath  string
	WeightsPath  string
	LogLevel     slog.Level
}

// Load reads .env (if present) and then the environment. Variables that are
// already set win over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Address:      getEnv("API_ADDRESS", ":8080"),
		DatabasePath: getEnv("DATABASE_PATH", "data/phones.db"),
		CatalogPath:  getEnv("CATALOG_PATH", "data/phones.json"),
		WeightsPath:  getEnv("WEIGHTS_PATH", "configs/weights.yaml"),
		LogLevel:     level,
	}, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return l, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
