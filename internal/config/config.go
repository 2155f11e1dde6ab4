package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Config struct {
	OutputDir string
	LogLevel  string

	HTTPUserAgent        string
	HTTPConnectTimeoutMs int
	HTTPReadTimeoutMs    int

	ScrapeConcurrency int
	ScrapeKeepGoing   bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		LogLevel:  getEnv("LOG_LEVEL", "info"),

		HTTPUserAgent:        getEnv("HTTP_USER_AGENT", defaultUserAgent),
		HTTPConnectTimeoutMs: getEnvInt("HTTP_CONNECT_TIMEOUT_MS", 3000),
		HTTPReadTimeoutMs:    getEnvInt("HTTP_READ_TIMEOUT_MS", 10000),

		ScrapeConcurrency: getEnvInt("SCRAPE_CONCURRENCY", 1),
		ScrapeKeepGoing:   getEnvBool("SCRAPE_KEEP_GOING", false),
	}

	return cfg, nil
}

func (c Config) ConnectTimeout() time.Duration {
	return time.Duration(c.HTTPConnectTimeoutMs) * time.Millisecond
}

func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.HTTPReadTimeoutMs) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
