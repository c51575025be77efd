package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	LogLevel   string
	LogFile    string
	AsyncDelay time.Duration
}

const (
	defaultLogLevel     = "info"
	defaultAsyncDelayMs = 1000
)

// NewFromEnv creates a Config by reading environment variables and applying
// defaults. LOG_FILE is empty by default: logs then go to stderr only, so
// standard output keeps carrying nothing but the report lines.
func NewFromEnv() *Config {
	c := &Config{}
	c.LogLevel = getenv("LOG_LEVEL", defaultLogLevel)
	c.LogFile = os.Getenv("LOG_FILE")
	c.AsyncDelay = time.Duration(getenvInt("ASYNC_DELAY_MS", defaultAsyncDelayMs)) * time.Millisecond
	return c
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
