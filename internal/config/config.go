// Package config reads the render service settings from the environment. A
// .env file in the working directory is loaded first when present; variables
// already set in the environment win over it.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/phanxgames/wordcloud/internal/server"
)

const (
	DefaultAddr     = ":8080"
	DefaultMaxWords = server.DefaultMaxWords
	DefaultTimeout  = server.DefaultTimeout
)

// ServeConfig holds the defaults of the serve command. Flags override them.
type ServeConfig struct {
	Addr        string
	Font        string
	OptionsFile string
	MaxWords    int
	Timeout     time.Duration
}

// Load reads WORDCLOUD_* variables, falling back to defaults for unset or
// malformed values.
func Load() ServeConfig {
	_ = godotenv.Load()

	return ServeConfig{
		Addr:        getEnv("WORDCLOUD_ADDR", DefaultAddr),
		Font:        getEnv("WORDCLOUD_FONT", ""),
		OptionsFile: getEnv("WORDCLOUD_CONFIG", ""),
		MaxWords:    getEnvInt("WORDCLOUD_MAX_WORDS", DefaultMaxWords),
		Timeout:     getEnvDuration("WORDCLOUD_TIMEOUT", DefaultTimeout),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("45s") or plain seconds ("45").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
