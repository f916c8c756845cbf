// ABOUTME: Configuration loader for the tourbase-admin CLI
// ABOUTME: Loads settings from flags, environment variables, and .env files

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIURL is used when no flag or environment override is set.
	DefaultAPIURL = "http://localhost:5000"

	// DefaultHTTPTimeout bounds every backend call.
	DefaultHTTPTimeout = 30 * time.Second
)

// Config holds runtime settings for the admin console.
type Config struct {
	APIURL      string        // backend base URL
	ConfigDir   string        // where session files and the debug log live
	HTTPTimeout time.Duration // transport timeout for backend calls
}

// Load builds a Config from the environment, reading a .env file first if one
// exists in the working directory. The flagURL argument wins over everything
// when non-empty.
func Load(flagURL string) *Config {
	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:      ensureScheme(getEnv("TOURBASE_API_URL", DefaultAPIURL)),
		ConfigDir:   getEnv("TOURBASE_CONFIG_DIR", DefaultConfigDir()),
		HTTPTimeout: getEnvDuration("TOURBASE_HTTP_TIMEOUT", DefaultHTTPTimeout),
	}

	if flagURL != "" {
		cfg.APIURL = ensureScheme(flagURL)
	}

	return cfg
}

// DefaultConfigDir returns the default config directory following XDG spec.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tourbase")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tourbase")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

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

// ensureScheme adds http:// prefix if the URL has no scheme
func ensureScheme(url string) string {
	if url == "" {
		return url
	}
	if !strings.Contains(url, "://") {
		url = "http://" + url
	}
	return strings.TrimRight(url, "/")
}
