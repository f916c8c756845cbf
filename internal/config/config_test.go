// ABOUTME: Tests for configuration loading and precedence
// ABOUTME: Covers flag, environment, and default resolution

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOURBASE_API_URL", "")
	t.Setenv("TOURBASE_CONFIG_DIR", "")
	t.Setenv("TOURBASE_HTTP_TIMEOUT", "")

	cfg := Load("")
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
	assert.NotEmpty(t, cfg.ConfigDir)
}

func TestEnvOverridesDefault(t *testing.T) {
	t.Setenv("TOURBASE_API_URL", "https://api.tourbase.example")

	cfg := Load("")
	assert.Equal(t, "https://api.tourbase.example", cfg.APIURL)
}

func TestFlagWinsOverEnv(t *testing.T) {
	t.Setenv("TOURBASE_API_URL", "https://env.example")

	cfg := Load("https://flag.example")
	assert.Equal(t, "https://flag.example", cfg.APIURL)
}

func TestSchemeAddedAndSlashTrimmed(t *testing.T) {
	cfg := Load("backend.example:5000/")
	assert.Equal(t, "http://backend.example:5000", cfg.APIURL)

	cfg = Load("https://backend.example/")
	assert.Equal(t, "https://backend.example", cfg.APIURL)
}

func TestConfigDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TOURBASE_CONFIG_DIR", dir)

	cfg := Load("")
	assert.Equal(t, dir, cfg.ConfigDir)
}

func TestDefaultConfigDirHonorsXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	assert.Equal(t, filepath.Join(base, "tourbase"), DefaultConfigDir())
}

func TestTimeoutParsing(t *testing.T) {
	t.Setenv("TOURBASE_HTTP_TIMEOUT", "45s")
	assert.Equal(t, 45*time.Second, Load("").HTTPTimeout)

	// Bare integers read as seconds.
	t.Setenv("TOURBASE_HTTP_TIMEOUT", "10")
	assert.Equal(t, 10*time.Second, Load("").HTTPTimeout)

	// Garbage falls back to the default.
	t.Setenv("TOURBASE_HTTP_TIMEOUT", "soon")
	assert.Equal(t, DefaultHTTPTimeout, Load("").HTTPTimeout)

	// Zero and negative values are rejected.
	t.Setenv("TOURBASE_HTTP_TIMEOUT", "-5s")
	assert.Equal(t, DefaultHTTPTimeout, Load("").HTTPTimeout)
}
