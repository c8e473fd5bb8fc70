package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoi-stripe/danddy/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DANDDY_BASE_URL", "DANDDY_TIMEOUT", "DANDDY_TOKEN_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, strings.HasSuffix(cfg.TokenFile, filepath.Join(".danddy", "token")))
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DANDDY_BASE_URL", "https://play.example.com")
	t.Setenv("DANDDY_TIMEOUT", "5s")
	t.Setenv("DANDDY_TOKEN_FILE", "/tmp/danddy-token")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://play.example.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/danddy-token", cfg.TokenFile)
}

func TestValidateRejectsZeroTimeout(t *testing.T) {
	cfg := &config.Config{BaseURL: "http://localhost:8000"}
	assert.Error(t, cfg.Validate())
}
