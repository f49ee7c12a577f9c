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
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "theme-storage", cfg.Theme.StorageKey)
	assert.Equal(t, TransportSimulated, cfg.Contact.Transport)
	assert.Equal(t, 2*time.Second, cfg.Contact.SimulatedDelay)
	assert.Equal(t, 5*time.Second, cfg.Contact.SuccessWindow)
	assert.Equal(t, ":8080", cfg.Server.Addr())
}

func TestLoadHonoursDeployEnvNames(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PORTFOLIO_CONTACT_SUCCESS_WINDOW", "3s")
	t.Setenv("PORTFOLIO_THEME_PREFERS_COLOR_SCHEME", "light")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Contact.SuccessWindow)

	dark, ok := cfg.Theme.Ambient()
	assert.True(t, ok)
	assert.False(t, dark)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	body := "server:\n  port: 7000\ncontact:\n  max_retries: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Contact.MaxRetries)
}

func TestValidateRejectsSMTPWithoutCredentials(t *testing.T) {
	t.Setenv("PORTFOLIO_CONTACT_TRANSPORT", TransportSMTP)
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_PASS", "")

	_, err := Load(New(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP credentials")
}

func TestValidateRejectsUnknownTransport(t *testing.T) {
	t.Setenv("PORTFOLIO_CONTACT_TRANSPORT", "pigeon")

	_, err := Load(New(), "")
	require.Error(t, err)
}

func TestAmbientUnset(t *testing.T) {
	_, ok := ThemeConfig{}.Ambient()
	assert.False(t, ok)

	dark, ok := ThemeConfig{PrefersColorScheme: "Dark"}.Ambient()
	assert.True(t, ok)
	assert.True(t, dark)
}
