package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "$.item", cfg.Clients.Cash.ItemPath)
	assert.Equal(t, 30, cfg.Statements.LookbackDays)
	assert.Equal(t, "NGN", cfg.Dashboard.Currency)
}

func TestConfig_PortEnvOverride(t *testing.T) {
	t.Setenv("STB_PORT", "9090")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d after env override, want %d", cfg.Server.Port, 9090)
	}
}

func TestConfig_InvalidPortEnvIgnored(t *testing.T) {
	t.Setenv("STB_PORT", "not-a-port")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, 8090, cfg.Server.Port)
}

func TestConfig_CashBaseURLEnvTrimsSlash(t *testing.T) {
	t.Setenv("STB_CASH_BASE_URL", "https://api.example.com/")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, "https://api.example.com", cfg.Clients.Cash.BaseURL)
}

func TestLoadConfig_FileMergeAndMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stb.toml")
	content := `
environment = "production"

[clients.cash]
base_url = "https://broker.example.com"
timeout = "5s"

[dashboard]
currency = "usd"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(filepath.Join(dir, "missing.toml"), path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://broker.example.com", cfg.Clients.Cash.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Clients.Cash.GetTimeout())
	assert.Equal(t, "USD", cfg.Dashboard.Currency)
	// untouched sections keep their defaults
	assert.Equal(t, "/api/cash/statements", cfg.Clients.Cash.StatementsPath)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("environment = ["), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestCashConfig_GetTimeoutFallback(t *testing.T) {
	c := CashConfig{Timeout: "soon"}
	assert.Equal(t, 30*time.Second, c.GetTimeout())
}
