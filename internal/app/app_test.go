package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, dataDir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stb.toml")
	content := fmt.Sprintf(`
environment = "test"

[storage]
path = %q
versions = 0

[clients.cash]
base_url = "http://broker.test"

[dashboard]
currency = "usd"

[logging]
level = "error"
`, dataDir)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewApp_InitializesAndSeedsStore(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "portfolio.json"),
		[]byte(`{"availableCash":{"amount":"100"},"currentValuation":{"amount":"50"}}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "cash_accounts.json"),
		[]byte(`[{"id":3,"name":"0033"}]`), 0644))

	a, err := NewApp(context.Background(), writeTestConfig(t, dataDir))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	assert.NotNil(t, a.Logger)
	assert.NotNil(t, a.CashService)
	assert.NotNil(t, a.DashboardService)
	assert.NotNil(t, a.Charts)
	assert.NotNil(t, a.Events)
	assert.False(t, a.StartupTime.IsZero())
	assert.Equal(t, "USD", a.Config.Dashboard.Currency)

	snap := a.Store.Snapshot()
	assert.Equal(t, 150.0, snap.CurrentPortfolio.AvailableCash.Amount.Float64()+snap.CurrentPortfolio.CurrentValuation.Amount.Float64())
	require.Len(t, snap.CashAccounts, 1)

	d, err := a.DashboardService.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 150.0, d.Summary.TotalValue)
	assert.Equal(t, "USD", d.Summary.Currency)
}

func TestNewApp_CorruptStateFails(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "top_gainers.json"), []byte(`{`), 0644))

	_, err := NewApp(context.Background(), writeTestConfig(t, dataDir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load state")
}

func TestResolveConfigPath(t *testing.T) {
	assert.Equal(t, "explicit.toml", ResolveConfigPath("explicit.toml"))

	t.Setenv("STB_CONFIG", "/etc/stb/stb.toml")
	assert.Equal(t, "/etc/stb/stb.toml", ResolveConfigPath(""))
}
