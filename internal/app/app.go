// Package app wires configuration, the store, clients and services into one
// App shared by cmd/stb-server and cmd/stb.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cashclient "github.com/bobmcallan/stb/internal/clients/cash"
	"github.com/bobmcallan/stb/internal/common"
	"github.com/bobmcallan/stb/internal/interfaces"
	"github.com/bobmcallan/stb/internal/services/cash"
	"github.com/bobmcallan/stb/internal/services/charts"
	"github.com/bobmcallan/stb/internal/services/dashboard"
	"github.com/bobmcallan/stb/internal/services/events"
	"github.com/bobmcallan/stb/internal/storage"
	"github.com/bobmcallan/stb/internal/store"
)

// App holds all initialized services, clients and state.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Store            *store.Store
	Storage          interfaces.SliceStore
	CashClient       interfaces.CashClient
	CashService      interfaces.CashService
	DashboardService interfaces.DashboardService
	Charts           interfaces.ChartRenderer
	Events           *events.Hub
	Dates            *common.StatementRange
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// ResolveConfigPath returns configPath, else STB_CONFIG, else stb.toml next to
// the binary, else config/stb.toml for development.
func ResolveConfigPath(configPath string) string {
	if configPath == "" {
		configPath = os.Getenv("STB_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "stb.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/stb.toml"
		}
	}
	return configPath
}

// NewApp loads configuration, builds the App and seeds the store from the
// state files. configPath may be empty.
func NewApp(ctx context.Context, configPath string) (*App, error) {
	config, err := common.LoadConfig(ResolveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)
	client := cashclient.NewClientFromConfig(config.Clients.Cash, logger)

	a, err := New(config, logger, client)
	if err != nil {
		return nil, err
	}

	if err := a.Storage.Load(ctx, a.Store); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	return a, nil
}

// New builds an App around an existing config, logger and cash client.
// The store starts empty.
func New(config *common.Config, logger *common.Logger, client interfaces.CashClient) (*App, error) {
	startupStart := time.Now()

	fileStore, err := storage.NewFileStore(logger, &config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	renderer, err := charts.NewRenderer(config.Dashboard, logger)
	if err != nil {
		return nil, err
	}

	st := store.New(logger)
	hub := events.NewHub(logger)
	st.Subscribe(hub.Publish)
	go hub.Run()
	dates := common.NewStatementRange(config.Statements)

	a := &App{
		Config:           config,
		Logger:           logger,
		Store:            st,
		Storage:          fileStore,
		CashClient:       client,
		CashService:      cash.NewService(st, client, dates, logger),
		DashboardService: dashboard.NewService(st, config.Dashboard.Currency, logger),
		Charts:           renderer,
		Events:           hub,
		Dates:            dates,
		StartupTime:      startupStart,
	}

	logger.Debug().
		Str("storage", config.Storage.Path).
		Str("cash_api", config.Clients.Cash.BaseURL).
		Dur("elapsed", time.Since(startupStart)).
		Msg("App initialised")

	return a, nil
}

// Close stops background goroutines.
func (a *App) Close() {
	a.Events.Stop()
}
