package server

import (
	"net/http"
	"time"

	"github.com/bobmcallan/stb/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Dashboard
	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/ws", s.app.Events.ServeWS)

	// Market
	mux.HandleFunc("/api/market/highlights", s.handleMarketHighlights)
	mux.HandleFunc("/api/market/trend", s.handleMarketTrend)
	mux.HandleFunc("/api/market/gainers", s.handleMarketGainers)
	mux.HandleFunc("/api/market/losers", s.handleMarketLosers)

	// Portfolio
	mux.HandleFunc("/api/portfolio/summary", s.handlePortfolioSummary)
	mux.HandleFunc("/api/portfolio/holdings/stocks", s.handleStockHoldings)
	mux.HandleFunc("/api/portfolio/holdings/bonds", s.handleBondHoldings)
	mux.HandleFunc("/api/portfolio/allocation/sectors", s.handleSectorAllocation)
	mux.HandleFunc("/api/portfolio/allocation/stocks", s.handleStockAllocation)
	mux.HandleFunc("/api/portfolio/charts/sector-allocation", s.handleSectorAllocationChart)
	mux.HandleFunc("/api/portfolio/charts/sector-performance", s.handleSectorPerformanceChart)

	// Rendered charts
	mux.HandleFunc("/api/charts/", s.handleChartPNG)

	// Cash
	mux.HandleFunc("/api/cash/accounts/select", s.handleCashAccountSelect)
	mux.HandleFunc("/api/cash/accounts", s.handleCashAccounts)
	mux.HandleFunc("/api/cash/statements/refresh", s.handleCashStatementsRefresh)
	mux.HandleFunc("/api/cash/statements", s.handleCashStatements)

	// State
	mux.HandleFunc("/api/state/", s.handleStateSlice)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	cfg := s.app.Config
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":    cfg.Environment,
		"storage_path":   cfg.Storage.Path,
		"cash_api":       cfg.Clients.Cash.BaseURL,
		"currency":       cfg.Dashboard.Currency,
		"lookback_days":  cfg.Statements.LookbackDays,
		"state_version":  s.app.Store.Version(),
		"uptime_seconds": int(time.Since(s.app.StartupTime).Seconds()),
	})
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}
