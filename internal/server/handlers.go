package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bobmcallan/stb/internal/models"
	"github.com/bobmcallan/stb/internal/services/charts"
	"github.com/bobmcallan/stb/internal/services/dashboard"
	"github.com/bobmcallan/stb/internal/services/market"
	"github.com/bobmcallan/stb/internal/services/portfolio"
)

// handleDashboard handles GET /api/dashboard.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	d, err := s.app.DashboardService.Build(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to build dashboard: "+err.Error())
		return
	}
	WriteJSONWithETag(w, r, d)
}

// --- Market ---

func (s *Server) handleMarketHighlights(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, market.Highlights(s.app.Store.Snapshot().MarketHighlights))
}

type trendResponse struct {
	Series models.TrendSeries `json:"series"`
	Chart  models.ChartConfig `json:"chart"`
}

func (s *Server) handleMarketTrend(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	series := market.Trend(s.app.Store.Snapshot().NseAsi)
	WriteJSON(w, http.StatusOK, trendResponse{Series: series, Chart: market.TrendChart(series)})
}

func (s *Server) handleMarketGainers(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, market.TopGainers(s.app.Store.Snapshot().TopGainers))
}

func (s *Server) handleMarketLosers(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, market.TopLosers(s.app.Store.Snapshot().TopLosers))
}

// --- Portfolio ---

type summaryResponse struct {
	models.Summary
	NumberOfAccounts int `json:"numberOfAccounts"`
}

func (s *Server) handlePortfolioSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	snap := s.app.Store.Snapshot()
	WriteJSON(w, http.StatusOK, summaryResponse{
		Summary:          portfolio.Summarize(snap.CurrentPortfolio, s.app.Config.Dashboard.Currency),
		NumberOfAccounts: market.NumberOfAccounts(snap.Portfolios),
	})
}

func (s *Server) handleStockHoldings(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, portfolio.StockHoldings(s.app.Store.Snapshot().CurrentPortfolio))
}

func (s *Server) handleBondHoldings(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, portfolio.BondHoldings(s.app.Store.Snapshot().CurrentPortfolio))
}

// allocationResponse carries the tri-state explicitly alongside the data,
// which is null when unset and [] when the portfolio has no holdings.
type allocationResponse struct {
	State string               `json:"state"`
	Data  models.AllocationSet `json:"data"`
}

func (s *Server) handleSectorAllocation(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	set := portfolio.SectorAllocation(s.app.Store.Snapshot().CurrentPortfolio)
	WriteJSON(w, http.StatusOK, allocationResponse{State: set.State.String(), Data: set})
}

func (s *Server) handleStockAllocation(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	set := portfolio.StockAllocation(s.app.Store.Snapshot().CurrentPortfolio)
	WriteJSON(w, http.StatusOK, allocationResponse{State: set.State.String(), Data: set})
}

func (s *Server) handleSectorAllocationChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	sectors := portfolio.SectorAllocation(s.app.Store.Snapshot().CurrentPortfolio)
	WriteJSON(w, http.StatusOK, portfolio.SectorAllocationChart(sectors))
}

func (s *Server) handleSectorPerformanceChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	sectors := portfolio.SectorAllocation(s.app.Store.Snapshot().CurrentPortfolio)
	WriteJSON(w, http.StatusOK, portfolio.SectorPerformanceChart(sectors))
}

// handleChartPNG handles GET /api/charts/{name}.png.
func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	name := PathParam(r, "/api/charts/", "")
	if !strings.HasSuffix(name, ".png") {
		WriteError(w, http.StatusNotFound, "Chart not found")
		return
	}
	name = strings.TrimSuffix(name, ".png")

	snap := s.app.Store.Snapshot()
	cfg, err := dashboard.ChartFor(name, snap)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Chart not found: "+name)
		return
	}

	png, err := s.app.Charts.Render(name, snap.Version, cfg)
	if err != nil {
		if errors.Is(err, charts.ErrNotEnoughData) {
			WriteErrorWithCode(w, http.StatusNotFound, err.Error(), "no_data")
			return
		}
		s.logger.Warn().Err(err).Str("chart", name).Msg("Chart render failed")
		WriteError(w, http.StatusInternalServerError, "Failed to render chart")
		return
	}
	WritePNG(w, png)
}
