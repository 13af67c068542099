// Package dashboard composes every dashboard view from one store snapshot
package dashboard

import (
	"context"
	"fmt"

	"github.com/bobmcallan/stb/internal/common"
	"github.com/bobmcallan/stb/internal/interfaces"
	"github.com/bobmcallan/stb/internal/models"
	"github.com/bobmcallan/stb/internal/services/charts"
	"github.com/bobmcallan/stb/internal/services/market"
	"github.com/bobmcallan/stb/internal/services/portfolio"
)

// Compile-time interface check
var _ interfaces.DashboardService = (*Service)(nil)

// Service implements DashboardService
type Service struct {
	state    interfaces.StateReader
	currency string
	logger   *common.Logger
}

// NewService creates a new dashboard service
func NewService(state interfaces.StateReader, currency string, logger *common.Logger) *Service {
	return &Service{
		state:    state,
		currency: currency,
		logger:   logger,
	}
}

// Build takes one snapshot and derives every view from it.
func (s *Service) Build(ctx context.Context) (*models.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := s.state.Snapshot()
	d := Compose(snap, s.currency)

	s.logger.Debug().
		Uint64("version", d.Version).
		Int("holdings", d.Summary.NumberOfHoldings).
		Str("sectors", d.SectorAllocation.State.String()).
		Msg("Dashboard built")

	return d, nil
}

// Compose runs the derivation pipeline over a snapshot. Each base view is
// computed once and passed to the views built on it.
func Compose(snap models.State, currency string) *models.Dashboard {
	p := snap.CurrentPortfolio

	sectors := portfolio.SectorAllocation(p)
	trend := market.Trend(snap.NseAsi)

	return &models.Dashboard{
		Version:                snap.Version,
		MarketHighlights:       market.Highlights(snap.MarketHighlights),
		TrendChart:             market.TrendChart(trend),
		TopGainers:             market.TopGainers(snap.TopGainers),
		TopLosers:              market.TopLosers(snap.TopLosers),
		NumberOfAccounts:       market.NumberOfAccounts(snap.Portfolios),
		Summary:                portfolio.Summarize(p, currency),
		SectorAllocation:       sectors,
		StockAllocation:        portfolio.StockAllocation(p),
		SectorAllocationChart:  portfolio.SectorAllocationChart(sectors),
		SectorPerformanceChart: portfolio.SectorPerformanceChart(sectors),
		StockHoldings:          portfolio.StockHoldings(p),
		BondHoldings:           portfolio.BondHoldings(p),
		SelectedCashAccount:    snap.SelectedCashAccount,
		CashStatements:         nonNilStatements(snap.CashStatements),
	}
}

func nonNilStatements(in []models.CashStatement) []models.CashStatement {
	if in == nil {
		return []models.CashStatement{}
	}
	return in
}

// ChartFor builds the config of a named chart from a snapshot.
func ChartFor(name string, snap models.State) (models.ChartConfig, error) {
	switch name {
	case charts.NameTrend:
		return market.TrendChart(market.Trend(snap.NseAsi)), nil
	case charts.NameSectorAllocation:
		return portfolio.SectorAllocationChart(portfolio.SectorAllocation(snap.CurrentPortfolio)), nil
	case charts.NameSectorPerformance:
		return portfolio.SectorPerformanceChart(portfolio.SectorAllocation(snap.CurrentPortfolio)), nil
	default:
		return models.ChartConfig{}, fmt.Errorf("%w: %s", charts.ErrUnsupportedChart, name)
	}
}
