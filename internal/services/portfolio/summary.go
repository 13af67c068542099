// Package portfolio derives dashboard views from the current STB portfolio.
//
// Every function here is pure: it takes a models.Portfolio value (or a view
// computed from one) and returns new data. Numeric fields that are malformed
// parse to NaN, which propagates into the results.
package portfolio

import "github.com/bobmcallan/stb/internal/models"

// IsPortfolioUnset reports whether no portfolio attribute is set.
func IsPortfolioUnset(p models.Portfolio) bool {
	return p.IsUnset()
}

// TotalValue returns availableCash + currentValuation, or 0 when the
// portfolio is unset or either amount is missing.
func TotalValue(p models.Portfolio) float64 {
	if p.IsUnset() || p.AvailableCash == nil || p.CurrentValuation == nil {
		return 0
	}
	return p.AvailableCash.Amount.Float64() + p.CurrentValuation.Amount.Float64()
}

// AcquisitionCost returns the portfolio's cost basis, or 0 when unset.
func AcquisitionCost(p models.Portfolio) float64 {
	if p.IsUnset() || p.CostBasis == nil {
		return 0
	}
	return p.CostBasis.Amount.Float64()
}

// GainOrLoss returns currentValuation - costBasis, or 0 when the portfolio is
// unset or either amount is missing.
func GainOrLoss(p models.Portfolio) float64 {
	if p.IsUnset() || p.CurrentValuation == nil || p.CostBasis == nil {
		return 0
	}
	return p.CurrentValuation.Amount.Float64() - p.CostBasis.Amount.Float64()
}

// GainOrLossPercentage returns gainOrLoss as a percentage of the cost basis.
// A zero gain or a zero cost basis yields 0.
func GainOrLossPercentage(gainOrLoss float64, p models.Portfolio) float64 {
	if gainOrLoss == 0 {
		return 0
	}
	return models.Ratio(gainOrLoss, AcquisitionCost(p)) * 100
}

// Holdings returns the portfolio's holdings, never nil.
func Holdings(p models.Portfolio) []models.PortfolioHolding {
	if p.IsUnset() || p.PortfolioHoldings == nil {
		return []models.PortfolioHolding{}
	}
	return p.PortfolioHoldings
}

// Summarize computes the headline figures once.
func Summarize(p models.Portfolio, currency string) models.Summary {
	gain := GainOrLoss(p)
	s := models.Summary{
		IsUnset:              p.IsUnset(),
		AcquisitionCost:      AcquisitionCost(p),
		TotalValue:           TotalValue(p),
		GainOrLoss:           gain,
		GainOrLossPercentage: GainOrLossPercentage(gain, p),
		NumberOfHoldings:     len(Holdings(p)),
		Currency:             currency,
	}
	s.Display = models.SummaryDisplay{
		AcquisitionCost: models.FormatAmount(s.AcquisitionCost, currency),
		TotalValue:      models.FormatAmount(s.TotalValue, currency),
		GainOrLoss:      models.FormatAmount(s.GainOrLoss, currency),
	}
	return s
}
