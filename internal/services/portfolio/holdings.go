package portfolio

import "github.com/bobmcallan/stb/internal/models"

// StockHoldings returns the equity holdings enriched for the holdings table.
// PercentageOfPortfolio is measured against TotalValue (cash included), unlike
// the allocation views which use the sum of holding valuations.
func StockHoldings(p models.Portfolio) []models.StockHolding {
	total := TotalValue(p)
	out := []models.StockHolding{}

	for _, h := range Holdings(p) {
		if h.SecurityType != models.SecurityTypeEquity {
			continue
		}
		valuation := h.Valuation.Float64()
		totalCost := h.CostBasis.Float64() * h.QuantityHeld.Float64()
		gainOrLoss := valuation - totalCost

		out = append(out, models.StockHolding{
			PortfolioHolding:      h,
			PercentageOfPortfolio: models.Ratio(valuation, total) * 100,
			TotalCost:             totalCost,
			GainOrLoss:            gainOrLoss,
			PercentageGainOrLoss:  models.Ratio(gainOrLoss, totalCost) * 100,
		})
	}
	return out
}

// BondHoldings returns the bond holdings with a zero-based ID, face value and
// accrued coupon.
func BondHoldings(p models.Portfolio) []models.BondHolding {
	out := []models.BondHolding{}

	for _, h := range Holdings(p) {
		if h.SecurityType != models.SecurityTypeBond {
			continue
		}
		qty := h.QuantityHeld.Float64()

		out = append(out, models.BondHolding{
			PortfolioHolding: h,
			ID:               len(out),
			FaceValue:        qty * h.ParValue.Float64(),
			AccruedCoupon:    (h.DirtyPrice.Float64() - h.MarketPrice.Float64()) * qty,
		})
	}
	return out
}
