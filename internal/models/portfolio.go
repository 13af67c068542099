// Package models defines data structures for the STB dashboard
package models

// Security types reported by the broker.
const (
	SecurityTypeEquity = "EQUITY"
	SecurityTypeBond   = "BOND"
)

// Amount is a monetary value as returned by the broker API.
type Amount struct {
	Amount   Number `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

// Portfolio represents the user's current STB portfolio.
// Every field is optional: a Portfolio with nothing set is "unset", which is
// distinct from a portfolio whose amounts are zero.
type Portfolio struct {
	ID                string             `json:"id,omitempty"`
	Name              string             `json:"name,omitempty"`
	CostBasis         *Amount            `json:"costBasis,omitempty"`
	AvailableCash     *Amount            `json:"availableCash,omitempty"`
	CurrentValuation  *Amount            `json:"currentValuation,omitempty"`
	PortfolioHoldings []PortfolioHolding `json:"portfolioHoldings"`
}

// IsUnset reports whether no attribute of the portfolio is set.
func (p Portfolio) IsUnset() bool {
	return p.ID == "" &&
		p.Name == "" &&
		p.CostBasis == nil &&
		p.AvailableCash == nil &&
		p.CurrentValuation == nil &&
		p.PortfolioHoldings == nil
}

// Clone returns a copy that shares no mutable state with p.
func (p Portfolio) Clone() Portfolio {
	c := p
	c.CostBasis = cloneAmount(p.CostBasis)
	c.AvailableCash = cloneAmount(p.AvailableCash)
	c.CurrentValuation = cloneAmount(p.CurrentValuation)
	if p.PortfolioHoldings != nil {
		c.PortfolioHoldings = make([]PortfolioHolding, len(p.PortfolioHoldings))
		copy(c.PortfolioHoldings, p.PortfolioHoldings)
	}
	return c
}

func cloneAmount(a *Amount) *Amount {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// PortfolioHolding represents a single security position.
// Bond-only fields (ParValue, DirtyPrice, MarketPrice) are empty for equities.
type PortfolioHolding struct {
	SecurityName   string `json:"securityName"`
	SecuritySector string `json:"securitySector"`
	SecurityType   string `json:"securityType"`
	Valuation      Number `json:"valuation"`
	QuantityHeld   Number `json:"quantityHeld"`
	CostBasis      Number `json:"costBasis"`
	PercentGain    Number `json:"percentGain"`
	ParValue       Number `json:"parValue,omitempty"`
	DirtyPrice     Number `json:"dirtyPrice,omitempty"`
	MarketPrice    Number `json:"marketPrice,omitempty"`
}

// StockHolding is an equity holding enriched for the holdings table.
type StockHolding struct {
	PortfolioHolding
	PercentageOfPortfolio float64 `json:"percentageOfPortfolio"`
	TotalCost             float64 `json:"totalCost"`
	GainOrLoss            float64 `json:"gainOrLoss"`
	PercentageGainOrLoss  float64 `json:"percentageGainOrLoss"`
}

// BondHolding is a bond holding enriched for the holdings table.
// ID is the zero-based position among the portfolio's bonds.
type BondHolding struct {
	PortfolioHolding
	ID            int     `json:"id"`
	FaceValue     float64 `json:"faceValue"`
	AccruedCoupon float64 `json:"accruedCoupon"`
}

// Summary holds the headline figures of the current portfolio.
type Summary struct {
	IsUnset              bool           `json:"isUnset"`
	AcquisitionCost      float64        `json:"acquisitionCost"`
	TotalValue           float64        `json:"totalValue"`
	GainOrLoss           float64        `json:"gainOrLoss"`
	GainOrLossPercentage float64        `json:"gainOrLossPercentage"`
	NumberOfHoldings     int            `json:"numberOfHoldings"`
	Currency             string         `json:"currency"`
	Display              SummaryDisplay `json:"display"`
}

// SummaryDisplay holds currency-formatted versions of the summary amounts.
type SummaryDisplay struct {
	AcquisitionCost string `json:"acquisitionCost"`
	TotalValue      string `json:"totalValue"`
	GainOrLoss      string `json:"gainOrLoss"`
}
