package models

import "time"

// State is an immutable snapshot of the dashboard store.
type State struct {
	Version             uint64           `json:"version"`
	SelectedCashAccount CashAccount      `json:"selectedCashAccount"`
	CashAccounts        []CashAccount    `json:"cashAccounts"`
	CashStatements      []CashStatement  `json:"cashStatements"`
	CurrentPortfolio    Portfolio        `json:"currentPortfolio"`
	Portfolios          []Portfolio      `json:"portfolios"`
	MarketHighlights    MarketHighlights `json:"marketHighlights"`
	NseAsi              []IndexDay       `json:"nseAsi"`
	TopGainers          []Mover          `json:"topGainers"`
	TopLosers           []Mover          `json:"topLosers"`
}

// Dashboard is every view the dashboard renders, derived from one snapshot.
type Dashboard struct {
	Version                uint64          `json:"version"`
	MarketHighlights       []HighlightRow  `json:"marketHighlights"`
	TrendChart             ChartConfig     `json:"trendChart"`
	TopGainers             []MoverRow      `json:"topGainers"`
	TopLosers              []MoverRow      `json:"topLosers"`
	NumberOfAccounts       int             `json:"numberOfAccounts"`
	Summary                Summary         `json:"summary"`
	SectorAllocation       AllocationSet   `json:"sectorAllocation"`
	StockAllocation        AllocationSet   `json:"stockAllocation"`
	SectorAllocationChart  ChartConfig     `json:"sectorAllocationChart"`
	SectorPerformanceChart ChartConfig     `json:"sectorPerformanceChart"`
	StockHoldings          []StockHolding  `json:"stockHoldings"`
	BondHoldings           []BondHolding   `json:"bondHoldings"`
	SelectedCashAccount    CashAccount     `json:"selectedCashAccount"`
	CashStatements         []CashStatement `json:"cashStatements"`
}

// StateEvent announces a committed store mutation.
type StateEvent struct {
	Mutation  string    `json:"mutation"`
	Version   uint64    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}
