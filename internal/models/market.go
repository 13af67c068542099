package models

// MarketHighlights is the daily market snapshot shown at the top of the dashboard.
type MarketHighlights struct {
	LastTradePrice Number `json:"lastTradePrice"`
	Delta          Number `json:"delta"`
	RefPriceDttm   string `json:"refPriceDttm"`
	VolumeTraded   Number `json:"volumeTraded"`
	ValueTraded    Number `json:"valueTraded"`
	NumberOfDeals  Number `json:"numberOfDeals"`
}

// IndexDay is one daily close of the NSE All-Share Index.
// CreatedDttm has the form "2006-01-02 15:04:05".
type IndexDay struct {
	CreatedDttm  string `json:"createdDttm"`
	ClosingPrice Number `json:"closingPrice"`
}

// Mover is a top gainer or loser of the day.
type Mover struct {
	Symbol             string  `json:"symbol"`
	PercentPriceChange float64 `json:"percentPriceChange"`
}

// HighlightRow is a labelled market highlight for the dashboard table.
type HighlightRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MoverRow is a gainer/loser table row; Change is formatted to 2 decimal places.
type MoverRow struct {
	Symbol string `json:"symbol"`
	Change string `json:"change"`
}

// TrendSeries is the index trend in ascending date order with its Y-axis bounds.
type TrendSeries struct {
	Dates         []string  `json:"dates"`
	Values        []float64 `json:"values"`
	MinimumValue  float64   `json:"minimumValue"`
	MaximumValue  float64   `json:"maximumValue"`
	YAxisInterval float64   `json:"yAxisInterval"`
}
