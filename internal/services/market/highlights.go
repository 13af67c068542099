// Package market derives the market section of the dashboard: highlights,
// top movers and the NSE ASI trend.
package market

import "github.com/bobmcallan/stb/internal/models"

// Highlights returns the six market highlight rows in display order.
// "Market Cap" shows refPriceDttm; the broker feed has no market cap field
// and the dashboard has always shown the reference time there.
func Highlights(h models.MarketHighlights) []models.HighlightRow {
	return []models.HighlightRow{
		{Label: "All share Index", Value: h.LastTradePrice.String()},
		{Label: "Index Change", Value: h.Delta.String()},
		{Label: "Market Cap", Value: h.RefPriceDttm},
		{Label: "Vol. Traded", Value: h.VolumeTraded.String()},
		{Label: "Value Traded", Value: h.ValueTraded.String()},
		{Label: "Number of Deals", Value: h.NumberOfDeals.String()},
	}
}

// NumberOfAccounts returns the number of portfolios in the user's STB account.
func NumberOfAccounts(portfolios []models.Portfolio) int {
	return len(portfolios)
}
