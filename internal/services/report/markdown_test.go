package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bobmcallan/stb/internal/models"
	"github.com/bobmcallan/stb/internal/services/dashboard"
)

func sampleDashboard() *models.Dashboard {
	return dashboard.Compose(models.State{
		CurrentPortfolio: models.Portfolio{
			CostBasis:        &models.Amount{Amount: "900"},
			AvailableCash:    &models.Amount{Amount: "100"},
			CurrentValuation: &models.Amount{Amount: "1000"},
			PortfolioHoldings: []models.PortfolioHolding{
				{SecurityName: "CWG", SecuritySector: "Tech", SecurityType: models.SecurityTypeEquity,
					Valuation: "800", CostBasis: "7", QuantityHeld: "100", PercentGain: "14.29"},
				{SecurityName: "FGN2027", SecuritySector: "Government", SecurityType: models.SecurityTypeBond,
					Valuation: "200", QuantityHeld: "2", ParValue: "100", DirtyPrice: "101.5", MarketPrice: "100"},
			},
		},
		TopGainers: []models.Mover{{Symbol: "MTNN", PercentPriceChange: 9.5}},
	}, "USD")
}

func TestFormatSummary(t *testing.T) {
	out := FormatSummary(sampleDashboard())

	assert.Contains(t, out, "**Total Value:** $1,100.00")
	assert.Contains(t, out, "## Sector Allocation")
	assert.Contains(t, out, "| Government |")
	assert.Contains(t, out, "## Stocks")
	assert.Contains(t, out, "| CWG")
	assert.Contains(t, out, "## Bonds")
	assert.Contains(t, out, "$200.00", "bond face value")
	assert.Contains(t, out, "|---")
}

func TestFormatSummary_Unset(t *testing.T) {
	out := FormatSummary(dashboard.Compose(models.State{}, "USD"))
	assert.Contains(t, out, "No portfolio selected")
	assert.NotContains(t, out, "## Stocks")
}

func TestFormatMarket(t *testing.T) {
	out := FormatMarket(sampleDashboard())
	assert.Contains(t, out, "| All share Index")
	assert.Contains(t, out, "## Top Gainers")
	assert.Contains(t, out, "9.50%")
	assert.NotContains(t, out, "## Top Losers")
}

func TestFormatStatements(t *testing.T) {
	result := models.FetchResult{
		Outcome:       models.FetchCommitted,
		AccountNumber: "0011223344",
		StartDate:     "2024-02-14",
		EndDate:       "2024-03-15",
	}
	out := FormatStatements(result, []models.CashStatement{
		{"description": "Deposit", "amount": 5000.0},
		{"description": "Purchase MTNN", "amount": -1200.5, "ref": "T1"},
	})

	assert.Contains(t, out, "# Cash Statements: 0011223344")
	header := strings.Split(out, "\n")[5]
	assert.Contains(t, header, "amount")
	assert.True(t, strings.Index(header, "amount") < strings.Index(header, "description"), "columns sorted")
	assert.Contains(t, out, "Purchase MTNN")
	assert.Contains(t, out, "-1200.5")
}

func TestFormatStatements_Ignored(t *testing.T) {
	out := FormatStatements(models.FetchResult{Outcome: models.FetchSilentlyIgnored}, nil)
	assert.Contains(t, out, "silently_ignored")
	assert.NotContains(t, out, "|")
}
