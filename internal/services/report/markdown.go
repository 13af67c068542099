package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/bobmcallan/stb/internal/models"
)

// FormatSummary renders the portfolio summary with allocations and holdings as markdown.
func FormatSummary(d *models.Dashboard) string {
	var sb strings.Builder
	s := d.Summary

	sb.WriteString("# STB Portfolio\n\n")
	if s.IsUnset {
		sb.WriteString("_No portfolio selected._\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("**Accounts:** %d\n", d.NumberOfAccounts))
	sb.WriteString(fmt.Sprintf("**Acquisition Cost:** %s\n", s.Display.AcquisitionCost))
	sb.WriteString(fmt.Sprintf("**Total Value:** %s\n", s.Display.TotalValue))
	sb.WriteString(fmt.Sprintf("**Gain/Loss:** %s (%s%%)\n\n", s.Display.GainOrLoss, models.Fixed2(s.GainOrLossPercentage)))

	if rows := allocationRows(d.SectorAllocation); len(rows) > 0 {
		sb.WriteString("## Sector Allocation\n\n")
		sb.WriteString(markdownTable([]string{"Sector", "Value", "% of Portfolio", "% Gain"}, rows))
		sb.WriteString("\n")
	}

	if len(d.StockHoldings) > 0 {
		rows := make([][]string, 0, len(d.StockHoldings))
		for _, h := range d.StockHoldings {
			rows = append(rows, []string{
				h.SecurityName,
				h.QuantityHeld.String(),
				models.FormatAmount(h.TotalCost, s.Currency),
				models.FormatAmount(h.Valuation.Float64(), s.Currency),
				models.FormatAmount(h.GainOrLoss, s.Currency),
				models.Fixed2(h.PercentageGainOrLoss),
				models.Fixed2(h.PercentageOfPortfolio),
			})
		}
		sb.WriteString("## Stocks\n\n")
		sb.WriteString(markdownTable([]string{"Security", "Qty", "Total Cost", "Value", "Gain/Loss", "% Gain/Loss", "% of Portfolio"}, rows))
		sb.WriteString("\n")
	}

	if len(d.BondHoldings) > 0 {
		rows := make([][]string, 0, len(d.BondHoldings))
		for _, b := range d.BondHoldings {
			rows = append(rows, []string{
				fmt.Sprintf("%d", b.ID),
				b.SecurityName,
				b.QuantityHeld.String(),
				models.FormatAmount(b.FaceValue, s.Currency),
				models.FormatAmount(b.AccruedCoupon, s.Currency),
			})
		}
		sb.WriteString("## Bonds\n\n")
		sb.WriteString(markdownTable([]string{"#", "Security", "Qty", "Face Value", "Accrued Coupon"}, rows))
	}

	return sb.String()
}

// FormatMarket renders market highlights and movers as markdown.
func FormatMarket(d *models.Dashboard) string {
	var sb strings.Builder
	sb.WriteString("# Market\n\n")

	rows := make([][]string, 0, len(d.MarketHighlights))
	for _, h := range d.MarketHighlights {
		rows = append(rows, []string{h.Label, h.Value})
	}
	sb.WriteString(markdownTable([]string{"Highlight", "Value"}, rows))
	sb.WriteString("\n")

	movers := func(title string, list []models.MoverRow) {
		if len(list) == 0 {
			return
		}
		rows := make([][]string, 0, len(list))
		for _, m := range list {
			rows = append(rows, []string{m.Symbol, m.Change + "%"})
		}
		sb.WriteString("## " + title + "\n\n")
		sb.WriteString(markdownTable([]string{"Symbol", "Change"}, rows))
		sb.WriteString("\n")
	}
	movers("Top Gainers", d.TopGainers)
	movers("Top Losers", d.TopLosers)

	return sb.String()
}

// FormatStatements renders a fetch result and the statements in the store.
// Statement records are opaque, so columns are the sorted union of their keys.
func FormatStatements(result models.FetchResult, statements []models.CashStatement) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Cash Statements: %s\n\n", result.AccountNumber))
	sb.WriteString(fmt.Sprintf("**Period:** %s to %s\n", result.StartDate, result.EndDate))
	sb.WriteString(fmt.Sprintf("**Outcome:** %s\n\n", result.Outcome))

	if !result.Committed() {
		return sb.String()
	}
	if len(statements) == 0 {
		sb.WriteString("_No statements in this period._\n")
		return sb.String()
	}

	keySet := make(map[string]bool)
	for _, st := range statements {
		for k := range st {
			keySet[k] = true
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(statements))
	for _, st := range statements {
		row := make([]string, len(keys))
		for i, k := range keys {
			if v, ok := st[k]; ok && v != nil {
				row[i] = fmt.Sprintf("%v", v)
			}
		}
		rows = append(rows, row)
	}
	sb.WriteString(markdownTable(keys, rows))
	return sb.String()
}

func allocationRows(set models.AllocationSet) [][]string {
	items := set.Items()
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, []string{
			a.Name,
			models.Fixed2(a.Y),
			models.Fixed2(a.PercentageOfPortfolio),
			models.Fixed2(a.PercentageGain),
		})
	}
	return rows
}

// markdownTable renders a GitHub-flavoured markdown table.
func markdownTable(header []string, rows [][]string) string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.AppendBulk(rows)
	table.Render()
	return sb.String()
}
