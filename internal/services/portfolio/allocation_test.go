package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/stb/internal/models"
)

func holding(name, sector, valuation, gain string) models.PortfolioHolding {
	return models.PortfolioHolding{
		SecurityName:   name,
		SecuritySector: sector,
		SecurityType:   models.SecurityTypeEquity,
		Valuation:      models.Number(valuation),
		PercentGain:    models.Number(gain),
	}
}

func withHoldings(h ...models.PortfolioHolding) models.Portfolio {
	return models.Portfolio{PortfolioHoldings: h}
}

func TestSectorAllocation_TriState(t *testing.T) {
	assert.Equal(t, models.AllocationUnset, SectorAllocation(models.Portfolio{}).State)
	assert.Equal(t, models.AllocationEmpty, SectorAllocation(models.Portfolio{CostBasis: amount("1")}).State)
	assert.Equal(t, models.AllocationEmpty, SectorAllocation(withHoldings()).State)
	assert.Equal(t, models.AllocationData, SectorAllocation(withHoldings(holding("A", "Tech", "1", "0"))).State)

	assert.Equal(t, models.AllocationUnset, StockAllocation(models.Portfolio{}).State)
	assert.Equal(t, models.AllocationEmpty, StockAllocation(withHoldings()).State)
}

func TestSectorAllocation_BothAboveThreshold(t *testing.T) {
	got := SectorAllocation(withHoldings(
		holding("CWG", "Tech", "80", "10"),
		holding("SEPLAT", "Oil", "20", "-5"),
	)).Items()

	require.Len(t, got, 2)
	assert.Equal(t, models.Allocation{Name: "Oil", Y: 20, PercentageOfPortfolio: 20, PercentageGain: -5}, got[0])
	assert.Equal(t, models.Allocation{Name: "Tech", Y: 80, PercentageOfPortfolio: 80, PercentageGain: 10}, got[1])
}

func TestSectorAllocation_SmallSectorFoldsIntoOthers(t *testing.T) {
	got := SectorAllocation(withHoldings(
		holding("CWG", "Tech", "80", "10"),
		holding("SEPLAT", "Oil", "20", "-5"),
		holding("WEMA", "Banking", "1", "2"),
	)).Items()

	require.Len(t, got, 3)
	assert.Equal(t, "Oil", got[0].Name)
	assert.Equal(t, 19.8, got[0].PercentageOfPortfolio)
	assert.Equal(t, "Tech", got[1].Name)
	assert.Equal(t, 79.21, got[1].PercentageOfPortfolio)

	others := got[2]
	assert.Equal(t, models.OthersName, others.Name)
	assert.Equal(t, 1.0, others.Y)
	assert.Equal(t, 0.99, others.PercentageOfPortfolio)
	assert.Equal(t, 2.0, others.PercentageGain)
}

func TestSectorAllocation_EqualThirdsHaveNoOthers(t *testing.T) {
	got := SectorAllocation(withHoldings(
		holding("A", "Agric", "100", "1"),
		holding("B", "Banking", "100", "2"),
		holding("C", "Conglomerates", "100", "3"),
	)).Items()

	require.Len(t, got, 3)
	for _, e := range got {
		assert.NotEqual(t, models.OthersName, e.Name)
		assert.Equal(t, 33.33, e.PercentageOfPortfolio)
	}
}

func TestSectorAllocation_SumsWithinSector(t *testing.T) {
	got := SectorAllocation(withHoldings(
		holding("ZENITH", "Banking", "60", "1.234"),
		holding("GTCO", "Banking", "40", "2.345"),
	)).Items()

	require.Len(t, got, 1)
	assert.Equal(t, 100.0, got[0].Y)
	assert.Equal(t, 100.0, got[0].PercentageOfPortfolio)
	assert.Equal(t, 3.58, got[0].PercentageGain, "plain sum of gains, rounded")
}

func TestSectorAllocation_SectorsAreCaseExact(t *testing.T) {
	got := SectorAllocation(withHoldings(
		holding("A", "banking", "50", "0"),
		holding("B", "Banking", "50", "0"),
	)).Items()

	require.Len(t, got, 2)
	assert.Equal(t, "Banking", got[0].Name)
	assert.Equal(t, "banking", got[1].Name)
}

func TestSectorAllocation_OthersAccumulatesSeveralGroups(t *testing.T) {
	got := SectorAllocation(withHoldings(
		holding("A", "Big", "90", "1"),
		holding("B", "Small1", "4", "1.5"),
		holding("C", "Small2", "3", "-0.5"),
		holding("D", "Small3", "3", "2"),
	)).Items()

	require.Len(t, got, 2)
	assert.Equal(t, "Big", got[0].Name)
	others := got[1]
	assert.Equal(t, 10.0, others.Y)
	assert.InDelta(t, 10.0, others.PercentageOfPortfolio, 1e-9)
	assert.InDelta(t, 3.0, others.PercentageGain, 1e-9)
}

func TestSectorAllocation_ZeroTotalIsGuarded(t *testing.T) {
	got := SectorAllocation(withHoldings(holding("A", "Tech", "0", "0")))
	assert.Equal(t, models.AllocationData, got.State)
	assert.Empty(t, got.Items(), "a zero-valued others entry is not appended")
}

func TestStockAllocation(t *testing.T) {
	got := StockAllocation(withHoldings(
		holding("MTNN", "Telecoms", "70", "12.3456"),
		holding("DANGCEM", "Industrial", "28", "-1.5"),
		holding("WEMA", "Banking", "2", "4"),
	)).Items()

	require.Len(t, got, 3)
	assert.Equal(t, models.Allocation{Name: "MTNN", Y: 70, PercentageOfPortfolio: 70, PercentageGain: 12.3456}, got[0],
		"stock gain is not rounded")
	assert.Equal(t, "DANGCEM", got[1].Name)
	assert.Equal(t, models.Allocation{Name: models.OthersName, Y: 2, PercentageOfPortfolio: 2, PercentageGain: 4}, got[2])
}
