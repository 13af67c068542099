package portfolio

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/bobmcallan/stb/internal/models"
)

// OthersThreshold is the share of the portfolio, in percent, below which a
// group is folded into the others entry.
const OthersThreshold = 5.00

// SectorAllocation groups holdings by sector. Sectors are sorted byte-wise
// and case-exact. Each sector's gain is the plain sum of its holdings'
// percentGain, rounded to 2 places.
func SectorAllocation(p models.Portfolio) models.AllocationSet {
	if p.IsUnset() {
		return models.UnsetAllocations()
	}
	holdings := Holdings(p)
	if len(holdings) == 0 {
		return models.EmptyAllocations()
	}

	total := holdingsValue(holdings)

	seen := make(map[string]bool)
	var sectors []string
	for _, h := range holdings {
		if !seen[h.SecuritySector] {
			seen[h.SecuritySector] = true
			sectors = append(sectors, h.SecuritySector)
		}
	}
	sort.Strings(sectors)

	entries := make([]models.Allocation, 0, len(sectors))
	for _, sector := range sectors {
		var value, performance float64
		for _, h := range holdings {
			if h.SecuritySector == sector {
				value += h.Valuation.Float64()
				performance += h.PercentGain.Float64()
			}
		}
		entries = append(entries, models.Allocation{
			Name:                  sector,
			Y:                     value,
			PercentageOfPortfolio: percentOf(value, total),
			PercentageGain:        models.Round2(performance),
		})
	}

	return models.AllocationsOf(bucketOthers(entries))
}

// StockAllocation treats every holding as its own group, in holding order.
func StockAllocation(p models.Portfolio) models.AllocationSet {
	if p.IsUnset() {
		return models.UnsetAllocations()
	}
	holdings := Holdings(p)
	if len(holdings) == 0 {
		return models.EmptyAllocations()
	}

	total := holdingsValue(holdings)

	entries := make([]models.Allocation, 0, len(holdings))
	for _, h := range holdings {
		value := h.Valuation.Float64()
		entries = append(entries, models.Allocation{
			Name:                  h.SecurityName,
			Y:                     value,
			PercentageOfPortfolio: percentOf(value, total),
			PercentageGain:        h.PercentGain.Float64(),
		})
	}

	return models.AllocationsOf(bucketOthers(entries))
}

// holdingsValue sums valuation over all holdings. This is the allocation
// denominator, not TotalValue.
func holdingsValue(holdings []models.PortfolioHolding) float64 {
	values := make([]float64, len(holdings))
	for i, h := range holdings {
		values[i] = h.Valuation.Float64()
	}
	return floats.Sum(values)
}

func percentOf(value, total float64) float64 {
	return models.Round2(models.Ratio(value, total) * 100)
}

// bucketOthers folds every entry under OthersThreshold into a trailing
// others entry by plain accumulation. The others entry is only appended when
// its value is nonzero.
func bucketOthers(entries []models.Allocation) []models.Allocation {
	others := models.Allocation{Name: models.OthersName}
	kept := make([]models.Allocation, 0, len(entries)+1)

	for _, e := range entries {
		if e.PercentageOfPortfolio < OthersThreshold {
			others.Y += e.Y
			others.PercentageOfPortfolio += e.PercentageOfPortfolio
			others.PercentageGain += e.PercentageGain
			continue
		}
		kept = append(kept, e)
	}

	if others.Y != 0 {
		kept = append(kept, others)
	}
	return kept
}
