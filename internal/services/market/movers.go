package market

import (
	"math"

	"github.com/bobmcallan/stb/internal/models"
)

// TopGainers formats the day's gainers with the change to 2 decimal places.
func TopGainers(movers []models.Mover) []models.MoverRow {
	rows := make([]models.MoverRow, 0, len(movers))
	for _, m := range movers {
		rows = append(rows, models.MoverRow{Symbol: m.Symbol, Change: models.Fixed2(m.PercentPriceChange)})
	}
	return rows
}

// TopLosers formats the day's losers; the change is shown unsigned.
func TopLosers(movers []models.Mover) []models.MoverRow {
	rows := make([]models.MoverRow, 0, len(movers))
	for _, m := range movers {
		rows = append(rows, models.MoverRow{Symbol: m.Symbol, Change: models.Fixed2(math.Abs(m.PercentPriceChange))})
	}
	return rows
}
