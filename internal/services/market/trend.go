package market

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/bobmcallan/stb/internal/models"
)

// TrendDays is the number of trading days plotted on the trend chart.
const TrendDays = 5

// Trend takes the most recent TrendDays closes from a date-descending series
// and returns them in ascending date order with the Y-axis bounds.
//
// The tick interval is ceil((max-min)/500)*100: roughly six ticks, rounded
// up to the nearest hundred.
func Trend(days []models.IndexDay) models.TrendSeries {
	n := len(days)
	if n > TrendDays {
		n = TrendDays
	}

	s := models.TrendSeries{
		Dates:  make([]string, n),
		Values: make([]float64, n),
	}
	for i, d := range days[:n] {
		j := n - 1 - i
		s.Dates[j], _, _ = strings.Cut(d.CreatedDttm, " ")
		s.Values[j] = d.ClosingPrice.Float64()
	}

	if n == 0 {
		return s
	}

	s.MinimumValue = floats.Min(s.Values)
	s.MaximumValue = floats.Max(s.Values)
	s.YAxisInterval = math.Ceil((s.MaximumValue-s.MinimumValue)/500) * 100
	return s
}

// TrendChart builds the area chart config for a trend series.
func TrendChart(s models.TrendSeries) models.ChartConfig {
	return models.ChartConfig{
		Chart:   models.ChartOptions{Type: models.ChartTypeArea},
		Title:   models.Text{},
		Credits: models.Toggle{Enabled: false},
		XAxis:   &models.XAxis{Categories: s.Dates},
		YAxis: &models.YAxis{
			Title:        models.Text{},
			Min:          models.Float(s.MinimumValue),
			Max:          models.Float(s.MaximumValue),
			TickInterval: models.Float(s.YAxisInterval),
		},
		PlotOptions: &models.PlotOptions{
			Area: &models.AreaOptions{FillOpacity: 0.6},
		},
		Series: []models.Series{{
			Name:         " ",
			Data:         s.Values,
			ShowInLegend: models.Bool(false),
		}},
	}
}
