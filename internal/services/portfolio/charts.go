package portfolio

import "github.com/bobmcallan/stb/internal/models"

// Bar colours of the sector performance chart.
const (
	GainColor = "#00FF00"
	LossColor = "#FF0000"
)

// SectorAllocationChart wraps sector allocation data in a pie chart config.
func SectorAllocationChart(sectors models.AllocationSet) models.ChartConfig {
	return models.ChartConfig{
		Chart: models.ChartOptions{
			Type:       models.ChartTypePie,
			PlotShadow: models.Bool(false),
		},
		Title:   models.Text{},
		Credits: models.Toggle{Enabled: false},
		Legend: &models.Legend{
			Align:         "right",
			VerticalAlign: "middle",
			Layout:        "vertical",
		},
		Tooltip: &models.Tooltip{
			PointFormat: "<b>{point.percentage:.1f}%</b>",
		},
		PlotOptions: &models.PlotOptions{
			Pie: &models.PieOptions{
				Size:             "100%",
				AllowPointSelect: true,
				Cursor:           "pointer",
				DataLabels: models.DataLabels{
					Enabled:  true,
					Format:   "{point.percentage:.2f} %",
					Distance: -50,
				},
				ShowInLegend: true,
			},
		},
		Series: []models.Series{{
			Name:         "SECTOR PERFORMANCE",
			ColorByPoint: true,
			Data:         sectors,
		}},
	}
}

// SectorPerformanceChart builds a column chart with one bar per sector,
// green for a gain (or zero) and red for a loss.
func SectorPerformanceChart(sectors models.AllocationSet) models.ChartConfig {
	points := []models.ColumnPoint{}
	categories := []string{}

	for _, s := range sectors.Items() {
		color := GainColor
		if s.PercentageGain < 0 {
			color = LossColor
		}
		points = append(points, models.ColumnPoint{Y: s.PercentageGain, Color: color})
		categories = append(categories, s.Name)
	}

	return models.ChartConfig{
		Chart: models.ChartOptions{
			Type:          models.ChartTypeColumn,
			VerticalAlign: "middle",
		},
		Title:   models.Text{},
		Credits: models.Toggle{Enabled: false},
		Tooltip: &models.Tooltip{
			HeaderFormat: `<span style="font-size:10px">{point.key}</span><table>`,
			PointFormat: `<tr><td style="color:{series.color};padding:0"> </td>` +
				`<td style="padding:0"><b>{point.y:.1f} %</b></td></tr>`,
			FooterFormat: "</table>",
			Shared:       true,
			UseHTML:      true,
		},
		XAxis: &models.XAxis{Categories: categories},
		Legend: &models.Legend{
			Enabled: models.Bool(false),
			Align:   "left",
		},
		YAxis: &models.YAxis{
			Title: models.Text{Text: "( % )"},
		},
		Series: []models.Series{{Data: points}},
	}
}
