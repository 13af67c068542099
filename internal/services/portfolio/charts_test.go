package portfolio

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/stb/internal/models"
)

func TestSectorPerformanceChart_ColoursByGain(t *testing.T) {
	sectors := SectorAllocation(withHoldings(
		holding("CWG", "Tech", "80", "10"),
		holding("SEPLAT", "Oil", "20", "-5"),
		holding("FLAT", "Flat", "20", "0"),
	))
	cfg := SectorPerformanceChart(sectors)

	assert.Equal(t, models.ChartTypeColumn, cfg.Chart.Type)
	assert.Equal(t, []string{"Flat", "Oil", "Tech"}, cfg.XAxis.Categories)
	assert.Equal(t, []models.ColumnPoint{
		{Y: 0, Color: GainColor},
		{Y: -5, Color: LossColor},
		{Y: 10, Color: GainColor},
	}, cfg.Series[0].Data)
	assert.Equal(t, "( % )", cfg.YAxis.Title.Text)
	assert.False(t, *cfg.Legend.Enabled)
}

func TestSectorPerformanceChart_UnsetHasEmptySeries(t *testing.T) {
	cfg := SectorPerformanceChart(models.UnsetAllocations())

	out, err := json.Marshal(cfg)
	require.NoError(t, err)

	var decoded struct {
		XAxis  struct{ Categories []string } `json:"xAxis"`
		Series []struct {
			Data []interface{} `json:"data"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.NotNil(t, decoded.XAxis.Categories)
	require.Len(t, decoded.Series, 1)
	assert.NotNil(t, decoded.Series[0].Data)
	assert.Empty(t, decoded.Series[0].Data)
}

func TestSectorAllocationChart(t *testing.T) {
	sectors := SectorAllocation(withHoldings(holding("CWG", "Tech", "80", "10")))
	cfg := SectorAllocationChart(sectors)

	assert.Equal(t, models.ChartTypePie, cfg.Chart.Type)
	assert.Equal(t, "SECTOR PERFORMANCE", cfg.Series[0].Name)
	assert.True(t, cfg.Series[0].ColorByPoint)
	assert.Equal(t, -50, cfg.PlotOptions.Pie.DataLabels.Distance)
	assert.Equal(t, "right", cfg.Legend.Align)

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"data":[{"name":"Tech","y":80,"percentageOfPortfolio":100,"percentageGain":10}]`)
	assert.Contains(t, string(out), `"credits":{"enabled":false}`)
}

func TestSectorAllocationChart_UnsetDataIsNull(t *testing.T) {
	out, err := json.Marshal(SectorAllocationChart(models.UnsetAllocations()))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"data":null`)
}
