// Package charts renders dashboard chart configs to PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/stb/internal/common"
	"github.com/bobmcallan/stb/internal/interfaces"
	"github.com/bobmcallan/stb/internal/models"
)

// Chart names served by the renderer.
const (
	NameTrend             = "trend"
	NameSectorAllocation  = "sector-allocation"
	NameSectorPerformance = "sector-performance"
)

var (
	// ErrNotEnoughData is returned when a chart has too few points to draw.
	ErrNotEnoughData = errors.New("not enough data to render chart")
	// ErrUnsupportedChart is returned for a chart type or series shape the renderer does not draw.
	ErrUnsupportedChart = errors.New("unsupported chart")
)

var trendColor = drawing.ColorFromHex("2563eb") // blue-600

// Compile-time interface check
var _ interfaces.ChartRenderer = (*Renderer)(nil)

// Renderer draws ChartConfigs with go-chart and caches the PNGs by chart
// name and store version.
type Renderer struct {
	width    int
	height   int
	cache    *lru.Cache
	logger   *common.Logger
	rendered atomic.Int64
}

// NewRenderer creates a Renderer from the dashboard config section.
func NewRenderer(cfg common.DashboardConfig, logger *common.Logger) (*Renderer, error) {
	size := cfg.ChartCacheSize
	if size <= 0 {
		size = 64
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart cache: %w", err)
	}

	r := &Renderer{
		width:  cfg.ChartWidth,
		height: cfg.ChartHeight,
		cache:  cache,
		logger: logger,
	}
	if r.width <= 0 {
		r.width = 900
	}
	if r.height <= 0 {
		r.height = 400
	}
	return r, nil
}

// Render returns the PNG for cfg. A config rendered for the same name and
// version is served from the cache.
func (r *Renderer) Render(name string, version uint64, cfg models.ChartConfig) ([]byte, error) {
	key := fmt.Sprintf("%s:%d", name, version)
	if v, ok := r.cache.Get(key); ok {
		return v.([]byte), nil
	}

	png, err := r.draw(cfg)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}

	r.cache.Add(key, png)
	r.rendered.Add(1)
	r.logger.Debug().Str("chart", name).Uint64("version", version).Int("bytes", len(png)).Msg("Chart rendered")
	return png, nil
}

func (r *Renderer) draw(cfg models.ChartConfig) ([]byte, error) {
	if len(cfg.Series) == 0 {
		return nil, fmt.Errorf("%w: no series", ErrNotEnoughData)
	}
	data := cfg.Series[0].Data

	switch cfg.Chart.Type {
	case models.ChartTypeArea:
		values, ok := data.([]float64)
		if !ok {
			return nil, fmt.Errorf("%w: area data is %T", ErrUnsupportedChart, data)
		}
		var categories []string
		if cfg.XAxis != nil {
			categories = cfg.XAxis.Categories
		}
		return r.drawArea(categories, values, cfg.YAxis)
	case models.ChartTypePie:
		set, ok := data.(models.AllocationSet)
		if !ok {
			return nil, fmt.Errorf("%w: pie data is %T", ErrUnsupportedChart, data)
		}
		return r.drawPie(set.Items())
	case models.ChartTypeColumn:
		points, ok := data.([]models.ColumnPoint)
		if !ok {
			return nil, fmt.Errorf("%w: column data is %T", ErrUnsupportedChart, data)
		}
		var categories []string
		if cfg.XAxis != nil {
			categories = cfg.XAxis.Categories
		}
		return r.drawColumns(categories, points)
	default:
		return nil, fmt.Errorf("%w: type %q", ErrUnsupportedChart, cfg.Chart.Type)
	}
}

// drawArea plots values against their index, labelled by category.
func (r *Renderer) drawArea(categories []string, values []float64, y *models.YAxis) ([]byte, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrNotEnoughData, len(values))
	}

	xValues := make([]float64, len(values))
	ticks := make([]chart.Tick, len(values))
	for i, v := range values {
		if !finite(v) {
			return nil, fmt.Errorf("%w: point %d is not a number", ErrNotEnoughData, i)
		}
		xValues[i] = float64(i)
		label := ""
		if i < len(categories) {
			label = categories[i]
		}
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}

	yAxis := chart.YAxis{}
	if y != nil && y.Min != nil && y.Max != nil && *y.Max > *y.Min {
		yAxis.Range = &chart.ContinuousRange{Min: *y.Min, Max: *y.Max}
	}

	graph := chart.Chart{
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		YAxis: yAxis,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeColor: trendColor,
					StrokeWidth: 2,
					FillColor:   trendColor.WithAlpha(153), // 0.6 opacity
				},
				XValues: xValues,
				YValues: values,
			},
		},
	}

	return renderPNG(graph)
}

// drawPie draws one slice per allocation; non-positive slices are skipped.
func (r *Renderer) drawPie(entries []models.Allocation) ([]byte, error) {
	values := make([]chart.Value, 0, len(entries))
	for _, e := range entries {
		if !finite(e.Y) || e.Y <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: e.Y,
			Label: fmt.Sprintf("%s %.2f %%", e.Name, e.PercentageOfPortfolio),
		})
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no positive allocations", ErrNotEnoughData)
	}

	pie := chart.PieChart{
		Width:  r.height,
		Height: r.height,
		Values: values,
	}
	return renderPNG(pie)
}

// drawColumns draws one bar per point in the point's colour around a zero baseline.
func (r *Renderer) drawColumns(categories []string, points []models.ColumnPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrNotEnoughData)
	}

	lo, hi := 0.0, 0.0
	bars := make([]chart.Value, len(points))
	for i, p := range points {
		if !finite(p.Y) {
			return nil, fmt.Errorf("%w: column %d is not a number", ErrNotEnoughData, i)
		}
		lo = math.Min(lo, p.Y)
		hi = math.Max(hi, p.Y)

		label := ""
		if i < len(categories) {
			label = categories[i]
		}
		color := drawing.ColorFromHex(strings.TrimPrefix(p.Color, "#"))
		bars[i] = chart.Value{
			Value: p.Y,
			Label: label,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
	}
	if lo == hi {
		hi = lo + 1
	}

	graph := chart.BarChart{
		Width:        r.width,
		Height:       r.height,
		BarWidth:     40,
		UseBaseValue: true,
		BaseValue:    0,
		Background: chart.Style{
			Padding: chart.Box{Top: 20},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}
	return renderPNG(graph)
}

type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func renderPNG(c renderable) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
