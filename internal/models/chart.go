package models

// ChartConfig is a declarative chart definition consumed by the dashboard's
// charting component (Highcharts option schema). Formatter callbacks are
// expressed as Highcharts format strings.
type ChartConfig struct {
	Chart       ChartOptions `json:"chart"`
	Title       Text         `json:"title"`
	Credits     Toggle       `json:"credits"`
	Legend      *Legend      `json:"legend,omitempty"`
	Tooltip     *Tooltip     `json:"tooltip,omitempty"`
	XAxis       *XAxis       `json:"xAxis,omitempty"`
	YAxis       *YAxis       `json:"yAxis,omitempty"`
	PlotOptions *PlotOptions `json:"plotOptions,omitempty"`
	Series      []Series     `json:"series"`
}

// Chart types used by the dashboard.
const (
	ChartTypeArea   = "area"
	ChartTypePie    = "pie"
	ChartTypeColumn = "column"
)

// ChartOptions holds chart-level settings.
type ChartOptions struct {
	Type                string  `json:"type"`
	PlotBackgroundColor *string `json:"plotBackgroundColor,omitempty"`
	PlotShadow          *bool   `json:"plotShadow,omitempty"`
	VerticalAlign       string  `json:"verticalAlign,omitempty"`
}

// Text is a title or axis label.
type Text struct {
	Text string `json:"text"`
}

// Toggle enables or disables a chart feature.
type Toggle struct {
	Enabled bool `json:"enabled"`
}

// Legend positions the chart legend.
type Legend struct {
	Enabled       *bool  `json:"enabled,omitempty"`
	Align         string `json:"align,omitempty"`
	VerticalAlign string `json:"verticalAlign,omitempty"`
	Layout        string `json:"layout,omitempty"`
}

// Tooltip holds tooltip format strings.
type Tooltip struct {
	HeaderFormat string `json:"headerFormat,omitempty"`
	PointFormat  string `json:"pointFormat,omitempty"`
	FooterFormat string `json:"footerFormat,omitempty"`
	Shared       bool   `json:"shared,omitempty"`
	UseHTML      bool   `json:"useHTML,omitempty"`
}

// XAxis holds category labels.
type XAxis struct {
	Categories []string `json:"categories"`
}

// YAxis holds the value axis; Min, Max and TickInterval are omitted when nil.
type YAxis struct {
	Title        Text     `json:"title"`
	Min          *float64 `json:"min,omitempty"`
	Max          *float64 `json:"max,omitempty"`
	TickInterval *float64 `json:"tickInterval,omitempty"`
}

// PlotOptions holds per-type series options.
type PlotOptions struct {
	Area *AreaOptions `json:"area,omitempty"`
	Pie  *PieOptions  `json:"pie,omitempty"`
}

// AreaOptions configures area series.
type AreaOptions struct {
	FillOpacity float64 `json:"fillOpacity"`
}

// PieOptions configures pie series.
type PieOptions struct {
	Size             string     `json:"size"`
	AllowPointSelect bool       `json:"allowPointSelect"`
	Cursor           string     `json:"cursor"`
	DataLabels       DataLabels `json:"dataLabels"`
	ShowInLegend     bool       `json:"showInLegend"`
}

// DataLabels configures point labels.
type DataLabels struct {
	Enabled  bool   `json:"enabled"`
	Format   string `json:"format,omitempty"`
	Distance int    `json:"distance"`
}

// Series is one chart series. Data is one of []float64 (area),
// AllocationSet (pie) or []ColumnPoint (column).
type Series struct {
	Name         string      `json:"name"`
	ColorByPoint bool        `json:"colorByPoint,omitempty"`
	ShowInLegend *bool       `json:"showInLegend,omitempty"`
	Data         interface{} `json:"data"`
}

// ColumnPoint is a coloured bar of a column series.
type ColumnPoint struct {
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

// Bool returns a pointer to b, for optional chart fields.
func Bool(b bool) *bool {
	return &b
}

// Float returns a pointer to f, for optional chart fields.
func Float(f float64) *float64 {
	return &f
}
