package models

// ChartKind is the renderer-facing chart type.
type ChartKind string

const (
	ChartKindDoughnut       ChartKind = "doughnut"
	ChartKindBar            ChartKind = "bar"
	ChartKindHorizontalBar  ChartKind = "horizontal-bar"
	ChartKindLogarithmicBar ChartKind = "logarithmic-bar"
)

// ChartMetric selects which measure a chart plots.
type ChartMetric string

const (
	MetricCount ChartMetric = "count"
	MetricWords ChartMetric = "words"
)

// AxisScale is the numeric axis scale.
type AxisScale string

const (
	ScaleLinear      AxisScale = "linear"
	ScaleLogarithmic AxisScale = "logarithmic"
)

// ChartSpec is a declarative chart configuration handed to the rendering
// frontend. Labels, dataset values and colors are aligned positionally.
type ChartSpec struct {
	Name     string         `json:"name"`
	Kind     ChartKind      `json:"kind"`
	Title    string         `json:"title"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
	Options  ChartOptions   `json:"options"`
}

// ChartDataset is one numeric series with its per-point colors.
type ChartDataset struct {
	Label  string    `json:"label"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors"`
}

// ChartOptions holds axis, legend, tooltip and animation display options.
type ChartOptions struct {
	Axis      AxisOptions      `json:"axis"`
	Legend    LegendOptions    `json:"legend"`
	Tooltip   TooltipOptions   `json:"tooltip"`
	Animation AnimationOptions `json:"animation"`
}

type AxisOptions struct {
	Scale       AxisScale `json:"scale"`
	BeginAtZero bool      `json:"begin_at_zero"`
	Horizontal  bool      `json:"horizontal"`
}

type LegendOptions struct {
	Display  bool   `json:"display"`
	Position string `json:"position,omitempty"`
}

// TooltipOptions tells the renderer how to format hover values.
// Format is one of "compact" (K/M/B/T suffix) or "grouped" (thousands
// separators).
type TooltipOptions struct {
	Format string `json:"format"`
}

// AnimationOptions is cosmetic pass-through configuration.
type AnimationOptions struct {
	StaggerDelayMs int    `json:"stagger_delay_ms"`
	Easing         string `json:"easing"`
}

// ChartQueryParams are the query parameters accepted by the chart endpoint.
type ChartQueryParams struct {
	Metric ChartMetric `json:"metric" validate:"omitempty,oneof=count words"`
	Limit  int         `json:"limit"  validate:"omitempty,gte=1,lte=100"`
}

// ChartListResponse names the charts the API can build.
type ChartListResponse struct {
	Charts []string `json:"charts"`
}
