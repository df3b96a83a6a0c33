package gochart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Chart types understood by ChartConfig.
const (
	ChartTypeBar      = "bar"
	ChartTypeLine     = "line"
	ChartTypeTimeline = "timeline"
)

// ChartConfig describes a whole chart. It is read from YAML or TOML; fields
// left out keep the values from DefaultChartConfig.
type ChartConfig struct {
	Width   int     `yaml:"width" toml:"width"`     // Output width in pixels
	Height  int     `yaml:"height" toml:"height"`   // Output height in pixels
	DPI     float64 `yaml:"dpi" toml:"dpi"`         // Font DPI
	Format  string  `yaml:"format" toml:"format"`   // png, jpeg or svg
	Scaling float64 `yaml:"scaling" toml:"scaling"` // Scaling applied to every axis and label
	Type    string  `yaml:"type" toml:"type"`       // bar, line or timeline
	Title   string  `yaml:"title" toml:"title"`

	Font struct {
		Family string `yaml:"family" toml:"family"`
		Size   int    `yaml:"size" toml:"size"` // Point size of axis labels
	} `yaml:"font" toml:"font"`
	Colors struct {
		Background string `yaml:"background" toml:"background"` // Hex color behind everything
		PlotArea   string `yaml:"plot_area" toml:"plot_area"`   // Hex color of the data area, empty for none
		Scheme     string `yaml:"scheme" toml:"scheme"`         // dusk or earthtones
	} `yaml:"colors" toml:"colors"`
	Gridlines struct {
		X bool `yaml:"x" toml:"x"`
		Y bool `yaml:"y" toml:"y"`
	} `yaml:"gridlines" toml:"gridlines"`

	Bars struct {
		Grouping  string `yaml:"grouping" toml:"grouping"`   // clustered or stacked
		Direction string `yaml:"direction" toml:"direction"` // col or bar
		GapWidth  int    `yaml:"gap_width" toml:"gap_width"` // Percent, 0-500
	} `yaml:"bars" toml:"bars"`

	Categories []string       `yaml:"categories" toml:"categories"`
	Series     []SeriesConfig `yaml:"series" toml:"series"`

	XAxis      AxisConfig         `yaml:"x_axis" toml:"x_axis"`
	YAxis      AxisConfig         `yaml:"y_axis" toml:"y_axis"`
	Dates      *DateRangeConfig   `yaml:"dates,omitempty" toml:"dates,omitempty"`
	CustomAxes []CustomAxisConfig `yaml:"custom_axes" toml:"custom_axes"`
}

// SeriesConfig is one data series.
type SeriesConfig struct {
	Title      string    `yaml:"title" toml:"title"`
	Values     []float64 `yaml:"values" toml:"values"` // One per category
	Color      string    `yaml:"color" toml:"color"`   // Hex color, empty to use the scheme
	ShowValues bool      `yaml:"show_values" toml:"show_values"`
}

// AxisConfig holds per-axis settings. Zero values leave the axis alone.
type AxisConfig struct {
	Title            string          `yaml:"title" toml:"title"`
	Min              *float64        `yaml:"min,omitempty" toml:"min,omitempty"`
	Max              *float64        `yaml:"max,omitempty" toml:"max,omitempty"`
	Precision        int             `yaml:"precision" toml:"precision"`
	Interval         float64         `yaml:"interval" toml:"interval"` // Zero picks one automatically
	DisplayInterval  int             `yaml:"display_interval" toml:"display_interval"`
	Reversed         bool            `yaml:"reversed" toml:"reversed"`
	StartAtZero      bool            `yaml:"start_at_zero" toml:"start_at_zero"`
	TickMarks        string          `yaml:"tick_marks" toml:"tick_marks"`               // none, inner, outer or crossed
	LabelOrientation string          `yaml:"label_orientation" toml:"label_orientation"` // parallel or perpendicular
	Stacking         string          `yaml:"stacking" toml:"stacking"`                   // auto, on or off
	DoubleSided      bool            `yaml:"double_sided" toml:"double_sided"`
	Mirror           bool            `yaml:"mirror" toml:"mirror"` // Repeat the axis on the opposite side
	LabelLineLength  int             `yaml:"label_line_length" toml:"label_line_length"`
	Brackets         []BracketConfig `yaml:"brackets" toml:"brackets"`
}

// BracketConfig is a labelled span beside an axis.
type BracketConfig struct {
	Start float64 `yaml:"start" toml:"start"`
	End   float64 `yaml:"end" toml:"end"`
	Label string  `yaml:"label" toml:"label"`
	Shape string  `yaml:"shape" toml:"shape"` // none, connector or full
}

// DateRangeConfig turns the x axis into a calendar axis.
type DateRangeConfig struct {
	Start           string `yaml:"start" toml:"start"`                       // YYYY-MM-DD
	End             string `yaml:"end" toml:"end"`                           // YYYY-MM-DD
	Interval        string `yaml:"interval" toml:"interval"`                 // daily, weekly, monthly or fiscal-quarterly
	FiscalYear      string `yaml:"fiscal_year" toml:"fiscal_year"`           // education or us-business
	LabelFormat     string `yaml:"label_format" toml:"label_format"`         // Go time layout
	QuarterBrackets bool   `yaml:"quarter_brackets" toml:"quarter_brackets"` // Add Q1FYyy brackets
}

// CustomAxisConfig places a free-floating axis across the plot.
type CustomAxisConfig struct {
	Parent string  `yaml:"parent" toml:"parent"` // x or y
	Value  float64 `yaml:"value" toml:"value"`
	Label  string  `yaml:"label" toml:"label"`
}

const configDateLayout = "2006-01-02"

// DefaultChartConfig returns the settings used for anything a config file
// leaves out.
func DefaultChartConfig() *ChartConfig {
	c := &ChartConfig{
		Width:   960,
		Height:  720,
		DPI:     96,
		Format:  "png",
		Scaling: 1,
		Type:    ChartTypeBar,
	}
	c.Font.Family = "Go"
	c.Font.Size = 9
	c.Colors.Background = "#ffffff"
	c.Colors.Scheme = "dusk"
	c.Gridlines.Y = true
	c.Bars.Grouping = BarGroupingClustered
	c.Bars.Direction = BarDirectionVertical
	c.Bars.GapWidth = 150
	c.XAxis.TickMarks = "outer"
	c.YAxis.TickMarks = "outer"
	return c
}

// LoadConfig reads a chart config, picking YAML or TOML by file extension.
func LoadConfig(path string) (*ChartConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = "toml"
	}
	cfg, err := ParseConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// ParseConfig decodes a config in the given format ("yaml" or "toml") over
// the defaults. Unknown keys are errors.
func ParseConfig(data []byte, format string) (*ChartConfig, error) {
	cfg := DefaultChartConfig()
	switch strings.ToLower(format) {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse toml config: %w", err)
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	return cfg, nil
}

// RenderOptions returns the output options the config describes.
func (c *ChartConfig) RenderOptions() *RenderOptions {
	opts := DefaultRenderOptions()
	opts.Width, opts.Height, opts.DPI = c.Width, c.Height, c.DPI
	if strings.EqualFold(c.Format, "jpeg") || strings.EqualFold(c.Format, "jpg") {
		opts.Format = ImageFormatJPEG
	}
	return opts
}

func parseTickMarks(s string) (TickMarkDisplay, bool) {
	switch strings.ToLower(s) {
	case "", "outer":
		return TickMarkOuter, true
	case "none":
		return TickMarkNoDisplay, true
	case "inner":
		return TickMarkInner, true
	case "crossed":
		return TickMarkCrossed, true
	}
	return TickMarkNoDisplay, false
}

func parseDateInterval(s string) (DateInterval, bool) {
	switch strings.ToLower(s) {
	case "daily":
		return DailyInterval, true
	case "weekly":
		return WeeklyInterval, true
	case "", "monthly":
		return MonthlyInterval, true
	case "fiscal-quarterly", "fiscal_quarterly", "quarterly":
		return FiscalQuarterlyInterval, true
	}
	return DailyInterval, false
}

func parseFiscalYear(s string) (FiscalYear, bool) {
	switch strings.ToLower(s) {
	case "", "education":
		return FiscalYearEducation, true
	case "us-business", "us_business", "business":
		return FiscalYearUSBusiness, true
	}
	return FiscalYearEducation, false
}

func parseBracketShape(s string) (BracketLineShape, bool) {
	switch strings.ToLower(s) {
	case "", "full":
		return BracketFull, true
	case "connector":
		return BracketConnector, true
	case "none":
		return BracketNoLine, true
	}
	return BracketFull, false
}

// BuildPlot validates the config and assembles a plot from it.
func (c *ChartConfig) BuildPlot() (*Plot, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	p := NewPlot().SetScaling(c.Scaling).SetTitle(c.Title)
	p.ShowGridlines(c.Gridlines.X, c.Gridlines.Y)
	bg, _ := ParseHexColor(c.Colors.Background)
	p.SetBackground(bg)
	if c.Colors.PlotArea != "" {
		pa, _ := ParseHexColor(c.Colors.PlotArea)
		p.SetPlotBackground(pa)
	}
	font := NewFont().SetName(c.Font.Family).SetSize(c.Font.Size)
	for _, a := range []*Axis{p.GetBottomXAxis(), p.GetLeftYAxis()} {
		a.SetFont(font)
	}
	scheme := SchemeByName(c.Colors.Scheme)

	series := make([]*ChartSeries, 0, len(c.Series))
	for _, sc := range c.Series {
		s := NewChartSeriesOrdered(sc.Title, c.Categories, sc.Values).SetShowValue(sc.ShowValues)
		if sc.Color != "" {
			col, _ := ParseHexColor(sc.Color)
			s.SetFillColor(col)
		}
		series = append(series, s)
	}

	xa, ya := p.GetBottomXAxis(), p.GetLeftYAxis()
	switch c.Type {
	case ChartTypeLine:
		l := NewLineChart()
		l.Scheme = scheme
		for _, s := range series {
			l.AddSeries(s)
		}
		p.AddLayer(l)
		c.applyAxis(xa, c.XAxis, false)
		c.applyAxis(ya, c.YAxis, true)
	case ChartTypeTimeline:
		ya.Show(false)
		p.ShowGridlines(true, false)
		c.applyDates(xa)
		c.applyAxis(xa, c.XAxis, false)
	default:
		b := NewBarChart().
			SetBarGrouping(c.Bars.Grouping).
			SetBarDirection(c.Bars.Direction).
			SetGapWidthPercent(c.Bars.GapWidth).
			SetColorScheme(scheme)
		for _, s := range series {
			b.AddSeries(s)
		}
		p.AddLayer(b)
		cat, val := b.axes(p)
		// x_axis and y_axis settings follow the axes' screen positions, so
		// for horizontal bars the value settings are under x_axis.
		catCfg, valCfg := c.XAxis, c.YAxis
		if b.horizontal() {
			catCfg, valCfg = c.YAxis, c.XAxis
		}
		c.applyAxis(cat, catCfg, false)
		c.applyAxis(val, valCfg, true)
	}
	if c.XAxis.Mirror {
		p.MirrorXAxis()
	}
	if c.YAxis.Mirror {
		p.MirrorYAxis()
	}

	for _, ca := range c.CustomAxes {
		parent, t := BottomXAxis, LeftYAxis
		if strings.EqualFold(ca.Parent, "y") {
			parent, t = LeftYAxis, BottomXAxis
		}
		a := NewAxis(t)
		a.CopySettings(p.GetAxis(parent.perpendicular()))
		a.SetAxisLinePen(NewPen(ColorRed, 1).SetStyle(PenDash))
		a.SetLabelDisplay(NoLabelDisplay)
		a.SetTickMarkDisplay(TickMarkNoDisplay)
		a.GetHeader().SetText(ca.Label)
		if err := p.AddCustomAxis(a, parent, ca.Value); err != nil {
			return nil, fmt.Errorf("custom axis: %w", err)
		}
	}
	return p, nil
}

// perpendicular returns the axis type custom axes on t copy their range from.
func (t AxisType) perpendicular() AxisType {
	if t.IsVertical() {
		return BottomXAxis
	}
	return LeftYAxis
}

// applyAxis copies per-axis settings onto a. valueAxis says whether its range
// comes from data, so that Min, Max and Interval may override it.
func (c *ChartConfig) applyAxis(a *Axis, ac AxisConfig, valueAxis bool) {
	a.GetTitle().SetText(ac.Title)
	if ac.StartAtZero {
		a.SetStartAtZero(true)
	}
	if valueAxis && (ac.Min != nil || ac.Max != nil || ac.Interval > 0 || ac.Precision > 0) {
		start, end := a.GetRange()
		if ac.Min != nil {
			start = *ac.Min
		}
		if ac.Max != nil {
			end = *ac.Max
		}
		if ac.Interval > 0 {
			a.SetRangeWithInterval(start, end, ac.Precision, ac.Interval, max(1, ac.DisplayInterval))
		} else {
			a.SetRange(start, end, ac.Precision, false)
		}
	}
	if ac.DisplayInterval > 1 {
		a.SetDisplayInterval(ac.DisplayInterval, 0)
	}
	if ac.Reversed && !a.IsReversed() {
		a.ReverseScale(true)
	}
	if td, ok := parseTickMarks(ac.TickMarks); ok {
		a.SetTickMarkDisplay(td)
	}
	switch strings.ToLower(ac.LabelOrientation) {
	case "parallel":
		a.SetAxisLabelOrientation(LabelParallel)
	case "perpendicular":
		a.SetAxisLabelOrientation(LabelPerpendicular)
	}
	switch strings.ToLower(ac.Stacking) {
	case "on":
		a.StackLabels(true)
	case "off":
		a.StackLabels(false)
	case "auto":
		a.EnableAutoStacking(true)
	}
	a.EnableDoubleSidedAxisLabels(ac.DoubleSided)
	if ac.LabelLineLength > 0 {
		a.SetLabelLineLength(ac.LabelLineLength)
	}
	for _, bc := range ac.Brackets {
		shape, _ := parseBracketShape(bc.Shape)
		a.AddBracket(NewAxisBracket(bc.Start, bc.End, bc.Start+(bc.End-bc.Start)/2, bc.Label).
			SetBracketLineShape(shape))
	}
}

func (c *ChartConfig) applyDates(a *Axis) {
	d := c.Dates
	first, _ := time.Parse(configDateLayout, d.Start)
	last, _ := time.Parse(configDateLayout, d.End)
	interval, _ := parseDateInterval(d.Interval)
	fy, _ := parseFiscalYear(d.FiscalYear)
	a.SetDateFormat(d.LabelFormat)
	a.SetDateRange(first, last, interval, fy)
	if d.QuarterBrackets {
		a.AddBrackets(BracketFiscalQuarterly)
	}
}
