package gochart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const barYAML = `
type: bar
title: Sales
categories: [Q1, Q2, Q3]
series:
  - title: North
    values: [3, 7, 5]
  - title: South
    values: [4, 2]
    color: "#336699"
y_axis:
  title: Units
  max: 20
  interval: 5
`

const barTOML = `
type = "bar"
title = "Sales"
categories = ["Q1", "Q2", "Q3"]

[[series]]
title = "North"
values = [3.0, 7.0, 5.0]

[y_axis]
title = "Units"
max = 20.0
interval = 5.0
`

func TestParseConfigKeepsDefaults(t *testing.T) {
	for _, tt := range []struct {
		format string
		data   string
	}{
		{"yaml", barYAML},
		{"toml", barTOML},
	} {
		t.Run(tt.format, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, ChartTypeBar, cfg.Type)
			assert.Equal(t, "Sales", cfg.Title)
			assert.Equal(t, []string{"Q1", "Q2", "Q3"}, cfg.Categories)
			assert.Equal(t, []float64{3, 7, 5}, cfg.Series[0].Values)
			require.NotNil(t, cfg.YAxis.Max)
			assert.Equal(t, 20.0, *cfg.YAxis.Max)
			assert.Nil(t, cfg.YAxis.Min)

			// Untouched settings come from the defaults.
			assert.Equal(t, 960, cfg.Width)
			assert.Equal(t, "dusk", cfg.Colors.Scheme)
			assert.Equal(t, BarGroupingClustered, cfg.Bars.Grouping)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestParseConfigEmptyYAML(t *testing.T) {
	cfg, err := ParseConfig(nil, "yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultChartConfig(), cfg)
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	_, err := ParseConfig([]byte("type: bar\ncolour: red\n"), "yaml")
	assert.Error(t, err)

	_, err = ParseConfig([]byte("type = \"bar\"\ncolour = \"red\"\n"), "toml")
	assert.Error(t, err)

	_, err = ParseConfig([]byte("{}"), "json")
	assert.ErrorContains(t, err, "unsupported config format")
}

func TestLoadConfigPicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "chart.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(barTOML), 0o644))
	cfg, err := LoadConfig(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "Sales", cfg.Title)

	yamlPath := filepath.Join(dir, "chart.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(barYAML), 0o644))
	cfg, err = LoadConfig(yamlPath)
	require.NoError(t, err)
	assert.Len(t, cfg.Series, 2)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: [1, 2]\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "bad.yaml")

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRenderOptionsFromConfig(t *testing.T) {
	cfg := DefaultChartConfig()
	cfg.Width, cfg.Height = 640, 480
	cfg.Format = "JPG"
	opts := cfg.RenderOptions()
	assert.Equal(t, 640, opts.Width)
	assert.Equal(t, 480, opts.Height)
	assert.Equal(t, ImageFormatJPEG, opts.Format)

	cfg.Format = "svg"
	assert.Equal(t, ImageFormatPNG, cfg.RenderOptions().Format)
}

func TestBuildPlotBarChart(t *testing.T) {
	cfg, err := ParseConfig([]byte(barYAML), "yaml")
	require.NoError(t, err)
	p, err := cfg.BuildPlot()
	require.NoError(t, err)

	assert.Equal(t, "Sales", p.GetTitle().GetText())
	require.Len(t, p.GetLayers(), 1)
	bars, ok := p.GetLayers()[0].(*BarChart)
	require.True(t, ok)
	assert.Equal(t, NewColor("336699"), bars.Series[1].FillColor)
	assert.Equal(t, 0.0, bars.Series[1].Values["Q3"])

	x := p.GetBottomXAxis()
	assert.Equal(t, []float64{1, 2, 3}, x.GetCustomLabels())
	assert.Equal(t, "Q2", x.GetCustomLabel(2).GetText())

	y := p.GetLeftYAxis()
	start, end := y.GetRange()
	assert.Equal(t, 0.0, start)
	assert.Equal(t, 20.0, end)
	assert.Equal(t, 5.0, y.GetInterval())
	assert.Equal(t, "Units", y.GetTitle().GetText())
	assert.Equal(t, TickMarkOuter, y.GetTickMarkDisplay())
}

func TestBuildPlotHorizontalBars(t *testing.T) {
	cfg := DefaultChartConfig()
	cfg.Bars.Direction = BarDirectionHorizontal
	cfg.Categories = []string{"a", "b"}
	cfg.Series = []SeriesConfig{{Title: "s", Values: []float64{1, 2}}}
	hi := 50.0
	cfg.XAxis.Max = &hi
	cfg.YAxis.Title = "Region"

	p, err := cfg.BuildPlot()
	require.NoError(t, err)

	cat := p.GetLeftYAxis()
	assert.True(t, cat.IsReversed())
	assert.Equal(t, "Region", cat.GetTitle().GetText())
	assert.Equal(t, "a", cat.GetCustomLabel(1).GetText())

	_, end := p.GetBottomXAxis().GetRange()
	assert.Equal(t, 50.0, end)
}

func TestBuildPlotLineChart(t *testing.T) {
	cfg := DefaultChartConfig()
	cfg.Type = ChartTypeLine
	cfg.Categories = []string{"Mon", "Tue", "Wed"}
	cfg.Series = []SeriesConfig{{Title: "temp", Values: []float64{12, 18, 15}}}
	cfg.YAxis.Reversed = true
	cfg.XAxis.Stacking = "on"
	cfg.XAxis.Mirror = true

	p, err := cfg.BuildPlot()
	require.NoError(t, err)
	require.Len(t, p.GetLayers(), 1)
	_, ok := p.GetLayers()[0].(*LineChart)
	assert.True(t, ok)

	assert.True(t, p.GetLeftYAxis().IsReversed())
	assert.True(t, p.GetBottomXAxis().IsStackingLabels())
	assert.True(t, p.GetTopXAxis().IsShown())
	assert.Equal(t, []float64{1, 2, 3}, p.GetTopXAxis().GetCustomLabels())
	assert.False(t, p.GetRightYAxis().IsShown())
}

func TestBuildPlotTimeline(t *testing.T) {
	cfg := DefaultChartConfig()
	cfg.Type = ChartTypeTimeline
	cfg.Dates = &DateRangeConfig{
		Start:           "2023-08-15",
		End:             "2024-02-01",
		Interval:        "fiscal-quarterly",
		QuarterBrackets: true,
	}

	p, err := cfg.BuildPlot()
	require.NoError(t, err)
	assert.False(t, p.GetLeftYAxis().IsShown())

	x := p.GetBottomXAxis()
	first, last, ok := x.GetDateRange()
	require.True(t, ok)
	assert.Equal(t, date(2023, 7, 1), first)
	assert.Equal(t, date(2024, 6, 30), last)
	assert.Len(t, x.GetBrackets(), 4)
}

func TestBuildPlotAxisBracketsAndCustomAxes(t *testing.T) {
	cfg := DefaultChartConfig()
	cfg.Categories = []string{"a", "b", "c", "d"}
	cfg.Series = []SeriesConfig{{Values: []float64{1, 2, 3, 4}}}
	cfg.XAxis.Brackets = []BracketConfig{
		{Start: 1, End: 2, Label: "H1", Shape: "connector"},
		{Start: 3, End: 4, Label: "H2"},
	}
	cfg.CustomAxes = []CustomAxisConfig{
		{Parent: "x", Value: 2, Label: "launch"},
		{Parent: "Y", Value: 3, Label: "target"},
	}

	p, err := cfg.BuildPlot()
	require.NoError(t, err)

	brackets := p.GetBottomXAxis().GetBrackets()
	require.Len(t, brackets, 2)
	assert.Equal(t, BracketConnector, brackets[0].GetBracketLineShape())
	assert.Equal(t, BracketFull, brackets[1].GetBracketLineShape())
	assert.Equal(t, 1.5, brackets[0].GetLabelPosition())

	custom := p.GetCustomAxes()
	require.Len(t, custom, 2)
	assert.Equal(t, BottomXAxis, custom[0].Parent)
	assert.True(t, custom[0].Axis.IsVertical())
	assert.True(t, custom[0].Axis.IsFreeFloating())
	assert.Equal(t, "launch", custom[0].Axis.GetHeader().GetText())
	assert.Equal(t, LeftYAxis, custom[1].Parent)
	assert.True(t, custom[1].Axis.IsHorizontal())
}

func TestBuildPlotRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultChartConfig()
	_, err := cfg.BuildPlot()
	assert.ErrorContains(t, err, "chart has no series")
}
