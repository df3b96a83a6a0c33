package gochart

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numericPlot() *Plot {
	p := NewPlot()
	p.GetBottomXAxis().SetRangeWithInterval(0, 10, 0, 1, 1)
	p.GetLeftYAxis().SetRange(0, 100, 0, false)
	return p
}

func TestNewPlotAxes(t *testing.T) {
	p := NewPlot()
	assert.True(t, p.GetBottomXAxis().IsShown())
	assert.True(t, p.GetLeftYAxis().IsShown())
	assert.False(t, p.GetTopXAxis().IsShown())
	assert.False(t, p.GetRightYAxis().IsShown())
	assert.Equal(t, TopXAxis, p.GetAxis(TopXAxis).GetAxisType())
}

func TestLayoutKeepsAxesInsideBounds(t *testing.T) {
	m := fixedMeasurer{}
	bounds := image.Rect(0, 0, 400, 300)
	p := numericPlot()
	p.MirrorYAxis()
	p.Layout(m, bounds)

	area := p.GetPlotArea()
	assert.Equal(t, bounds, p.GetBoundingBox())
	assert.False(t, area.Empty())
	assert.True(t, area.In(bounds.Inset(10)), "area %v", area)

	for _, a := range []*Axis{p.GetBottomXAxis(), p.GetLeftYAxis(), p.GetRightYAxis()} {
		require.True(t, a.IsPositioned())
		box := a.GetBoundingBox(m)
		assert.True(t, box.In(bounds), "%s axis box %v", a.GetAxisType(), box)
	}

	assert.Equal(t, area.Max.Y, p.GetBottomXAxis().GetAxisLine().Start.Y)
	assert.Equal(t, area.Min.X, p.GetLeftYAxis().GetAxisLine().Start.X)
	assert.Equal(t, area.Max.X, p.GetRightYAxis().GetAxisLine().Start.X)
}

func TestLayoutReservesTitleSpace(t *testing.T) {
	m := fixedMeasurer{}
	p := numericPlot()
	p.Layout(m, image.Rect(0, 0, 400, 300))
	untitled := p.GetPlotArea()

	p.SetTitle("Quarterly revenue")
	p.Layout(m, image.Rect(0, 0, 400, 300))
	assert.GreaterOrEqual(t, p.GetPlotArea().Min.Y, 30)
	assert.Greater(t, p.GetPlotArea().Min.Y, untitled.Min.Y)
}

func TestLayoutPassesScalingToAxes(t *testing.T) {
	m := fixedMeasurer{}
	p := numericPlot().SetScaling(2)
	p.Layout(m, image.Rect(0, 0, 800, 600))
	assert.Equal(t, 2.0, p.GetBottomXAxis().GetScaling())
	assert.Equal(t, 2.0, p.GetLeftYAxis().GetScaling())
	assert.True(t, p.GetBottomXAxis().GetBoundingBox(m).In(image.Rect(0, 0, 800, 600)))
}

func TestAddCustomAxis(t *testing.T) {
	p := numericPlot()
	err := p.AddCustomAxis(NewAxis(BottomXAxis), TopXAxis, 1)
	assert.Error(t, err)
	assert.Empty(t, p.GetCustomAxes())

	marker := NewAxis(LeftYAxis)
	require.NoError(t, p.AddCustomAxis(marker, BottomXAxis, 5))
	assert.True(t, marker.IsFreeFloating())

	outside := NewAxis(BottomXAxis)
	require.NoError(t, p.AddCustomAxis(outside, LeftYAxis, 500))

	m := fixedMeasurer{}
	p.Layout(m, image.Rect(0, 0, 400, 300))
	area := p.GetPlotArea()

	x, ok := p.GetBottomXAxis().GetPhysicalCoordinate(5)
	require.True(t, ok)
	line := marker.GetAxisLine()
	assert.Equal(t, image.Pt(x, area.Min.Y), line.Start)
	assert.Equal(t, image.Pt(x, area.Max.Y), line.End)
	assert.True(t, marker.IsShown())

	assert.False(t, outside.IsShown())
}

func TestPlotDraw(t *testing.T) {
	dc := &recordingDC{}
	bounds := image.Rect(0, 0, 400, 300)
	p := NewPlot().SetTitle("Sales").SetPlotBackground(ColorLightGray)
	p.AddLayer(NewBarChart().
		AddSeries(NewChartSeriesOrdered("n", []string{"a", "b"}, []float64{2, 4})).
		AddSeries(NewChartSeriesOrdered("s", []string{"a", "b"}, []float64{3, 1})))
	p.Layout(dc, bounds)
	p.Draw(dc)

	require.GreaterOrEqual(t, len(dc.rects), 2+4)
	assert.Equal(t, bounds, dc.rects[0])
	assert.Equal(t, p.GetPlotArea(), dc.rects[1])
	assert.Contains(t, dc.textStrings(), "Sales")
	assert.Contains(t, dc.textStrings(), "a")
	assert.Contains(t, dc.textStrings(), "b")
}

func TestRenderAxis(t *testing.T) {
	dc := &recordingDC{}
	a := NewAxis(LeftYAxis)
	a.SetRange(0, 100, 0, false)
	a.SetFreeFloating(true)
	rect := image.Rect(0, 0, 100, 400)

	box := RenderAxis(dc, a, rect, 1)
	assert.False(t, a.IsFreeFloating())
	assert.True(t, box.In(rect))
	assert.NotEmpty(t, dc.texts)
}

func testRenderOptions() *RenderOptions {
	opts := DefaultRenderOptions()
	opts.Width, opts.Height = 200, 150
	opts.FontCache = NewEmbeddedFontCache()
	return opts
}

func TestPlotRenderImage(t *testing.T) {
	img := numericPlot().SetBackground(ColorRed).RenderImage(testRenderOptions())
	assert.Equal(t, image.Rect(0, 0, 200, 150), img.Bounds())
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
}

func TestPlotWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, numericPlot().WriteSVG(&buf, testRenderOptions()))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<line")
	assert.Contains(t, out, "</svg>")
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestPlotWriteSVGReportsWriteErrors(t *testing.T) {
	diskFull := errors.New("disk full")
	err := numericPlot().WriteSVG(failingWriter{diskFull}, testRenderOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, diskFull)
}

func TestPlotSave(t *testing.T) {
	dir := t.TempDir()
	opts := testRenderOptions()

	pngPath := filepath.Join(dir, "out", "chart.png")
	require.NoError(t, numericPlot().Save(pngPath, opts))
	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)

	svgPath := filepath.Join(dir, "chart.svg")
	require.NoError(t, numericPlot().Save(svgPath, opts))
	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestPlotSaveReportsCreateErrors(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "taken.svg")
	require.NoError(t, os.Mkdir(target, 0o755))
	assert.Error(t, numericPlot().Save(target, testRenderOptions()))
}
