package gochart

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldLabelsBeStackedToFit(t *testing.T) {
	m := fixedMeasurer{}
	// Ten 30px labels on a 200px line leave 22px each.
	a := categoryAxis(BottomXAxis, repeat("AAAAA", 10)...)
	a.SetPoints(image.Pt(0, 0), image.Pt(200, 0), nil)
	require.True(t, a.IsAutoStackingEnabled())
	assert.True(t, a.ShouldLabelsBeStackedToFit(m))

	assert.True(t, a.ApplyAutoStacking(m))
	assert.True(t, a.IsStackingLabels())

	a.SetPoints(image.Pt(0, 0), image.Pt(400, 0), nil)
	assert.False(t, a.ShouldLabelsBeStackedToFit(m))
	assert.False(t, a.ApplyAutoStacking(m))
	assert.False(t, a.IsStackingLabels())
}

func TestForcedStackingIgnoresFit(t *testing.T) {
	m := fixedMeasurer{}
	a := categoryAxis(BottomXAxis, repeat("A", 4)...)
	a.SetPoints(image.Pt(0, 0), image.Pt(400, 0), nil)

	a.StackLabels(true)
	assert.False(t, a.IsAutoStackingEnabled())
	assert.True(t, a.ShouldLabelsBeStackedToFit(m))
	assert.True(t, a.ApplyAutoStacking(m))

	a.StackLabels(false)
	a.SetPoints(image.Pt(0, 0), image.Pt(10, 0), nil)
	assert.False(t, a.ShouldLabelsBeStackedToFit(m))
}

func TestCalcBestScalingToFitLabels(t *testing.T) {
	m := fixedMeasurer{}
	tests := []struct {
		name  string
		text  string
		start float64
		want  float64
	}{
		{"fits at start", "A", 3, 3},
		{"steps down", "AA", 3, 1.7},
		{"never below one", "AAAAA", 3, 1},
		{"small start kept", "AAAAA", 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := categoryAxis(BottomXAxis, repeat(tt.text, 10)...)
			a.SetPoints(image.Pt(0, 0), image.Pt(200, 0), nil)
			a.SetAxisLabelScaling(tt.start)
			got := a.CalcBestScalingToFitLabels(m)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.InDelta(t, tt.want, a.GetAxisLabelScaling(), 1e-9)
		})
	}
}

func TestMaxLabelExtentsFollowsLabelScaling(t *testing.T) {
	m := fixedMeasurer{}
	a := NewAxis(BottomXAxis)
	a.SetRange(0, 100, 0, false)

	along, perp := a.maxLabelExtents(m)
	assert.Equal(t, 18, along)
	assert.Equal(t, 10, perp)

	a.SetAxisLabelScaling(2)
	along, perp = a.maxLabelExtents(m)
	assert.Equal(t, 36, along)
	assert.Equal(t, 20, perp)

	a.SetFontBackgroundColor(ColorWhite)
	a.SetAxisLabelScaling(1)
	along, perp = a.maxLabelExtents(m)
	assert.Equal(t, 26, along)
	assert.Equal(t, 18, perp)
}

func TestSetBoundingBoxVerticalAxis(t *testing.T) {
	m := fixedMeasurer{}
	rect := image.Rect(0, 0, 100, 400)

	a := NewAxis(LeftYAxis)
	a.SetRange(0, 100, 0, false)
	a.SetBoundingBox(rect, m, 1)

	require.True(t, a.IsPositioned())
	line := a.GetAxisLine()
	assert.Equal(t, image.Pt(20, 5), line.Start)
	assert.Equal(t, image.Pt(20, 395), line.End)
	assert.Equal(t, 100, a.GetMaxSize())

	box := a.GetBoundingBox(m)
	assert.Equal(t, image.Rect(0, 0, 20, 400), box)
	assert.True(t, box.In(rect))
	assert.Equal(t, box, a.GetProtrudingBoundingBox(m))

	// Laying out again in the same rect changes nothing.
	a.SetBoundingBox(rect, m, 1)
	assert.Equal(t, box, a.GetBoundingBox(m))
}

func TestSetBoundingBoxRightAnchoring(t *testing.T) {
	m := fixedMeasurer{}
	a := NewAxis(LeftYAxis)
	a.SetRange(0, 100, 0, false)
	a.SetAnchoring(AnchorTopRightCorner)
	a.SetBoundingBox(image.Rect(0, 0, 100, 400), m, 1)

	assert.Equal(t, 100, a.GetAxisLine().Start.X)
	assert.Equal(t, image.Rect(80, 0, 100, 400), a.GetBoundingBox(m))
}

func TestSetBoundingBoxHorizontalAxis(t *testing.T) {
	m := fixedMeasurer{}
	rect := image.Rect(0, 300, 400, 400)

	a := NewAxis(BottomXAxis)
	a.SetRange(0, 100, 0, false)
	a.SetBoundingBox(rect, m, 1)

	line := a.GetAxisLine()
	// "0" hangs 3px past the left end and "100" 9px past the right.
	assert.Equal(t, image.Pt(3, 300), line.Start)
	assert.Equal(t, image.Pt(391, 300), line.End)

	box := a.GetBoundingBox(m)
	assert.Equal(t, image.Rect(0, 300, 400, 312), box)
	assert.True(t, box.In(rect))
}

func TestSetBoundingBoxClampsHeight(t *testing.T) {
	m := fixedMeasurer{}
	a := NewAxis(BottomXAxis)
	a.SetRange(0, 100, 0, false)
	a.SetBoundingBox(image.Rect(0, 300, 400, 305), m, 1)

	assert.Equal(t, 5, a.GetMaxSize())
	assert.Equal(t, 5, a.GetBoundingBox(m).Dy())

	a.ClearMaxSize()
	assert.Equal(t, 12, a.GetBoundingBox(m).Dy())
}

func TestSetBoundingBoxAppliesParentScaling(t *testing.T) {
	m := fixedMeasurer{}
	a := NewAxis(BottomXAxis)
	a.SetRange(0, 100, 0, false)
	a.SetBoundingBox(image.Rect(0, 0, 800, 200), m, 2)

	assert.Equal(t, 2.0, a.GetScaling())
	assert.Equal(t, 2.0, a.GetAxisLabelScaling())
	// Labels are 20px tall and the spacing 4px at double size.
	assert.Equal(t, 24, a.GetBoundingBox(m).Dy())
}

func TestSetBoundingBoxIgnoredWhenFreeFloating(t *testing.T) {
	a := NewAxis(BottomXAxis)
	a.SetFreeFloating(true)
	a.SetBoundingBox(image.Rect(0, 0, 400, 100), fixedMeasurer{}, 1)
	assert.False(t, a.IsPositioned())
	assert.Equal(t, 0, a.GetMaxSize())
}

func TestBoundingBoxGrowsWithDecorations(t *testing.T) {
	m := fixedMeasurer{}
	newAxis := func() *Axis {
		a := NewAxis(BottomXAxis)
		a.SetRange(0, 100, 0, false)
		a.EnableAutoStacking(false)
		a.SetPoints(image.Pt(0, 100), image.Pt(400, 100), nil)
		return a
	}

	base := newAxis().GetBoundingBox(m)
	assert.Equal(t, 12, base.Dy())

	stacked := newAxis()
	stacked.StackLabels(true)
	assert.Equal(t, 22, stacked.GetBoundingBox(m).Dy())

	ticks := newAxis()
	ticks.SetTickMarkDisplay(TickMarkOuter)
	assert.Equal(t, 22, ticks.GetBoundingBox(m).Dy())

	double := newAxis()
	double.EnableDoubleSidedAxisLabels(true)
	box := double.GetBoundingBox(m)
	assert.Equal(t, 88, box.Min.Y)
	assert.Equal(t, 112, box.Max.Y)

	titled := newAxis()
	titled.GetTitle().SetText("Revenue")
	assert.Equal(t, 24, titled.GetBoundingBox(m).Dy())

	bracketed := newAxis()
	bracketed.AddBracket(NewAxisBracket(0, 50, 25, "Q1"))
	assert.Equal(t, 20, bracketed.CalcBracketsWidth(m))
	assert.Equal(t, 34, bracketed.GetBoundingBox(m).Dy())
}

func TestVerticalTitleAndHeader(t *testing.T) {
	m := fixedMeasurer{}
	a := NewAxis(LeftYAxis)
	a.SetRange(0, 100, 0, false)
	a.SetPoints(image.Pt(100, 0), image.Pt(100, 400), nil)
	assert.Equal(t, image.Rect(80, -5, 100, 405), a.GetBoundingBox(m))

	a.GetTitle().SetText("Revenue")
	box := a.GetBoundingBox(m)
	assert.Equal(t, 68, box.Min.X)

	a.GetHeader().SetText("Top")
	box = a.GetBoundingBox(m)
	assert.Equal(t, -17, box.Min.Y)
	assert.Equal(t, 118, box.Max.X)
}

func TestOutlineInflatesBoundingBox(t *testing.T) {
	m := fixedMeasurer{}
	a := NewAxis(BottomXAxis)
	a.SetRange(0, 100, 0, false)
	a.SetPoints(image.Pt(0, 100), image.Pt(400, 100), nil)
	before := a.GetBoundingBox(m)

	a.SetOutlineSize(image.Pt(2, 3))
	after := a.GetBoundingBox(m)
	assert.Equal(t, before.Min.X-2, after.Min.X)
	assert.Equal(t, before.Max.Y+3, after.Max.Y)
}
