package gochart

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawSkipsHiddenAndUnpositionedAxes(t *testing.T) {
	dc := &recordingDC{}
	a := NewAxis(BottomXAxis)
	assert.Equal(t, image.Rectangle{}, a.Draw(dc))

	a.SetPoints(image.Pt(0, 0), image.Pt(100, 0), nil)
	a.Show(false)
	assert.Equal(t, image.Rectangle{}, a.Draw(dc))
	assert.Empty(t, dc.lines)
	assert.Empty(t, dc.texts)
}

func TestDrawHorizontalAxis(t *testing.T) {
	dc := &recordingDC{}
	a := NewAxis(BottomXAxis)
	a.SetRangeWithInterval(0, 10, 0, 5, 1)
	a.SetTickMarkDisplay(TickMarkOuter)
	a.SetPoints(image.Pt(0, 100), image.Pt(100, 100), nil)

	box := a.Draw(dc)
	assert.Equal(t, a.GetBoundingBox(dc), box)

	// Three ticks and the line.
	require.Len(t, dc.lines, 4)
	assert.Contains(t, dc.lines, [2]image.Point{image.Pt(0, 100), image.Pt(0, 110)})
	assert.Contains(t, dc.lines, [2]image.Point{image.Pt(50, 100), image.Pt(50, 110)})
	assert.Contains(t, dc.lines, [2]image.Point{image.Pt(0, 100), image.Pt(100, 100)})

	assert.Equal(t, []string{"0", "5", "10"}, dc.textStrings())
	// "5" is centered under x=50, below the ticks and spacing.
	assert.Equal(t, image.Pt(47, 112), dc.texts[1].origin)
	assert.Equal(t, OrientationHorizontal, dc.texts[1].orient)
}

func TestDrawTopAxisGrowsUpward(t *testing.T) {
	dc := &recordingDC{}
	a := NewAxis(TopXAxis)
	a.SetRangeWithInterval(0, 10, 0, 5, 1)
	a.SetTickMarkDisplay(TickMarkOuter)
	a.SetPoints(image.Pt(0, 100), image.Pt(100, 100), nil)
	a.Draw(dc)

	assert.Contains(t, dc.lines, [2]image.Point{image.Pt(0, 100), image.Pt(0, 90)})
	require.Len(t, dc.texts, 3)
	assert.Equal(t, 78, dc.texts[0].origin.Y)
}

func TestDrawVerticalAxisTopToBottom(t *testing.T) {
	dc := &recordingDC{}
	a := NewAxis(LeftYAxis)
	a.SetRangeWithInterval(0, 10, 0, 5, 1)
	a.SetPoints(image.Pt(100, 0), image.Pt(100, 200), nil)
	a.Draw(dc)

	assert.Equal(t, []string{"10", "5", "0"}, dc.textStrings())
	// Right-aligned against the line, less the spacing.
	assert.Equal(t, image.Pt(86, -5), dc.texts[0].origin)
	assert.Equal(t, image.Pt(92, 95), dc.texts[1].origin)
}

func TestDrawArrowCap(t *testing.T) {
	dc := &recordingDC{}
	a := NewAxis(BottomXAxis)
	a.SetCapStyle(CapArrow)
	a.SetPoints(image.Pt(0, 100), image.Pt(100, 100), nil)
	a.Draw(dc)

	require.Len(t, dc.polygons, 1)
	assert.Equal(t, image.Pt(105, 100), dc.polygons[0][0])

	dc = &recordingDC{}
	y := NewAxis(LeftYAxis)
	y.SetCapStyle(CapArrow)
	y.SetPoints(image.Pt(50, 0), image.Pt(50, 100), nil)
	y.Draw(dc)
	require.Len(t, dc.polygons, 1)
	assert.Equal(t, image.Pt(50, -5), dc.polygons[0][0])
}

func TestDrawStackedLabelsAlternateRows(t *testing.T) {
	dc := &recordingDC{}
	a := categoryAxis(BottomXAxis, "A", "B", "C", "D")
	a.StackLabels(true)
	a.SetPoints(image.Pt(0, 0), image.Pt(300, 0), nil)
	a.Draw(dc)

	require.Len(t, dc.texts, 4)
	var rows []int
	for _, txt := range dc.texts {
		rows = append(rows, txt.origin.Y)
	}
	assert.Equal(t, []int{2, 12, 2, 12}, rows)
}

func TestDrawDoubleSidedLabels(t *testing.T) {
	dc := &recordingDC{}
	a := categoryAxis(BottomXAxis, "A", "B", "C")
	a.EnableDoubleSidedAxisLabels(true)
	a.SetPoints(image.Pt(0, 50), image.Pt(200, 50), nil)
	a.Draw(dc)

	require.Len(t, dc.texts, 6)
	assert.Equal(t, 52, dc.texts[0].origin.Y)
	assert.Equal(t, 38, dc.texts[1].origin.Y)
}

func TestDrawHiddenLabels(t *testing.T) {
	dc := &recordingDC{}
	a := NewAxis(BottomXAxis)
	a.SetRangeWithInterval(0, 10, 0, 5, 1)
	a.SetLabelDisplay(NoLabelDisplay)
	a.SetPoints(image.Pt(0, 100), image.Pt(100, 100), nil)
	a.Draw(dc)
	assert.Empty(t, dc.texts)
}

func TestDrawTitleHeaderAndBrackets(t *testing.T) {
	dc := &recordingDC{}
	a := NewAxis(BottomXAxis)
	a.SetRangeWithInterval(0, 10, 0, 5, 1)
	a.GetTitle().SetText("Days")
	a.GetHeader().SetText("H")
	a.GetFooter().SetText("F")
	a.AddBracket(NewAxisBracket(0, 5, 2.5, "first"))
	a.SetPoints(image.Pt(0, 100), image.Pt(100, 100), nil)
	a.Draw(dc)

	assert.Subset(t, dc.textStrings(), []string{"Days", "H", "F", "first", "0", "5", "10"})
	// Full bracket: two legs and a spine, plus the axis line.
	assert.Len(t, dc.lines, 4)
}
