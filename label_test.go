package gochart

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelSize(t *testing.T) {
	m := fixedMeasurer{}
	l := NewLabel("Hello")
	assert.Equal(t, image.Pt(30, 10), l.Size(m))

	l.SetText("Hi\nthere")
	assert.Equal(t, 2, l.GetLineCount())
	assert.Equal(t, image.Pt(30, 20), l.Size(m))

	l.SetOrientation(OrientationVertical)
	assert.Equal(t, image.Pt(20, 30), l.Size(m))

	l.SetScaling(2)
	assert.Equal(t, image.Pt(40, 60), l.Size(m))

	assert.Equal(t, image.Point{}, NewLabel("").Size(m))
}

func TestLabelPaddingRotatesWithText(t *testing.T) {
	m := fixedMeasurer{}
	l := NewLabel("ab").SetPadding(Padding{Top: 1, Right: 2, Bottom: 3, Left: 4})
	assert.Equal(t, image.Pt(12+6, 10+4), l.Size(m))

	l.SetOrientation(OrientationVertical)
	assert.Equal(t, image.Pt(10+4, 12+6), l.Size(m))
}

func TestLabelBoundingBoxAnchoring(t *testing.T) {
	m := fixedMeasurer{}
	l := NewLabel("abcd").SetAnchorPoint(image.Pt(100, 50))

	tests := []struct {
		anchoring LabelAnchoring
		want      image.Rectangle
	}{
		{AnchorTopLeftCorner, image.Rect(100, 50, 124, 60)},
		{AnchorTopRightCorner, image.Rect(76, 50, 100, 60)},
		{AnchorBottomLeftCorner, image.Rect(100, 40, 124, 50)},
		{AnchorBottomRightCorner, image.Rect(76, 40, 100, 50)},
		{AnchorCenter, image.Rect(88, 45, 112, 55)},
	}
	for _, tt := range tests {
		l.SetAnchoring(tt.anchoring)
		assert.Equal(t, tt.want, l.BoundingBox(m), "anchoring %d", tt.anchoring)
	}
}

func TestLabelDrawAlignsLines(t *testing.T) {
	dc := &recordingDC{}
	l := NewLabel("abcd\nab").
		SetAnchorPoint(image.Pt(10, 10)).
		SetRelativeAlignment(FlushRight).
		SetBackground(ColorWhite)
	box := l.Draw(dc)

	assert.Equal(t, image.Rect(10, 10, 34, 30), box)
	require.Len(t, dc.rects, 1)
	require.Len(t, dc.texts, 2)
	assert.Equal(t, image.Pt(10, 10), dc.texts[0].origin)
	assert.Equal(t, image.Pt(22, 20), dc.texts[1].origin)

	dc = &recordingDC{}
	l.SetRelativeAlignment(Centered).SetBackground(ColorTransparent)
	l.Draw(dc)
	assert.Empty(t, dc.rects)
	assert.Equal(t, image.Pt(16, 20), dc.texts[1].origin)
}

func TestLabelDrawVertical(t *testing.T) {
	dc := &recordingDC{}
	l := NewLabel("abc").SetOrientation(OrientationVertical).SetAnchorPoint(image.Pt(0, 0))
	box := l.Draw(dc)
	assert.Equal(t, image.Rect(0, 0, 10, 18), box)
	require.Len(t, dc.texts, 1)
	assert.Equal(t, OrientationVertical, dc.texts[0].orient)
}

func TestLabelNotDrawnWhenHidden(t *testing.T) {
	dc := &recordingDC{}
	l := NewLabel("x").Show(false)
	assert.False(t, l.IsOK())
	assert.Equal(t, image.Rectangle{}, l.Draw(dc))
	assert.Empty(t, dc.texts)

	var nilLabel *Label
	assert.False(t, nilLabel.IsOK())
}

func TestLabelCloneIsDeep(t *testing.T) {
	l := NewLabel("a")
	c := l.Clone()
	c.GetFont().SetBold(true)
	c.SetText("b")
	assert.False(t, l.GetFont().Bold)
	assert.Equal(t, "a", l.GetText())
}

func TestSplitTextToFitLength(t *testing.T) {
	tests := []struct {
		text   string
		max    int
		want   string
		change bool
	}{
		{"short", 10, "short", false},
		{"alpha beta gamma", 10, "alpha beta\ngamma", true},
		{"extraordinarily long", 5, "extraordinarily\nlong", true},
		{"keep\nbreaks here please", 11, "keep\nbreaks here\nplease", true},
		{"no limit at all", 0, "no limit at all", false},
	}
	for _, tt := range tests {
		l := NewLabel(tt.text)
		assert.Equal(t, tt.change, l.SplitTextToFitLength(tt.max), tt.text)
		assert.Equal(t, tt.want, l.GetText(), tt.text)
	}
}
