package gochart

import (
	"image"
	"math"
	"strings"
	"unicode/utf8"
)

// fixedMeasurer gives every rune 6 pixels and every line 10 pixels at scale
// 1, so layout arithmetic in tests can be worked out by hand.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(text string, _ *Font, scale float64) image.Point {
	if text == "" {
		return image.Point{}
	}
	lines := strings.Split(text, "\n")
	longest := 0
	for _, l := range lines {
		longest = max(longest, utf8.RuneCountInString(l))
	}
	return image.Pt(
		int(math.Round(6*float64(longest)*scale)),
		int(math.Round(10*float64(len(lines))*scale)),
	)
}

type drawnText struct {
	text   string
	origin image.Point
	orient Orientation
}

// recordingDC remembers what was drawn on it.
type recordingDC struct {
	fixedMeasurer
	lines    [][2]image.Point
	rects    []image.Rectangle
	polygons [][]image.Point
	texts    []drawnText
}

func (d *recordingDC) DrawLine(p1, p2 image.Point, _ Pen) {
	d.lines = append(d.lines, [2]image.Point{p1, p2})
}

func (d *recordingDC) DrawPolygon(pts []image.Point, _ Pen, _ Color) {
	d.polygons = append(d.polygons, pts)
}

func (d *recordingDC) DrawRect(r image.Rectangle, _ Pen, _ Color) {
	d.rects = append(d.rects, r)
}

func (d *recordingDC) DrawText(text string, _ *Font, _ float64, origin image.Point, orient Orientation) {
	d.texts = append(d.texts, drawnText{text: text, origin: origin, orient: orient})
}

func (d *recordingDC) textStrings() []string {
	out := make([]string, 0, len(d.texts))
	for _, t := range d.texts {
		out = append(out, t.text)
	}
	return out
}

// categoryAxis builds an axis with one custom label per text at values 1..n.
func categoryAxis(t AxisType, texts ...string) *Axis {
	a := NewAxis(t)
	a.SetRangeWithInterval(1, float64(len(texts)), 0, 1, 1)
	for i, s := range texts {
		a.SetCustomLabel(float64(i+1), NewLabel(s))
	}
	a.SetLabelDisplay(DisplayOnlyCustomLabels)
	return a
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
