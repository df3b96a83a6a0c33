package gochart

import (
	"image"
	"math"
)

// Orientation is the direction text or a line runs in.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// AxisLine is the physical segment an axis is drawn along.
//
// Start is always the upper point of a vertical line and the left point of a
// horizontal line. The zero value is an unpositioned line; every mapping
// routine checks IsPositioned before trusting Start and End.
type AxisLine struct {
	Start      image.Point
	End        image.Point
	positioned bool
}

// NewAxisLine builds a normalized line from two endpoints given in any order.
func NewAxisLine(p1, p2 image.Point, vertical bool) AxisLine {
	if vertical {
		if p1.Y > p2.Y {
			p1, p2 = p2, p1
		}
	} else if p1.X > p2.X {
		p1, p2 = p2, p1
	}
	return AxisLine{Start: p1, End: p2, positioned: true}
}

// IsPositioned reports whether endpoints have been assigned.
func (l AxisLine) IsPositioned() bool { return l.positioned }

// Length returns the Euclidean length of the segment.
func (l AxisLine) Length() float64 {
	dx := float64(l.End.X - l.Start.X)
	dy := float64(l.End.Y - l.Start.Y)
	return math.Hypot(dx, dy)
}

// Padding is spacing around a label, in unscaled pixels.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// NewPadding returns uniform padding on every side.
func NewPadding(all int) Padding {
	return Padding{Top: all, Right: all, Bottom: all, Left: all}
}

// rectFromSpans builds a rectangle from an along-axis span and a perpendicular
// span, swapping the roles for vertical axes.
func rectFromSpans(vertical bool, alongMin, alongMax, perpMin, perpMax int) image.Rectangle {
	if vertical {
		return image.Rect(perpMin, alongMin, perpMax, alongMax)
	}
	return image.Rect(alongMin, perpMin, alongMax, perpMax)
}

// inflateRect grows r by n pixels on every side.
func inflateRect(r image.Rectangle, n int) image.Rectangle {
	return image.Rect(r.Min.X-n, r.Min.Y-n, r.Max.X+n, r.Max.Y+n)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
