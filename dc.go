package gochart

import "image"

// TextMeasurer reports the pixel size text occupies when drawn horizontally
// with font f at the given scale factor.
type TextMeasurer interface {
	MeasureText(text string, f *Font, scale float64) image.Point
}

// DrawContext is a drawing surface. Axes and labels only ever measure text
// and draw these primitives.
type DrawContext interface {
	TextMeasurer
	DrawLine(p1, p2 image.Point, pen Pen)
	DrawPolygon(pts []image.Point, pen Pen, fill Color)
	DrawRect(r image.Rectangle, pen Pen, fill Color)
	// DrawText draws text with its top-left corner at origin. Vertical text
	// reads bottom to top and occupies the measured size with X and Y swapped.
	DrawText(text string, f *Font, scale float64, origin image.Point, orient Orientation)
}

// measureOriented returns the footprint of text in the given orientation.
func measureOriented(m TextMeasurer, text string, f *Font, scale float64, orient Orientation) image.Point {
	sz := m.MeasureText(text, f, scale)
	if orient == OrientationVertical {
		return image.Pt(sz.Y, sz.X)
	}
	return sz
}
