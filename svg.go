package gochart

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// SVGContext is a DrawContext that writes SVG elements. Text is measured
// with real font metrics so layout matches the raster output.
type SVGContext struct {
	canvas *svg.SVG
	out    *bufio.Writer // keeps the first write error, which svgo drops
	m      *FontMeasurer
	width  int
	height int
}

// NewSVGContext starts an SVG document of the given size on w. Call Close
// to finish it.
func NewSVGContext(w io.Writer, width, height int, m *FontMeasurer) *SVGContext {
	if m == nil {
		m = NewFontMeasurer(nil, defaultDPI)
	}
	out := bufio.NewWriter(w)
	c := &SVGContext{canvas: svg.New(out), out: out, m: m, width: width, height: height}
	c.canvas.Start(width, height)
	return c
}

// Close ends the SVG document and flushes it, returning the first error
// hit while writing.
func (c *SVGContext) Close() error {
	c.canvas.End()
	return c.out.Flush()
}

// Bounds returns the drawable area.
func (c *SVGContext) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// MeasureText implements TextMeasurer.
func (c *SVGContext) MeasureText(text string, f *Font, scale float64) image.Point {
	return c.m.MeasureText(text, f, scale)
}

func opacity(col Color) float64 { return float64(col.GetAlpha()) / 255 }

func strokeStyle(p Pen) string {
	if !p.IsOK() {
		return "stroke:none"
	}
	s := fmt.Sprintf("stroke:%s;stroke-opacity:%.3g;stroke-width:%d", p.Color.Hex(), opacity(p.Color), max(1, p.Width))
	if on, off := dashPattern(p); on > 0 {
		s += fmt.Sprintf(";stroke-dasharray:%d,%d", on, off)
	}
	return s
}

func fillStyle(c Color) string {
	if !c.IsOK() {
		return "fill:none"
	}
	return fmt.Sprintf("fill:%s;fill-opacity:%.3g", c.Hex(), opacity(c))
}

// DrawLine implements DrawContext.
func (c *SVGContext) DrawLine(p1, p2 image.Point, pen Pen) {
	if !pen.IsOK() {
		return
	}
	c.canvas.Line(p1.X, p1.Y, p2.X, p2.Y, strokeStyle(pen))
}

// DrawRect implements DrawContext.
func (c *SVGContext) DrawRect(r image.Rectangle, pen Pen, fill Color) {
	r = r.Canon()
	if !pen.IsOK() && !fill.IsOK() {
		return
	}
	c.canvas.Rect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), fillStyle(fill)+";"+strokeStyle(pen))
}

// DrawPolygon implements DrawContext.
func (c *SVGContext) DrawPolygon(pts []image.Point, pen Pen, fill Color) {
	if len(pts) < 3 || (!pen.IsOK() && !fill.IsOK()) {
		return
	}
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	c.canvas.Polygon(xs, ys, fillStyle(fill)+";"+strokeStyle(pen))
}

func (c *SVGContext) fontStyle(f *Font, scale float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "font-family:%s;font-size:%.4gpx;%s", f.Name, PointsToPixels(float64(f.Size)*scale, c.m.GetDPI()), fillStyle(f.Color))
	if f.Bold {
		b.WriteString(";font-weight:bold")
	}
	if f.Italic {
		b.WriteString(";font-style:italic")
	}
	return b.String()
}

// DrawText implements DrawContext. Vertical text is drawn in a group rotated
// a quarter turn counterclockwise about the bottom-left of its box.
func (c *SVGContext) DrawText(text string, f *Font, scale float64, origin image.Point, orient Orientation) {
	if text == "" {
		return
	}
	if f == nil {
		f = NewFont()
	}
	style := c.fontStyle(f, scale)
	lines := strings.Split(text, "\n")
	sz := c.m.MeasureText(text, f, scale)
	lh := sz.Y / len(lines)
	ascent := roundInt(float64(lh) * 0.8)

	x, y := origin.X, origin.Y
	if orient == OrientationVertical {
		c.canvas.Gtransform(fmt.Sprintf("translate(%d,%d) rotate(-90)", origin.X, origin.Y+sz.X))
		defer c.canvas.Gend()
		x, y = 0, 0
	}
	for i, line := range lines {
		c.canvas.Text(x, y+i*lh+ascent, line, style)
	}
}
