package gochart

import (
	"image"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Point and pixel conversion helpers.
// 1 inch = 72 points; screen DPI is 96 unless told otherwise.

const (
	pointsPerInch = 72.0
	defaultDPI    = 96.0
)

// PointsToPixels converts a point size to pixels at the given DPI.
func PointsToPixels(pt, dpi float64) float64 {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	return pt * dpi / pointsPerInch
}

// PixelsToPoints converts pixels to points at the given DPI.
func PixelsToPoints(px, dpi float64) float64 {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	return px * pointsPerInch / dpi
}

// FontMeasurer measures text with real font metrics from a FontCache.
type FontMeasurer struct {
	cache *FontCache
	dpi   float64
}

// NewFontMeasurer creates a measurer. A nil cache gets a private embedded one.
func NewFontMeasurer(cache *FontCache, dpi float64) *FontMeasurer {
	if cache == nil {
		cache = NewEmbeddedFontCache()
	}
	if dpi <= 0 {
		dpi = defaultDPI
	}
	return &FontMeasurer{cache: cache, dpi: dpi}
}

// GetFontCache returns the cache faces come from.
func (m *FontMeasurer) GetFontCache() *FontCache { return m.cache }

// GetDPI returns the DPI point sizes are converted at.
func (m *FontMeasurer) GetDPI() float64 { return m.dpi }

// MeasureText returns the size in pixels of text drawn horizontally.
// Multi-line text is as wide as its widest line.
func (m *FontMeasurer) MeasureText(text string, f *Font, scale float64) image.Point {
	face := m.measureFace(f, scale)
	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	return image.Pt(width, len(lines)*lineHeight(face))
}

func (m *FontMeasurer) measureFace(f *Font, scale float64) font.Face {
	return m.resolveFace(f, scale, true)
}

func (m *FontMeasurer) renderFace(f *Font, scale float64) font.Face {
	return m.resolveFace(f, scale, false)
}

// resolveFace returns a TrueType face for f, falling back to common families
// and finally to basicfont.
func (m *FontMeasurer) resolveFace(f *Font, scale float64, measure bool) font.Face {
	if f == nil {
		f = NewFont()
	}
	sizePt := float64(f.Size)
	if sizePt <= 0 {
		sizePt = 10
	}
	if scale <= 0 {
		scale = 1
	}
	// Faces are built at 72 DPI, so the DPI is folded into the point size.
	scaledPt := math.Round(PointsToPixels(sizePt*scale, m.dpi)*100) / 100

	get := m.cache.GetFace
	if measure {
		get = m.cache.GetMeasureFace
	}
	name := f.Name
	if name == "" {
		name = "go"
	}
	if face := get(name, scaledPt, f.Bold, f.Italic); face != nil {
		return face
	}
	for _, fallback := range []string{"dejavu sans", "liberation sans", "noto sans", "go"} {
		if face := get(fallback, scaledPt, f.Bold, f.Italic); face != nil {
			return face
		}
	}
	return basicfont.Face7x13
}

func lineHeight(face font.Face) int {
	h := face.Metrics().Height.Ceil()
	if h <= 0 {
		h = 14
	}
	return h
}
