package gochart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ImageFormat represents the output image format.
type ImageFormat int

const (
	ImageFormatPNG ImageFormat = iota
	ImageFormatJPEG
)

// RenderOptions configures chart-to-image rendering.
type RenderOptions struct {
	// Width and Height are the output size in pixels. Default: 960x720.
	Width  int
	Height int
	// Format is the output image format (PNG or JPEG).
	Format ImageFormat
	// JPEGQuality is the JPEG quality (1-100). Default: 90.
	JPEGQuality int
	// BackgroundColor overrides the white background.
	BackgroundColor *color.RGBA
	// DPI is the rendering DPI for font sizing. Default: 96.
	DPI float64
	// FontDirs specifies additional directories to search for TrueType/OpenType fonts.
	// System font directories are always searched automatically.
	FontDirs []string
	// FontCache allows sharing a pre-configured FontCache across multiple renders.
	// If nil, a new FontCache is created using FontDirs.
	FontCache *FontCache
}

// DefaultRenderOptions returns default rendering options.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Width:       960,
		Height:      720,
		Format:      ImageFormatPNG,
		JPEGQuality: 90,
		DPI:         96,
	}
}

func (o *RenderOptions) normalize() *RenderOptions {
	if o == nil {
		return DefaultRenderOptions()
	}
	c := *o
	if c.Width <= 0 {
		c.Width = 960
	}
	if c.Height <= 0 {
		c.Height = c.Width * 3 / 4
	}
	if c.DPI <= 0 {
		c.DPI = defaultDPI
	}
	return &c
}

// measurer returns the text measurer the options describe.
func (o *RenderOptions) measurer() *FontMeasurer {
	cache := o.FontCache
	if cache == nil {
		cache = NewFontCache(o.FontDirs...)
	}
	return NewFontMeasurer(cache, o.DPI)
}

// ImageContext is a DrawContext backed by an RGBA image.
type ImageContext struct {
	img *image.RGBA
	m   *FontMeasurer
}

// NewImageContext draws onto img, measuring and rendering text with m.
func NewImageContext(img *image.RGBA, m *FontMeasurer) *ImageContext {
	if m == nil {
		m = NewFontMeasurer(nil, defaultDPI)
	}
	return &ImageContext{img: img, m: m}
}

// NewImageContextFromOptions allocates an image the size the options ask
// for and fills its background.
func NewImageContextFromOptions(opts *RenderOptions) *ImageContext {
	opts = opts.normalize()
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if opts.BackgroundColor != nil {
		bg = *opts.BackgroundColor
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	return NewImageContext(img, opts.measurer())
}

// Image returns the image being drawn on.
func (c *ImageContext) Image() *image.RGBA { return c.img }

// Bounds returns the drawable area.
func (c *ImageContext) Bounds() image.Rectangle { return c.img.Bounds() }

// MeasureText implements TextMeasurer.
func (c *ImageContext) MeasureText(text string, f *Font, scale float64) image.Point {
	return c.m.MeasureText(text, f, scale)
}

// --- Drawing primitives ---

// dashPattern returns the on and off run lengths for a pen, or zero for solid.
func dashPattern(p Pen) (on, off int) {
	w := max(1, p.Width)
	switch p.Style {
	case PenDash:
		return 4 * w, 3 * w
	case PenDot:
		return w, 2 * w
	}
	return 0, 0
}

// DrawLine draws a line with Bresenham's algorithm, stamping a square brush
// of the pen's width at every step.
func (c *ImageContext) DrawLine(p1, p2 image.Point, pen Pen) {
	if !pen.IsOK() {
		return
	}
	col := pen.Color.ToNRGBA()
	w := max(1, pen.Width)
	on, off := dashPattern(pen)

	x1, y1, x2, y2 := p1.X, p1.Y, p2.X, p2.Y
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for step := 0; ; step++ {
		if on == 0 || step%(on+off) < on {
			c.stamp(x1, y1, w, col)
		}
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (c *ImageContext) stamp(x, y, w int, col color.NRGBA) {
	if w == 1 {
		c.blendPixel(x, y, col)
		return
	}
	h := w / 2
	for by := y - h; by < y-h+w; by++ {
		for bx := x - h; bx < x-h+w; bx++ {
			c.blendPixel(bx, by, col)
		}
	}
}

func (c *ImageContext) blendPixel(x, y int, col color.NRGBA) {
	if !(image.Point{x, y}).In(c.img.Bounds()) {
		return
	}
	if col.A == 0xff {
		c.img.SetRGBA(x, y, color.RGBA{col.R, col.G, col.B, 0xff})
		return
	}
	dst := c.img.RGBAAt(x, y)
	a := uint32(col.A)
	blend := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	c.img.SetRGBA(x, y, color.RGBA{
		R: blend(col.R, dst.R),
		G: blend(col.G, dst.G),
		B: blend(col.B, dst.B),
		A: uint8(a + uint32(dst.A)*(255-a)/255),
	})
}

// DrawRect fills r and outlines it with pen.
func (c *ImageContext) DrawRect(r image.Rectangle, pen Pen, fill Color) {
	r = r.Canon()
	if fill.IsOK() {
		draw.Draw(c.img, r, &image.Uniform{fill.ToNRGBA()}, image.Point{}, draw.Over)
	}
	if !pen.IsOK() || r.Empty() {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	c.DrawLine(image.Pt(x0, y0), image.Pt(x1, y0), pen)
	c.DrawLine(image.Pt(x1, y0), image.Pt(x1, y1), pen)
	c.DrawLine(image.Pt(x1, y1), image.Pt(x0, y1), pen)
	c.DrawLine(image.Pt(x0, y1), image.Pt(x0, y0), pen)
}

// DrawPolygon fills the polygon with anti-aliasing and outlines it with pen.
func (c *ImageContext) DrawPolygon(pts []image.Point, pen Pen, fill Color) {
	if len(pts) < 3 {
		return
	}
	if fill.IsOK() {
		b := c.img.Bounds()
		z := vector.NewRasterizer(b.Dx(), b.Dy())
		z.DrawOp = draw.Over
		z.MoveTo(float32(pts[0].X-b.Min.X)+0.5, float32(pts[0].Y-b.Min.Y)+0.5)
		for _, p := range pts[1:] {
			z.LineTo(float32(p.X-b.Min.X)+0.5, float32(p.Y-b.Min.Y)+0.5)
		}
		z.ClosePath()
		z.Draw(c.img, b, &image.Uniform{fill.ToNRGBA()}, image.Point{})
	}
	if pen.IsOK() {
		for i := range pts {
			c.DrawLine(pts[i], pts[(i+1)%len(pts)], pen)
		}
	}
}

// --- Text rendering ---

// DrawText draws text with its top-left corner at origin. Vertical text is
// rendered horizontally off-screen and rotated a quarter turn
// counterclockwise so it reads bottom to top.
func (c *ImageContext) DrawText(text string, f *Font, scale float64, origin image.Point, orient Orientation) {
	if text == "" {
		return
	}
	if f == nil {
		f = NewFont()
	}
	face := c.m.renderFace(f, scale)
	src := &image.Uniform{f.Color.ToNRGBA()}
	if orient == OrientationHorizontal {
		drawLines(c.img, face, src, text, origin)
		return
	}

	sz := c.m.MeasureText(text, f, scale)
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, sz.X, sz.Y))
	drawLines(tmp, face, src, text, image.Point{})
	rot := image.NewRGBA(image.Rect(0, 0, sz.Y, sz.X))
	for y := 0; y < sz.Y; y++ {
		for x := 0; x < sz.X; x++ {
			rot.SetRGBA(y, sz.X-1-x, tmp.RGBAAt(x, y))
		}
	}
	draw.Draw(c.img, rot.Bounds().Add(origin), rot, image.Point{}, draw.Over)
}

// drawLines draws each line of text below the previous one.
func drawLines(dst draw.Image, face font.Face, src image.Image, text string, origin image.Point) {
	ascent := face.Metrics().Ascent.Ceil()
	lh := lineHeight(face)
	d := &font.Drawer{Dst: dst, Src: src, Face: face}
	for i, line := range strings.Split(text, "\n") {
		d.Dot = fixed.P(origin.X, origin.Y+i*lh+ascent)
		d.DrawString(line)
	}
}

// --- Output ---

// EncodeImage writes img to w in the format the options select.
func EncodeImage(w io.Writer, img image.Image, opts *RenderOptions) error {
	opts = opts.normalize()
	switch opts.Format {
	case ImageFormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = 90
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	default:
		return png.Encode(w, img)
	}
}

// SaveImage writes img to path, creating parent directories as needed.
func SaveImage(img image.Image, path string, opts *RenderOptions) (err error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
		}
	}()

	if err := EncodeImage(f, img, opts); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return nil
}
