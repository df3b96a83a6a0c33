package gochart

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents an ARGB color.
type Color struct {
	ARGB string // 8-character hex string, e.g., "FF000000" for black
}

// Predefined colors.
var (
	ColorBlack       = Color{ARGB: "FF000000"}
	ColorWhite       = Color{ARGB: "FFFFFFFF"}
	ColorRed         = Color{ARGB: "FFFF0000"}
	ColorGreen       = Color{ARGB: "FF00FF00"}
	ColorBlue        = Color{ARGB: "FF0000FF"}
	ColorLightGray   = Color{ARGB: "FFD3D3D3"}
	ColorTransparent = Color{ARGB: "00000000"}
)

// NewColor creates a new Color from an ARGB hex string.
// Accepts 6-char RGB (e.g. "FF0000") or 8-char ARGB (e.g. "FFFF0000").
// A leading "#" is stripped automatically.
func NewColor(argb string) Color {
	argb = strings.TrimPrefix(argb, "#")
	if len(argb) == 6 {
		argb = "FF" + argb
	}
	argb = strings.ToUpper(argb)
	if !isValidARGB(argb) {
		return ColorBlack
	}
	return Color{ARGB: argb}
}

// NewColorRGB creates an opaque color from its channels.
func NewColorRGB(r, g, b uint8) Color {
	return NewColorRGBA(r, g, b, 0xFF)
}

// NewColorRGBA creates a color from its channels and alpha.
func NewColorRGBA(r, g, b, a uint8) Color {
	return Color{ARGB: fmt.Sprintf("%02X%02X%02X%02X", a, r, g, b)}
}

// ColorFromRGBA converts a standard library color.
func ColorFromRGBA(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColorRGBA(n.R, n.G, n.B, n.A)
}

// isValidARGB checks that s is exactly 8 hex characters.
func isValidARGB(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// GetRed returns the red component (0-255).
func (c Color) GetRed() uint8 { return parseHexByte(c.ARGB, 2) }

// GetGreen returns the green component (0-255).
func (c Color) GetGreen() uint8 { return parseHexByte(c.ARGB, 4) }

// GetBlue returns the blue component (0-255).
func (c Color) GetBlue() uint8 { return parseHexByte(c.ARGB, 6) }

// GetAlpha returns the alpha component (0-255).
func (c Color) GetAlpha() uint8 { return parseHexByte(c.ARGB, 0) }

// IsOK reports whether the color is visible at all.
func (c Color) IsOK() bool {
	return isValidARGB(c.ARGB) && c.GetAlpha() != 0
}

// Hex returns the color as "#RRGGBB", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.GetRed(), c.GetGreen(), c.GetBlue())
}

// ToNRGBA converts to a non-premultiplied standard library color.
func (c Color) ToNRGBA() color.NRGBA {
	return color.NRGBA{R: c.GetRed(), G: c.GetGreen(), B: c.GetBlue(), A: c.GetAlpha()}
}

// parseHexByte parses two hex characters at offset into a uint8.
// Returns 0 on any error (out of range, invalid chars).
func parseHexByte(s string, offset int) uint8 {
	if offset+2 > len(s) {
		return 0
	}
	h := hexVal(s[offset])
	l := hexVal(s[offset+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// Font represents text font properties.
type Font struct {
	Name   string
	Size   int // in points
	Bold   bool
	Italic bool
	Color  Color
}

// NewFont creates a new Font with defaults.
func NewFont() *Font {
	return &Font{
		Name:  "Go",
		Size:  10,
		Color: ColorBlack,
	}
}

// Clone returns an independent copy of the font.
func (f *Font) Clone() *Font {
	if f == nil {
		return NewFont()
	}
	c := *f
	return &c
}

// SetBold sets the bold property and returns the font for chaining.
func (f *Font) SetBold(bold bool) *Font {
	f.Bold = bold
	return f
}

// SetItalic sets the italic property.
func (f *Font) SetItalic(italic bool) *Font {
	f.Italic = italic
	return f
}

// SetSize sets the font size in points (clamped to 1–4000).
func (f *Font) SetSize(size int) *Font {
	if size < 1 {
		size = 1
	}
	if size > 4000 {
		size = 4000
	}
	f.Size = size
	return f
}

// SetColor sets the font color.
func (f *Font) SetColor(color Color) *Font {
	f.Color = color
	return f
}

// SetName sets the font name.
func (f *Font) SetName(name string) *Font {
	f.Name = name
	return f
}

// PenStyle is the stroke pattern of a pen.
type PenStyle int

const (
	PenSolid PenStyle = iota
	PenDash
	PenDot
)

// Pen describes how lines and outlines are stroked.
type Pen struct {
	Color Color
	Width int // in pixels
	Style PenStyle
}

// NewPen creates a solid pen.
func NewPen(c Color, width int) Pen {
	if width < 1 {
		width = 1
	}
	return Pen{Color: c, Width: width, Style: PenSolid}
}

// NullPen is a pen that draws nothing.
var NullPen = Pen{Color: ColorTransparent}

// IsOK reports whether the pen would draw anything.
func (p Pen) IsOK() bool {
	return p.Width > 0 && p.Color.IsOK()
}

// SetStyle sets the stroke pattern and returns the pen.
func (p Pen) SetStyle(s PenStyle) Pen {
	p.Style = s
	return p
}
