package gochart

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	colorfulBlack = colorful.Color{R: 0, G: 0, B: 0}
	colorfulWhite = colorful.Color{R: 1, G: 1, B: 1}
)

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.GetRed()) / 255,
		G: float64(c.GetGreen()) / 255,
		B: float64(c.GetBlue()) / 255,
	}
}

func fromColorful(cf colorful.Color, alpha uint8) Color {
	r, g, b := cf.Clamped().RGB255()
	return NewColorRGBA(r, g, b, alpha)
}

// ParseHexColor reads a "#RRGGBB" color, or an 8-digit "AARRGGBB" value
// with or without the leading "#".
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if h := strings.TrimPrefix(s, "#"); len(h) == 8 {
		if !isValidARGB(strings.ToUpper(h)) {
			return Color{}, fmt.Errorf("invalid ARGB color %q", s)
		}
		return NewColor(strings.ToUpper(h)), nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return fromColorful(cf, 0xff), nil
}

// Luminance returns the perceptual lightness of the color (CIE L*, 0 to 1).
func Luminance(c Color) float64 {
	l, _, _ := toColorful(c).Lab()
	return math.Max(0, math.Min(1, l))
}

// IsDark reports whether a visible color has a luminance below 50%.
func IsDark(c Color) bool {
	return c.GetAlpha() != 0 && Luminance(c) < 0.5
}

// IsLight is the complement of IsDark.
func IsLight(c Color) bool { return !IsDark(c) }

// Shade darkens a color in small steps until its luminance is at or below
// minLuminance.
func Shade(c Color, minLuminance float64) Color {
	minLuminance = math.Max(0, math.Min(1, minLuminance))
	cf := toColorful(c)
	for darken := 100; darken > 0; {
		if l, _, _ := cf.Lab(); l <= minLuminance {
			break
		}
		darken--
		cf = cf.BlendRgb(colorfulBlack, 1-float64(darken)/100)
	}
	return fromColorful(cf, c.GetAlpha())
}

// ShadeOrTint lightens a dark color or darkens a light one by amount (0 to 1).
func ShadeOrTint(c Color, amount float64) Color {
	amount = math.Max(0, math.Min(1, amount))
	target := colorfulBlack
	if IsDark(c) {
		target = colorfulWhite
	}
	return fromColorful(toColorful(c).BlendRgb(target, amount), c.GetAlpha())
}

// BlackOrWhiteContrast picks whichever of black or white reads better on c.
func BlackOrWhiteContrast(c Color) Color {
	if IsDark(c) {
		return ColorWhite
	}
	return ColorBlack
}

// ChangeOpacity returns c with a new alpha.
func ChangeOpacity(c Color, alpha uint8) Color {
	return NewColorRGBA(c.GetRed(), c.GetGreen(), c.GetBlue(), alpha)
}

// AreColorsClose reports whether two colors' luminance differ by at most delta.
func AreColorsClose(a, b Color, delta float64) bool {
	delta = math.Max(0, math.Min(1, delta))
	return math.Abs(Luminance(a)-Luminance(b)) <= delta
}

// ShadeOrTintIfClose shifts main away from secondary when the two are hard to
// tell apart, for example a bar color against the plot background.
func ShadeOrTintIfClose(main, secondary Color) Color {
	if AreColorsClose(main, secondary, 0.1) {
		return ShadeOrTint(main, 0.4)
	}
	return main
}

// ColorScheme is an ordered palette for grouped data.
type ColorScheme struct {
	colors []Color
}

// NewColorScheme creates a scheme from the given colors.
func NewColorScheme(colors ...Color) *ColorScheme {
	return &ColorScheme{colors: append([]Color(nil), colors...)}
}

// GetColors returns the base colors.
func (s *ColorScheme) GetColors() []Color { return s.colors }

// Len returns the number of base colors.
func (s *ColorScheme) Len() int { return len(s.colors) }

// AddColor appends a color to the scheme.
func (s *ColorScheme) AddColor(c Color) { s.colors = append(s.colors, c) }

// Clear removes all colors.
func (s *ColorScheme) Clear() { s.colors = nil }

// GetColor returns the color at index. Past the end of the palette the colors
// repeat once as shaded or tinted variants; beyond that black is returned.
func (s *ColorScheme) GetColor(index int) Color {
	n := len(s.colors)
	switch {
	case index < 0 || n == 0:
		return ColorBlack
	case index < n:
		return s.colors[index]
	case index < 2*n:
		return ShadeOrTint(s.colors[index%n], 0.2)
	default:
		return ColorBlack
	}
}

// GetColorWithOpacity is GetColor with the alpha replaced.
func (s *ColorScheme) GetColorWithOpacity(index int, alpha uint8) Color {
	return ChangeOpacity(s.GetColor(index), alpha)
}

// DuskScheme is a cool-to-warm palette moving from navy through magenta to amber.
func DuskScheme() *ColorScheme {
	return NewColorScheme(
		NewColor("003F5C"), NewColor("2F4B7C"), NewColor("665191"), NewColor("A05195"),
		NewColor("D45087"), NewColor("F95D6A"), NewColor("FF7C43"), NewColor("FFA600"),
	)
}

// EarthTonesScheme is a muted palette of browns, greens and rose.
func EarthTonesScheme() *ColorScheme {
	return NewColorScheme(
		NewColorRGB(186, 150, 155), NewColorRGB(110, 80, 69), NewColorRGB(202, 80, 69),
		NewColorRGB(102, 131, 145), NewColorRGB(154, 131, 97), NewColorRGB(41, 109, 91),
		NewColorRGB(140, 74, 86), NewColorRGB(238, 221, 130), NewColorRGB(176, 48, 96),
		NewColorRGB(205, 150, 205),
	)
}

// SchemeByName returns a predefined scheme, defaulting to Dusk.
func SchemeByName(name string) *ColorScheme {
	switch name {
	case "earthtones", "earth-tones", "EarthTones":
		return EarthTonesScheme()
	default:
		return DuskScheme()
	}
}
