package gochart

import (
	"image"
	"strings"
	"unicode/utf8"
)

// LabelAnchoring says which part of a label's box sits on its anchor point.
type LabelAnchoring int

const (
	AnchorTopLeftCorner LabelAnchoring = iota
	AnchorTopRightCorner
	AnchorBottomLeftCorner
	AnchorBottomRightCorner
	AnchorCenter
)

// RelativeAlignment positions text lines, or a label, within a span.
type RelativeAlignment int

const (
	FlushLeft RelativeAlignment = iota
	Centered
	FlushRight

	// FlushTop and FlushBottom read better for items beside vertical lines.
	FlushTop    = FlushLeft
	FlushBottom = FlushRight
)

// Label is a block of text that can measure and draw itself.
type Label struct {
	text        string
	font        *Font
	scaling     float64
	dpiScale    float64
	padding     Padding
	orientation Orientation
	anchoring   LabelAnchoring
	anchorPoint image.Point
	alignment   RelativeAlignment
	shown       bool
	background  Color
	pen         Pen
}

// NewLabel creates a shown, horizontal label with the default font.
func NewLabel(text string) *Label {
	return &Label{
		text:       text,
		font:       NewFont(),
		scaling:    1,
		dpiScale:   1,
		shown:      true,
		background: ColorTransparent,
		pen:        NullPen,
	}
}

// Clone returns a deep copy.
func (l *Label) Clone() *Label {
	c := *l
	c.font = l.font.Clone()
	return &c
}

// GetText returns the label text.
func (l *Label) GetText() string { return l.text }

// SetText sets the label text.
func (l *Label) SetText(text string) *Label {
	l.text = text
	return l
}

// GetFont returns the font (never nil).
func (l *Label) GetFont() *Font {
	if l.font == nil {
		l.font = NewFont()
	}
	return l.font
}

// SetFont replaces the font with a copy of f.
func (l *Label) SetFont(f *Font) *Label {
	l.font = f.Clone()
	return l
}

// GetScaling returns the scale factor applied to the font and padding.
func (l *Label) GetScaling() float64 { return l.scaling }

// SetScaling sets the scale factor; values below a tenth are ignored.
func (l *Label) SetScaling(s float64) *Label {
	if s >= 0.1 {
		l.scaling = s
	}
	return l
}

// GetDPIScaleFactor returns the screen DPI scale factor.
func (l *Label) GetDPIScaleFactor() float64 { return l.dpiScale }

// SetDPIScaleFactor sets the screen DPI scale factor.
func (l *Label) SetDPIScaleFactor(f float64) *Label {
	if f > 0 {
		l.dpiScale = f
	}
	return l
}

func (l *Label) effectiveScale() float64 { return l.scaling * l.dpiScale }

// GetPadding returns the unscaled padding.
func (l *Label) GetPadding() Padding { return l.padding }

// SetPadding sets the padding around the text.
func (l *Label) SetPadding(p Padding) *Label {
	l.padding = p
	return l
}

// GetOrientation returns the text direction.
func (l *Label) GetOrientation() Orientation { return l.orientation }

// SetOrientation sets the text direction.
func (l *Label) SetOrientation(o Orientation) *Label {
	l.orientation = o
	return l
}

// GetAnchoring returns which corner sits on the anchor point.
func (l *Label) GetAnchoring() LabelAnchoring { return l.anchoring }

// SetAnchoring sets which corner sits on the anchor point.
func (l *Label) SetAnchoring(a LabelAnchoring) *Label {
	l.anchoring = a
	return l
}

// GetAnchorPoint returns the anchor point.
func (l *Label) GetAnchorPoint() image.Point { return l.anchorPoint }

// SetAnchorPoint moves the label.
func (l *Label) SetAnchorPoint(pt image.Point) *Label {
	l.anchorPoint = pt
	return l
}

// GetRelativeAlignment returns how lines are aligned inside the label.
func (l *Label) GetRelativeAlignment() RelativeAlignment { return l.alignment }

// SetRelativeAlignment sets how lines are aligned inside the label.
func (l *Label) SetRelativeAlignment(a RelativeAlignment) *Label {
	l.alignment = a
	return l
}

// IsShown reports whether the label is drawn.
func (l *Label) IsShown() bool { return l.shown }

// Show toggles drawing of the label.
func (l *Label) Show(show bool) *Label {
	l.shown = show
	return l
}

// GetBackground returns the box fill color.
func (l *Label) GetBackground() Color { return l.background }

// SetBackground sets the box fill color.
func (l *Label) SetBackground(c Color) *Label {
	l.background = c
	return l
}

// GetPen returns the box outline pen.
func (l *Label) GetPen() Pen { return l.pen }

// SetPen sets the box outline pen.
func (l *Label) SetPen(p Pen) *Label {
	l.pen = p
	return l
}

// IsOK reports whether the label has anything to show.
func (l *Label) IsOK() bool { return l != nil && l.shown && l.text != "" }

// GetLineCount returns the number of text lines.
func (l *Label) GetLineCount() int {
	if l.text == "" {
		return 0
	}
	return strings.Count(l.text, "\n") + 1
}

// scaledPadding returns the padding in pixels, rotated for vertical text so
// that Top always means the side the text's top faces.
func (l *Label) scaledPadding() Padding {
	s := l.effectiveScale()
	p := Padding{
		Top:    roundInt(float64(l.padding.Top) * s),
		Right:  roundInt(float64(l.padding.Right) * s),
		Bottom: roundInt(float64(l.padding.Bottom) * s),
		Left:   roundInt(float64(l.padding.Left) * s),
	}
	if l.orientation == OrientationVertical {
		return Padding{Top: p.Right, Right: p.Bottom, Bottom: p.Left, Left: p.Top}
	}
	return p
}

// Size returns the label's footprint including padding.
func (l *Label) Size(m TextMeasurer) image.Point {
	if l.text == "" {
		return image.Point{}
	}
	sz := measureOriented(m, l.text, l.GetFont(), l.effectiveScale(), l.orientation)
	p := l.scaledPadding()
	return image.Pt(sz.X+p.Left+p.Right, sz.Y+p.Top+p.Bottom)
}

// BoundingBox returns where the label would be drawn.
func (l *Label) BoundingBox(m TextMeasurer) image.Rectangle {
	sz := l.Size(m)
	origin := l.anchorPoint
	switch l.anchoring {
	case AnchorTopRightCorner:
		origin.X -= sz.X
	case AnchorBottomLeftCorner:
		origin.Y -= sz.Y
	case AnchorBottomRightCorner:
		origin = origin.Sub(sz)
	case AnchorCenter:
		origin = origin.Sub(sz.Div(2))
	}
	return image.Rectangle{Min: origin, Max: origin.Add(sz)}
}

// Draw renders the label and returns the box it covered.
func (l *Label) Draw(dc DrawContext) image.Rectangle {
	if !l.IsOK() {
		return image.Rectangle{}
	}
	box := l.BoundingBox(dc)
	if l.background.IsOK() || l.pen.IsOK() {
		dc.DrawRect(box, l.pen, l.background)
	}
	p := l.scaledPadding()
	inner := image.Rect(box.Min.X+p.Left, box.Min.Y+p.Top, box.Max.X-p.Right, box.Max.Y-p.Bottom)

	f := l.GetFont()
	scale := l.effectiveScale()
	lines := strings.Split(l.text, "\n")
	lineH := dc.MeasureText(l.text, f, scale).Y / len(lines)
	for i, line := range lines {
		lineLen := dc.MeasureText(line, f, scale).X
		if l.orientation == OrientationVertical {
			// Lines read bottom to top, so "left" is the bottom of the box.
			y := inner.Max.Y - lineLen
			switch l.alignment {
			case Centered:
				y = inner.Min.Y + (inner.Dy()-lineLen)/2
			case FlushRight:
				y = inner.Min.Y
			}
			dc.DrawText(line, f, scale, image.Pt(inner.Min.X+i*lineH, y), OrientationVertical)
			continue
		}
		x := inner.Min.X
		switch l.alignment {
		case Centered:
			x = inner.Min.X + (inner.Dx()-lineLen)/2
		case FlushRight:
			x = inner.Max.X - lineLen
		}
		dc.DrawText(line, f, scale, image.Pt(x, inner.Min.Y+i*lineH), OrientationHorizontal)
	}
	return box
}

// SplitTextToFitLength rewraps the text at spaces so that no line is longer
// than maxLen characters unless a single word is. It reports whether the text
// changed.
func (l *Label) SplitTextToFitLength(maxLen int) bool {
	wrapped := wrapText(l.text, maxLen)
	if wrapped == l.text {
		return false
	}
	l.text = wrapped
	return true
}

func wrapText(text string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		var line strings.Builder
		lineLen := 0
		for _, word := range strings.Fields(para) {
			wl := utf8.RuneCountInString(word)
			if lineLen > 0 && lineLen+1+wl > maxLen {
				out = append(out, line.String())
				line.Reset()
				lineLen = 0
			}
			if lineLen > 0 {
				line.WriteByte(' ')
				lineLen++
			}
			line.WriteString(word)
			lineLen += wl
		}
		out = append(out, line.String())
	}
	return strings.Join(out, "\n")
}
