package gochart

import "math"

// AxisPoint is one tick position on an axis: a data value, the text shown at
// it and, once the axis has been positioned, its pixel coordinate.
type AxisPoint struct {
	value        float64
	displayValue string
	shown        bool
	physical     float64
	positioned   bool
}

// NewAxisPoint creates a shown point.
func NewAxisPoint(value float64, displayValue string) AxisPoint {
	return AxisPoint{value: value, displayValue: displayValue, shown: true}
}

// GetValue returns the data value.
func (p AxisPoint) GetValue() float64 { return p.value }

// GetDisplayValue returns the label text.
func (p AxisPoint) GetDisplayValue() string { return p.displayValue }

// SetDisplayValue sets the label text.
func (p *AxisPoint) SetDisplayValue(s string) { p.displayValue = s }

// IsShown reports whether the point carries a visible label.
func (p AxisPoint) IsShown() bool { return p.shown }

// Show toggles the point's label.
func (p *AxisPoint) Show(show bool) { p.shown = show }

// IsShowingLabel reports whether the point is shown and has text.
func (p AxisPoint) IsShowingLabel() bool { return p.shown && p.displayValue != "" }

// GetPhysicalCoordinate returns the point's pixel position along its axis.
// ok is false until the owning axis has been given endpoints.
func (p AxisPoint) GetPhysicalCoordinate() (coord int, ok bool) {
	if !p.positioned {
		return -1, false
	}
	return roundInt(p.physical), true
}

func (p *AxisPoint) setPhysical(v float64) {
	p.physical = v
	p.positioned = true
}

func (p *AxisPoint) clearPhysical() {
	p.physical = 0
	p.positioned = false
}

// valueTolerance is how close two data values must be to count as the same
// point.
const valueTolerance = 1e-9

func valuesEqual(a, b float64) bool {
	return math.Abs(a-b) <= valueTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// TickMarkDisplay selects which side of the axis line tick marks are drawn on.
type TickMarkDisplay int

const (
	TickMarkNoDisplay TickMarkDisplay = iota
	TickMarkInner
	TickMarkOuter
	TickMarkCrossed
)

// TickMark is a short line across the axis at a data value.
type TickMark struct {
	Display    TickMarkDisplay
	Position   float64
	LineLength int // unscaled pixels
}

// NewTickMark creates a tick mark.
func NewTickMark(display TickMarkDisplay, position float64, length int) TickMark {
	return TickMark{Display: display, Position: position, LineLength: length}
}

// IsShown reports whether the tick mark is drawn at all.
func (t TickMark) IsShown() bool { return t.Display != TickMarkNoDisplay && t.LineLength > 0 }
