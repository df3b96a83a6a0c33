package gochart

import (
	"image"
)

// BracketLineShape is how a bracket connects its span to its label.
type BracketLineShape int

const (
	// BracketNoLine draws only the label.
	BracketNoLine BracketLineShape = iota
	// BracketConnector draws a single line from the label position to the axis.
	BracketConnector
	// BracketFull draws lines at both span ends joined by a spine.
	BracketFull
)

// BracketType selects a family of brackets an axis can generate for itself.
type BracketType int

const (
	BracketFiscalQuarterly BracketType = iota
)

// AxisBracket is a labeled span beside an axis, such as a fiscal quarter.
// Its geometry is expressed in data values and resolved through the owning
// axis when drawn.
type AxisBracket struct {
	start          float64
	end            float64
	labelPosition  float64
	label          *Label
	shape          BracketLineShape
	lineSpacing    int
	tickmarkLength int
	pen            Pen
	labelAlignment AxisLabelAlignment
}

// NewAxisBracket creates a full bracket spanning [start, end] whose label sits
// at labelPosition.
func NewAxisBracket(start, end, labelPosition float64, text string) *AxisBracket {
	return &AxisBracket{
		start:          start,
		end:            end,
		labelPosition:  labelPosition,
		label:          NewLabel(text),
		shape:          BracketFull,
		lineSpacing:    10,
		tickmarkLength: 10,
		pen:            NewPen(ColorBlack, 1),
		labelAlignment: AlignWithAxisLine,
	}
}

// GetStartPosition returns the first data value of the span.
func (b *AxisBracket) GetStartPosition() float64 { return b.start }

// GetEndPosition returns the last data value of the span.
func (b *AxisBracket) GetEndPosition() float64 { return b.end }

// GetLabelPosition returns the data value the label is centered on.
func (b *AxisBracket) GetLabelPosition() float64 { return b.labelPosition }

// GetLabel returns the bracket label.
func (b *AxisBracket) GetLabel() *Label { return b.label }

// GetBracketLineShape returns the connector style.
func (b *AxisBracket) GetBracketLineShape() BracketLineShape { return b.shape }

// SetBracketLineShape sets the connector style.
func (b *AxisBracket) SetBracketLineShape(s BracketLineShape) *AxisBracket {
	b.shape = s
	return b
}

// GetLineSpacing returns the unscaled gap between the connector and label.
func (b *AxisBracket) GetLineSpacing() int { return b.lineSpacing }

// SetLineSpacing sets the unscaled gap between the connector and label.
func (b *AxisBracket) SetLineSpacing(s int) *AxisBracket {
	b.lineSpacing = max(0, s)
	return b
}

// GetTickmarkLength returns the unscaled length of the connector lines.
func (b *AxisBracket) GetTickmarkLength() int { return b.tickmarkLength }

// SetTickmarkLength sets the unscaled length of the connector lines.
func (b *AxisBracket) SetTickmarkLength(l int) *AxisBracket {
	b.tickmarkLength = max(0, l)
	return b
}

// GetLinePen returns the connector pen.
func (b *AxisBracket) GetLinePen() Pen { return b.pen }

// SetLinePen sets the connector pen.
func (b *AxisBracket) SetLinePen(p Pen) *AxisBracket {
	b.pen = p
	return b
}

// GetLabelAlignment returns where the label is placed.
func (b *AxisBracket) GetLabelAlignment() AxisLabelAlignment { return b.labelAlignment }

// SetLabelAlignment places the label against the connector or flush with the
// axis's outer boundary.
func (b *AxisBracket) SetLabelAlignment(a AxisLabelAlignment) *AxisBracket {
	b.labelAlignment = a
	return b
}

// IsSingleLine reports whether the bracket is drawn as one connector line.
func (b *AxisBracket) IsSingleLine() bool {
	return valuesEqual(b.start, b.end) || b.shape == BracketConnector
}

// CalcWidth returns the space the bracket takes perpendicular to its axis.
func (b *AxisBracket) CalcWidth(m TextMeasurer, dpiScale float64, vertical bool) int {
	lbl := b.label.Clone().SetDPIScaleFactor(dpiScale)
	sz := lbl.Size(m)
	width := int(float64(b.lineSpacing) * lbl.GetScaling() * dpiScale)
	if vertical {
		return width + sz.X
	}
	return width + sz.Y
}

// draw renders the bracket beside an axis. conn is the perpendicular
// coordinate the connector lines start at and dir (+1 or -1) the direction
// they grow in. boundary is the perpendicular coordinate of the axis's outer
// edge, used when the label is aligned with the boundary.
func (b *AxisBracket) draw(dc DrawContext, a *Axis, conn, dir, boundary int) {
	p1, ok1 := a.GetPhysicalCoordinate(b.start)
	p2, ok2 := a.GetPhysicalCoordinate(b.labelPosition)
	p3, ok3 := a.GetPhysicalCoordinate(b.end)
	if !ok1 || !ok2 || !ok3 {
		return
	}
	vertical := a.IsVertical()
	pt := func(along, perp int) image.Point {
		if vertical {
			return image.Pt(perp, along)
		}
		return image.Pt(along, perp)
	}

	pen := b.pen
	if pen.IsOK() {
		pen.Width = max(1, a.scaleToScreen(float64(pen.Width)))
	}
	tick := a.scaleToScreen(float64(b.tickmarkLength))
	outer := conn + dir*tick
	if b.shape != BracketNoLine && pen.IsOK() {
		if b.IsSingleLine() {
			dc.DrawLine(pt(p1, conn), pt(p1, outer), pen)
		} else {
			dc.DrawLine(pt(p1, conn), pt(p1, outer), pen)
			dc.DrawLine(pt(p1, outer), pt(p3, outer), pen)
			dc.DrawLine(pt(p3, conn), pt(p3, outer), pen)
		}
	}

	lbl := b.label.Clone().SetDPIScaleFactor(a.dpiScale)
	sz := lbl.Size(dc)
	if b.labelAlignment == AlignWithBoundary {
		// Flush against the outer edge of the axis area.
		switch {
		case vertical && dir < 0:
			lbl.SetAnchoring(AnchorTopLeftCorner).SetAnchorPoint(image.Pt(boundary, p2-sz.Y/2))
		case vertical:
			lbl.SetAnchoring(AnchorTopRightCorner).SetAnchorPoint(image.Pt(boundary, p2-sz.Y/2))
		case dir < 0:
			lbl.SetAnchoring(AnchorTopLeftCorner).SetAnchorPoint(image.Pt(p2-sz.X/2, boundary))
		default:
			lbl.SetAnchoring(AnchorBottomLeftCorner).SetAnchorPoint(image.Pt(p2-sz.X/2, boundary))
		}
	} else {
		extent := sz.Y
		if vertical {
			extent = sz.X
		}
		gap := a.scaleToScreen(float64(b.lineSpacing))
		center := conn + dir*(gap+extent/2)
		lbl.SetAnchoring(AnchorCenter).SetAnchorPoint(pt(p2, center))
	}
	lbl.Draw(dc)
}
