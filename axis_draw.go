package gochart

import (
	"image"
	"slices"
)

// Draw paints the axis: tick marks, the line and its cap, header, footer,
// title, brackets and finally the point labels. It reads the layout and
// changes nothing. The returned rectangle is the axis bounding box.
func (a *Axis) Draw(dc DrawContext) image.Rectangle {
	if !a.shown {
		return image.Rectangle{}
	}
	if !a.line.IsPositioned() {
		debugAssert(false, "axis drawn before it was positioned")
		logger.Debug("unpositioned axis not drawn", "axis", a.axisType)
		return image.Rectangle{}
	}
	box := a.GetBoundingBox(dc)
	sl := a.sideExtents(dc)

	a.drawTickMarks(dc)
	a.drawAxisLine(dc)
	a.drawHeaderFooter(dc)
	a.drawTitle(dc, sl)
	a.drawBrackets(dc, sl)
	a.drawLabels(dc, sl)
	return box
}

// at builds a point from along and perp coordinates.
func (a *Axis) at(along, perp int) image.Point {
	if a.IsVertical() {
		return image.Pt(perp, along)
	}
	return image.Pt(along, perp)
}

func (a *Axis) scaledPen(p Pen) Pen {
	if p.IsOK() {
		p.Width = max(1, a.scaleToScreen(float64(p.Width)))
	}
	return p
}

func (a *Axis) drawTickMarks(dc DrawContext) {
	pen := a.scaledPen(a.linePen)
	if !pen.IsOK() {
		return
	}
	L, s := a.perpCoord(), a.outerSign()
	for _, ticks := range [][]TickMark{a.GetTickMarks(), a.customTickMarks} {
		for _, t := range ticks {
			if !t.IsShown() {
				continue
			}
			c, ok := a.GetPhysicalCoordinate(t.Position)
			if !ok {
				continue
			}
			n := a.scaleToScreen(float64(t.LineLength))
			from, to := L, L
			switch t.Display {
			case TickMarkOuter:
				to = L + s*n
			case TickMarkInner:
				to = L - s*n
			case TickMarkCrossed:
				from, to = L-s*n, L+s*n
			}
			dc.DrawLine(a.at(c, from), a.at(c, to), pen)
		}
	}
}

// drawAxisLine draws the line, with an arrowhead at the high-value end when
// the cap style asks for one.
func (a *Axis) drawAxisLine(dc DrawContext) {
	pen := a.scaledPen(a.linePen)
	if !pen.IsOK() {
		return
	}
	dc.DrawLine(a.line.Start, a.line.End, pen)
	if a.capStyle != CapArrow {
		return
	}
	tip, dir := a.line.End.X, 1
	if a.IsVertical() {
		tip, dir = a.line.Start.Y, -1
	}
	L := a.perpCoord()
	size := max(3, a.scaleToScreen(5))
	pts := []image.Point{
		a.at(tip+dir*size, L),
		a.at(tip, L-size/2-1),
		a.at(tip, L+size/2+1),
	}
	dc.DrawPolygon(pts, pen, pen.Color)
}

func (a *Axis) drawHeaderFooter(dc DrawContext) {
	low, high := a.lowHighOverhang(dc)
	gap := a.scaleToScreen(float64(a.labelLineSpacing))
	place := func(l *Label, atHigh bool) {
		if !l.IsOK() {
			return
		}
		along, pMin, _ := a.headerFooterSpan(l, dc)
		var aMin int
		if a.IsVertical() {
			if atHigh {
				aMin = a.line.End.Y + high + gap
			} else {
				aMin = a.line.Start.Y - low - gap - along
			}
		} else {
			if atHigh {
				aMin = a.line.End.X + high + gap
			} else {
				aMin = a.line.Start.X - low - gap - along
			}
		}
		l.Clone().SetAnchoring(AnchorTopLeftCorner).SetAnchorPoint(a.at(aMin, pMin)).Draw(dc)
	}
	// The header sits at the top of a vertical axis and the right of a
	// horizontal one.
	place(a.header, a.IsHorizontal())
	place(a.footer, a.IsVertical())
}

func (a *Axis) drawTitle(dc DrawContext, sl sideLayout) {
	if !a.title.IsOK() {
		return
	}
	L, s := a.perpCoord(), a.outerSign()
	edge := L + s*sl.outer
	mid := (a.lineStartCoord() + a.lineEndCoord()) / 2
	a.title.Clone().
		SetAnchoring(AnchorCenter).
		SetAnchorPoint(a.at(mid, edge-s*sl.title/2)).
		Draw(dc)
}

func (a *Axis) drawBrackets(dc DrawContext, sl sideLayout) {
	if !a.HasBrackets() {
		return
	}
	L, s := a.perpCoord(), a.outerSign()
	conn := L + s*(sl.outerLabels+sl.gap)
	for _, b := range a.brackets {
		b.draw(dc, a, conn, s, conn+s*sl.brackets)
	}
	if a.doubleSided {
		conn = L - s*(sl.innerLabels+sl.gap)
		for _, b := range a.brackets {
			b.draw(dc, a, conn, -s, conn-s*sl.brackets)
		}
	}
}

// labelTextAlignment lines up multi-line label text toward the axis line.
func (a *Axis) labelTextAlignment(side int) RelativeAlignment {
	if a.labelOrientation == LabelParallel {
		return a.parallelAlignment
	}
	if a.IsVertical() {
		if side < 0 {
			return FlushRight
		}
		return FlushLeft
	}
	// Vertical text reads bottom to top, so FlushRight is its top.
	if side > 0 {
		return FlushRight
	}
	return FlushLeft
}

// labelAlongSpan is where a label of the given along extent sits around the
// point coordinate c.
func (a *Axis) labelAlongSpan(c, ext int) int {
	if a.labelOrientation == LabelPerpendicular {
		return c - ext/2
	}
	toStart := -1 // horizontal lines start on the left
	if a.IsVertical() {
		toStart = 1
	}
	switch a.parallelAlignment {
	case FlushRight:
		if toStart < 0 {
			return c - ext
		}
		return c
	case FlushLeft:
		if toStart < 0 {
			return c
		}
		return c - ext
	}
	return c - ext/2
}

// labelPerpSpan returns the low perp coordinate of a label on the given side
// of the line. row selects the staggered row when stacking.
func (a *Axis) labelPerpSpan(sl sideLayout, side, row, thick int) int {
	L := a.perpCoord()
	if a.labelAlignment == CenterOnAxisLine {
		return L - thick/2
	}
	tick := sl.outerTick
	if side != a.outerSign() {
		tick = sl.innerTick
	}
	near := L + side*(tick+sl.spacing+row*sl.text)
	if a.labelAlignment == AlignWithBoundary {
		// flush against the far edge of the row
		far := near + side*sl.text
		if side > 0 {
			return far - thick
		}
		return far
	}
	if side > 0 {
		return near
	}
	return near - thick
}

func (a *Axis) drawLabels(dc DrawContext, sl sideLayout) {
	if !a.IsShowingLabels() {
		return
	}
	sides := []int{a.outerSign()}
	if a.doubleSided && a.labelAlignment != CenterOnAxisLine {
		sides = append(sides, -a.outerSign())
	}
	// Vertical axes are walked top to bottom, horizontal ones left to right.
	order := make([]int, 0, len(a.points))
	for i := range a.points {
		order = append(order, i)
	}
	if a.IsVertical() {
		slices.Reverse(order)
	}
	shown := 0
	for _, i := range order {
		pt := a.points[i]
		if !a.IsPointDisplayingLabel(pt) {
			continue
		}
		c, ok := a.GetPhysicalCoordinate(pt.value)
		if !ok {
			continue
		}
		row := 0
		if a.stackLabels {
			row = shown % 2
		}
		shown++
		lbl := a.axisLabel(a.GetDisplayableValue(pt), a.labelScaling)
		along, thick := a.extents(lbl.Size(dc))
		aMin := a.labelAlongSpan(c, along)
		for _, side := range sides {
			pMin := a.labelPerpSpan(sl, side, row, thick)
			lbl.SetRelativeAlignment(a.labelTextAlignment(side)).
				SetAnchoring(AnchorTopLeftCorner).
				SetAnchorPoint(a.at(aMin, pMin)).
				Draw(dc)
		}
	}
}
