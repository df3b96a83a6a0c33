package gochart

import (
	"image"
	"sort"
)

// SetPoints positions the axis line between two endpoints, given in any
// order, and recomputes every point's pixel coordinate. With a measurer it
// also reruns the label scaling search for the new length.
func (a *Axis) SetPoints(p1, p2 image.Point, m TextMeasurer) {
	a.line = NewAxisLine(p1, p2, a.IsVertical())
	a.invalidateLabels()
	a.recalcPositions()
	if m != nil {
		a.CalcBestScalingToFitLabels(m)
	}
}

// lineLength is the span of the axis along its own direction.
func (a *Axis) lineLength() int {
	if a.IsVertical() {
		return a.line.End.Y - a.line.Start.Y
	}
	return a.line.End.X - a.line.Start.X
}

// perpCoord is the coordinate of the axis line across its direction.
func (a *Axis) perpCoord() int {
	if a.IsVertical() {
		return a.line.Start.X
	}
	return a.line.Start.Y
}

// recalcPositions spreads the points evenly along the line: left to right on
// horizontal axes and bottom to top on vertical ones.
func (a *Axis) recalcPositions() {
	if !a.line.IsPositioned() {
		for i := range a.points {
			a.points[i].clearPhysical()
		}
		a.labelOffset = 0
		return
	}
	n := len(a.points)
	a.labelOffset = 0
	if n > 1 {
		a.labelOffset = float64(a.lineLength()) / float64(n-1)
	}
	for i := range a.points {
		if a.IsVertical() {
			a.points[i].setPhysical(float64(a.line.End.Y) - a.labelOffset*float64(i))
		} else {
			a.points[i].setPhysical(float64(a.line.Start.X) + a.labelOffset*float64(i))
		}
	}
}

// GetLabelPhysicalOffset returns the pixel distance between adjacent points.
func (a *Axis) GetLabelPhysicalOffset() float64 { return a.labelOffset }

// GetPhysicalCoordinate maps a data value to a pixel coordinate along the
// axis: an X for horizontal axes and a Y for vertical ones. It fails for
// values outside the range and before the axis is positioned.
func (a *Axis) GetPhysicalCoordinate(value float64) (int, bool) {
	n := len(a.points)
	if n == 0 || !a.line.IsPositioned() {
		return -1, false
	}
	var pos int
	if a.reversed {
		pos = n
		for i, pt := range a.points {
			if value >= pt.value || valuesEqual(value, pt.value) {
				pos = i
				break
			}
		}
	} else {
		pos = sort.Search(n, func(i int) bool {
			return a.points[i].value >= value || valuesEqual(a.points[i].value, value)
		})
	}
	if pos == n {
		return -1, false
	}
	cur := a.points[pos]
	if valuesEqual(cur.value, value) {
		return roundInt(cur.physical), true
	}
	if pos == 0 {
		return -1, false
	}
	prev := a.points[pos-1]
	pct := (value - prev.value) / (cur.value - prev.value)
	return roundInt(prev.physical + (cur.physical-prev.physical)*pct), true
}

// GetValueFromPhysicalCoordinate maps a pixel coordinate along the axis back
// to a data value. It fails for coordinates beyond the line's ends.
func (a *Axis) GetValueFromPhysicalCoordinate(coord int) (float64, bool) {
	n := len(a.points)
	if n == 0 || !a.line.IsPositioned() {
		return -1, false
	}
	pos := n
	for i, pt := range a.points {
		c := roundInt(pt.physical)
		if (a.IsHorizontal() && coord <= c) || (a.IsVertical() && coord >= c) {
			pos = i
			break
		}
	}
	if pos == n {
		return -1, false
	}
	cur := a.points[pos]
	curC := float64(roundInt(cur.physical))
	if float64(coord) == curC {
		return cur.value, true
	}
	if pos == 0 {
		return -1, false
	}
	prev := a.points[pos-1]
	prevC := float64(roundInt(prev.physical))
	pct := (float64(coord) - prevC) / (curC - prevC)
	return prev.value + (cur.value-prev.value)*pct, true
}

// GetTickMarks returns the standard tick marks, one per tick interval across
// the range. Ticks at labelled values use the major length.
func (a *Axis) GetTickMarks() []TickMark {
	if a.tickMarkInterval <= 0 || len(a.points) == 0 {
		return nil
	}
	var ticks []TickMark
	for k := 0; k < maxAxisPoints; k++ {
		v := snapValue(a.rangeStart + float64(k)*a.tickMarkInterval)
		if v > a.rangeEnd && !valuesEqual(v, a.rangeEnd) {
			break
		}
		length := a.minorTickLength
		if a.PointHasLabel(v) {
			length = a.majorTickLength
		}
		ticks = append(ticks, NewTickMark(a.tickMarkDisplay, v, length))
	}
	return ticks
}

// GetCustomTickMarks returns the custom tick marks.
func (a *Axis) GetCustomTickMarks() []TickMark { return a.customTickMarks }
