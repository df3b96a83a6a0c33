package gochart

import (
	"fmt"
	"image"
	"math"
)

// Layout is computed in a frame relative to the axis line: "along" runs with
// the line and "perp" across it. outerSign says which way perp grows away
// from the plot, so one code path serves all four axis types.

type cacheState int

const (
	cacheDirty cacheState = iota
	cacheClean
)

// labelCache holds the largest label extents at the current label scaling.
// Mutators mark it dirty; the key catches font edits made through GetFont.
type labelCache struct {
	state    cacheState
	key      string
	maxAlong int
	maxPerp  int
}

func (a *Axis) invalidateLabels() { a.cache.state = cacheDirty }

func (a *Axis) labelCacheKey() string {
	f := a.font
	return fmt.Sprintf("%s|%d|%t|%t|%g|%g|%d|%v|%v|%s",
		f.Name, f.Size, f.Bold, f.Italic, a.labelScaling, a.dpiScale,
		a.textOrientation(), a.padding, a.labelPadding(), a.fontBackground.ARGB)
}

// outerSign is -1 when the outside of the axis is toward smaller coordinates
// (left and top axes) and +1 otherwise.
func (a *Axis) outerSign() int {
	if a.axisType == LeftYAxis || a.axisType == TopXAxis {
		return -1
	}
	return 1
}

// textOrientation is the direction label text is drawn in.
func (a *Axis) textOrientation() Orientation {
	if (a.IsHorizontal() && a.labelOrientation == LabelParallel) ||
		(a.IsVertical() && a.labelOrientation == LabelPerpendicular) {
		return OrientationHorizontal
	}
	return OrientationVertical
}

// labelPadding is the padding axis labels are measured with. Labels on a
// colored background get room around the text.
func (a *Axis) labelPadding() Padding {
	p := a.padding
	if a.fontBackground.IsOK() {
		p = Padding{Top: max(4, p.Top), Right: max(4, p.Right), Bottom: max(4, p.Bottom), Left: max(4, p.Left)}
	}
	return p
}

// axisLabel builds the label drawn at a point.
func (a *Axis) axisLabel(text string, scaling float64) *Label {
	return NewLabel(text).
		SetFont(a.font).
		SetScaling(scaling).
		SetDPIScaleFactor(a.dpiScale).
		SetPadding(a.labelPadding()).
		SetOrientation(a.textOrientation()).
		SetBackground(a.fontBackground).
		SetRelativeAlignment(a.parallelAlignment)
}

// extents splits a footprint into its along and perp parts.
func (a *Axis) extents(sz image.Point) (along, perp int) {
	if a.IsVertical() {
		return sz.Y, sz.X
	}
	return sz.X, sz.Y
}

func (a *Axis) labelExtents(m TextMeasurer, text string, scaling float64) (along, perp int) {
	return a.extents(a.axisLabel(text, scaling).Size(m))
}

// maxLabelExtents returns the largest along and perp extents of the displayed
// labels at the current label scaling.
func (a *Axis) maxLabelExtents(m TextMeasurer) (along, perp int) {
	key := a.labelCacheKey()
	if a.cache.state == cacheClean && a.cache.key == key {
		return a.cache.maxAlong, a.cache.maxPerp
	}
	for _, pt := range a.points {
		if !a.IsPointDisplayingLabel(pt) {
			continue
		}
		al, pe := a.labelExtents(m, a.GetDisplayableValue(pt), a.labelScaling)
		along = max(along, al)
		perp = max(perp, pe)
	}
	a.cache = labelCache{state: cacheClean, key: key, maxAlong: along, maxPerp: perp}
	return along, perp
}

func (a *Axis) maxAlongExtentAt(m TextMeasurer, scaling float64) int {
	along := 0
	for _, pt := range a.points {
		if a.IsPointDisplayingLabel(pt) {
			al, _ := a.labelExtents(m, a.GetDisplayableValue(pt), scaling)
			along = max(along, al)
		}
	}
	return along
}

// displayedLabelCount counts displayed labels, less one when the two end
// labels hang half outside the line and so share one label's worth of room.
func (a *Axis) displayedLabelCount() int {
	count := 0
	for _, pt := range a.points {
		if a.IsPointDisplayingLabel(pt) {
			count++
		}
	}
	n := len(a.points)
	if count > 2 && n > 2 && a.showOuterLabels &&
		a.points[0].shown && a.GetDisplayableValue(a.points[0]) != "" &&
		a.points[n-1].shown && a.GetDisplayableValue(a.points[n-1]) != "" {
		count--
	}
	return count
}

// calcMaxLabelWidth is the room each label has along the line.
func (a *Axis) calcMaxLabelWidth() int {
	count := a.displayedLabelCount()
	if count == 0 {
		return 0
	}
	w := abs(a.lineLength())/count - a.scaleToScreen(2)
	if a.stackLabels {
		w *= 2
	}
	return w
}

// CalcBestScalingToFitLabels lowers the label scaling in steps of 0.1, never
// below 1, until the longest label fits its share of the line. It stores and
// returns the result. A starting scaling already below 1 is returned as is
// rather than raised to 1, so the search never enlarges labels.
func (a *Axis) CalcBestScalingToFitLabels(m TextMeasurer) float64 {
	if len(a.points) == 0 {
		return a.scaling
	}
	debugAssert(a.line.IsPositioned(), "label scaling searched before the axis was positioned")
	maxW := a.calcMaxLabelWidth()
	if maxW <= 0 {
		a.SetAxisLabelScaling(a.scaling)
		return a.scaling
	}
	start := a.labelScaling
	cur := start
	ext := a.maxAlongExtentAt(m, cur)
	for cur > 1.0 && ext > maxW {
		cur = math.Round((cur-0.1)*10) / 10
		ext = a.maxAlongExtentAt(m, cur)
	}
	a.SetAxisLabelScaling(math.Max(math.Min(1, start), cur))
	return a.labelScaling
}

// ShouldLabelsBeStackedToFit reports whether labels overlap badly enough to
// need two rows. Without auto stacking it returns the forced setting.
func (a *Axis) ShouldLabelsBeStackedToFit(m TextMeasurer) bool {
	if !a.autoStacking {
		return a.stackLabels
	}
	count := a.displayedLabelCount()
	if count == 0 {
		return false
	}
	budget := abs(a.lineLength()) / count
	if a.labelOrientation == LabelPerpendicular {
		budget -= roundInt(2 * a.scaling)
	}
	if budget <= 0 {
		return false
	}
	last := len(a.points) - 1
	for i, pt := range a.points {
		if !a.IsPointDisplayingLabel(pt) {
			continue
		}
		ext, _ := a.labelExtents(m, a.GetDisplayableValue(pt), a.scaling)
		if a.showOuterLabels && (i == 0 || i == last) {
			ext /= 2
		}
		if ext >= budget {
			return true
		}
	}
	return false
}

// tickWidth is the longest scaled tick mark drawn on a side. Ticks displayed
// only on the excluded side do not count.
func (a *Axis) tickWidth(exclude TickMarkDisplay) int {
	if a.tickMarkDisplay == TickMarkNoDisplay {
		return 0
	}
	w := 0
	for _, ticks := range [][]TickMark{a.GetTickMarks(), a.customTickMarks} {
		for _, t := range ticks {
			if t.Display != exclude && t.Display != TickMarkNoDisplay {
				w = max(w, a.scaleToScreen(float64(t.LineLength)))
			}
		}
	}
	return w
}

// CalcTickMarkOuterWidth returns how far tick marks reach outside the line.
func (a *Axis) CalcTickMarkOuterWidth() int { return a.tickWidth(TickMarkInner) }

// CalcTickMarkInnerWidth returns how far tick marks reach inside the line.
func (a *Axis) CalcTickMarkInnerWidth() int { return a.tickWidth(TickMarkOuter) }

// ApplyAutoStacking settles the stacking decision for the current layout.
// Forced stacking is left as it is.
func (a *Axis) ApplyAutoStacking(m TextMeasurer) bool {
	if a.autoStacking {
		if stack := a.ShouldLabelsBeStackedToFit(m); stack != a.stackLabels {
			a.stackLabels = stack
			a.invalidateLabels()
		}
	}
	return a.stackLabels
}

// CalcBracketsWidth returns the width of the widest bracket.
func (a *Axis) CalcBracketsWidth(m TextMeasurer) int {
	w := 0
	for _, b := range a.brackets {
		w = max(w, b.CalcWidth(m, a.dpiScale, a.IsVertical()))
	}
	return w
}

// lineStartCoord is where the first point sits: the left end of a horizontal
// line or the bottom end of a vertical one. lineEndCoord is the other end.
func (a *Axis) lineStartCoord() int {
	if a.IsVertical() {
		return a.line.End.Y
	}
	return a.line.Start.X
}

func (a *Axis) lineEndCoord() int {
	if a.IsVertical() {
		return a.line.Start.Y
	}
	return a.line.End.X
}

// labelOverhang returns how far the first and last displayed labels reach
// past the start and end of the line.
func (a *Axis) labelOverhang(m TextMeasurer) (atStart, atEnd int) {
	overhang := func(ext, space int, full RelativeAlignment) int {
		o := 0
		if a.labelOrientation == LabelPerpendicular {
			o = ext/2 - space
		} else {
			switch a.parallelAlignment {
			case full:
				o = ext - space
			case Centered:
				o = ext/2 - space
			}
		}
		return max(0, o)
	}
	if text, v, ok := a.GetFirstDisplayedLabel(); ok {
		if c, ok := a.GetPhysicalCoordinate(v); ok {
			ext, _ := a.labelExtents(m, text, a.labelScaling)
			atStart = overhang(ext, abs(c-a.lineStartCoord()), FlushRight)
		}
	}
	if text, v, ok := a.GetLastDisplayedLabel(); ok {
		if c, ok := a.GetPhysicalCoordinate(v); ok {
			ext, _ := a.labelExtents(m, text, a.labelScaling)
			atEnd = overhang(ext, abs(a.lineEndCoord()-c), FlushLeft)
		}
	}
	return atStart, atEnd
}

// lowHighOverhang converts start and end overhangs into overhangs toward
// lower and higher along coordinates.
func (a *Axis) lowHighOverhang(m TextMeasurer) (low, high int) {
	atStart, atEnd := a.labelOverhang(m)
	if a.IsVertical() {
		return atEnd, atStart
	}
	return atStart, atEnd
}

// headerFooterSpan returns the along extent of a header or footer and the
// perp range it occupies beside the line.
func (a *Axis) headerFooterSpan(l *Label, m TextMeasurer) (along, perpMin, perpMax int) {
	along, thick := a.extents(l.Size(m))
	L := a.perpCoord()
	var toward int // -1 toward smaller perp, +1 toward larger, 0 centered
	switch l.GetRelativeAlignment() {
	case FlushLeft:
		toward = 1
		if a.IsHorizontal() {
			toward = -1
		}
	case FlushRight:
		toward = -1
		if a.IsHorizontal() {
			toward = 1
		}
	}
	switch toward {
	case 1:
		return along, L, L + thick
	case -1:
		return along, L - thick, L
	default:
		return along, L - thick/2, L - thick/2 + thick
	}
}

// sideLayout breaks down how far the axis reaches from its line, outward and
// inward, not counting header and footer. Drawing places things with the
// same numbers GetBoundingBox adds up.
type sideLayout struct {
	outerTick int
	innerTick int
	spacing   int // label to line, zero when labels are off
	gap       int // scaled spacing setting, used around brackets and title
	text      int // thickest label
	band      int // text, or two rows of it when stacking

	outerLabels int // reach through ticks and labels
	innerLabels int
	brackets    int
	title       int
	outer       int
	inner       int
}

func (a *Axis) sideExtents(m TextMeasurer) sideLayout {
	var sl sideLayout
	sl.gap = a.scaleToScreen(float64(a.labelLineSpacing))
	if a.IsShowingLabels() {
		_, sl.text = a.maxLabelExtents(m)
		sl.spacing = sl.gap
	}
	sl.band = sl.text
	if a.stackLabels {
		sl.band *= 2
	}
	sl.outerTick = a.CalcTickMarkOuterWidth()
	sl.innerTick = a.CalcTickMarkInnerWidth()

	sl.outerLabels = sl.outerTick + sl.spacing
	sl.innerLabels = sl.innerTick
	if a.doubleSided {
		sl.innerLabels += sl.spacing
	}
	if a.labelAlignment == CenterOnAxisLine {
		sl.outerLabels += (sl.text + 1) / 2
		sl.innerLabels += (sl.text + 1) / 2
	} else {
		sl.outerLabels += sl.band
		if a.doubleSided {
			sl.innerLabels += sl.band
		}
	}
	sl.outer, sl.inner = sl.outerLabels, sl.innerLabels
	if a.HasBrackets() {
		sl.brackets = a.CalcBracketsWidth(m)
		sl.outer += sl.brackets + sl.gap
		if a.doubleSided {
			sl.inner += sl.brackets + sl.gap
		}
	}
	if a.title.IsOK() {
		_, sl.title = a.extents(a.title.Size(m))
		sl.outer += sl.title + sl.gap
	}
	return sl
}

// GetBoundingBox returns the area the axis needs around its current line:
// ticks, labels, overhanging end labels, brackets, title, header and footer.
// After SetBoundingBox it never reports more than the space granted there.
func (a *Axis) GetBoundingBox(m TextMeasurer) image.Rectangle {
	s := a.outerSign()
	L := a.perpCoord()
	sl := a.sideExtents(m)
	perpMin, perpMax := L-sl.inner, L+sl.outer
	if s < 0 {
		perpMin, perpMax = L-sl.outer, L+sl.inner
	}

	alongMin, alongMax := a.lineEndCoord(), a.lineStartCoord()
	if a.IsHorizontal() {
		alongMin, alongMax = a.lineStartCoord(), a.lineEndCoord()
	}
	low, high := a.lowHighOverhang(m)
	alongMin -= low
	alongMax += high

	gap := a.scaleToScreen(float64(a.labelLineSpacing))
	// Headers sit past the top of vertical axes and right of horizontal ones.
	if a.header.IsOK() {
		along, pMin, pMax := a.headerFooterSpan(a.header, m)
		if a.IsVertical() {
			alongMin -= along + gap
		} else {
			alongMax += along + gap
		}
		perpMin, perpMax = min(perpMin, pMin), max(perpMax, pMax)
	}
	if a.footer.IsOK() {
		along, pMin, pMax := a.headerFooterSpan(a.footer, m)
		if a.IsVertical() {
			alongMax += along + gap
		} else {
			alongMin -= along + gap
		}
		perpMin, perpMax = min(perpMin, pMin), max(perpMax, pMax)
	}

	r := rectFromSpans(a.IsVertical(), alongMin, alongMax, perpMin, perpMax)
	if a.IsHorizontal() && a.maxHeight > 0 && r.Dy() > a.maxHeight {
		if s > 0 {
			r.Max.Y = r.Min.Y + a.maxHeight
		} else {
			r.Min.Y = r.Max.Y - a.maxHeight
		}
	}
	if a.IsVertical() && a.maxWidth > 0 && r.Dx() > a.maxWidth {
		if s > 0 {
			r.Max.X = r.Min.X + a.maxWidth
		} else {
			r.Min.X = r.Max.X - a.maxWidth
		}
	}
	if a.outlineSize.X > 0 && a.outlineSize.Y > 0 {
		ox := a.scaleToScreen(float64(a.outlineSize.X))
		oy := a.scaleToScreen(float64(a.outlineSize.Y))
		r = image.Rect(r.Min.X-ox, r.Min.Y-oy, r.Max.X+ox, r.Max.Y+oy)
	}
	return r
}

// GetProtrudingBoundingBox is the part of the bounding box on the outer side
// of the line: what the axis takes away from its plot.
func (a *Axis) GetProtrudingBoundingBox(m TextMeasurer) image.Rectangle {
	r := a.GetBoundingBox(m)
	L := a.perpCoord()
	switch a.axisType {
	case LeftYAxis:
		r.Max.X = L
	case RightYAxis:
		r.Min.X = L
	case BottomXAxis:
		r.Min.Y = L
	case TopXAxis:
		r.Max.Y = L
	}
	return r.Canon()
}

// perpSplit divides a bounding box into its extent outside the line (the
// protruding part) and inside it.
func (a *Axis) perpSplit(box image.Rectangle) (protruding, inner int) {
	L := a.perpCoord()
	lo, hi := box.Min.Y, box.Max.Y
	if a.IsVertical() {
		lo, hi = box.Min.X, box.Max.X
	}
	if a.outerSign() < 0 {
		return max(0, L-lo), max(0, hi-L)
	}
	return max(0, hi-L), max(0, L-lo)
}

// SetBoundingBox positions the axis inside rect. The line is pinned to the
// edge chosen by the anchoring, inset so everything the axis draws fits, and
// rect's perpendicular size becomes a cap for later GetBoundingBox calls.
// Free-floating axes ignore it.
func (a *Axis) SetBoundingBox(rect image.Rectangle, m TextMeasurer, parentScaling float64) {
	if a.freeFloating {
		debugAssert(false, "SetBoundingBox called on a free-floating axis")
		logger.Debug("SetBoundingBox ignored on free-floating axis", "axis", a.axisType)
		return
	}
	rect = rect.Canon()
	a.SetScaling(parentScaling)
	a.SetAxisLabelScaling(a.scaling)

	vertical := a.IsVertical()
	if !a.line.IsPositioned() {
		// Overhang depends on where points land, so give them somewhere first.
		if vertical {
			x := rect.Min.X + rect.Dx()/2
			a.SetPoints(image.Pt(x, rect.Min.Y), image.Pt(x, rect.Max.Y), nil)
		} else {
			y := rect.Min.Y + rect.Dy()/2
			a.SetPoints(image.Pt(rect.Min.X, y), image.Pt(rect.Max.X, y), nil)
		}
	}

	protruding, inner := a.perpSplit(a.GetBoundingBox(m))
	atStart, atEnd := a.labelOverhang(m)
	gap := a.scaleToScreen(float64(a.labelLineSpacing))

	rMin, rMax := rect.Min.Y, rect.Max.Y
	if vertical {
		rMin, rMax = rect.Min.X, rect.Max.X
	}
	var L int
	switch a.anchoring {
	case AnchorTopLeftCorner, AnchorBottomLeftCorner:
		if a.outerSign() < 0 {
			L = rMin + protruding
		} else {
			L = rMin + inner
		}
	case AnchorTopRightCorner, AnchorBottomRightCorner:
		if a.outerSign() < 0 {
			L = rMax - inner
		} else {
			L = rMax - protruding
		}
	default:
		L = rMin + (rMax-rMin)/2
	}

	if vertical {
		top, bottom := atEnd, atStart
		if a.header.IsOK() {
			top += a.header.Size(m).Y + gap
		}
		if a.footer.IsOK() {
			bottom += a.footer.Size(m).Y + gap
		}
		y1, y2 := rect.Min.Y+top, rect.Max.Y-bottom
		if y2 < y1 {
			y1 = (y1 + y2) / 2
			y2 = y1
		}
		a.SetPoints(image.Pt(L, y1), image.Pt(L, y2), m)
		a.maxWidth = rect.Dx()
		return
	}
	left, right := atStart, atEnd
	if a.footer.IsOK() {
		left += a.footer.Size(m).X + gap
	}
	if a.header.IsOK() {
		right += a.header.Size(m).X + gap
	}
	x1, x2 := rect.Min.X+left, rect.Max.X-right
	if x2 < x1 {
		x1 = (x1 + x2) / 2
		x2 = x1
	}
	a.SetPoints(image.Pt(x1, L), image.Pt(x2, L), m)
	a.maxHeight = rect.Dy()
}
