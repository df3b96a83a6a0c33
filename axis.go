package gochart

import (
	"image"
	"math"
	"slices"
	"sort"
	"time"
)

// AxisType identifies which side of a plot an axis sits on.
type AxisType int

const (
	BottomXAxis AxisType = iota
	TopXAxis
	LeftYAxis
	RightYAxis
)

// IsVertical reports whether the axis line runs top to bottom.
func (t AxisType) IsVertical() bool { return t == LeftYAxis || t == RightYAxis }

func (t AxisType) String() string {
	switch t {
	case BottomXAxis:
		return "bottom"
	case TopXAxis:
		return "top"
	case LeftYAxis:
		return "left"
	case RightYAxis:
		return "right"
	}
	return "unknown"
}

// AxisResetLevel selects which groups of settings Reset clears.
type AxisResetLevel int

const (
	CosmeticSettings AxisResetLevel = iota
	Brackets
	TitleHeaderFooter
	RangeAndLabelValues
	AllSettings
)

// AxisLabelDisplay controls what text is shown at each axis point.
type AxisLabelDisplay int

const (
	// DisplayCustomLabelsOrValues shows a custom label where one exists and
	// the formatted value elsewhere.
	DisplayCustomLabelsOrValues AxisLabelDisplay = iota
	DisplayOnlyCustomLabels
	// DisplayCustomLabelsAndValues shows the custom label followed by the value.
	DisplayCustomLabelsAndValues
	NoLabelDisplay
)

// AxisLabelOrientation is the direction of label text relative to the axis line.
type AxisLabelOrientation int

const (
	LabelParallel AxisLabelOrientation = iota
	LabelPerpendicular
)

// AxisLabelAlignment places labels relative to the axis line.
type AxisLabelAlignment int

const (
	AlignWithAxisLine AxisLabelAlignment = iota
	CenterOnAxisLine
	AlignWithBoundary
)

// AxisCapStyle is the decoration at the far end of the axis line.
type AxisCapStyle int

const (
	CapNone AxisCapStyle = iota
	CapArrow
)

const (
	defaultMinorTickLength  = 5
	defaultMajorTickLength  = 10
	defaultLabelLineSpacing = 2
	defaultMaxLineLength    = 100
	maxAxisPoints           = 10000
	// comparisons of generated values use this relative slack
	rangeTolerance = 1e-9
)

// Axis maps a one-dimensional data range onto a physical line segment and
// lays out the ticks, labels, brackets and titles that annotate it.
//
// The usual sequence is: set a range, position the axis with SetPoints or
// SetBoundingBox, then map values and draw. Mapping before the axis has been
// positioned reports failure rather than a stale coordinate.
type Axis struct {
	axisType AxisType

	points          []AxisPoint
	customLabels    map[float64]*Label
	customTickMarks []TickMark

	rangeStart       float64
	rangeEnd         float64
	precision        int
	interval         float64
	tickMarkInterval float64
	displayInterval  int

	minorTickLength int
	majorTickLength int
	tickMarkDisplay TickMarkDisplay

	line        AxisLine
	labelOffset float64

	scaling      float64
	labelScaling float64
	dpiScale     float64

	font           *Font
	fontBackground Color
	padding        Padding
	linePen        Pen
	gridlinePen    Pen
	capStyle       AxisCapStyle

	labelOrientation   AxisLabelOrientation
	labelAlignment     AxisLabelAlignment
	parallelAlignment  RelativeAlignment
	labelDisplay       AxisLabelDisplay
	doubleSided        bool
	stackLabels        bool
	autoStacking       bool
	showOuterLabels    bool
	reversed           bool
	startAtZero        bool
	labelLineSpacing   int
	maxLineLength      int
	brackets           []*AxisBracket
	title              *Label
	header             *Label
	footer             *Label
	anchoring          LabelAnchoring
	freeFloating       bool
	shown              bool
	outlineSize        image.Point
	maxWidth           int
	maxHeight          int
	dates              dateRange
	cache              labelCache
	now                func() time.Time
	includeToday       bool
	firstWeekday       time.Weekday
	dateFormat         string
	fiscalQuarterStart [4]monthDay
}

// NewAxis creates an axis of the given type with a unit range.
func NewAxis(t AxisType) *Axis {
	a := &Axis{
		axisType:     t,
		scaling:      1,
		labelScaling: 1,
		dpiScale:     1,
		shown:        true,
		now:          time.Now,
		firstWeekday: time.Sunday,
		dateFormat:   defaultDateFormat,

		fiscalQuarterStart: educationQuarters,
	}
	a.Reset(AllSettings)
	a.SetRange(0, 1, 0, false)
	return a
}

// GetAxisType returns which side the axis belongs on.
func (a *Axis) GetAxisType() AxisType { return a.axisType }

// IsVertical reports whether this is a left or right axis.
func (a *Axis) IsVertical() bool { return a.axisType.IsVertical() }

// IsHorizontal reports whether this is a top or bottom axis.
func (a *Axis) IsHorizontal() bool { return !a.axisType.IsVertical() }

// Reset restores the settings selected by level to their defaults.
func (a *Axis) Reset(level AxisResetLevel) {
	if level == CosmeticSettings || level == AllSettings {
		a.font = NewFont().SetSize(9)
		a.fontBackground = ColorTransparent
		a.parallelAlignment = Centered
		a.labelAlignment = AlignWithAxisLine
		a.linePen = NewPen(ColorBlack, 1)
		a.gridlinePen = NewPen(ColorLightGray, 1)
		a.outlineSize = image.Point{}
	}
	if level == Brackets || level == AllSettings {
		a.ClearBrackets()
	}
	if level == TitleHeaderFooter || level == AllSettings {
		a.title = a.newDecorationLabel()
		a.header = a.newDecorationLabel()
		a.footer = a.newDecorationLabel()
	}
	if level == RangeAndLabelValues || level == AllSettings {
		a.points = nil
		a.customLabels = make(map[float64]*Label)
		a.customTickMarks = nil
		a.labelOffset = 0
		a.rangeStart, a.rangeEnd = 0, 0
		a.precision = 0
		a.interval = 1
		a.tickMarkInterval = 1
		a.displayInterval = 1
		a.minorTickLength = defaultMinorTickLength
		a.majorTickLength = defaultMajorTickLength
		a.dates = dateRange{}
	}
	if level == AllSettings {
		a.stackLabels = false
		a.autoStacking = a.IsHorizontal()
		a.reversed = false
		a.startAtZero = false
		a.labelDisplay = DisplayCustomLabelsOrValues
		a.maxLineLength = defaultMaxLineLength
		a.tickMarkDisplay = TickMarkNoDisplay
		a.doubleSided = false
		a.showOuterLabels = true
		a.labelLineSpacing = defaultLabelLineSpacing
		a.anchoring = AnchorTopLeftCorner
		a.maxWidth, a.maxHeight = 0, 0
		if a.IsVertical() {
			a.labelOrientation = LabelPerpendicular
			a.title.SetOrientation(OrientationVertical)
		} else {
			a.labelOrientation = LabelParallel
			a.title.SetOrientation(OrientationHorizontal)
		}
	}
	a.invalidateLabels()
}

func (a *Axis) newDecorationLabel() *Label {
	return NewLabel("").SetScaling(a.scaling).SetDPIScaleFactor(a.dpiScale)
}

// CopySettings copies range, points, labels and appearance from another axis.
// Brackets, title, header and footer are left alone, as are this axis's
// type and position.
func (a *Axis) CopySettings(that *Axis) {
	a.points = slices.Clone(that.points)
	a.customLabels = make(map[float64]*Label, len(that.customLabels))
	for v, l := range that.customLabels {
		a.customLabels[v] = l.Clone()
	}
	a.customTickMarks = slices.Clone(that.customTickMarks)
	a.tickMarkInterval = that.tickMarkInterval
	a.minorTickLength = that.minorTickLength
	a.majorTickLength = that.majorTickLength
	a.tickMarkDisplay = that.tickMarkDisplay

	a.doubleSided = that.doubleSided
	a.labelOrientation = that.labelOrientation
	a.stackLabels = that.stackLabels
	a.autoStacking = that.autoStacking

	a.font = that.font.Clone()
	a.fontBackground = that.fontBackground
	a.padding = that.padding
	a.parallelAlignment = that.parallelAlignment
	a.reversed = that.reversed
	a.startAtZero = that.startAtZero
	a.labelDisplay = that.labelDisplay
	a.labelAlignment = that.labelAlignment
	a.gridlinePen = that.gridlinePen
	a.linePen = that.linePen
	a.showOuterLabels = that.showOuterLabels

	a.rangeStart = that.rangeStart
	a.rangeEnd = that.rangeEnd
	a.dates = that.dates
	a.fiscalQuarterStart = that.fiscalQuarterStart
	a.firstWeekday = that.firstWeekday
	a.dateFormat = that.dateFormat

	a.precision = that.precision
	a.interval = that.interval
	a.displayInterval = that.displayInterval
	a.invalidateLabels()
	a.recalcPositions()
}

// SetRange sets the range and picks a round interval for it. The end may grow
// to the next interval boundary; it never shrinks.
func (a *Axis) SetRange(start, end float64, precision int, includeExtraInterval bool) {
	if a.startAtZero {
		start = math.Min(0, start)
	}
	size := end - start
	factor := 1.0
	for _, f := range []float64{1e8, 1e7, 1e6, 1e5, 1e4, 1e3, 1e2, 1e1} {
		if size > f {
			factor = f
			break
		}
	}

	var interval float64
	if size <= 1 {
		interval = 0.2
		if precision == 0 {
			precision = 1
		}
	} else {
		switch {
		case size >= 100:
			interval = math.Ceil(size/factor) * (factor / 10)
		case size >= 20:
			interval = 5
		default:
			interval = math.Ceil(size / 10)
		}
		if rem := math.Mod(size, interval); rem > rangeTolerance*interval && interval-rem > rangeTolerance*interval {
			size = size - rem + interval
		}
	}
	if includeExtraInterval {
		size += interval
	}
	a.SetRangeWithInterval(start, start+size, precision, interval, 1)
}

// SetRangeWithInterval rebuilds the axis points from start to end at the
// given interval, labelling every displayInterval-th point. An inverted or
// non-finite range is ignored and leaves the axis as it was. Custom labels
// survive.
func (a *Axis) SetRangeWithInterval(start, end float64, precision int, interval float64, displayInterval int) {
	if a.startAtZero {
		start = math.Min(0, start)
	}
	if !isFinite(start) || !isFinite(end) || !isFinite(interval) {
		debugAssert(false, "axis range is not finite")
		logger.Debug("non-finite axis range ignored", "axis", a.axisType, "start", start, "end", end, "interval", interval)
		return
	}
	if end < start {
		debugAssert(false, "axis range end is before its start")
		logger.Debug("inverted axis range ignored", "axis", a.axisType, "start", start, "end", end)
		return
	}
	if end == start {
		if interval == 0 {
			interval = 1
		}
		start -= math.Abs(interval)
		end += math.Abs(interval)
	}
	if interval <= 0 {
		interval = (end - start) / 2
	}

	steps := math.Ceil((end-start)/interval + 1 - rangeTolerance)
	if !isFinite(steps) || steps < 1 {
		debugAssert(false, "axis range has no usable step count")
		logger.Debug("axis range ignored", "axis", a.axisType, "start", start, "end", end, "interval", interval)
		return
	}
	if steps > maxAxisPoints {
		debugAssert(false, "too many axis points")
		logger.Warn("axis point count capped", "axis", a.axisType, "requested", steps, "cap", maxAxisPoints)
		steps = maxAxisPoints
	}
	count := int(steps)

	a.invalidateLabels()
	a.precision = max(0, precision)
	a.interval = interval
	a.tickMarkInterval = interval
	a.displayInterval = max(1, displayInterval)
	a.points = make([]AxisPoint, 0, count)
	for k := 0; k < count; k++ {
		v := snapValue(start + float64(k)*interval)
		pt := NewAxisPoint(v, FormatNumber(v, a.precision))
		pt.shown = k%a.displayInterval == 0
		a.points = append(a.points, pt)
	}
	a.rangeStart = start
	a.rangeEnd = a.points[len(a.points)-1].value
	if a.reversed {
		slices.Reverse(a.points)
	}
	a.recalcPositions()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// snapValue removes accumulated floating point noise from a generated value.
func snapValue(v float64) float64 {
	if math.Abs(v) > 1e15 {
		return v
	}
	return math.Round(v*1e10) / 1e10
}

// GetRange returns the lowest and highest values on the axis.
func (a *Axis) GetRange() (start, end float64) { return a.rangeStart, a.rangeEnd }

// GetInterval returns the spacing between generated points.
func (a *Axis) GetInterval() float64 { return a.interval }

// GetPrecision returns the number of decimals labels are formatted with.
func (a *Axis) GetPrecision() int { return a.precision }

// GetDisplayInterval returns the label stride.
func (a *Axis) GetDisplayInterval() int { return a.displayInterval }

// SetDisplayInterval shows a label on every interval-th point, starting at
// offset, and hides the rest.
func (a *Axis) SetDisplayInterval(interval, offset int) {
	a.displayInterval = max(1, interval)
	offset = max(0, offset)
	for i := range a.points {
		a.points[i].shown = i >= offset && (i-offset)%a.displayInterval == 0
	}
	a.invalidateLabels()
}

// GetTickMarkInterval returns the spacing of the standard tick marks.
func (a *Axis) GetTickMarkInterval() float64 { return a.tickMarkInterval }

// SetTickMarkInterval sets the spacing of the standard tick marks.
func (a *Axis) SetTickMarkInterval(interval float64) {
	if interval > 0 {
		a.tickMarkInterval = interval
		a.invalidateLabels()
	}
}

// GetAxisPoints returns a copy of the points in axis order.
func (a *Axis) GetAxisPoints() []AxisPoint { return slices.Clone(a.points) }

// GetAxisPointsCount returns the number of points.
func (a *Axis) GetAxisPointsCount() int { return len(a.points) }

func (a *Axis) findPoint(value float64) int {
	for i := range a.points {
		if valuesEqual(a.points[i].value, value) {
			return i
		}
	}
	return -1
}

// SetCustomLabel shows label instead of the formatted value at value. The
// label takes the axis font when drawn.
func (a *Axis) SetCustomLabel(value float64, label *Label) {
	lbl := label.Clone()
	lbl.SetFont(a.font).SetBackground(a.fontBackground).SetPen(NullPen)
	lbl.SetDPIScaleFactor(a.dpiScale)
	lbl.SplitTextToFitLength(a.maxLineLength)
	a.customLabels[value] = lbl
	a.invalidateLabels()
}

// GetCustomLabel returns the custom label at value, or nil.
func (a *Axis) GetCustomLabel(value float64) *Label {
	if l, ok := a.customLabels[value]; ok {
		return l
	}
	for v, l := range a.customLabels {
		if valuesEqual(v, value) {
			return l
		}
	}
	return nil
}

// GetCustomLabels returns the values that have custom labels, ascending.
func (a *Axis) GetCustomLabels() []float64 {
	vals := make([]float64, 0, len(a.customLabels))
	for v := range a.customLabels {
		vals = append(vals, v)
	}
	sort.Float64s(vals)
	return vals
}

// ClearCustomLabels removes every custom label.
func (a *Axis) ClearCustomLabels() {
	a.customLabels = make(map[float64]*Label)
	a.invalidateLabels()
}

// PointHasLabel reports whether value is a shown point or has a custom label.
func (a *Axis) PointHasLabel(value float64) bool {
	if i := a.findPoint(value); i >= 0 && a.points[i].shown {
		return true
	}
	return a.GetCustomLabel(value) != nil
}

// IsPointDisplayingLabel reports whether pt will have text drawn beside it.
// Points hidden by the display interval never do, custom label or not.
func (a *Axis) IsPointDisplayingLabel(pt AxisPoint) bool {
	if !pt.shown || a.labelDisplay == NoLabelDisplay {
		return false
	}
	custom := a.GetCustomLabel(pt.value)
	if a.labelDisplay == DisplayOnlyCustomLabels && custom == nil {
		return false
	}
	if custom == nil && pt.displayValue == "" {
		return false
	}
	return true
}

// GetDisplayableValue returns the text drawn at pt under the current label
// display mode.
func (a *Axis) GetDisplayableValue(pt AxisPoint) string {
	if !a.IsShowingLabels() {
		return ""
	}
	custom := a.GetCustomLabel(pt.value)
	customText := ""
	if custom != nil {
		customText = custom.GetText()
	}
	switch {
	case a.labelDisplay == DisplayCustomLabelsAndValues && customText != "":
		return customText + "    " + pt.displayValue
	case a.labelDisplay == DisplayOnlyCustomLabels || customText != "":
		return customText
	default:
		return pt.displayValue
	}
}

// GetFirstDisplayedLabel returns the text and value of the first point, in
// axis order, that displays a label.
func (a *Axis) GetFirstDisplayedLabel() (text string, value float64, ok bool) {
	for _, pt := range a.points {
		if a.IsPointDisplayingLabel(pt) {
			return a.GetDisplayableValue(pt), pt.value, true
		}
	}
	return "", math.NaN(), false
}

// GetLastDisplayedLabel returns the text and value of the last point, in axis
// order, that displays a label.
func (a *Axis) GetLastDisplayedLabel() (text string, value float64, ok bool) {
	for i := len(a.points) - 1; i >= 0; i-- {
		if pt := a.points[i]; a.IsPointDisplayingLabel(pt) {
			return a.GetDisplayableValue(pt), pt.value, true
		}
	}
	return "", math.NaN(), false
}

// AddUnevenAxisPoint inserts a point at an arbitrary value, keeping axis
// order. A value already on the axis is ignored.
func (a *Axis) AddUnevenAxisPoint(value float64, label string) {
	if a.findPoint(value) >= 0 {
		logger.Debug("uneven axis point already present", "axis", a.axisType, "value", value, "label", label)
		return
	}
	pos := len(a.points)
	for i, pt := range a.points {
		if (a.reversed && value > pt.value) || (!a.reversed && value < pt.value) {
			pos = i
			break
		}
	}
	a.points = slices.Insert(a.points, pos, NewAxisPoint(value, wrapText(label, a.maxLineLength)))
	a.invalidateLabels()
	a.recalcPositions()
}

// AdjustRangeToLabels shrinks or grows the range to the points present.
func (a *Axis) AdjustRangeToLabels() {
	if len(a.points) == 0 {
		return
	}
	lo, hi := a.points[0].value, a.points[0].value
	for _, pt := range a.points {
		lo = math.Min(lo, pt.value)
		hi = math.Max(hi, pt.value)
	}
	a.rangeStart, a.rangeEnd = lo, hi
}

// ReverseScale orders the axis from high to low values when reverse is set.
func (a *Axis) ReverseScale(reverse bool) {
	if reverse != a.reversed {
		slices.Reverse(a.points)
	}
	a.reversed = reverse
	a.invalidateLabels()
	a.recalcPositions()
}

// IsReversed reports whether values run high to low.
func (a *Axis) IsReversed() bool { return a.reversed }

// SetLabelLineLength rewraps custom labels and point labels so no line
// exceeds n characters where a space allows a break.
func (a *Axis) SetLabelLineLength(n int) {
	a.maxLineLength = n
	for _, l := range a.customLabels {
		l.SplitTextToFitLength(n)
	}
	for i := range a.points {
		a.points[i].displayValue = wrapText(a.points[i].displayValue, n)
	}
	a.invalidateLabels()
}

// GetLabelLineLength returns the suggested maximum characters per line.
func (a *Axis) GetLabelLineLength() int { return a.maxLineLength }

// GetScaling returns the axis scaling.
func (a *Axis) GetScaling() float64 { return a.scaling }

// SetScaling sets the axis scaling and propagates it to brackets and titles.
func (a *Axis) SetScaling(s float64) {
	if s <= 0 {
		return
	}
	a.scaling = s
	for _, b := range a.brackets {
		b.label.SetScaling(s).SetDPIScaleFactor(a.dpiScale)
	}
	for _, l := range []*Label{a.title, a.header, a.footer} {
		l.SetScaling(s)
	}
	a.invalidateLabels()
}

// GetAxisLabelScaling returns the scaling labels are drawn with.
func (a *Axis) GetAxisLabelScaling() float64 { return a.labelScaling }

// SetAxisLabelScaling sets the scaling labels are drawn with.
func (a *Axis) SetAxisLabelScaling(s float64) {
	if s > 0 {
		a.labelScaling = s
		a.invalidateLabels()
	}
}

// GetDPIScaleFactor returns the screen DPI scale factor.
func (a *Axis) GetDPIScaleFactor() float64 { return a.dpiScale }

// SetDPIScaleFactor sets the screen DPI scale factor.
func (a *Axis) SetDPIScaleFactor(f float64) {
	if f <= 0 {
		return
	}
	a.dpiScale = f
	for _, l := range []*Label{a.title, a.header, a.footer} {
		l.SetDPIScaleFactor(f)
	}
	for _, b := range a.brackets {
		b.label.SetDPIScaleFactor(f)
	}
	a.invalidateLabels()
}

func (a *Axis) scaleToScreen(v float64) int {
	return roundInt(v * a.scaling * a.dpiScale)
}

// GetFont returns the label font.
func (a *Axis) GetFont() *Font { return a.font }

// SetFont sets the label font.
func (a *Axis) SetFont(f *Font) {
	a.font = f.Clone()
	a.invalidateLabels()
}

// SetFontColor sets the label text color.
func (a *Axis) SetFontColor(c Color) {
	a.font.Color = c
}

// GetFontBackgroundColor returns the label box fill.
func (a *Axis) GetFontBackgroundColor() Color { return a.fontBackground }

// SetFontBackgroundColor sets the label box fill. Labels with a background
// get at least 4 pixels of padding.
func (a *Axis) SetFontBackgroundColor(c Color) {
	a.fontBackground = c
	a.invalidateLabels()
}

// GetPadding returns the label padding.
func (a *Axis) GetPadding() Padding { return a.padding }

// SetPadding sets the label padding.
func (a *Axis) SetPadding(p Padding) {
	a.padding = p
	a.invalidateLabels()
}

// GetAxisLinePen returns the pen for the axis line and tick marks.
func (a *Axis) GetAxisLinePen() Pen { return a.linePen }

// SetAxisLinePen sets the pen for the axis line and tick marks.
func (a *Axis) SetAxisLinePen(p Pen) { a.linePen = p }

// GetGridlinePen returns the pen a plot draws gridlines with.
func (a *Axis) GetGridlinePen() Pen { return a.gridlinePen }

// SetGridlinePen sets the pen a plot draws gridlines with.
func (a *Axis) SetGridlinePen(p Pen) { a.gridlinePen = p }

// GetCapStyle returns the line end decoration.
func (a *Axis) GetCapStyle() AxisCapStyle { return a.capStyle }

// SetCapStyle sets the line end decoration.
func (a *Axis) SetCapStyle(c AxisCapStyle) { a.capStyle = c }

// GetTickMarkDisplay returns where standard tick marks are drawn.
func (a *Axis) GetTickMarkDisplay() TickMarkDisplay { return a.tickMarkDisplay }

// SetTickMarkDisplay sets where standard tick marks are drawn.
func (a *Axis) SetTickMarkDisplay(d TickMarkDisplay) {
	a.tickMarkDisplay = d
	a.invalidateLabels()
}

// GetMajorTickMarkLength returns the unscaled length of labelled ticks.
func (a *Axis) GetMajorTickMarkLength() int { return a.majorTickLength }

// SetMajorTickMarkLength sets the unscaled length of labelled ticks.
func (a *Axis) SetMajorTickMarkLength(l int) { a.majorTickLength = max(0, l) }

// GetMinorTickMarkLength returns the unscaled length of unlabelled ticks.
func (a *Axis) GetMinorTickMarkLength() int { return a.minorTickLength }

// SetMinorTickMarkLength sets the unscaled length of unlabelled ticks.
func (a *Axis) SetMinorTickMarkLength(l int) { a.minorTickLength = max(0, l) }

// AddCustomTickMark adds a tick mark independent of the axis points.
func (a *Axis) AddCustomTickMark(t TickMark) {
	a.customTickMarks = append(a.customTickMarks, t)
}

// ClearCustomTickMarks removes every custom tick mark.
func (a *Axis) ClearCustomTickMarks() { a.customTickMarks = nil }

// GetAxisLabelOrientation returns the label text direction.
func (a *Axis) GetAxisLabelOrientation() AxisLabelOrientation { return a.labelOrientation }

// SetAxisLabelOrientation sets the label text direction.
func (a *Axis) SetAxisLabelOrientation(o AxisLabelOrientation) {
	a.labelOrientation = o
	a.invalidateLabels()
}

// GetPerpendicularLabelAxisAlignment returns where labels sit relative to the line.
func (a *Axis) GetPerpendicularLabelAxisAlignment() AxisLabelAlignment { return a.labelAlignment }

// SetPerpendicularLabelAxisAlignment sets where labels sit relative to the line.
func (a *Axis) SetPerpendicularLabelAxisAlignment(al AxisLabelAlignment) {
	a.labelAlignment = al
	a.invalidateLabels()
}

// GetParallelLabelAlignment returns how labels line up with their point.
func (a *Axis) GetParallelLabelAlignment() RelativeAlignment { return a.parallelAlignment }

// SetParallelLabelAlignment sets how labels line up with their point.
func (a *Axis) SetParallelLabelAlignment(al RelativeAlignment) {
	a.parallelAlignment = al
	a.invalidateLabels()
}

// GetLabelDisplay returns the label display mode.
func (a *Axis) GetLabelDisplay() AxisLabelDisplay { return a.labelDisplay }

// SetLabelDisplay sets the label display mode.
func (a *Axis) SetLabelDisplay(d AxisLabelDisplay) {
	a.labelDisplay = d
	a.invalidateLabels()
}

// IsShowingLabels reports whether any label text is drawn.
func (a *Axis) IsShowingLabels() bool { return a.labelDisplay != NoLabelDisplay }

// EnableDoubleSidedAxisLabels mirrors labels onto the inner side of the line.
func (a *Axis) EnableDoubleSidedAxisLabels(enable bool) {
	a.doubleSided = enable
	a.invalidateLabels()
}

// HasDoubleSidedAxisLabels reports whether labels are mirrored.
func (a *Axis) HasDoubleSidedAxisLabels() bool { return a.doubleSided }

// StackLabels forces labels into two staggered rows and turns auto stacking off.
func (a *Axis) StackLabels(stack bool) {
	a.stackLabels = stack
	a.autoStacking = false
	a.invalidateLabels()
}

// IsStackingLabels reports whether labels are staggered.
func (a *Axis) IsStackingLabels() bool { return a.stackLabels }

// EnableAutoStacking lets layout decide whether to stack labels.
func (a *Axis) EnableAutoStacking(enable bool) { a.autoStacking = enable }

// IsAutoStackingEnabled reports whether layout decides on stacking.
func (a *Axis) IsAutoStackingEnabled() bool { return a.autoStacking }

// ShowOuterLabels lets the first and last labels hang past the line ends.
func (a *Axis) ShowOuterLabels(show bool) {
	a.showOuterLabels = show
	a.invalidateLabels()
}

// IsShowingOuterLabels reports whether end labels may hang past the line ends.
func (a *Axis) IsShowingOuterLabels() bool { return a.showOuterLabels }

// SetStartAtZero clamps future range starts to at most zero.
func (a *Axis) SetStartAtZero(b bool) { a.startAtZero = b }

// IsStartingAtZero reports whether range starts are clamped to zero.
func (a *Axis) IsStartingAtZero() bool { return a.startAtZero }

// GetSpacingBetweenLabelsAndLine returns the unscaled gap around labels.
func (a *Axis) GetSpacingBetweenLabelsAndLine() int { return a.labelLineSpacing }

// SetSpacingBetweenLabelsAndLine sets the unscaled gap around labels.
func (a *Axis) SetSpacingBetweenLabelsAndLine(s int) {
	a.labelLineSpacing = max(0, s)
	a.invalidateLabels()
}

// AddBracket adds a bracket, taking on the axis scaling and orientation.
func (a *Axis) AddBracket(b *AxisBracket) {
	b.label.SetScaling(a.scaling).SetDPIScaleFactor(a.dpiScale)
	a.brackets = append(a.brackets, b)
}

// GetBrackets returns the brackets in drawing order.
func (a *Axis) GetBrackets() []*AxisBracket { return a.brackets }

// HasBrackets reports whether any bracket is attached.
func (a *Axis) HasBrackets() bool { return len(a.brackets) > 0 }

// ClearBrackets removes every bracket.
func (a *Axis) ClearBrackets() { a.brackets = nil }

// GetTitle returns the title label, drawn beyond everything else.
func (a *Axis) GetTitle() *Label { return a.title }

// GetHeader returns the header: above a vertical axis or right of a
// horizontal one.
func (a *Axis) GetHeader() *Label { return a.header }

// GetFooter returns the footer: below a vertical axis or left of a
// horizontal one.
func (a *Axis) GetFooter() *Label { return a.footer }

// GetAnchoring returns which edge SetBoundingBox pins the axis to.
func (a *Axis) GetAnchoring() LabelAnchoring { return a.anchoring }

// SetAnchoring sets which edge SetBoundingBox pins the axis to.
func (a *Axis) SetAnchoring(an LabelAnchoring) { a.anchoring = an }

// IsFreeFloating reports whether the axis positions itself.
func (a *Axis) IsFreeFloating() bool { return a.freeFloating }

// SetFreeFloating marks the axis as positioned independently of any layout slot.
func (a *Axis) SetFreeFloating(b bool) { a.freeFloating = b }

// IsShown reports whether the axis is drawn.
func (a *Axis) IsShown() bool { return a.shown }

// Show toggles drawing of the axis.
func (a *Axis) Show(show bool) { a.shown = show }

// SetOutlineSize inflates the bounding box by a selection outline.
func (a *Axis) SetOutlineSize(sz image.Point) { a.outlineSize = sz }

// GetAxisLine returns the normalized endpoints.
func (a *Axis) GetAxisLine() AxisLine { return a.line }

// IsPositioned reports whether SetPoints has run.
func (a *Axis) IsPositioned() bool { return a.line.IsPositioned() }

// GetMaxSize returns the clamp stored by the last SetBoundingBox: the max
// height for horizontal axes and max width for vertical ones. Zero means none.
func (a *Axis) GetMaxSize() int {
	if a.IsVertical() {
		return a.maxWidth
	}
	return a.maxHeight
}

// ClearMaxSize drops the clamp stored by SetBoundingBox.
func (a *Axis) ClearMaxSize() {
	a.maxWidth, a.maxHeight = 0, 0
}
