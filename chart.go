package gochart

import (
	"image"
	"math"
	"slices"
	"sort"
)

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Title      string
	Values     map[string]float64 // category -> value
	Categories []string           // ordered category names
	FillColor  Color
	ShowValue  bool
	Font       *Font
}

// NewChartSeries creates a new chart series.
// Note: map iteration order is non-deterministic in Go, so categories are
// sorted. Use NewChartSeriesOrdered to keep a given order.
func NewChartSeries(title string, data map[string]float64) *ChartSeries {
	cats := make([]string, 0, len(data))
	for k := range data {
		cats = append(cats, k)
	}
	sort.Strings(cats)
	return &ChartSeries{
		Title:      title,
		Values:     data,
		Categories: cats,
		Font:       NewFont(),
	}
}

// NewChartSeriesOrdered creates a series with ordered categories.
// If len(values) < len(categories), missing values default to 0.
// Extra values beyond len(categories) are ignored.
func NewChartSeriesOrdered(title string, categories []string, values []float64) *ChartSeries {
	data := make(map[string]float64, len(categories))
	for i, cat := range categories {
		if i < len(values) {
			data[cat] = values[i]
		} else {
			data[cat] = 0
		}
	}
	return &ChartSeries{
		Title:      title,
		Values:     data,
		Categories: slices.Clone(categories),
		Font:       NewFont(),
	}
}

// SetFillColor sets the series fill color.
func (s *ChartSeries) SetFillColor(c Color) *ChartSeries {
	s.FillColor = c
	return s
}

// SetShowValue toggles value labels on the series.
func (s *ChartSeries) SetShowValue(v bool) *ChartSeries {
	s.ShowValue = v
	return s
}

// seriesCategories merges the categories of every series, first seen first.
func seriesCategories(series []*ChartSeries) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, s := range series {
		for _, c := range s.Categories {
			if !seen[c] {
				seen[c] = true
				cats = append(cats, c)
			}
		}
	}
	return cats
}

// configureCategoryAxis puts one point per category at values 1..n, with a
// blank point on each side so bars have room, and labels them by name.
func configureCategoryAxis(a *Axis, cats []string) {
	a.ClearCustomLabels()
	a.SetRangeWithInterval(0, float64(len(cats)+1), 0, 1, 1)
	for i, c := range cats {
		a.SetCustomLabel(float64(i+1), NewLabel(c))
	}
	a.SetLabelDisplay(DisplayOnlyCustomLabels)
}

func seriesColor(s *ChartSeries, scheme *ColorScheme, i int) Color {
	if s.FillColor.IsOK() {
		return s.FillColor
	}
	if scheme == nil || scheme.Len() == 0 {
		scheme = DuskScheme()
	}
	return scheme.GetColor(i)
}

// --- Bar chart ---

// Bar grouping constants.
const (
	BarGroupingClustered = "clustered"
	BarGroupingStacked   = "stacked"
)

// Bar direction constants.
const (
	BarDirectionVertical   = "col"
	BarDirectionHorizontal = "bar"
)

// BarChart draws one bar per series and category, side by side or stacked.
type BarChart struct {
	Series          []*ChartSeries
	BarGrouping     string
	BarDirection    string
	GapWidthPercent int
	Scheme          *ColorScheme
}

// NewBarChart creates a new bar chart.
func NewBarChart() *BarChart {
	return &BarChart{
		Series:          make([]*ChartSeries, 0),
		BarGrouping:     BarGroupingClustered,
		BarDirection:    BarDirectionVertical,
		GapWidthPercent: 150,
		Scheme:          DuskScheme(),
	}
}

// AddSeries adds a data series.
func (b *BarChart) AddSeries(s *ChartSeries) *BarChart {
	b.Series = append(b.Series, s)
	return b
}

// SetBarGrouping sets the bar grouping type.
func (b *BarChart) SetBarGrouping(g string) *BarChart {
	b.BarGrouping = g
	return b
}

// SetBarDirection sets whether bars grow up (col) or right (bar).
func (b *BarChart) SetBarDirection(d string) *BarChart {
	b.BarDirection = d
	return b
}

// SetGapWidthPercent sets the gap between category groups as a percentage
// of the bar width (0-500).
func (b *BarChart) SetGapWidthPercent(v int) *BarChart {
	if v < 0 {
		v = 0
	}
	if v > 500 {
		v = 500
	}
	b.GapWidthPercent = v
	return b
}

// SetColorScheme sets the colors series without a fill color take.
func (b *BarChart) SetColorScheme(s *ColorScheme) *BarChart {
	b.Scheme = s
	return b
}

func (b *BarChart) horizontal() bool { return b.BarDirection == BarDirectionHorizontal }

func (b *BarChart) stacked() bool { return b.BarGrouping == BarGroupingStacked }

func (b *BarChart) axes(p *Plot) (cat, val *Axis) {
	if b.horizontal() {
		return p.GetLeftYAxis(), p.GetBottomXAxis()
	}
	return p.GetBottomXAxis(), p.GetLeftYAxis()
}

// valueExtent returns the lowest and highest value the bars reach.
func (b *BarChart) valueExtent() (lo, hi float64) {
	for _, cat := range seriesCategories(b.Series) {
		pos, neg := 0.0, 0.0
		for _, s := range b.Series {
			v := s.Values[cat]
			if b.stacked() {
				if v >= 0 {
					pos += v
				} else {
					neg += v
				}
				continue
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		lo, hi = math.Min(lo, neg), math.Max(hi, pos)
	}
	return lo, hi
}

// ConfigureAxes implements Layer.
func (b *BarChart) ConfigureAxes(p *Plot) {
	cat, val := b.axes(p)
	configureCategoryAxis(cat, seriesCategories(b.Series))
	if b.horizontal() {
		// first category at the top
		cat.ReverseScale(true)
	}
	lo, hi := b.valueExtent()
	val.SetStartAtZero(true)
	val.SetRange(lo, hi, 0, false)
}

// Draw implements Layer.
func (b *BarChart) Draw(dc DrawContext, p *Plot) {
	cat, val := b.axes(p)
	cats := seriesCategories(b.Series)
	if len(cats) == 0 || len(b.Series) == 0 {
		return
	}
	start, end := val.GetRange()
	base, ok := val.GetPhysicalCoordinate(math.Max(start, math.Min(0, end)))
	if !ok {
		return
	}
	slot := cat.GetLabelPhysicalOffset()
	group := slot / (1 + float64(b.GapWidthPercent)/200)
	barW := group
	if !b.stacked() {
		barW = group / float64(len(b.Series))
	}

	for ci, name := range cats {
		center, ok := cat.GetPhysicalCoordinate(float64(ci + 1))
		if !ok {
			continue
		}
		pos, neg := 0.0, 0.0
		for si, s := range b.Series {
			v, ok := s.Values[name]
			if !ok {
				continue
			}
			lo := base
			from := 0.0
			if b.stacked() {
				if v >= 0 {
					from, pos = pos, pos+v
				} else {
					from, neg = neg, neg+v
				}
				if c, ok := val.GetPhysicalCoordinate(from); ok {
					lo = c
				}
			}
			hi, ok := val.GetPhysicalCoordinate(from + v)
			if !ok {
				continue
			}
			a0 := float64(center) - group/2
			if !b.stacked() {
				a0 += barW * float64(si)
			}
			r := rectFromSpans(b.horizontal(),
				roundInt(a0), roundInt(a0+barW),
				min(lo, hi), max(lo, hi))
			fill := seriesColor(s, b.Scheme, si)
			dc.DrawRect(r, NewPen(ShadeOrTint(fill, 0.3), 1), fill)
			if s.ShowValue {
				drawBarValue(dc, r, v, val.GetPrecision(), fill, s.Font, p.GetScaling(), b.horizontal())
			}
		}
	}
}

// drawBarValue writes v inside the end of the bar in a contrasting color, or
// just past the end in black when the bar is too small.
func drawBarValue(dc DrawContext, r image.Rectangle, v float64, precision int, fill Color, f *Font, scaling float64, horizontal bool) {
	lbl := NewLabel(FormatNumber(v, precision)).SetFont(f).SetScaling(scaling)
	sz := lbl.Size(dc)
	inside := sz.X < r.Dx() && sz.Y < r.Dy()
	color := ColorBlack
	if inside {
		color = BlackOrWhiteContrast(fill)
	}
	lbl.SetFont(f.Clone().SetColor(color))
	switch {
	case horizontal && inside:
		lbl.SetAnchoring(AnchorTopRightCorner).SetAnchorPoint(image.Pt(r.Max.X-2, r.Min.Y+(r.Dy()-sz.Y)/2))
	case horizontal:
		lbl.SetAnchoring(AnchorTopLeftCorner).SetAnchorPoint(image.Pt(r.Max.X+2, r.Min.Y+(r.Dy()-sz.Y)/2))
	case inside:
		lbl.SetAnchoring(AnchorTopLeftCorner).SetAnchorPoint(image.Pt(r.Min.X+(r.Dx()-sz.X)/2, r.Min.Y+2))
	default:
		lbl.SetAnchoring(AnchorBottomLeftCorner).SetAnchorPoint(image.Pt(r.Min.X+(r.Dx()-sz.X)/2, r.Min.Y-2))
	}
	lbl.Draw(dc)
}

// --- Line chart ---

// LineChart draws each series as a polyline across the categories.
type LineChart struct {
	Series     []*ChartSeries
	LineWidth  int
	MarkerSize int
	Scheme     *ColorScheme
}

// NewLineChart creates a new line chart.
func NewLineChart() *LineChart {
	return &LineChart{
		Series:     make([]*ChartSeries, 0),
		LineWidth:  2,
		MarkerSize: 6,
		Scheme:     EarthTonesScheme(),
	}
}

// AddSeries adds a data series.
func (l *LineChart) AddSeries(s *ChartSeries) *LineChart {
	l.Series = append(l.Series, s)
	return l
}

// ConfigureAxes implements Layer.
func (l *LineChart) ConfigureAxes(p *Plot) {
	configureCategoryAxis(p.GetBottomXAxis(), seriesCategories(l.Series))
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range l.Series {
		for _, v := range s.Values {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 0) {
		lo, hi = 0, 1
	}
	p.GetLeftYAxis().SetRange(lo, hi, 0, false)
}

// Draw implements Layer.
func (l *LineChart) Draw(dc DrawContext, p *Plot) {
	xa, ya := p.GetBottomXAxis(), p.GetLeftYAxis()
	cats := seriesCategories(l.Series)
	scale := p.GetScaling()
	for si, s := range l.Series {
		col := seriesColor(s, l.Scheme, si)
		pen := NewPen(col, max(1, roundInt(float64(l.LineWidth)*scale)))
		marker := max(2, roundInt(float64(l.MarkerSize)*scale))
		var prev *image.Point
		for ci, name := range cats {
			v, ok := s.Values[name]
			if !ok {
				prev = nil
				continue
			}
			x, okX := xa.GetPhysicalCoordinate(float64(ci + 1))
			y, okY := ya.GetPhysicalCoordinate(v)
			if !okX || !okY {
				prev = nil
				continue
			}
			pt := image.Pt(x, y)
			if prev != nil {
				dc.DrawLine(*prev, pt, pen)
			}
			dc.DrawRect(image.Rect(x-marker/2, y-marker/2, x-marker/2+marker, y-marker/2+marker), NewPen(ShadeOrTint(col, 0.3), 1), col)
			if s.ShowValue {
				NewLabel(FormatNumber(v, ya.GetPrecision())).SetFont(s.Font).SetScaling(scale).
					SetAnchoring(AnchorBottomLeftCorner).SetAnchorPoint(image.Pt(x+marker, y-marker)).
					Draw(dc)
			}
			prev = &pt
		}
	}
}
