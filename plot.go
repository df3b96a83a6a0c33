package gochart

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxLayoutPasses bounds the axis negotiation in Plot.Layout.
const maxLayoutPasses = 6

// Layer draws data inside a plot's area using its axes for mapping.
type Layer interface {
	// ConfigureAxes sets up the axes the layer maps through. It runs once,
	// when the layer is added.
	ConfigureAxes(p *Plot)
	Draw(dc DrawContext, p *Plot)
}

// CustomAxis is a free-floating axis drawn across the plot area at a value
// of a parent axis, such as a marker line at x = 10.
type CustomAxis struct {
	Axis   *Axis
	Parent AxisType
	Value  float64
}

// Plot owns four axes, a title and layers, and negotiates the space each
// axis takes around the data area.
type Plot struct {
	axes       map[AxisType]*Axis
	customAxes []CustomAxis
	layers     []Layer
	title      *Label

	background     Color
	plotBackground Color
	xGridlines     bool
	yGridlines     bool
	scaling        float64
	dpiScale       float64
	margin         int

	bounds   image.Rectangle
	plotArea image.Rectangle
	laidOut  bool
}

// NewPlot creates a plot with visible left and bottom axes. The top and
// right axes exist but are hidden.
func NewPlot() *Plot {
	p := &Plot{
		axes:           make(map[AxisType]*Axis, 4),
		title:          NewLabel("").SetFont(NewFont().SetSize(14).SetBold(true)),
		background:     ColorWhite,
		plotBackground: ColorTransparent,
		yGridlines:     true,
		scaling:        1,
		dpiScale:       1,
		margin:         10,
	}
	for _, t := range []AxisType{BottomXAxis, TopXAxis, LeftYAxis, RightYAxis} {
		a := NewAxis(t)
		a.SetTickMarkDisplay(TickMarkOuter)
		a.Show(t == BottomXAxis || t == LeftYAxis)
		p.axes[t] = a
	}
	return p
}

// GetAxis returns the axis of the given type.
func (p *Plot) GetAxis(t AxisType) *Axis { return p.axes[t] }

// GetBottomXAxis returns the bottom axis.
func (p *Plot) GetBottomXAxis() *Axis { return p.axes[BottomXAxis] }

// GetTopXAxis returns the top axis.
func (p *Plot) GetTopXAxis() *Axis { return p.axes[TopXAxis] }

// GetLeftYAxis returns the left axis.
func (p *Plot) GetLeftYAxis() *Axis { return p.axes[LeftYAxis] }

// GetRightYAxis returns the right axis.
func (p *Plot) GetRightYAxis() *Axis { return p.axes[RightYAxis] }

// MirrorXAxis copies the bottom axis settings onto the top axis and shows it.
func (p *Plot) MirrorXAxis() {
	p.axes[TopXAxis].CopySettings(p.axes[BottomXAxis])
	p.axes[TopXAxis].Show(true)
}

// MirrorYAxis copies the left axis settings onto the right axis and shows it.
func (p *Plot) MirrorYAxis() {
	p.axes[RightYAxis].CopySettings(p.axes[LeftYAxis])
	p.axes[RightYAxis].Show(true)
}

// GetTitle returns the plot title.
func (p *Plot) GetTitle() *Label { return p.title }

// SetTitle sets the title text.
func (p *Plot) SetTitle(text string) *Plot {
	p.title.SetText(text)
	return p
}

// SetBackground sets the color behind everything.
func (p *Plot) SetBackground(c Color) *Plot {
	p.background = c
	return p
}

// SetPlotBackground sets the color of the data area.
func (p *Plot) SetPlotBackground(c Color) *Plot {
	p.plotBackground = c
	return p
}

// ShowGridlines toggles gridlines at the shown points of the bottom (x) and
// left (y) axes.
func (p *Plot) ShowGridlines(x, y bool) *Plot {
	p.xGridlines, p.yGridlines = x, y
	return p
}

// GetScaling returns the plot scaling.
func (p *Plot) GetScaling() float64 { return p.scaling }

// SetScaling sets the scaling handed down to every axis.
func (p *Plot) SetScaling(s float64) *Plot {
	if s > 0 {
		p.scaling = s
		p.laidOut = false
	}
	return p
}

// SetDPIScaleFactor sets the DPI scale factor handed down to every axis.
func (p *Plot) SetDPIScaleFactor(f float64) *Plot {
	if f > 0 {
		p.dpiScale = f
		p.laidOut = false
	}
	return p
}

// AddLayer adds a data layer and lets it configure the axes.
func (p *Plot) AddLayer(l Layer) *Plot {
	l.ConfigureAxes(p)
	p.layers = append(p.layers, l)
	p.laidOut = false
	return p
}

// GetLayers returns the layers in drawing order.
func (p *Plot) GetLayers() []Layer { return p.layers }

// AddCustomAxis adds a free-floating axis placed at value on the parent axis.
// A vertical custom axis needs a horizontal parent and the other way round.
func (p *Plot) AddCustomAxis(a *Axis, parent AxisType, value float64) error {
	if a.IsVertical() == parent.IsVertical() {
		return fmt.Errorf("custom %s axis cannot be placed on the %s axis", a.GetAxisType(), parent)
	}
	a.SetFreeFloating(true)
	p.customAxes = append(p.customAxes, CustomAxis{Axis: a, Parent: parent, Value: value})
	p.laidOut = false
	return nil
}

// GetCustomAxes returns the free-floating axes.
func (p *Plot) GetCustomAxes() []CustomAxis { return p.customAxes }

// GetPlotArea returns the data area found by the last Layout.
func (p *Plot) GetPlotArea() image.Rectangle { return p.plotArea }

// GetBoundingBox returns the rectangle the last Layout worked in.
func (p *Plot) GetBoundingBox() image.Rectangle { return p.bounds }

func (p *Plot) shownAxes() []*Axis {
	var out []*Axis
	for _, t := range []AxisType{BottomXAxis, TopXAxis, LeftYAxis, RightYAxis} {
		if a := p.axes[t]; a.IsShown() {
			out = append(out, a)
		}
	}
	return out
}

// placeAxis lines an axis up with one edge of the data area.
func placeAxis(a *Axis, area image.Rectangle, m TextMeasurer) {
	bl := image.Pt(area.Min.X, area.Max.Y)
	switch a.GetAxisType() {
	case BottomXAxis:
		a.SetPoints(bl, area.Max, m)
	case TopXAxis:
		a.SetPoints(area.Min, image.Pt(area.Max.X, area.Min.Y), m)
	case LeftYAxis:
		a.SetPoints(area.Min, bl, m)
	case RightYAxis:
		a.SetPoints(image.Pt(area.Max.X, area.Min.Y), area.Max, m)
	}
}

// Layout fits the plot into bounds. Each pass lines the axes up with the
// current data area, settles their stacking, and shrinks the area by however
// far their bounding boxes spill out of bounds. It stops when everything
// fits or after a bounded number of passes.
func (p *Plot) Layout(m TextMeasurer, bounds image.Rectangle) {
	p.bounds = bounds.Canon()
	margin := roundInt(float64(p.margin) * p.scaling * p.dpiScale)
	outer := p.bounds.Inset(margin)

	p.title.SetScaling(p.scaling).SetDPIScaleFactor(p.dpiScale)
	if p.title.IsOK() {
		outer.Min.Y += p.title.Size(m).Y + margin
	}

	axes := p.shownAxes()
	for _, a := range axes {
		a.SetScaling(p.scaling)
		a.SetDPIScaleFactor(p.dpiScale)
		a.ClearMaxSize()
	}

	area := outer
	pass := 0
	for ; pass < maxLayoutPasses; pass++ {
		for _, a := range axes {
			a.SetAxisLabelScaling(p.scaling)
			placeAxis(a, area, m)
			a.ApplyAutoStacking(m)
		}
		used := area
		for _, a := range axes {
			used = used.Union(a.GetBoundingBox(m))
		}
		grow := image.Rectangle{
			Min: image.Pt(max(0, outer.Min.X-used.Min.X), max(0, outer.Min.Y-used.Min.Y)),
			Max: image.Pt(max(0, used.Max.X-outer.Max.X), max(0, used.Max.Y-outer.Max.Y)),
		}
		if grow == (image.Rectangle{}) {
			break
		}
		next := image.Rect(area.Min.X+grow.Min.X, area.Min.Y+grow.Min.Y,
			area.Max.X-grow.Max.X, area.Max.Y-grow.Max.Y)
		if next.Dx() < 1 || next.Dy() < 1 {
			logger.Warn("plot area collapsed during layout", "bounds", p.bounds, "area", next)
			break
		}
		area = next
	}
	if pass == maxLayoutPasses {
		// The last shrink was not checked, so line the axes up with it.
		for _, a := range axes {
			placeAxis(a, area, m)
		}
	}
	p.plotArea = area
	p.placeCustomAxes(m)
	p.laidOut = true
	logger.Debug("plot laid out", "bounds", p.bounds, "area", area, "passes", pass)
}

func (p *Plot) placeCustomAxes(m TextMeasurer) {
	area := p.plotArea
	for _, ca := range p.customAxes {
		ca.Axis.SetScaling(p.scaling)
		ca.Axis.SetDPIScaleFactor(p.dpiScale)
		c, ok := p.axes[ca.Parent].GetPhysicalCoordinate(ca.Value)
		if !ok {
			logger.Debug("custom axis value outside its parent axis", "parent", ca.Parent, "value", ca.Value)
			ca.Axis.Show(false)
			continue
		}
		ca.Axis.Show(true)
		if ca.Axis.IsVertical() {
			ca.Axis.SetPoints(image.Pt(c, area.Min.Y), image.Pt(c, area.Max.Y), m)
		} else {
			ca.Axis.SetPoints(image.Pt(area.Min.X, c), image.Pt(area.Max.X, c), m)
		}
	}
}

func (p *Plot) drawGridlines(dc DrawContext) {
	area := p.plotArea
	draw := func(a *Axis) {
		pen := a.scaledPen(a.GetGridlinePen())
		if !pen.IsOK() {
			return
		}
		for _, pt := range a.points {
			if !pt.shown {
				continue
			}
			c, ok := pt.GetPhysicalCoordinate()
			if !ok {
				continue
			}
			if a.IsVertical() {
				dc.DrawLine(image.Pt(area.Min.X, c), image.Pt(area.Max.X, c), pen)
			} else {
				dc.DrawLine(image.Pt(c, area.Min.Y), image.Pt(c, area.Max.Y), pen)
			}
		}
	}
	if p.xGridlines {
		draw(p.axes[BottomXAxis])
	}
	if p.yGridlines {
		draw(p.axes[LeftYAxis])
	}
}

// Draw paints the plot: backgrounds, gridlines, layers, axes and title.
// Layout must have run.
func (p *Plot) Draw(dc DrawContext) {
	if !p.laidOut {
		debugAssert(false, "plot drawn before layout")
		logger.Debug("plot drawn without layout; laying out over its last bounds")
		p.Layout(dc, p.bounds)
	}
	if p.background.IsOK() {
		dc.DrawRect(p.bounds, NullPen, p.background)
	}
	if p.plotBackground.IsOK() {
		dc.DrawRect(p.plotArea, NullPen, p.plotBackground)
	}
	p.drawGridlines(dc)
	for _, l := range p.layers {
		l.Draw(dc, p)
	}
	for _, a := range p.shownAxes() {
		a.Draw(dc)
	}
	for _, ca := range p.customAxes {
		ca.Axis.Draw(dc)
	}
	if p.title.IsOK() {
		margin := roundInt(float64(p.margin) * p.scaling * p.dpiScale)
		mid := p.bounds.Min.X + p.bounds.Dx()/2
		p.title.Clone().
			SetAnchoring(AnchorCenter).
			SetAnchorPoint(image.Pt(mid, p.bounds.Min.Y+margin+p.title.Size(dc).Y/2)).
			Draw(dc)
	}
}

// RenderImage lays the plot out on a new image of the size the options ask
// for and draws it.
func (p *Plot) RenderImage(opts *RenderOptions) *image.RGBA {
	opts = opts.normalize()
	dc := NewImageContextFromOptions(opts)
	p.Layout(dc, dc.Bounds())
	p.Draw(dc)
	return dc.Image()
}

// WritePNG renders the plot and encodes it as PNG or JPEG per opts.Format.
func (p *Plot) WritePNG(w io.Writer, opts *RenderOptions) error {
	if err := EncodeImage(w, p.RenderImage(opts), opts); err != nil {
		return fmt.Errorf("encode image: %w", err)
	}
	return nil
}

// WriteSVG renders the plot as an SVG document.
func (p *Plot) WriteSVG(w io.Writer, opts *RenderOptions) error {
	opts = opts.normalize()
	dc := NewSVGContext(w, opts.Width, opts.Height, opts.measurer())
	p.Layout(dc, dc.Bounds())
	p.Draw(dc)
	if err := dc.Close(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// SavePNG renders the plot to an image file.
func (p *Plot) SavePNG(path string, opts *RenderOptions) error {
	return SaveImage(p.RenderImage(opts), path, opts)
}

// Save renders the plot to path, choosing SVG or raster output by extension.
func (p *Plot) Save(path string, opts *RenderOptions) (err error) {
	if !strings.EqualFold(filepath.Ext(path), ".svg") {
		return p.SavePNG(path, opts)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
		}
	}()
	return p.WriteSVG(f, opts)
}

// RenderAxis positions a lone axis inside rect through SetBoundingBox and
// draws it, returning the box it used.
func RenderAxis(dc DrawContext, a *Axis, rect image.Rectangle, scaling float64) image.Rectangle {
	a.SetFreeFloating(false)
	a.SetBoundingBox(rect, dc, scaling)
	return a.Draw(dc)
}
