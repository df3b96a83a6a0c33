package gochart

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks the config for problems and returns an error describing all
// of them, or nil if a plot can be built from it.
func (c *ChartConfig) Validate() error {
	var errs []string

	if c.Width <= 0 {
		errs = append(errs, "width must be positive")
	}
	if c.Height <= 0 {
		errs = append(errs, "height must be positive")
	}
	if c.DPI <= 0 {
		errs = append(errs, "dpi must be positive")
	}
	if c.Scaling <= 0 {
		errs = append(errs, "scaling must be positive")
	}
	switch strings.ToLower(c.Format) {
	case "png", "jpeg", "jpg", "svg":
	default:
		errs = append(errs, "unsupported output format: "+c.Format)
	}
	if c.Font.Size <= 0 {
		errs = append(errs, "font size must be positive")
	}

	if _, err := ParseHexColor(c.Colors.Background); err != nil {
		errs = append(errs, "colors.background: "+err.Error())
	}
	if c.Colors.PlotArea != "" {
		if _, err := ParseHexColor(c.Colors.PlotArea); err != nil {
			errs = append(errs, "colors.plot_area: "+err.Error())
		}
	}
	if !isKnownScheme(c.Colors.Scheme) {
		errs = append(errs, "unknown color scheme: "+c.Colors.Scheme)
	}

	switch c.Type {
	case ChartTypeBar:
		errs = append(errs, c.validateBars()...)
		errs = append(errs, c.validateSeries()...)
	case ChartTypeLine:
		errs = append(errs, c.validateSeries()...)
	case ChartTypeTimeline:
		if c.Dates == nil {
			errs = append(errs, "timeline chart requires a dates section")
		}
	default:
		errs = append(errs, "unknown chart type: "+c.Type)
	}
	if c.Dates != nil {
		errs = append(errs, validateDates(c.Dates)...)
	}

	errs = append(errs, validateAxis("x_axis", c.XAxis)...)
	errs = append(errs, validateAxis("y_axis", c.YAxis)...)

	for i, ca := range c.CustomAxes {
		switch strings.ToLower(ca.Parent) {
		case "x", "y":
		default:
			errs = append(errs, fmt.Sprintf("custom axis %d: parent must be x or y, got %q", i+1, ca.Parent))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func isKnownScheme(name string) bool {
	switch name {
	case "", "dusk", "Dusk", "earthtones", "earth-tones", "EarthTones":
		return true
	}
	return false
}

func (c *ChartConfig) validateBars() []string {
	var errs []string
	switch c.Bars.Grouping {
	case BarGroupingClustered, BarGroupingStacked:
	default:
		errs = append(errs, "bars.grouping must be clustered or stacked, got "+c.Bars.Grouping)
	}
	switch c.Bars.Direction {
	case BarDirectionVertical, BarDirectionHorizontal:
	default:
		errs = append(errs, "bars.direction must be col or bar, got "+c.Bars.Direction)
	}
	if c.Bars.GapWidth < 0 || c.Bars.GapWidth > 500 {
		errs = append(errs, "bars.gap_width must be between 0 and 500")
	}
	return errs
}

func (c *ChartConfig) validateSeries() []string {
	var errs []string
	if len(c.Categories) == 0 {
		errs = append(errs, "chart has no categories")
	}
	if len(c.Series) == 0 {
		errs = append(errs, "chart has no series")
	}
	for i, s := range c.Series {
		prefix := fmt.Sprintf("series %d", i+1)
		if len(s.Values) > len(c.Categories) {
			errs = append(errs, fmt.Sprintf("%s: %d values for %d categories", prefix, len(s.Values), len(c.Categories)))
		}
		if s.Color != "" {
			if _, err := ParseHexColor(s.Color); err != nil {
				errs = append(errs, prefix+": "+err.Error())
			}
		}
	}
	return errs
}

func validateDates(d *DateRangeConfig) []string {
	var errs []string
	first, err := time.Parse(configDateLayout, d.Start)
	if err != nil {
		errs = append(errs, "dates.start is not a YYYY-MM-DD date: "+d.Start)
	}
	last, err2 := time.Parse(configDateLayout, d.End)
	if err2 != nil {
		errs = append(errs, "dates.end is not a YYYY-MM-DD date: "+d.End)
	}
	if err == nil && err2 == nil && last.Before(first) {
		errs = append(errs, "dates.end is before dates.start")
	}
	if _, ok := parseDateInterval(d.Interval); !ok {
		errs = append(errs, "unknown date interval: "+d.Interval)
	}
	if _, ok := parseFiscalYear(d.FiscalYear); !ok {
		errs = append(errs, "unknown fiscal year: "+d.FiscalYear)
	}
	return errs
}

func validateAxis(name string, ac AxisConfig) []string {
	var errs []string
	if (ac.Min != nil && !isFinite(*ac.Min)) || (ac.Max != nil && !isFinite(*ac.Max)) || !isFinite(ac.Interval) {
		errs = append(errs, name+": min, max and interval must be finite")
	}
	if ac.Min != nil && ac.Max != nil && *ac.Min >= *ac.Max {
		errs = append(errs, name+": min must be less than max")
	}
	if ac.Interval < 0 {
		errs = append(errs, name+": interval is negative")
	}
	if ac.DisplayInterval < 0 {
		errs = append(errs, name+": display_interval is negative")
	}
	if ac.Precision < 0 {
		errs = append(errs, name+": precision is negative")
	}
	if _, ok := parseTickMarks(ac.TickMarks); !ok {
		errs = append(errs, name+": unknown tick_marks value: "+ac.TickMarks)
	}
	switch strings.ToLower(ac.LabelOrientation) {
	case "", "parallel", "perpendicular":
	default:
		errs = append(errs, name+": unknown label_orientation: "+ac.LabelOrientation)
	}
	switch strings.ToLower(ac.Stacking) {
	case "", "auto", "on", "off":
	default:
		errs = append(errs, name+": stacking must be auto, on or off")
	}
	for i, bc := range ac.Brackets {
		if _, ok := parseBracketShape(bc.Shape); !ok {
			errs = append(errs, fmt.Sprintf("%s: bracket %d: unknown shape %q", name, i+1, bc.Shape))
		}
		if bc.End < bc.Start {
			errs = append(errs, fmt.Sprintf("%s: bracket %d: end is before start", name, i+1))
		}
	}
	return errs
}
