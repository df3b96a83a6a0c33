package gochart

import (
	"fmt"
	"time"
)

// DateInterval is the calendar granularity of a date axis.
type DateInterval int

const (
	DailyInterval DateInterval = iota
	WeeklyInterval
	MonthlyInterval
	FiscalQuarterlyInterval
)

func (d DateInterval) String() string {
	switch d {
	case DailyInterval:
		return "daily"
	case WeeklyInterval:
		return "weekly"
	case MonthlyInterval:
		return "monthly"
	case FiscalQuarterlyInterval:
		return "fiscal-quarterly"
	}
	return "unknown"
}

// FiscalYear selects a predefined set of fiscal quarter start dates.
type FiscalYear int

const (
	// FiscalYearEducation starts on July 1.
	FiscalYearEducation FiscalYear = iota
	// FiscalYearUSBusiness starts on October 1.
	FiscalYearUSBusiness
)

const defaultDateFormat = "2006-01-02"

type monthDay struct {
	month time.Month
	day   int
}

func (md monthDay) matches(t time.Time) bool {
	return t.Month() == md.month && t.Day() == md.day
}

var (
	educationQuarters  = [4]monthDay{{time.July, 1}, {time.October, 1}, {time.January, 1}, {time.April, 1}}
	usBusinessQuarters = [4]monthDay{{time.October, 1}, {time.January, 1}, {time.April, 1}, {time.July, 1}}
)

// dateRange remembers the calendar span behind a date axis. Point values
// are day offsets from first.
type dateRange struct {
	first    time.Time
	last     time.Time
	interval DateInterval
	valid    bool
}

// dateOnly drops the clock and zone so day arithmetic is exact.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// SetFiscalYearType sets the quarter start dates from a predefined fiscal year.
func (a *Axis) SetFiscalYearType(fy FiscalYear) {
	switch fy {
	case FiscalYearUSBusiness:
		a.fiscalQuarterStart = usBusinessQuarters
	default:
		a.fiscalQuarterStart = educationQuarters
	}
}

// SetFiscalQuarters sets custom quarter start dates. Only month and day are
// used; the quarters must follow each other through one year.
func (a *Axis) SetFiscalQuarters(q1, q2, q3, q4 time.Time) {
	for i, q := range []time.Time{q1, q2, q3, q4} {
		a.fiscalQuarterStart[i] = monthDay{q.Month(), q.Day()}
	}
}

// GetFiscalQuarters returns the month and day each quarter starts on, in the
// year 2000.
func (a *Axis) GetFiscalQuarters() [4]time.Time {
	var out [4]time.Time
	for i, q := range a.fiscalQuarterStart {
		out[i] = time.Date(2000, q.month, q.day, 0, 0, 0, 0, time.UTC)
	}
	return out
}

// SetFirstWeekday sets the day weekly intervals begin on.
func (a *Axis) SetFirstWeekday(d time.Weekday) { a.firstWeekday = d }

// GetFirstWeekday returns the day weekly intervals begin on.
func (a *Axis) GetFirstWeekday() time.Weekday { return a.firstWeekday }

// SetDateFormat sets the time layout date labels are formatted with.
func (a *Axis) SetDateFormat(layout string) {
	if layout != "" {
		a.dateFormat = layout
	}
}

// GetDateFormat returns the time layout of date labels.
func (a *Axis) GetDateFormat() string { return a.dateFormat }

// SetDateRangeIncludesToday extends later date ranges back to today when
// today is earlier than their start. Fiscal quarter ranges are not extended.
func (a *Axis) SetDateRangeIncludesToday(include bool) { a.includeToday = include }

// SetClock replaces the source of "today".
func (a *Axis) SetClock(now func() time.Time) {
	if now != nil {
		a.now = now
	}
}

// GetDateRange returns the calendar span of a date axis after it was snapped
// to interval boundaries.
func (a *Axis) GetDateRange() (first, last time.Time, ok bool) {
	return a.dates.first, a.dates.last, a.dates.valid
}

// GetDateInterval returns the interval of the last date range.
func (a *Axis) GetDateInterval() DateInterval { return a.dates.interval }

// fiscalYearStart returns the first day of the fiscal year containing d.
func (a *Axis) fiscalYearStart(d time.Time) time.Time {
	q1 := a.fiscalQuarterStart[0]
	s := time.Date(d.Year(), q1.month, q1.day, 0, 0, 0, 0, time.UTC)
	if s.After(d) {
		s = s.AddDate(-1, 0, 0)
	}
	return s
}

// quarterStarts returns the start of each quarter of the fiscal year that
// begins at fyStart, followed by the start of the next fiscal year.
func (a *Axis) quarterStarts(fyStart time.Time) [5]time.Time {
	var out [5]time.Time
	out[0] = fyStart
	for k := 1; k < 4; k++ {
		q := a.fiscalQuarterStart[k]
		t := time.Date(out[k-1].Year(), q.month, q.day, 0, 0, 0, 0, time.UTC)
		if !t.After(out[k-1]) {
			t = t.AddDate(1, 0, 0)
		}
		out[k] = t
	}
	out[4] = fyStart.AddDate(1, 0, 0)
	return out
}

func (a *Axis) isQuarterStart(d time.Time) bool {
	for _, q := range a.fiscalQuarterStart {
		if q.matches(d) {
			return true
		}
	}
	return false
}

// SetDateRange builds a day-based axis from first to last. The ends snap
// outward to whole months, weeks or fiscal years, depending on interval, and
// custom labels are placed on the dates that begin each period. Labels then
// show custom text only. An invalid range is ignored.
func (a *Axis) SetDateRange(first, last time.Time, interval DateInterval, fy FiscalYear) {
	if first.IsZero() || last.IsZero() || last.Before(first) {
		debugAssert(false, "invalid date range for axis")
		logger.Debug("invalid date range ignored", "axis", a.axisType, "first", first, "last", last)
		return
	}
	a.SetFiscalYearType(fy)
	a.setDateRange(first, last, interval)
}

// SetDateRangeWithQuarters is SetDateRange with the fiscal quarters already
// set by SetFiscalQuarters.
func (a *Axis) SetDateRangeWithQuarters(first, last time.Time, interval DateInterval) {
	if first.IsZero() || last.IsZero() || last.Before(first) {
		debugAssert(false, "invalid date range for axis")
		logger.Debug("invalid date range ignored", "axis", a.axisType, "first", first, "last", last)
		return
	}
	a.setDateRange(first, last, interval)
}

func (a *Axis) setDateRange(first, last time.Time, interval DateInterval) {
	first, last = dateOnly(first), dateOnly(last)
	if a.includeToday && interval != FiscalQuarterlyInterval {
		if today := dateOnly(a.now()); today.Before(first) {
			first = today
		}
	}

	switch interval {
	case FiscalQuarterlyInterval:
		first = a.fiscalYearStart(first)
		if fyEnd := first.AddDate(1, 0, -1); last.Before(fyEnd) {
			last = fyEnd
		}
	case MonthlyInterval:
		first = first.AddDate(0, 0, 1-first.Day())
		last = time.Date(last.Year(), last.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	case WeeklyInterval:
		for first.Weekday() != a.firstWeekday {
			first = first.AddDate(0, 0, -1)
		}
		weekEnd := (a.firstWeekday + 6) % 7
		for last.Weekday() != weekEnd {
			last = last.AddDate(0, 0, 1)
		}
	}

	days := daysBetween(first, last)
	displayInterval := 1
	if interval == WeeklyInterval {
		displayInterval = 7
	}
	a.ClearCustomLabels()
	a.SetRangeWithInterval(0, float64(days), 0, 1, displayInterval)
	a.dates = dateRange{first: first, last: last, interval: interval, valid: true}

	for day := 0; day <= days; day++ {
		d := first.AddDate(0, 0, day)
		var labelled bool
		switch interval {
		case FiscalQuarterlyInterval:
			labelled = a.isQuarterStart(d)
		case MonthlyInterval:
			labelled = d.Day() == 1
		case WeeklyInterval:
			labelled = day%7 == 0
		default:
			labelled = true
		}
		if labelled {
			a.SetCustomLabel(float64(day), NewLabel(d.Format(a.dateFormat)))
		}
	}
	a.SetLabelDisplay(DisplayOnlyCustomLabels)
	logger.Debug("date range set", "axis", a.axisType, "first", first, "last", last, "interval", interval, "days", days)
}

// GetPointFromDate returns the axis value of a date, failing for dates
// outside the range or when the axis has no date range.
func (a *Axis) GetPointFromDate(d time.Time) (float64, bool) {
	if !a.dates.valid || d.IsZero() {
		return 0, false
	}
	v := float64(daysBetween(a.dates.first, dateOnly(d)))
	if v < a.rangeStart || v > a.rangeEnd {
		return 0, false
	}
	return v, true
}

// AddBrackets replaces the brackets with a generated set. Fiscal quarter
// brackets need a date range and are named like Q1FY24, after the calendar
// year the fiscal year ends in.
func (a *Axis) AddBrackets(t BracketType) {
	if t != BracketFiscalQuarterly {
		return
	}
	if !a.dates.valid {
		debugAssert(false, "fiscal quarter brackets need a date range")
		logger.Debug("fiscal quarter brackets skipped without a date range", "axis", a.axisType)
		return
	}
	a.ClearBrackets()
	first := a.dates.first
	for fyStart := a.fiscalYearStart(first); daysBetween(first, fyStart) <= int(a.rangeEnd); fyStart = fyStart.AddDate(1, 0, 0) {
		starts := a.quarterStarts(fyStart)
		fy := starts[4].AddDate(0, 0, -1).Year() % 100
		for q := 0; q < 4; q++ {
			lo := max(0, daysBetween(first, starts[q]))
			hi := min(int(a.rangeEnd), daysBetween(first, starts[q+1])-1)
			if hi < lo {
				continue
			}
			a.AddBracket(NewAxisBracket(float64(lo), float64(hi), float64(lo+(hi-lo)/2),
				fmt.Sprintf("Q%dFY%02d", q+1, fy)))
		}
	}
}
