package domain

import (
	"fmt"
	"time"

	apperrors "botanist/internal/platform/errors"
)

type RegimeKind int

const (
	Legacy RegimeKind = iota
	Current
)

func (k RegimeKind) String() string {
	if k == Legacy {
		return "legacy"
	}
	return "current"
}

// Regime is one week-numbering convention. Weeks start on the epoch's weekday.
type Regime struct {
	Kind   RegimeKind
	Epoch  time.Time
	Offset int
	Labels [7]string
	Header string
}

func newRegime(kind RegimeKind, epoch time.Time, offset int) Regime {
	r := Regime{Kind: kind, Epoch: Date(epoch), Offset: offset}
	for i := range r.Labels {
		r.Labels[i] = time.Weekday((int(r.Epoch.Weekday()) + i) % 7).String()
	}
	r.Header = r.Labels[0][:3] + "-" + r.Labels[6][:3]
	return r
}

// WeekStart is the first calendar day of week number n.
func (r Regime) WeekStart(n int) time.Time {
	return r.Epoch.AddDate(0, 0, (n-r.Offset)*7)
}

type Calendar struct {
	Legacy  Regime
	Current Regime
	Cutover time.Time
}

// Placement is where one session lands in the report.
type Placement struct {
	Regime Regime
	Week   int
	Day    int
	Date   time.Time
}

// NewCalendar checks that the current epoch is a Monday on or before the
// cutover, the cutover does not predate the legacy epoch, and current numbering
// does not fall back below the last legacy week.
func NewCalendar(legacyEpoch time.Time, legacyOffset int, currentEpoch time.Time, currentOffset int, cutover time.Time) (Calendar, error) {
	cal := Calendar{
		Legacy:  newRegime(Legacy, legacyEpoch, legacyOffset),
		Current: newRegime(Current, currentEpoch, currentOffset),
		Cutover: Date(cutover),
	}
	if legacyOffset < 0 || currentOffset < 0 {
		return Calendar{}, fmt.Errorf("%w: week offsets must be non-negative", apperrors.ErrInvalidInput)
	}
	if cal.Current.Epoch.Weekday() != time.Monday {
		return Calendar{}, fmt.Errorf("%w: current epoch %s is a %s, not a Monday", apperrors.ErrInvalidInput, cal.Current.Epoch.Format("2006-01-02"), cal.Current.Epoch.Weekday())
	}
	if cal.Cutover.Before(cal.Legacy.Epoch) {
		return Calendar{}, fmt.Errorf("%w: cutover predates the legacy epoch", apperrors.ErrInvalidInput)
	}
	if cal.Current.Epoch.After(cal.Cutover) {
		return Calendar{}, fmt.Errorf("%w: current epoch is after the cutover", apperrors.ErrInvalidInput)
	}
	if last, ok := cal.LastLegacyWeek(); ok && currentOffset < last {
		return Calendar{}, fmt.Errorf("%w: current offset %d falls below legacy week %d", apperrors.ErrInvalidInput, currentOffset, last)
	}
	return cal, nil
}

// LastLegacyWeek is the highest legacy week number a session can reach.
func (c Calendar) LastLegacyWeek() (int, bool) {
	if !c.Cutover.After(c.Legacy.Epoch) {
		return 0, false
	}
	days := daysBetween(c.Legacy.Epoch, c.Cutover) - 1
	return days/7 + c.Legacy.Offset, true
}

// Locate places a session start. It reports false for legacy sessions that
// predate the legacy epoch.
func (c Calendar) Locate(start time.Time) (Placement, bool) {
	day := Date(start)
	regime := c.Current
	if day.Before(c.Cutover) {
		regime = c.Legacy
	}
	days := daysBetween(regime.Epoch, day)
	if days < 0 {
		return Placement{}, false
	}
	return Placement{Regime: regime, Week: days/7 + regime.Offset, Day: days % 7, Date: day}, true
}

// Date drops the clock part of t and returns its local calendar day as a UTC midnight.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
