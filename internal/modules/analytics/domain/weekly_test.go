package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	apperrors "botanist/internal/platform/errors"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func defaultCalendar(t *testing.T) Calendar {
	t.Helper()
	cal, err := NewCalendar(day(2025, 6, 20), 1, day(2025, 9, 1), 11, day(2025, 9, 1))
	if err != nil {
		t.Fatalf("new calendar: %v", err)
	}
	return cal
}

func at(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.Local)
}

func TestNewCalendarRegimeLabels(t *testing.T) {
	t.Parallel()
	cal := defaultCalendar(t)
	if cal.Legacy.Header != "Fri-Thu" || cal.Current.Header != "Mon-Sun" {
		t.Fatalf("unexpected headers %q %q", cal.Legacy.Header, cal.Current.Header)
	}
	if cal.Legacy.Labels[0] != "Friday" || cal.Legacy.Labels[6] != "Thursday" {
		t.Fatalf("unexpected legacy labels %v", cal.Legacy.Labels)
	}
	if cal.Current.Labels[0] != "Monday" || cal.Current.Labels[6] != "Sunday" {
		t.Fatalf("unexpected current labels %v", cal.Current.Labels)
	}
	if last, ok := cal.LastLegacyWeek(); !ok || last != 11 {
		t.Fatalf("expected last legacy week 11, got %d %v", last, ok)
	}
}

func TestNewCalendarRejectsInconsistentRegimes(t *testing.T) {
	t.Parallel()
	cases := map[string]func() error{
		"current epoch not monday": func() error {
			_, err := NewCalendar(day(2025, 6, 20), 1, day(2025, 9, 2), 11, day(2025, 9, 2))
			return err
		},
		"cutover before legacy epoch": func() error {
			_, err := NewCalendar(day(2025, 6, 20), 1, day(2025, 6, 16), 11, day(2025, 6, 19))
			return err
		},
		"current epoch after cutover": func() error {
			_, err := NewCalendar(day(2025, 6, 20), 1, day(2025, 9, 8), 11, day(2025, 9, 1))
			return err
		},
		"numbering falls back": func() error {
			_, err := NewCalendar(day(2025, 6, 20), 1, day(2025, 9, 1), 10, day(2025, 9, 1))
			return err
		},
	}
	for name, build := range cases {
		name, build := name, build
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if err := build(); !errors.Is(err, apperrors.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAggregateEpochDaySession(t *testing.T) {
	t.Parallel()
	report := Aggregate(defaultCalendar(t), []Entry{{Index: 0, StartTime: at(2025, 6, 20, 9, 0), DurationSeconds: 85 * 60}})
	if len(report.Weeks) != 1 {
		t.Fatalf("expected one week, got %+v", report.Weeks)
	}
	w := report.Weeks[0]
	if w.Number != 1 || w.Regime.Kind != Legacy || w.Sessions != 1 {
		t.Fatalf("unexpected week %+v", w)
	}
	friday := w.Days[0]
	if friday.Label != "Friday" || friday.Count != 1 || math.Abs(friday.Hours-85.0/60) > 1e-9 {
		t.Fatalf("unexpected friday cell %+v", friday)
	}
	if !friday.Date.Equal(day(2025, 6, 20)) {
		t.Fatalf("unexpected friday date %v", friday.Date)
	}
	if math.Abs(report.TotalHours-85.0/60) > 1e-9 {
		t.Fatalf("unexpected total %v", report.TotalHours)
	}
}

func TestAggregateSplitsRegimesAtCutover(t *testing.T) {
	t.Parallel()
	report := Aggregate(defaultCalendar(t), []Entry{
		{Index: 0, StartTime: at(2025, 9, 2, 10, 0), DurationSeconds: 3600},
		{Index: 1, StartTime: at(2025, 8, 29, 23, 30), DurationSeconds: 1800},
	})
	if len(report.Weeks) != 2 {
		t.Fatalf("expected two weeks, got %+v", report.Weeks)
	}
	legacy, current := report.Weeks[0], report.Weeks[1]
	if legacy.Regime.Kind != Legacy || legacy.Number != 11 || legacy.Days[0].Label != "Friday" || legacy.Days[0].Count != 1 {
		t.Fatalf("unexpected legacy week %+v", legacy)
	}
	if !legacy.Start.Equal(day(2025, 8, 29)) {
		t.Fatalf("unexpected legacy start %v", legacy.Start)
	}
	if current.Regime.Kind != Current || current.Number != 11 || current.Days[1].Label != "Tuesday" || current.Days[1].Count != 1 {
		t.Fatalf("unexpected current week %+v", current)
	}
	if !current.Start.Equal(day(2025, 9, 1)) {
		t.Fatalf("unexpected current start %v", current.Start)
	}
}

func TestAggregateSkipsAndExcludes(t *testing.T) {
	t.Parallel()
	report := Aggregate(defaultCalendar(t), []Entry{
		{Index: 0, StartTime: at(2025, 6, 19, 9, 0), DurationSeconds: 600},
		{Index: 1, StartTime: time.Time{}, DurationSeconds: 600},
		{Index: 2, StartTime: at(2025, 9, 8, 9, 0), DurationSeconds: math.NaN()},
		{Index: 3, StartTime: at(2025, 9, 8, 9, 0), DurationSeconds: -1},
		{Index: 4, StartTime: at(2025, 9, 14, 20, 0), DurationSeconds: 7200},
	})
	if report.Excluded != 1 {
		t.Fatalf("expected one excluded entry, got %d", report.Excluded)
	}
	if len(report.Skipped) != 3 || report.Skipped[0].Index != 1 || report.Skipped[2].Reason != "duration is negative" {
		t.Fatalf("unexpected skips %+v", report.Skipped)
	}
	if len(report.Weeks) != 1 || report.Weeks[0].Number != 12 || report.Weeks[0].Days[6].Label != "Sunday" || report.Weeks[0].Days[6].Hours != 2 {
		t.Fatalf("unexpected weeks %+v", report.Weeks)
	}
	if report.TotalHours != 2 {
		t.Fatalf("excluded and skipped entries must not count, total %v", report.TotalHours)
	}
}
