package domain

import (
	"math"
	"sort"
	"time"
)

// Entry is the slice of a saved session the aggregator needs.
type Entry struct {
	Index           int
	StartTime       time.Time
	DurationSeconds float64
}

type Day struct {
	Label string
	Date  time.Time
	Hours float64
	Count int
}

type Week struct {
	Regime   Regime
	Number   int
	Start    time.Time
	Hours    float64
	Sessions int
	Days     [7]Day
}

type Skip struct {
	Index  int
	Reason string
}

type Report struct {
	TotalHours float64
	Weeks      []Week
	Skipped    []Skip
	Excluded   int
}

type weekKey struct {
	kind   RegimeKind
	number int
}

// Aggregate buckets entries into weeks under the calendar's regimes. Malformed
// entries are skipped with a reason; the pass never fails.
func Aggregate(cal Calendar, entries []Entry) Report {
	report := Report{}
	weeks := map[weekKey]*Week{}
	for _, e := range entries {
		if reason := malformed(e); reason != "" {
			report.Skipped = append(report.Skipped, Skip{Index: e.Index, Reason: reason})
			continue
		}
		at, ok := cal.Locate(e.StartTime)
		if !ok {
			report.Excluded++
			continue
		}
		key := weekKey{kind: at.Regime.Kind, number: at.Week}
		w, ok := weeks[key]
		if !ok {
			w = newWeek(at.Regime, at.Week)
			weeks[key] = w
		}
		hours := e.DurationSeconds / 3600
		w.Days[at.Day].Hours += hours
		w.Days[at.Day].Count++
		w.Hours += hours
		w.Sessions++
		report.TotalHours += hours
	}

	report.Weeks = make([]Week, 0, len(weeks))
	for _, w := range weeks {
		report.Weeks = append(report.Weeks, *w)
	}
	sort.Slice(report.Weeks, func(i, j int) bool {
		a, b := report.Weeks[i], report.Weeks[j]
		if a.Regime.Kind != b.Regime.Kind {
			return a.Regime.Kind < b.Regime.Kind
		}
		return a.Number < b.Number
	})
	return report
}

func newWeek(r Regime, number int) *Week {
	w := &Week{Regime: r, Number: number, Start: r.WeekStart(number)}
	for i := range w.Days {
		w.Days[i] = Day{Label: r.Labels[i], Date: w.Start.AddDate(0, 0, i)}
	}
	return w
}

func malformed(e Entry) string {
	switch {
	case e.StartTime.IsZero():
		return "start time is missing"
	case math.IsNaN(e.DurationSeconds) || math.IsInf(e.DurationSeconds, 0):
		return "duration is not a number"
	case e.DurationSeconds < 0:
		return "duration is negative"
	}
	return ""
}
