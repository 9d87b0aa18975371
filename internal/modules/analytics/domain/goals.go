package domain

import (
	"fmt"
	"math"
	"time"

	apperrors "botanist/internal/platform/errors"
)

const (
	MinWeeklyMinutes  = 60
	MaxWeeklyMinutes  = 3360
	MinWeeklySessions = 3
	MaxWeeklySessions = 140
)

type WeeklyGoal struct {
	Enabled        bool
	TargetMinutes  int
	TargetSessions int
}

func (g WeeklyGoal) Validate() error {
	if g.TargetMinutes < MinWeeklyMinutes || g.TargetMinutes > MaxWeeklyMinutes {
		return fmt.Errorf("%w: weekly minutes goal must be between %d and %d", apperrors.ErrInvalidInput, MinWeeklyMinutes, MaxWeeklyMinutes)
	}
	if g.TargetSessions < MinWeeklySessions || g.TargetSessions > MaxWeeklySessions {
		return fmt.Errorf("%w: weekly sessions goal must be between %d and %d", apperrors.ErrInvalidInput, MinWeeklySessions, MaxWeeklySessions)
	}
	return nil
}

type DayTotal struct {
	Date     time.Time
	Minutes  int
	Sessions int
}

type WeeklyProgress struct {
	Start           time.Time
	End             time.Time
	Minutes         int
	Sessions        int
	Days            [7]DayTotal
	Goal            WeeklyGoal
	MinutesPercent  float64
	SessionsPercent float64
}

// MondayOf returns the Monday starting the week that contains t.
func MondayOf(t time.Time) time.Time {
	d := Date(t)
	back := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -back)
}

// DailyProgress totals the entries that started on day's calendar date.
func DailyProgress(day time.Time, entries []Entry) DayTotal {
	target := Date(day)
	seconds := 0.0
	total := DayTotal{Date: target}
	for _, e := range entries {
		if malformed(e) != "" || !Date(e.StartTime).Equal(target) {
			continue
		}
		seconds += e.DurationSeconds
		total.Sessions++
	}
	total.Minutes = int(math.Round(seconds / 60))
	return total
}

// WeeklyProgressFor totals the seven days starting at the Monday of weekStart.
func WeeklyProgressFor(weekStart time.Time, entries []Entry, goal WeeklyGoal) WeeklyProgress {
	start := MondayOf(weekStart)
	p := WeeklyProgress{Start: start, End: start.AddDate(0, 0, 6), Goal: goal}
	seconds := 0.0
	for i := range p.Days {
		p.Days[i] = DailyProgress(start.AddDate(0, 0, i), entries)
	}
	for _, e := range entries {
		if malformed(e) != "" {
			continue
		}
		d := Date(e.StartTime)
		if d.Before(start) || d.After(p.End) {
			continue
		}
		seconds += e.DurationSeconds
		p.Sessions++
	}
	p.Minutes = int(math.Round(seconds / 60))
	if goal.TargetMinutes > 0 {
		p.MinutesPercent = float64(p.Minutes) / float64(goal.TargetMinutes) * 100
	}
	if goal.TargetSessions > 0 {
		p.SessionsPercent = float64(p.Sessions) / float64(goal.TargetSessions) * 100
	}
	return p
}
