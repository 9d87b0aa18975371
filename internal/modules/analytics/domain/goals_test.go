package domain

import (
	"errors"
	"testing"
	"time"

	apperrors "botanist/internal/platform/errors"
)

func TestMondayOf(t *testing.T) {
	t.Parallel()
	cases := map[time.Time]time.Time{
		at(2025, 9, 1, 8, 0):   day(2025, 9, 1),
		at(2025, 9, 3, 23, 0):  day(2025, 9, 1),
		at(2025, 9, 7, 12, 0):  day(2025, 9, 1),
		at(2025, 9, 8, 0, 30):  day(2025, 9, 8),
		at(2025, 6, 20, 10, 0): day(2025, 6, 16),
	}
	for in, want := range cases {
		if got := MondayOf(in); !got.Equal(want) {
			t.Fatalf("MondayOf(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestDailyAndWeeklyProgress(t *testing.T) {
	t.Parallel()
	entries := []Entry{
		{Index: 0, StartTime: at(2025, 9, 1, 9, 0), DurationSeconds: 3000},
		{Index: 1, StartTime: at(2025, 9, 1, 14, 0), DurationSeconds: 1530},
		{Index: 2, StartTime: at(2025, 9, 4, 9, 0), DurationSeconds: 6000},
		{Index: 3, StartTime: at(2025, 9, 8, 9, 0), DurationSeconds: 6000},
		{Index: 4, StartTime: at(2025, 8, 31, 9, 0), DurationSeconds: 6000},
	}
	today := DailyProgress(at(2025, 9, 1, 18, 0), entries)
	if today.Minutes != 76 || today.Sessions != 2 {
		t.Fatalf("unexpected daily progress %+v", today)
	}

	goal := WeeklyGoal{Enabled: true, TargetMinutes: 1500, TargetSessions: 15}
	week := WeeklyProgressFor(at(2025, 9, 4, 12, 0), entries, goal)
	if !week.Start.Equal(day(2025, 9, 1)) || !week.End.Equal(day(2025, 9, 7)) {
		t.Fatalf("unexpected bounds %v %v", week.Start, week.End)
	}
	if week.Minutes != 176 || week.Sessions != 3 {
		t.Fatalf("unexpected weekly totals %+v", week)
	}
	if week.Days[0].Sessions != 2 || week.Days[3].Minutes != 100 || week.Days[6].Sessions != 0 {
		t.Fatalf("unexpected breakdown %+v", week.Days)
	}
	if week.SessionsPercent != 20 {
		t.Fatalf("unexpected sessions percent %v", week.SessionsPercent)
	}
}

func TestWeeklyGoalValidate(t *testing.T) {
	t.Parallel()
	valid := WeeklyGoal{TargetMinutes: 60, TargetSessions: 140}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected bounds to be inclusive: %v", err)
	}
	for _, g := range []WeeklyGoal{
		{TargetMinutes: 59, TargetSessions: 15},
		{TargetMinutes: 3361, TargetSessions: 15},
		{TargetMinutes: 1500, TargetSessions: 2},
		{TargetMinutes: 1500, TargetSessions: 141},
	} {
		if err := g.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", g, err)
		}
	}
}
