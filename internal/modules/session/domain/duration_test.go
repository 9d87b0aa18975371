package domain_test

import (
	"testing"
	"time"

	"botanist/internal/modules/session/domain"
)

func TestFormatDurationRounding(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   time.Duration
		want string
	}{
		{89*time.Minute + 30*time.Second, "1h 30m"},
		{89*time.Minute + 29*time.Second, "1h 29m"},
		{59*time.Minute + 30*time.Second, "1h 00m"},
		{85 * time.Minute, "1h 25m"},
		{29 * time.Second, "0h 00m"},
		{30 * time.Second, "0h 01m"},
		{2*time.Hour + 59*time.Minute + 45*time.Second, "3h 00m"},
		{-time.Minute, "0h 00m"},
	}
	for _, tc := range cases {
		if got := domain.FormatDuration(tc.in); got != tc.want {
			t.Fatalf("FormatDuration(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFormatLogEntry(t *testing.T) {
	t.Parallel()
	c := domain.Completed{
		StartedAt:  time.Date(2025, 6, 20, 12, 0, 0, 0, time.Local),
		FinishedAt: time.Date(2025, 6, 20, 13, 30, 0, 0, time.Local),
		Net:        90 * time.Minute,
	}
	want := "- Friday 06/20 -- 12:00-13:30 -- 1h 30m -- Botanist TDD"
	if got := domain.FormatLogEntry(c, "Botanist TDD"); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
