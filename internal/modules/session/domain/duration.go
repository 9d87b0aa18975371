package domain

import (
	"fmt"
	"time"
)

// SplitRounded splits d into hours and minutes, rounding the leftover seconds
// half-up; 60 rounded minutes carry into the hour.
func SplitRounded(d time.Duration) (hours, minutes int) {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	hours = int(total / 3600)
	rem := total % 3600
	minutes = int(rem / 60)
	if rem%60 >= 30 {
		minutes++
		if minutes == 60 {
			minutes = 0
			hours++
		}
	}
	return hours, minutes
}

// FormatDuration renders d as "1h 05m".
func FormatDuration(d time.Duration) string {
	h, m := SplitRounded(d)
	return fmt.Sprintf("%dh %02dm", h, m)
}

// FormatLogEntry renders the one-line time log entry written to daily notes.
func FormatLogEntry(c Completed, description string) string {
	return fmt.Sprintf("- %s -- %s-%s -- %s -- %s",
		c.StartedAt.Format("Monday 01/02"),
		c.StartedAt.Format("15:04"),
		c.FinishedAt.Format("15:04"),
		FormatDuration(c.Net),
		description,
	)
}
