package render

import (
	"fmt"
	"math"
	"strings"

	analyticsdto "botanist/internal/modules/analytics/dto"
	"botanist/internal/ui/theme"
)

const (
	block      = "█"
	emptyBlock = "░"
	barWidth   = 20
)

// Weekly renders the report with one bar block per half hour.
func Weekly(report analyticsdto.ReportOutput) string {
	var b strings.Builder
	total := fmt.Sprintf("Total hours across all weeks: %.2f h", report.TotalHours)
	b.WriteString(theme.Title.Render(total) + "\n")
	for _, w := range report.Weeks {
		b.WriteString("\n" + theme.Title.Render(fmt.Sprintf("Week %d (%s): %.2f h across %d session(s)", w.Number, w.Header, w.Hours, w.Sessions)) + "\n")
		for _, d := range w.Days {
			label := fmt.Sprintf("%-10s (%s)", d.Label, d.Date.Format("Jan 02"))
			b.WriteString(fmt.Sprintf("  %s  %5.2f h  %dx  %s\n", label, d.Hours, d.Count, theme.Bar.Render(HourBar(d.Hours))))
		}
	}
	if len(report.Skipped) > 0 {
		b.WriteString("\n")
		for _, s := range report.Skipped {
			b.WriteString(theme.Warn.Render(fmt.Sprintf("Skipped session %d: %s", s.Index+1, s.Reason)) + "\n")
		}
	}
	if report.Excluded > 0 {
		b.WriteString(theme.Muted.Render(fmt.Sprintf("%d session(s) predate the first week and are not counted", report.Excluded)) + "\n")
	}
	b.WriteString("\n" + theme.Title.Render(total))
	return b.String()
}

// HourBar is int(hours*2) blocks.
func HourBar(hours float64) string {
	if hours <= 0 {
		return ""
	}
	return strings.Repeat(block, int(hours*2))
}

// ProgressBar fills width cells in proportion to percent, capped at full.
func ProgressBar(percent float64, width int) string {
	filled := int(math.Round(percent / 100 * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat(block, filled) + strings.Repeat(emptyBlock, width-filled)
}

func Today(out analyticsdto.DailyOutput) string {
	return strings.Join([]string{
		theme.Title.Render("Today, " + out.Date.Format("Monday Jan 02")),
		fmt.Sprintf("Focus time: %d minutes (%.1f hours)", out.Minutes, float64(out.Minutes)/60),
		fmt.Sprintf("Sessions:   %d", out.Sessions),
	}, "\n")
}

func Week(out analyticsdto.WeeklyProgressOutput) string {
	lines := []string{
		theme.Title.Render(fmt.Sprintf("Week of %s to %s", out.Start.Format("Jan 02"), out.End.Format("Jan 02"))),
	}
	if out.Goal.Enabled {
		lines = append(lines,
			fmt.Sprintf("Minutes  %s %4d/%d (%.0f%%)", ProgressBar(out.MinutesPercent, barWidth), out.Minutes, out.Goal.TargetMinutes, out.MinutesPercent),
			fmt.Sprintf("Sessions %s %4d/%d (%.0f%%)", ProgressBar(out.SessionsPercent, barWidth), out.Sessions, out.Goal.TargetSessions, out.SessionsPercent),
		)
	} else {
		lines = append(lines, fmt.Sprintf("%d minutes across %d session(s)", out.Minutes, out.Sessions))
	}
	lines = append(lines, "")
	for _, d := range out.Days {
		lines = append(lines, fmt.Sprintf("  %s  %4d min  %dx", d.Date.Format("Mon Jan 02"), d.Minutes, d.Sessions))
	}
	if out.Goal.Enabled && out.MinutesPercent >= 100 && out.SessionsPercent >= 100 {
		lines = append(lines, "", theme.Leaf.Render("Weekly goal reached."))
	}
	return strings.Join(lines, "\n")
}

func Goal(out analyticsdto.GoalOutput) string {
	return fmt.Sprintf("Weekly goal: %d minutes (%.1f h) and %d sessions", out.TargetMinutes, float64(out.TargetMinutes)/60, out.TargetSessions)
}
