package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	flowerdto "botanist/internal/modules/flower/dto"
	gardendto "botanist/internal/modules/garden/dto"
	"botanist/internal/modules/session/domain"
	"botanist/internal/ui/theme"
)

func Garden(out gardendto.GardenOutput) string {
	var b strings.Builder
	if out.Recovered {
		b.WriteString(theme.Warn.Render("Garden recovered from "+out.Source) + "\n")
	}
	if len(out.Sessions) == 0 {
		b.WriteString(theme.Muted.Render("The garden is empty. Finish a session to plant something."))
		return b.String()
	}
	total := 0.0
	for _, s := range out.Sessions {
		total += s.DurationSeconds
		b.WriteString(fmt.Sprintf("%3d  %s  %s-%s  %8s  %s\n",
			s.Index+1,
			s.Date,
			s.StartTime.Format("15:04"),
			s.EndTime.Format("15:04"),
			domain.FormatDuration(seconds(s.DurationSeconds)),
			s.Description,
		))
	}
	b.WriteString(theme.Title.Render(fmt.Sprintf("%d session(s), %s total", len(out.Sessions), domain.FormatDuration(seconds(total)))))
	return b.String()
}

func Backups(backups []gardendto.BackupOutput) string {
	if len(backups) == 0 {
		return theme.Muted.Render("No backups yet.")
	}
	lines := make([]string, 0, len(backups))
	for _, b := range backups {
		lines = append(lines, fmt.Sprintf("%s  %s  %d bytes", b.ModTime.Format("2006-01-02 15:04:05"), b.Name, b.Size))
	}
	return strings.Join(lines, "\n")
}

func Verify(out gardendto.VerifyOutput) string {
	lines := []string{fmt.Sprintf("Sessions: %d", out.Sessions), fmt.Sprintf("Streak:   %d", out.Streak), "Source:   " + out.Source}
	if out.Duplicates > 0 {
		lines = append(lines, theme.Warn.Render(fmt.Sprintf("Duplicates: %d session(s) share a start time", out.Duplicates)))
	}
	for _, p := range out.Problems {
		lines = append(lines, theme.Danger.Render("Problem: ")+p)
	}
	if out.Recovered {
		lines = append(lines, theme.Warn.Render("The primary file was not usable; see problems above."))
	} else if len(out.Problems) == 0 {
		lines = append(lines, theme.Leaf.Render("Garden is healthy."))
	}
	return strings.Join(lines, "\n")
}

func Samples(samples []flowerdto.SampleOutput) string {
	parts := make([]string, 0, len(samples))
	for _, s := range samples {
		parts = append(parts, theme.Title.Render(s.Label)+"\n"+Flower(s.Flower.Name, s.Flower.Art))
	}
	return strings.Join(parts, "\n\n")
}

func seconds(v float64) time.Duration {
	return time.Duration(math.Round(v)) * time.Second
}
