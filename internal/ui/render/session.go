package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"botanist/internal/modules/session/domain"
	sessiondto "botanist/internal/modules/session/dto"
	"botanist/internal/ui/theme"
)

// Flower boxes the art with its name underneath.
func Flower(name, art string) string {
	body := art
	if name != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, art, theme.Petal.Render(name))
	}
	return theme.FlowerBox.Render(body)
}

func Start(out sessiondto.StartOutput) string {
	return theme.Leaf.Render("Session started") + " at " + out.StartedAt.Format("15:04:05")
}

func Pause(out sessiondto.PauseOutput) string {
	lines := []string{
		theme.Warn.Render("Paused") + " at " + out.PausedAt.Format("15:04:05"),
		"Worked so far: " + domain.FormatDuration(out.WorkedSoFar),
	}
	if out.BreakMinutes > 0 {
		lines = append(lines, theme.Muted.Render(fmt.Sprintf("Take a %d minute break, then run resume.", out.BreakMinutes)))
	}
	return strings.Join(lines, "\n")
}

func Resume(out sessiondto.ResumeOutput) string {
	return theme.Leaf.Render("Resumed") + " at " + out.ResumedAt.Format("15:04:05") + " after a " + domain.FormatDuration(out.PausedFor) + " break"
}

func Finish(out sessiondto.FinishOutput) string {
	if !out.Saved {
		return theme.Warn.Render("Session not saved") + fmt.Sprintf(": %s is under the %d second minimum.", out.Formatted, out.MinSessionSeconds)
	}
	lines := []string{
		Flower(out.FlowerName, out.FlowerArt),
		theme.Title.Render("Session complete: ") + out.Formatted,
		fmt.Sprintf("%s-%s, paused %s", out.StartedAt.Format("15:04"), out.FinishedAt.Format("15:04"), domain.FormatDuration(out.Paused)),
		"Description: " + out.Description,
		theme.Muted.Render(fmt.Sprintf("%d session(s) in the garden", out.TotalSessions)),
	}
	switch {
	case out.NoteError != "":
		lines = append(lines, theme.Danger.Render("Note not updated: ")+out.NoteError)
	case out.NotePath != "":
		lines = append(lines, theme.Muted.Render("Logged to "+out.NotePath))
	}
	return strings.Join(lines, "\n")
}

func Status(out sessiondto.StatusOutput) string {
	state := theme.Leaf.Render("working")
	if out.IsPaused {
		state = theme.Warn.Render("paused")
	}
	lines := []string{
		theme.Title.Render("Session ") + out.SessionID + " (" + state + ")",
		"Started:  " + out.StartedAt.Format("2006-01-02 15:04:05"),
		"Elapsed:  " + domain.FormatDuration(out.Elapsed),
		"Working:  " + domain.FormatDuration(out.Working),
		"Paused:   " + domain.FormatDuration(out.Paused),
	}
	if out.FlowerArt != "" {
		lines = append(lines, "", theme.Muted.Render("Growing:"), out.FlowerArt)
	}
	return strings.Join(lines, "\n")
}
