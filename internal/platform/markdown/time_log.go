package markdown

import "strings"

// QuickNotesHeading marks where the time log ends in a daily note.
const QuickNotesHeading = "## Quick Notes"

// InsertLogLine places line directly above the first heading line, or at the
// end of body when the heading is absent. The result ends with one newline.
func InsertLogLine(body, heading, line string) string {
	trimmed := strings.TrimRight(body, "\n")
	if trimmed == "" {
		return line + "\n"
	}
	lines := strings.Split(trimmed, "\n")
	position := len(lines)
	for i, l := range lines {
		if l == heading {
			position = i
			break
		}
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:position]...)
	out = append(out, line)
	out = append(out, lines[position:]...)
	return strings.Join(out, "\n") + "\n"
}
