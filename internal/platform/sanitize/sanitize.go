package sanitize

import (
	"regexp"
	"strings"
)

const (
	maxDescriptionRunes = 200
	emptyDescription    = "None provided."
)

var (
	disallowed = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.,!?:;()\[\]'"]+`)
	whitespace = regexp.MustCompile(`\s+`)
	injection  = regexp.MustCompile(`(?i)<script.*?</script>|javascript:|vbscript:|data:|on\w+\s*=`)
)

// Description normalizes free text typed at finish time before it is persisted.
func Description(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return emptyDescription
	}
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	if runes := []rune(s); len(runes) > maxDescriptionRunes {
		s = strings.TrimRight(string(runes[:maxDescriptionRunes]), " ") + "..."
	}
	s = strings.TrimSpace(injection.ReplaceAllString(s, ""))
	if s == "" {
		return emptyDescription
	}
	return s
}
