package out

import (
	"context"
	"fmt"
	"os"

	sessionout "botanist/internal/modules/session/port/out"
	"botanist/internal/platform/markdown"
)

// MarkdownNoteSink inserts time log lines into an existing daily note.
type MarkdownNoteSink struct {
	path string
}

func NewMarkdownNoteSink(path string) sessionout.NoteSink {
	return &MarkdownNoteSink{path: path}
}

func (s *MarkdownNoteSink) AppendEntry(_ context.Context, line string) (string, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return s.path, fmt.Errorf("read note %s: %w", s.path, err)
	}
	updated := markdown.InsertLogLine(string(payload), markdown.QuickNotesHeading, line)
	if err := os.WriteFile(s.path, []byte(updated), 0o644); err != nil {
		return s.path, fmt.Errorf("write note %s: %w", s.path, err)
	}
	return s.path, nil
}
