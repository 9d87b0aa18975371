package out

import (
	"context"

	"botanist/internal/modules/session/domain"
)

type ActiveSessionStore interface {
	SaveActive(ctx context.Context, session domain.ActiveSession) error
	LoadActive(ctx context.Context) (domain.ActiveSession, error)
	ClearActive(ctx context.Context) error
}

// NoteSink receives a one-line log entry for every saved session.
type NoteSink interface {
	AppendEntry(ctx context.Context, line string) (string, error)
}
