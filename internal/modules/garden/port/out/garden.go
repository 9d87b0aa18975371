package out

import (
	"context"
	"io"

	"botanist/internal/modules/garden/domain"
)

// DocumentStore owns the bytes of the primary garden file and its backups.
// ReadPrimary reports a missing file with an error wrapping fs.ErrNotExist.
type DocumentStore interface {
	ReadPrimary(ctx context.Context) ([]byte, error)
	WritePrimary(ctx context.Context, payload []byte) error
	CreateBackup(ctx context.Context) (string, error)
	ListBackups(ctx context.Context) ([]domain.Backup, error)
	ReadBackup(ctx context.Context, name string) ([]byte, error)
	RemoveBackup(ctx context.Context, name string) error
}

type SessionExporter interface {
	Export(w io.Writer, sessions []domain.Session) error
}
