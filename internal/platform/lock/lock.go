package lock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	apperrors "botanist/internal/platform/errors"
	"botanist/internal/platform/tx"
)

// FileManager serializes mutating commands across processes with an advisory lock file.
type FileManager struct {
	path string
}

func NewFileManager(path string) tx.Manager {
	return &FileManager{path: path}
}

func (m *FileManager) Within(ctx context.Context, fn func(context.Context) error) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create lock dir: %w", err)
	}
	fl := flock.New(m.path)
	locked, err := fl.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return apperrors.ErrLocked
	}
	defer func() { _ = fl.Unlock() }()
	return fn(ctx)
}
