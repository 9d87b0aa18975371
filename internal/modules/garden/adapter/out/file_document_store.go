package out

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"botanist/internal/modules/garden/domain"
	gardenout "botanist/internal/modules/garden/port/out"
	"botanist/internal/platform/clock"
)

type FileDocumentStore struct {
	path      string
	backupDir string
	clock     clock.Clock
}

func NewFileDocumentStore(path, backupDir string, clk clock.Clock) gardenout.DocumentStore {
	return &FileDocumentStore{path: path, backupDir: backupDir, clock: clk}
}

func (s *FileDocumentStore) ReadPrimary(_ context.Context) ([]byte, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read garden: %w", err)
	}
	return payload, nil
}

// WritePrimary writes to a sibling temp file, syncs it and renames it over the
// primary. The primary is untouched unless the rename happens.
func (s *FileDocumentStore) WritePrimary(_ context.Context, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create garden dir: %w", err)
	}
	tmpPath := s.path + ".tmp"
	if err := writeSynced(tmpPath, payload); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write garden temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace garden: %w", err)
	}
	return nil
}

// CreateBackup copies the primary into the backup directory and keeps its
// modification time. It returns "" when there is no primary yet.
func (s *FileDocumentStore) CreateBackup(_ context.Context) (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("stat garden: %w", err)
	}
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	stamp := s.clock.Now().Format("20060102_150405")
	name := domain.BackupPrefix + stamp + domain.BackupSuffix
	for n := 1; ; n++ {
		if _, err := os.Stat(filepath.Join(s.backupDir, name)); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s%s_%d%s", domain.BackupPrefix, stamp, n, domain.BackupSuffix)
	}
	target := filepath.Join(s.backupDir, name)
	if err := copyFile(s.path, target); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("copy garden backup: %w", err)
	}
	if err := os.Chtimes(target, info.ModTime(), info.ModTime()); err != nil {
		return "", fmt.Errorf("stamp garden backup: %w", err)
	}
	return name, nil
}

func (s *FileDocumentStore) ListBackups(_ context.Context) ([]domain.Backup, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list backups: %w", err)
	}
	backups := make([]domain.Backup, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, domain.BackupPrefix) || !strings.HasSuffix(name, domain.BackupSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, domain.Backup{Name: name, ModTime: info.ModTime(), Size: info.Size()})
	}
	domain.SortNewestFirst(backups)
	return backups, nil
}

func (s *FileDocumentStore) ReadBackup(_ context.Context, name string) ([]byte, error) {
	payload, err := os.ReadFile(filepath.Join(s.backupDir, filepath.Base(name)))
	if err != nil {
		return nil, fmt.Errorf("read backup %s: %w", name, err)
	}
	return payload, nil
}

func (s *FileDocumentStore) RemoveBackup(_ context.Context, name string) error {
	if err := os.Remove(filepath.Join(s.backupDir, filepath.Base(name))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove backup %s: %w", name, err)
	}
	return nil
}

func writeSynced(path string, payload []byte) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.Write(payload); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
