package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"botanist/internal/modules/session/domain"
	sessionout "botanist/internal/modules/session/port/out"
	apperrors "botanist/internal/platform/errors"
)

type FileActiveSessionStore struct {
	path string
}

type activeRecord struct {
	SessionID string        `json:"session_id"`
	StartedAt time.Time     `json:"session_start"`
	Pauses    []pauseRecord `json:"pauses"`
}

type pauseRecord struct {
	Start  time.Time  `json:"start"`
	Finish *time.Time `json:"finish"`
}

func NewFileActiveSessionStore(path string) sessionout.ActiveSessionStore {
	return &FileActiveSessionStore{path: path}
}

// Path exposes the marker location for watchers.
func (s *FileActiveSessionStore) Path() string {
	return s.path
}

func (s *FileActiveSessionStore) SaveActive(_ context.Context, session domain.ActiveSession) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("save active session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create active session dir: %w", err)
	}
	payload, err := json.MarshalIndent(toRecord(session), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active session: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write active session: %w", err)
	}
	return nil
}

func (s *FileActiveSessionStore) LoadActive(_ context.Context) (domain.ActiveSession, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ActiveSession{}, apperrors.ErrNotStarted
		}
		return domain.ActiveSession{}, fmt.Errorf("read active session: %w", err)
	}
	record := activeRecord{}
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.ActiveSession{}, s.corrupt(err)
	}
	active := fromRecord(record)
	if err := active.Validate(); err != nil {
		return domain.ActiveSession{}, s.corrupt(err)
	}
	return active, nil
}

func (s *FileActiveSessionStore) corrupt(err error) error {
	return fmt.Errorf("%w: %s: %v; remove the file to reset the timer", apperrors.ErrCorruptMarker, s.path, err)
}

func (s *FileActiveSessionStore) ClearActive(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear active session: %w", err)
	}
	return nil
}

func toRecord(session domain.ActiveSession) activeRecord {
	record := activeRecord{SessionID: session.ID, StartedAt: session.StartedAt, Pauses: []pauseRecord{}}
	for _, p := range session.Pauses {
		switch v := p.(type) {
		case domain.OpenPause:
			record.Pauses = append(record.Pauses, pauseRecord{Start: v.Start})
		case domain.ClosedPause:
			finish := v.Finish
			record.Pauses = append(record.Pauses, pauseRecord{Start: v.Start, Finish: &finish})
		}
	}
	return record
}

func fromRecord(record activeRecord) domain.ActiveSession {
	active := domain.ActiveSession{ID: record.SessionID, StartedAt: record.StartedAt}
	for _, p := range record.Pauses {
		if p.Finish == nil {
			active.Pauses = append(active.Pauses, domain.OpenPause{Start: p.Start})
			continue
		}
		active.Pauses = append(active.Pauses, domain.ClosedPause{Start: p.Start, Finish: *p.Finish})
	}
	return active
}
