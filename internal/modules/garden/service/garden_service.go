package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"botanist/internal/modules/garden/domain"
	gardenout "botanist/internal/modules/garden/port/out"
)

type GardenService struct {
	store     gardenout.DocumentStore
	retention int
	loc       *time.Location
	logger    hclog.Logger
}

func NewGardenService(store gardenout.DocumentStore, retention int, loc *time.Location, logger hclog.Logger) *GardenService {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &GardenService{store: store, retention: retention, loc: loc, logger: logger}
}

// candidate is one step of the read fallback chain.
type candidate struct {
	source  string
	load    func(ctx context.Context) ([]byte, error)
	promote bool
}

func (s *GardenService) candidates(ctx context.Context, primary []byte, primaryErr error, report *domain.ReadReport) []candidate {
	chain := []candidate{{
		source: domain.SourcePrimary,
		load:   func(context.Context) ([]byte, error) { return primary, primaryErr },
	}}
	backups, err := s.store.ListBackups(ctx)
	if err != nil {
		s.logger.Warn("list backups failed", "error", err)
		report.Problems = append(report.Problems, err.Error())
		return chain
	}
	for _, b := range backups {
		name := b.Name
		chain = append(chain, candidate{
			source:  "backup " + name,
			load:    func(ctx context.Context) ([]byte, error) { return s.store.ReadBackup(ctx, name) },
			promote: true,
		})
	}
	return chain
}

// Read walks primary, then backups newest first, then the empty default, and
// returns the first document that validates. A missing primary means a fresh
// garden: backups are not consulted and nothing is written. A backup that wins
// over a corrupt primary is promoted. Read never fails.
func (s *GardenService) Read(ctx context.Context) (domain.Garden, domain.ReadReport) {
	return s.read(ctx, true)
}

func (s *GardenService) read(ctx context.Context, promote bool) (domain.Garden, domain.ReadReport) {
	report := domain.ReadReport{}
	primary, primaryErr := s.store.ReadPrimary(ctx)
	if errors.Is(primaryErr, fs.ErrNotExist) {
		report.Source = domain.SourceDefault
		return domain.Empty(), report
	}
	for i, c := range s.candidates(ctx, primary, primaryErr, &report) {
		payload, err := c.load(ctx)
		if err != nil {
			s.logger.Warn("garden candidate unreadable", "source", c.source, "error", err)
			report.Problems = append(report.Problems, fmt.Sprintf("%s: %v", c.source, err))
			continue
		}
		g, repairs, err := domain.Decode(payload, s.loc)
		if err != nil {
			s.logger.Warn("garden candidate invalid", "source", c.source, "error", err)
			report.Problems = append(report.Problems, fmt.Sprintf("%s: %v", c.source, err))
			continue
		}
		for _, r := range repairs {
			s.logger.Info("garden repaired on read", "source", c.source, "repair", r)
		}
		report.Source = c.source
		report.Repairs = repairs
		report.Recovered = i > 0
		if c.promote && promote {
			s.promote(ctx, g, &report)
		}
		return g, report
	}
	report.Source = domain.SourceDefault
	report.Recovered = true
	s.logger.Error("no valid garden or backup found, starting empty", "problems", len(report.Problems))
	return domain.Empty(), report
}

func (s *GardenService) promote(ctx context.Context, g domain.Garden, report *domain.ReadReport) {
	payload, err := domain.Encode(g)
	if err == nil {
		err = s.store.WritePrimary(ctx, payload)
	}
	if err != nil {
		s.logger.Error("promote backup failed", "source", report.Source, "error", err)
		report.Problems = append(report.Problems, fmt.Sprintf("promote %s: %v", report.Source, err))
		return
	}
	s.logger.Warn("garden restored from backup", "source", report.Source)
}

// Write validates g, backs up the current primary, replaces it atomically and
// prunes old backups. Nothing is touched when validation fails.
func (s *GardenService) Write(ctx context.Context, g domain.Garden) error {
	if err := g.Validate(); err != nil {
		return err
	}
	payload, err := domain.Encode(g)
	if err != nil {
		return err
	}
	name, err := s.store.CreateBackup(ctx)
	if err != nil {
		return fmt.Errorf("backup before write: %w", err)
	}
	if name != "" {
		s.logger.Debug("garden backup created", "name", name)
	}
	if err := s.store.WritePrimary(ctx, payload); err != nil {
		return err
	}
	s.prune(ctx)
	return nil
}

func (s *GardenService) prune(ctx context.Context) {
	backups, err := s.store.ListBackups(ctx)
	if err != nil {
		s.logger.Warn("list backups for cleanup failed", "error", err)
		return
	}
	for _, b := range domain.Expired(backups, s.retention) {
		if err := s.store.RemoveBackup(ctx, b.Name); err != nil {
			s.logger.Warn("remove old backup failed", "name", b.Name, "error", err)
			continue
		}
		s.logger.Debug("old backup removed", "name", b.Name)
	}
}

// Append validates one session and adds it to the end of the garden. A backup
// recovered on the way is persisted only by the Write that carries the session.
func (s *GardenService) Append(ctx context.Context, session domain.Session) (domain.Garden, error) {
	if err := session.Validate(); err != nil {
		return domain.Garden{}, err
	}
	current, _ := s.read(ctx, false)
	updated := current.Append(session)
	if err := s.Write(ctx, updated); err != nil {
		return domain.Garden{}, fmt.Errorf("append session: %w", err)
	}
	return updated, nil
}

func (s *GardenService) Backups(ctx context.Context) ([]domain.Backup, error) {
	return s.store.ListBackups(ctx)
}
