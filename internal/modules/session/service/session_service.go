package service

import (
	"context"
	"time"

	"botanist/internal/modules/session/domain"
	"botanist/internal/platform/clock"
	"botanist/internal/platform/id"
)

// SessionService drives the domain timer with readings from the clock.
// Readings are truncated to whole seconds, the resolution of the garden file.
type SessionService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewSessionService(clock clock.Clock, idGen id.Generator) *SessionService {
	return &SessionService{clock: clock, idGen: idGen}
}

func (s *SessionService) now() time.Time {
	return s.clock.Now().Truncate(time.Second)
}

func (s *SessionService) Start(_ context.Context) (domain.ActiveSession, error) {
	timer := domain.NewTimer()
	if err := timer.Start(s.idGen.New(), s.now()); err != nil {
		return domain.ActiveSession{}, err
	}
	active, _ := timer.Active()
	return active, nil
}

func (s *SessionService) Pause(_ context.Context, active domain.ActiveSession) (domain.ActiveSession, domain.Status, error) {
	timer, err := domain.RestoreTimer(active)
	if err != nil {
		return domain.ActiveSession{}, domain.Status{}, err
	}
	at := s.now()
	if err := timer.Pause(at); err != nil {
		return domain.ActiveSession{}, domain.Status{}, err
	}
	status, err := timer.Status(at)
	if err != nil {
		return domain.ActiveSession{}, domain.Status{}, err
	}
	updated, _ := timer.Active()
	return updated, status, nil
}

func (s *SessionService) Resume(_ context.Context, active domain.ActiveSession) (domain.ActiveSession, domain.ClosedPause, error) {
	timer, err := domain.RestoreTimer(active)
	if err != nil {
		return domain.ActiveSession{}, domain.ClosedPause{}, err
	}
	closed, err := timer.Resume(s.now())
	if err != nil {
		return domain.ActiveSession{}, domain.ClosedPause{}, err
	}
	updated, _ := timer.Active()
	return updated, closed, nil
}

func (s *SessionService) Finish(_ context.Context, active domain.ActiveSession) (domain.Completed, error) {
	timer, err := domain.RestoreTimer(active)
	if err != nil {
		return domain.Completed{}, err
	}
	return timer.Finish(s.now())
}

func (s *SessionService) Status(_ context.Context, active domain.ActiveSession) (domain.Status, error) {
	timer, err := domain.RestoreTimer(active)
	if err != nil {
		return domain.Status{}, err
	}
	return timer.Status(s.clock.Now())
}
