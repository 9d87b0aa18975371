package domain

import (
	"time"

	apperrors "botanist/internal/platform/errors"
)

// Status is a live reading of an active session.
type Status struct {
	SessionID string
	StartedAt time.Time
	Elapsed   time.Duration
	Working   time.Duration
	Paused    time.Duration
	IsPaused  bool
}

// Completed is the result of finishing a session.
type Completed struct {
	SessionID  string
	StartedAt  time.Time
	FinishedAt time.Time
	Paused     time.Duration
	Net        time.Duration
}

func (c Completed) NetSeconds() float64 {
	return c.Net.Seconds()
}

// Timer enforces start/pause/resume/finish ordering for at most one session.
type Timer struct {
	session *ActiveSession
}

func NewTimer() *Timer {
	return &Timer{}
}

// RestoreTimer rebuilds a timer from a persisted marker.
func RestoreTimer(active ActiveSession) (*Timer, error) {
	if err := active.Validate(); err != nil {
		return nil, err
	}
	s := active.clone()
	return &Timer{session: &s}, nil
}

// Active returns a copy of the current session.
func (t *Timer) Active() (ActiveSession, bool) {
	if t.session == nil {
		return ActiveSession{}, false
	}
	return t.session.clone(), true
}

func (t *Timer) Start(id string, at time.Time) error {
	if t.session != nil {
		return apperrors.ErrAlreadyActive
	}
	t.session = &ActiveSession{ID: id, StartedAt: at}
	return nil
}

func (t *Timer) Pause(at time.Time) error {
	if t.session == nil {
		return apperrors.ErrNotStarted
	}
	if t.session.IsPaused() {
		return apperrors.ErrAlreadyPaused
	}
	t.session.Pauses = append(t.session.Pauses, OpenPause{Start: at})
	return nil
}

// Resume closes the open pause and returns it.
func (t *Timer) Resume(at time.Time) (ClosedPause, error) {
	if t.session == nil {
		return ClosedPause{}, apperrors.ErrNotStarted
	}
	open, ok := t.session.OpenPause()
	if !ok {
		return ClosedPause{}, apperrors.ErrNotPaused
	}
	closed := open.Close(at)
	t.session.Pauses[len(t.session.Pauses)-1] = closed
	return closed, nil
}

// Finish ends the session and discards it from the timer.
func (t *Timer) Finish(at time.Time) (Completed, error) {
	if t.session == nil {
		return Completed{}, apperrors.ErrNotStarted
	}
	if t.session.IsPaused() {
		return Completed{}, apperrors.ErrStillPaused
	}
	s := t.session
	elapsed := nonNegative(at.Sub(s.StartedAt))
	paused := s.PausedFor(at)
	t.session = nil
	return Completed{
		SessionID:  s.ID,
		StartedAt:  s.StartedAt,
		FinishedAt: at,
		Paused:     paused,
		Net:        nonNegative(elapsed - paused),
	}, nil
}

// Status reads the session at an instant without changing it.
func (t *Timer) Status(at time.Time) (Status, error) {
	if t.session == nil {
		return Status{}, apperrors.ErrNotStarted
	}
	s := t.session
	elapsed := nonNegative(at.Sub(s.StartedAt))
	paused := s.PausedFor(at)
	return Status{
		SessionID: s.ID,
		StartedAt: s.StartedAt,
		Elapsed:   elapsed,
		Working:   nonNegative(elapsed - paused),
		Paused:    paused,
		IsPaused:  s.IsPaused(),
	}, nil
}
