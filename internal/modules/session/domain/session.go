package domain

import (
	"fmt"
	"time"
)

// PauseInterval is either an OpenPause or a ClosedPause.
type PauseInterval interface {
	StartedAt() time.Time
	// Duration measures the interval; an open pause is measured up to at.
	Duration(at time.Time) time.Duration
	isPauseInterval()
}

type OpenPause struct {
	Start time.Time
}

type ClosedPause struct {
	Start  time.Time
	Finish time.Time
}

func (p OpenPause) StartedAt() time.Time { return p.Start }

func (p OpenPause) Duration(at time.Time) time.Duration { return nonNegative(at.Sub(p.Start)) }

func (p OpenPause) Close(at time.Time) ClosedPause {
	return ClosedPause{Start: p.Start, Finish: at}
}

func (OpenPause) isPauseInterval() {}

func (p ClosedPause) StartedAt() time.Time { return p.Start }

func (p ClosedPause) Duration(time.Time) time.Duration { return nonNegative(p.Finish.Sub(p.Start)) }

func (ClosedPause) isPauseInterval() {}

// ActiveSession is the in-flight session persisted in the active marker between commands.
type ActiveSession struct {
	ID        string
	StartedAt time.Time
	Pauses    []PauseInterval
}

// OpenPause returns the trailing open pause, if any.
func (s ActiveSession) OpenPause() (OpenPause, bool) {
	if len(s.Pauses) == 0 {
		return OpenPause{}, false
	}
	open, ok := s.Pauses[len(s.Pauses)-1].(OpenPause)
	return open, ok
}

func (s ActiveSession) IsPaused() bool {
	_, ok := s.OpenPause()
	return ok
}

// PausedFor sums every pause interval, measuring an open one against at.
func (s ActiveSession) PausedFor(at time.Time) time.Duration {
	var total time.Duration
	for _, p := range s.Pauses {
		total += p.Duration(at)
	}
	return total
}

// Validate checks the pause sequence: chronological, nothing before the start,
// and an open pause only in last position.
func (s ActiveSession) Validate() error {
	if s.StartedAt.IsZero() {
		return fmt.Errorf("active session has no start time")
	}
	prev := s.StartedAt
	for i, p := range s.Pauses {
		if p == nil {
			return fmt.Errorf("pause %d is empty", i)
		}
		if p.StartedAt().Before(prev) {
			return fmt.Errorf("pause %d starts before the previous interval ended", i)
		}
		switch v := p.(type) {
		case OpenPause:
			if i != len(s.Pauses)-1 {
				return fmt.Errorf("pause %d is open but not the latest pause", i)
			}
			prev = v.Start
		case ClosedPause:
			if v.Finish.Before(v.Start) {
				return fmt.Errorf("pause %d finishes before it starts", i)
			}
			prev = v.Finish
		}
	}
	return nil
}

func (s ActiveSession) clone() ActiveSession {
	out := s
	out.Pauses = append([]PauseInterval(nil), s.Pauses...)
	return out
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
