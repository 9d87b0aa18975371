package domain

import (
	"fmt"
	"math"
	"time"

	apperrors "botanist/internal/platform/errors"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "2006-01-02 15:04:05"
)

// Garden is the durable document: a streak counter and every saved session in
// insertion order.
type Garden struct {
	CurrentStreak int
	Sessions      []Session
}

type Session struct {
	Date        string
	StartTime   time.Time
	EndTime     time.Time
	Duration    float64
	Description string
	Flower      string
}

func Empty() Garden {
	return Garden{Sessions: []Session{}}
}

// NewSession derives the calendar date from start.
func NewSession(start, end time.Time, durationSeconds float64, description, flower string) Session {
	return Session{
		Date:        start.Format(DateLayout),
		StartTime:   start,
		EndTime:     end,
		Duration:    durationSeconds,
		Description: description,
		Flower:      flower,
	}
}

func (s Session) Validate() error {
	if _, err := time.Parse(DateLayout, s.Date); err != nil {
		return fmt.Errorf("%w: date %q: %v", apperrors.ErrInvalidData, s.Date, err)
	}
	if s.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is missing", apperrors.ErrInvalidData)
	}
	if s.EndTime.IsZero() {
		return fmt.Errorf("%w: end_time is missing", apperrors.ErrInvalidData)
	}
	if math.IsNaN(s.Duration) || math.IsInf(s.Duration, 0) || s.Duration < 0 {
		return fmt.Errorf("%w: duration %v must be a non-negative number", apperrors.ErrInvalidData, s.Duration)
	}
	return nil
}

// Equal compares sessions at the one-second resolution of the document.
func (s Session) Equal(o Session) bool {
	return s.Date == o.Date &&
		s.StartTime.Truncate(time.Second).Equal(o.StartTime.Truncate(time.Second)) &&
		s.EndTime.Truncate(time.Second).Equal(o.EndTime.Truncate(time.Second)) &&
		s.Duration == o.Duration &&
		s.Description == o.Description &&
		s.Flower == o.Flower
}

func (g Garden) Validate() error {
	if g.CurrentStreak < 0 {
		return fmt.Errorf("%w: current_streak must be non-negative", apperrors.ErrInvalidData)
	}
	for i, s := range g.Sessions {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("session %d: %w", i, err)
		}
	}
	return nil
}

func (g Garden) Equal(o Garden) bool {
	if g.CurrentStreak != o.CurrentStreak || len(g.Sessions) != len(o.Sessions) {
		return false
	}
	for i := range g.Sessions {
		if !g.Sessions[i].Equal(o.Sessions[i]) {
			return false
		}
	}
	return true
}

// Append returns a copy of g with s added at the end.
func (g Garden) Append(s Session) Garden {
	sessions := make([]Session, 0, len(g.Sessions)+1)
	sessions = append(sessions, g.Sessions...)
	return Garden{CurrentStreak: g.CurrentStreak, Sessions: append(sessions, s)}
}
