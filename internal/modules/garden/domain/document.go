package domain

import (
	"encoding/json"
	"fmt"
	"time"

	apperrors "botanist/internal/platform/errors"
)

var requiredSessionFields = []string{"date", "start_time", "end_time", "duration", "description", "flower"}

type document struct {
	CurrentStreak int             `json:"current_streak"`
	Sessions      []sessionRecord `json:"sessions"`
}

type sessionRecord struct {
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Duration    float64 `json:"duration"`
	Description string  `json:"description"`
	Flower      string  `json:"flower"`
}

// Encode renders the garden document. Callers validate first.
func Encode(g Garden) ([]byte, error) {
	doc := document{CurrentStreak: g.CurrentStreak, Sessions: make([]sessionRecord, 0, len(g.Sessions))}
	for _, s := range g.Sessions {
		doc.Sessions = append(doc.Sessions, sessionRecord{
			Date:        s.Date,
			StartTime:   s.StartTime.Format(TimeLayout),
			EndTime:     s.EndTime.Format(TimeLayout),
			Duration:    s.Duration,
			Description: s.Description,
			Flower:      s.Flower,
		})
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode garden: %w", err)
	}
	return append(payload, '\n'), nil
}

// Decode parses and validates a garden document. A missing or non-numeric
// current_streak is repaired to 0 and reported in repairs; anything else that
// does not match the document shape fails with ErrInvalidData.
func Decode(payload []byte, loc *time.Location) (Garden, []string, error) {
	var raw any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return Garden{}, nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidData, err)
	}
	root, ok := raw.(map[string]any)
	if !ok {
		return Garden{}, nil, fmt.Errorf("%w: document is not an object", apperrors.ErrInvalidData)
	}
	rawSessions, ok := root["sessions"]
	if !ok {
		return Garden{}, nil, fmt.Errorf("%w: sessions key is missing", apperrors.ErrInvalidData)
	}
	list, ok := rawSessions.([]any)
	if !ok {
		return Garden{}, nil, fmt.Errorf("%w: sessions is not a list", apperrors.ErrInvalidData)
	}

	var repairs []string
	g := Garden{Sessions: make([]Session, 0, len(list))}
	switch streak := root["current_streak"].(type) {
	case float64:
		g.CurrentStreak = int(streak)
		if g.CurrentStreak < 0 {
			g.CurrentStreak = 0
			repairs = append(repairs, "current_streak was negative, reset to 0")
		}
	case nil:
		repairs = append(repairs, "current_streak was missing, reset to 0")
	default:
		repairs = append(repairs, fmt.Sprintf("current_streak had type %T, reset to 0", streak))
	}

	for i, item := range list {
		s, err := decodeSession(item, loc)
		if err != nil {
			return Garden{}, nil, fmt.Errorf("session %d: %w", i, err)
		}
		g.Sessions = append(g.Sessions, s)
	}
	return g, repairs, nil
}

func decodeSession(item any, loc *time.Location) (Session, error) {
	fields, ok := item.(map[string]any)
	if !ok {
		return Session{}, fmt.Errorf("%w: session is not an object", apperrors.ErrInvalidData)
	}
	for _, key := range requiredSessionFields {
		if _, ok := fields[key]; !ok {
			return Session{}, fmt.Errorf("%w: %s is missing", apperrors.ErrInvalidData, key)
		}
	}
	texts := map[string]string{}
	for _, key := range []string{"date", "start_time", "end_time", "description", "flower"} {
		v, ok := fields[key].(string)
		if !ok {
			return Session{}, fmt.Errorf("%w: %s must be text", apperrors.ErrInvalidData, key)
		}
		texts[key] = v
	}
	duration, ok := fields["duration"].(float64)
	if !ok {
		return Session{}, fmt.Errorf("%w: duration must be a number", apperrors.ErrInvalidData)
	}
	start, err := time.ParseInLocation(TimeLayout, texts["start_time"], loc)
	if err != nil {
		return Session{}, fmt.Errorf("%w: start_time %q", apperrors.ErrInvalidData, texts["start_time"])
	}
	end, err := time.ParseInLocation(TimeLayout, texts["end_time"], loc)
	if err != nil {
		return Session{}, fmt.Errorf("%w: end_time %q", apperrors.ErrInvalidData, texts["end_time"])
	}
	s := Session{
		Date:        texts["date"],
		StartTime:   start,
		EndTime:     end,
		Duration:    duration,
		Description: texts["description"],
		Flower:      texts["flower"],
	}
	if err := s.Validate(); err != nil {
		return Session{}, err
	}
	return s, nil
}
