package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "botanist/internal/platform/errors"
)

func sampleGarden() Garden {
	start := time.Date(2025, 9, 3, 9, 0, 0, 0, time.Local)
	end := start.Add(95 * time.Minute)
	return Garden{
		CurrentStreak: 2,
		Sessions: []Session{
			NewSession(start, end, 5100, "write parser", "(@)\n | "),
		},
	}
}

func TestEncodeDecodeKeepsDocument(t *testing.T) {
	t.Parallel()
	g := sampleGarden()
	payload, err := Encode(g)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(payload), `"start_time": "2025-09-03 09:00:00"`) {
		t.Fatalf("unexpected time layout in %s", payload)
	}
	got, repairs, err := Decode(payload, time.Local)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(repairs) != 0 {
		t.Fatalf("unexpected repairs: %v", repairs)
	}
	if !got.Equal(g) {
		t.Fatalf("decoded garden differs: %+v", got)
	}
}

func TestDecodeRejectsMalformedDocuments(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"not json":          `{"sessions": [`,
		"not an object":     `[1, 2]`,
		"missing sessions":  `{"current_streak": 0}`,
		"sessions not list": `{"sessions": {}}`,
		"missing field":     `{"sessions": [{"date": "2025-09-03", "start_time": "2025-09-03 09:00:00", "end_time": "2025-09-03 10:00:00", "duration": 3600, "description": "x"}]}`,
		"text duration":     `{"sessions": [{"date": "2025-09-03", "start_time": "2025-09-03 09:00:00", "end_time": "2025-09-03 10:00:00", "duration": "3600", "description": "x", "flower": ""}]}`,
		"negative duration": `{"sessions": [{"date": "2025-09-03", "start_time": "2025-09-03 09:00:00", "end_time": "2025-09-03 10:00:00", "duration": -1, "description": "x", "flower": ""}]}`,
		"bad time":          `{"sessions": [{"date": "2025-09-03", "start_time": "09:00", "end_time": "2025-09-03 10:00:00", "duration": 60, "description": "x", "flower": ""}]}`,
		"bad date":          `{"sessions": [{"date": "03/09/2025", "start_time": "2025-09-03 09:00:00", "end_time": "2025-09-03 10:00:00", "duration": 60, "description": "x", "flower": ""}]}`,
	}
	for name, payload := range cases {
		name, payload := name, payload
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, _, err := Decode([]byte(payload), time.Local); !errors.Is(err, apperrors.ErrInvalidData) {
				t.Fatalf("expected ErrInvalidData, got %v", err)
			}
		})
	}
}

func TestDecodeRepairsStreak(t *testing.T) {
	t.Parallel()
	for _, payload := range []string{
		`{"sessions": []}`,
		`{"current_streak": "3", "sessions": []}`,
		`{"current_streak": -4, "sessions": []}`,
	} {
		g, repairs, err := Decode([]byte(payload), time.Local)
		if err != nil {
			t.Fatalf("decode %s: %v", payload, err)
		}
		if g.CurrentStreak != 0 || len(repairs) != 1 {
			t.Fatalf("expected streak repaired for %s, got %d %v", payload, g.CurrentStreak, repairs)
		}
	}
}

func TestAppendDoesNotAliasSessions(t *testing.T) {
	t.Parallel()
	g := sampleGarden()
	next := g.Append(g.Sessions[0])
	if len(g.Sessions) != 1 || len(next.Sessions) != 2 {
		t.Fatalf("append mutated the receiver: %d %d", len(g.Sessions), len(next.Sessions))
	}
	if Duplicates(next) != 1 {
		t.Fatalf("expected one duplicate, got %d", Duplicates(next))
	}
}
