package dto

import "time"

type StartOutput struct {
	SessionID string
	StartedAt time.Time
}

type PauseOutput struct {
	SessionID    string
	PausedAt     time.Time
	WorkedSoFar  time.Duration
	BreakMinutes int
}

type ResumeOutput struct {
	SessionID string
	ResumedAt time.Time
	PausedFor time.Duration
}

type FinishInput struct {
	Description string
}

type FinishOutput struct {
	SessionID         string
	Saved             bool
	StartedAt         time.Time
	FinishedAt        time.Time
	Net               time.Duration
	Paused            time.Duration
	Formatted         string
	MinSessionSeconds int
	Description       string
	FlowerName        string
	FlowerArt         string
	TotalSessions     int
	NotePath          string
	NoteError         string
}

type StatusOutput struct {
	SessionID string
	StartedAt time.Time
	Elapsed   time.Duration
	Working   time.Duration
	Paused    time.Duration
	IsPaused  bool
	FlowerArt string
}
