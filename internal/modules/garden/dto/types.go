package dto

import "time"

// SessionInput is a finished session about to be appended. The calendar date is
// taken from StartTime.
type SessionInput struct {
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds float64
	Description     string
	Flower          string
}

type AppendOutput struct {
	TotalSessions int
}

type SessionOutput struct {
	Index           int
	Date            string
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds float64
	Description     string
	Flower          string
}

type GardenOutput struct {
	CurrentStreak int
	Sessions      []SessionOutput
	Source        string
	Recovered     bool
	Problems      []string
	Repairs       []string
}

type ExportOutput struct {
	Count int
}

type BackupOutput struct {
	Name    string
	ModTime time.Time
	Size    int64
}

type VerifyOutput struct {
	Sessions   int
	Streak     int
	Duplicates int
	Source     string
	Recovered  bool
	Problems   []string
}
