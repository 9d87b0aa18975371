package dto

import "time"

type DayOutput struct {
	Label string
	Date  time.Time
	Hours float64
	Count int
}

type WeekOutput struct {
	Number   int
	Regime   string
	Header   string
	Start    time.Time
	Hours    float64
	Sessions int
	Days     []DayOutput
}

type SkipOutput struct {
	Index  int
	Reason string
}

type ReportOutput struct {
	TotalHours float64
	Weeks      []WeekOutput
	Skipped    []SkipOutput
	Excluded   int
}

type DailyOutput struct {
	Date     time.Time
	Minutes  int
	Sessions int
}

type WeeklyProgressInput struct {
	// WeekStart may be any day of the wanted week; zero means the current week.
	WeekStart time.Time
}

type WeeklyProgressOutput struct {
	Start           time.Time
	End             time.Time
	Minutes         int
	Sessions        int
	Days            []DailyOutput
	Goal            GoalOutput
	MinutesPercent  float64
	SessionsPercent float64
}

// SetGoalInput leaves a target unchanged when it is zero.
type SetGoalInput struct {
	Minutes  int
	Sessions int
}

type GoalOutput struct {
	Enabled        bool
	TargetMinutes  int
	TargetSessions int
}
