package service

import (
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"botanist/internal/modules/analytics/domain"
	"botanist/internal/platform/clock"
)

type AnalyticsService struct {
	calendar domain.Calendar
	clock    clock.Clock
	logger   hclog.Logger
}

func NewAnalyticsService(calendar domain.Calendar, clk clock.Clock, logger hclog.Logger) *AnalyticsService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &AnalyticsService{calendar: calendar, clock: clk, logger: logger}
}

func (s *AnalyticsService) Weekly(entries []domain.Entry) domain.Report {
	report := domain.Aggregate(s.calendar, entries)
	for _, skip := range report.Skipped {
		s.logger.Warn("skipping session in weekly report", "index", skip.Index, "reason", skip.Reason)
	}
	if report.Excluded > 0 {
		s.logger.Debug("sessions before the legacy epoch excluded", "count", report.Excluded)
	}
	return report
}

func (s *AnalyticsService) Today(entries []domain.Entry) domain.DayTotal {
	return domain.DailyProgress(s.clock.Now(), entries)
}

// Week reports progress for the week containing weekStart, or the current week
// when weekStart is zero.
func (s *AnalyticsService) Week(weekStart time.Time, entries []domain.Entry, goal domain.WeeklyGoal) domain.WeeklyProgress {
	if weekStart.IsZero() {
		weekStart = s.clock.Now()
	}
	return domain.WeeklyProgressFor(weekStart, entries, goal)
}
