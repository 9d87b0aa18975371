package out

import (
	"context"

	"botanist/internal/modules/analytics/domain"
	analyticsout "botanist/internal/modules/analytics/port/out"
	"botanist/internal/platform/config"
)

// ConfigGoalStore keeps the weekly goal in the goals section of .botanist.yaml.
type ConfigGoalStore struct {
	cfg config.Config
}

func NewConfigGoalStore(cfg config.Config) analyticsout.GoalStore {
	return &ConfigGoalStore{cfg: cfg}
}

func (s *ConfigGoalStore) LoadWeeklyGoal(_ context.Context) (domain.WeeklyGoal, error) {
	g := s.cfg.Settings.Goals
	return domain.WeeklyGoal{Enabled: g.WeeklyEnabled, TargetMinutes: g.WeeklyTargetMinutes, TargetSessions: g.WeeklyTargetSessions}, nil
}

func (s *ConfigGoalStore) SaveWeeklyGoal(_ context.Context, goal domain.WeeklyGoal) error {
	apply := func(settings *config.Settings) {
		settings.Goals.WeeklyEnabled = goal.Enabled
		settings.Goals.WeeklyTargetMinutes = goal.TargetMinutes
		settings.Goals.WeeklyTargetSessions = goal.TargetSessions
	}
	if err := config.Update(s.cfg, apply); err != nil {
		return err
	}
	apply(&s.cfg.Settings)
	return nil
}
