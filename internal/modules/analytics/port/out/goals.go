package out

import (
	"context"

	"botanist/internal/modules/analytics/domain"
)

type GoalStore interface {
	LoadWeeklyGoal(ctx context.Context) (domain.WeeklyGoal, error)
	SaveWeeklyGoal(ctx context.Context, goal domain.WeeklyGoal) error
}
