package in

import (
	"context"

	"botanist/internal/modules/analytics/dto"
)

type Usecase interface {
	Weekly(ctx context.Context) (dto.ReportOutput, error)
	Today(ctx context.Context) (dto.DailyOutput, error)
	Week(ctx context.Context, input dto.WeeklyProgressInput) (dto.WeeklyProgressOutput, error)
	SetWeeklyGoal(ctx context.Context, input dto.SetGoalInput) (dto.GoalOutput, error)
}
