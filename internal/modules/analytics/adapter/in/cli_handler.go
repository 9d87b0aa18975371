package in

import (
	"context"
	"time"

	analyticsdto "botanist/internal/modules/analytics/dto"
	analyticsin "botanist/internal/modules/analytics/port/in"
)

type CLIHandler struct {
	usecase analyticsin.Usecase
}

func NewCLIHandler(usecase analyticsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Weekly(ctx context.Context) (analyticsdto.ReportOutput, error) {
	return h.usecase.Weekly(ctx)
}

func (h CLIHandler) Today(ctx context.Context) (analyticsdto.DailyOutput, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) Week(ctx context.Context, weekStart time.Time) (analyticsdto.WeeklyProgressOutput, error) {
	return h.usecase.Week(ctx, analyticsdto.WeeklyProgressInput{WeekStart: weekStart})
}

func (h CLIHandler) SetWeeklyGoal(ctx context.Context, minutes, sessions int) (analyticsdto.GoalOutput, error) {
	return h.usecase.SetWeeklyGoal(ctx, analyticsdto.SetGoalInput{Minutes: minutes, Sessions: sessions})
}
