package usecase

import (
	"context"
	"fmt"

	"botanist/internal/modules/analytics/domain"
	"botanist/internal/modules/analytics/dto"
	analyticsin "botanist/internal/modules/analytics/port/in"
	analyticsout "botanist/internal/modules/analytics/port/out"
	"botanist/internal/modules/analytics/service"
	gardenin "botanist/internal/modules/garden/port/in"
	"botanist/internal/platform/tx"
)

type Interactor struct {
	svc    *service.AnalyticsService
	garden gardenin.Usecase
	goals  analyticsout.GoalStore
	tx     tx.Manager
}

type Option func(*Interactor)

func WithTx(manager tx.Manager) Option {
	return func(i *Interactor) { i.tx = manager }
}

func NewInteractor(svc *service.AnalyticsService, garden gardenin.Usecase, goals analyticsout.GoalStore, opts ...Option) analyticsin.Usecase {
	i := &Interactor{svc: svc, garden: garden, goals: goals, tx: tx.NoopManager{}}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Interactor) entries(ctx context.Context) ([]domain.Entry, error) {
	g, err := i.garden.Garden(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.Entry, 0, len(g.Sessions))
	for _, s := range g.Sessions {
		entries = append(entries, domain.Entry{Index: s.Index, StartTime: s.StartTime, DurationSeconds: s.DurationSeconds})
	}
	return entries, nil
}

func (i *Interactor) Weekly(ctx context.Context) (dto.ReportOutput, error) {
	entries, err := i.entries(ctx)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	report := i.svc.Weekly(entries)
	out := dto.ReportOutput{TotalHours: report.TotalHours, Excluded: report.Excluded}
	for _, w := range report.Weeks {
		week := dto.WeekOutput{
			Number:   w.Number,
			Regime:   w.Regime.Kind.String(),
			Header:   w.Regime.Header,
			Start:    w.Start,
			Hours:    w.Hours,
			Sessions: w.Sessions,
			Days:     make([]dto.DayOutput, 0, len(w.Days)),
		}
		for _, d := range w.Days {
			week.Days = append(week.Days, dto.DayOutput{Label: d.Label, Date: d.Date, Hours: d.Hours, Count: d.Count})
		}
		out.Weeks = append(out.Weeks, week)
	}
	for _, skip := range report.Skipped {
		out.Skipped = append(out.Skipped, dto.SkipOutput{Index: skip.Index, Reason: skip.Reason})
	}
	return out, nil
}

func (i *Interactor) Today(ctx context.Context) (dto.DailyOutput, error) {
	entries, err := i.entries(ctx)
	if err != nil {
		return dto.DailyOutput{}, err
	}
	return toDaily(i.svc.Today(entries)), nil
}

func (i *Interactor) Week(ctx context.Context, input dto.WeeklyProgressInput) (dto.WeeklyProgressOutput, error) {
	entries, err := i.entries(ctx)
	if err != nil {
		return dto.WeeklyProgressOutput{}, err
	}
	goal, err := i.goals.LoadWeeklyGoal(ctx)
	if err != nil {
		return dto.WeeklyProgressOutput{}, fmt.Errorf("load weekly goal: %w", err)
	}
	p := i.svc.Week(input.WeekStart, entries, goal)
	out := dto.WeeklyProgressOutput{
		Start:           p.Start,
		End:             p.End,
		Minutes:         p.Minutes,
		Sessions:        p.Sessions,
		Days:            make([]dto.DailyOutput, 0, len(p.Days)),
		Goal:            toGoal(p.Goal),
		MinutesPercent:  p.MinutesPercent,
		SessionsPercent: p.SessionsPercent,
	}
	for _, d := range p.Days {
		out.Days = append(out.Days, toDaily(d))
	}
	return out, nil
}

func (i *Interactor) SetWeeklyGoal(ctx context.Context, input dto.SetGoalInput) (dto.GoalOutput, error) {
	var out dto.GoalOutput
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		goal, err := i.goals.LoadWeeklyGoal(ctx)
		if err != nil {
			return fmt.Errorf("load weekly goal: %w", err)
		}
		if input.Minutes != 0 {
			goal.TargetMinutes = input.Minutes
		}
		if input.Sessions != 0 {
			goal.TargetSessions = input.Sessions
		}
		goal.Enabled = true
		if err := goal.Validate(); err != nil {
			return err
		}
		if err := i.goals.SaveWeeklyGoal(ctx, goal); err != nil {
			return err
		}
		out = toGoal(goal)
		return nil
	})
	return out, err
}

func toDaily(d domain.DayTotal) dto.DailyOutput {
	return dto.DailyOutput{Date: d.Date, Minutes: d.Minutes, Sessions: d.Sessions}
}

func toGoal(g domain.WeeklyGoal) dto.GoalOutput {
	return dto.GoalOutput{Enabled: g.Enabled, TargetMinutes: g.TargetMinutes, TargetSessions: g.TargetSessions}
}
