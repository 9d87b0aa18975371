package bootstrap

import (
	"context"
	"fmt"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	analyticsinadapter "botanist/internal/modules/analytics/adapter/in"
	analyticsoutadapter "botanist/internal/modules/analytics/adapter/out"
	analyticsdomain "botanist/internal/modules/analytics/domain"
	analyticsservice "botanist/internal/modules/analytics/service"
	analyticsusecase "botanist/internal/modules/analytics/usecase"
	flowerinadapter "botanist/internal/modules/flower/adapter/in"
	flowerservice "botanist/internal/modules/flower/service"
	flowerusecase "botanist/internal/modules/flower/usecase"
	gardeninadapter "botanist/internal/modules/garden/adapter/in"
	gardenoutadapter "botanist/internal/modules/garden/adapter/out"
	gardenservice "botanist/internal/modules/garden/service"
	gardenusecase "botanist/internal/modules/garden/usecase"
	sessioninadapter "botanist/internal/modules/session/adapter/in"
	sessionoutadapter "botanist/internal/modules/session/adapter/out"
	sessionservice "botanist/internal/modules/session/service"
	sessionusecase "botanist/internal/modules/session/usecase"
	"botanist/internal/platform/clock"
	"botanist/internal/platform/config"
	"botanist/internal/platform/id"
	"botanist/internal/platform/lock"
	statusview "botanist/internal/ui/views/status"
)

type App struct {
	SessionCLI   sessioninadapter.CLIHandler
	GardenCLI    gardeninadapter.CLIHandler
	AnalyticsCLI analyticsinadapter.CLIHandler
	FlowerCLI    flowerinadapter.CLIHandler
	Config       config.Config
	Logger       hclog.Logger
}

func New(cfg config.Config, logger hclog.Logger) (*App, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}
	locker := lock.NewFileManager(cfg.LockPath)
	s := cfg.Settings

	legacy, current, cutover, err := s.Regimes.Dates()
	if err != nil {
		return nil, err
	}
	calendar, err := analyticsdomain.NewCalendar(legacy, s.Regimes.LegacyOffset, current, s.Regimes.CurrentOffset, cutover)
	if err != nil {
		return nil, fmt.Errorf("regimes: %w", err)
	}

	flowerUC := flowerusecase.NewInteractor(flowerservice.NewFlowerService(
		s.Flowers.SeedlingMinutes,
		s.Flowers.BudMinutes,
		s.Flowers.BloomMinutes,
		s.Flowers.QueenMinutes,
		nil,
	))

	gardenSvc := gardenservice.NewGardenService(
		gardenoutadapter.NewFileDocumentStore(cfg.GardenPath, cfg.BackupDir, clk),
		s.BackupRetention,
		time.Local,
		logger.Named("garden"),
	)
	gardenUC := gardenusecase.NewInteractor(gardenSvc, gardenoutadapter.NewCSVExporter())

	sessionOpts := []sessionusecase.Option{
		sessionusecase.WithTx(locker),
		sessionusecase.WithLogger(logger.Named("session")),
	}
	if s.ObsidianPath != "" {
		sessionOpts = append(sessionOpts, sessionusecase.WithNoteSink(sessionoutadapter.NewMarkdownNoteSink(s.ObsidianPath)))
	}
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids),
		sessionoutadapter.NewFileActiveSessionStore(cfg.ActivePath),
		gardenUC,
		flowerUC,
		sessionusecase.Settings{MinSessionSeconds: s.MinSessionSeconds, DefaultBreakMinutes: s.DefaultBreakMinutes},
		sessionOpts...,
	)

	analyticsUC := analyticsusecase.NewInteractor(
		analyticsservice.NewAnalyticsService(calendar, clk, logger.Named("analytics")),
		gardenUC,
		analyticsoutadapter.NewConfigGoalStore(cfg),
		analyticsusecase.WithTx(locker),
	)

	return &App{
		SessionCLI:   sessioninadapter.NewCLIHandler(sessionUC),
		GardenCLI:    gardeninadapter.NewCLIHandler(gardenUC),
		AnalyticsCLI: analyticsinadapter.NewCLIHandler(analyticsUC),
		FlowerCLI:    flowerinadapter.NewCLIHandler(flowerUC),
		Config:       cfg,
		Logger:       logger,
	}, nil
}

// RunStatusView shows the live status view until the user quits.
func RunStatusView(ctx context.Context, app *App) error {
	return statusview.Run(ctx, app.SessionCLI, app.Config.ActivePath, app.Logger.Named("status"))
}
