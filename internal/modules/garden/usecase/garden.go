package usecase

import (
	"context"
	"io"

	"botanist/internal/modules/garden/domain"
	"botanist/internal/modules/garden/dto"
	gardenin "botanist/internal/modules/garden/port/in"
	gardenout "botanist/internal/modules/garden/port/out"
	"botanist/internal/modules/garden/service"
)

type Interactor struct {
	svc      *service.GardenService
	exporter gardenout.SessionExporter
}

func NewInteractor(svc *service.GardenService, exporter gardenout.SessionExporter) gardenin.Usecase {
	return &Interactor{svc: svc, exporter: exporter}
}

func (i *Interactor) Append(ctx context.Context, input dto.SessionInput) (dto.AppendOutput, error) {
	session := domain.NewSession(
		input.StartTime,
		input.EndTime,
		input.DurationSeconds,
		input.Description,
		input.Flower,
	)
	g, err := i.svc.Append(ctx, session)
	if err != nil {
		return dto.AppendOutput{}, err
	}
	return dto.AppendOutput{TotalSessions: len(g.Sessions)}, nil
}

func (i *Interactor) Garden(ctx context.Context) (dto.GardenOutput, error) {
	g, report := i.svc.Read(ctx)
	return dto.GardenOutput{
		CurrentStreak: g.CurrentStreak,
		Sessions:      toSessionOutputs(g.Sessions),
		Source:        report.Source,
		Recovered:     report.Recovered,
		Problems:      report.Problems,
		Repairs:       report.Repairs,
	}, nil
}

func (i *Interactor) Export(ctx context.Context, w io.Writer) (dto.ExportOutput, error) {
	g, _ := i.svc.Read(ctx)
	if err := i.exporter.Export(w, g.Sessions); err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Count: len(g.Sessions)}, nil
}

func (i *Interactor) Backups(ctx context.Context) ([]dto.BackupOutput, error) {
	backups, err := i.svc.Backups(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BackupOutput, 0, len(backups))
	for _, b := range backups {
		out = append(out, dto.BackupOutput{Name: b.Name, ModTime: b.ModTime, Size: b.Size})
	}
	return out, nil
}

func (i *Interactor) Verify(ctx context.Context) (dto.VerifyOutput, error) {
	g, report := i.svc.Read(ctx)
	return dto.VerifyOutput{
		Sessions:   len(g.Sessions),
		Streak:     g.CurrentStreak,
		Duplicates: domain.Duplicates(g),
		Source:     report.Source,
		Recovered:  report.Recovered,
		Problems:   report.Problems,
	}, nil
}

func toSessionOutputs(sessions []domain.Session) []dto.SessionOutput {
	out := make([]dto.SessionOutput, 0, len(sessions))
	for idx, s := range sessions {
		out = append(out, dto.SessionOutput{
			Index:           idx,
			Date:            s.Date,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DurationSeconds: s.Duration,
			Description:     s.Description,
			Flower:          s.Flower,
		})
	}
	return out
}
