package usecase

import (
	"context"
	"errors"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	flowerdto "botanist/internal/modules/flower/dto"
	flowerin "botanist/internal/modules/flower/port/in"
	gardendto "botanist/internal/modules/garden/dto"
	gardenin "botanist/internal/modules/garden/port/in"
	"botanist/internal/modules/session/domain"
	sessiondto "botanist/internal/modules/session/dto"
	sessionin "botanist/internal/modules/session/port/in"
	sessionout "botanist/internal/modules/session/port/out"
	"botanist/internal/modules/session/service"
	apperrors "botanist/internal/platform/errors"
	"botanist/internal/platform/sanitize"
	"botanist/internal/platform/tx"
)

type Settings struct {
	MinSessionSeconds   int
	DefaultBreakMinutes int
}

type Interactor struct {
	svc         *service.SessionService
	activeStore sessionout.ActiveSessionStore
	garden      gardenin.Usecase
	flowers     flowerin.Usecase
	notes       sessionout.NoteSink
	tx          tx.Manager
	settings    Settings
	logger      hclog.Logger
}

type Option func(*Interactor)

// WithNoteSink enables appending a log line for each saved session.
func WithNoteSink(notes sessionout.NoteSink) Option {
	return func(i *Interactor) { i.notes = notes }
}

func WithTx(manager tx.Manager) Option {
	return func(i *Interactor) { i.tx = manager }
}

func WithLogger(logger hclog.Logger) Option {
	return func(i *Interactor) { i.logger = logger }
}

func NewInteractor(svc *service.SessionService, activeStore sessionout.ActiveSessionStore, garden gardenin.Usecase, flowers flowerin.Usecase, settings Settings, opts ...Option) sessionin.Usecase {
	i := &Interactor{
		svc:         svc,
		activeStore: activeStore,
		garden:      garden,
		flowers:     flowers,
		settings:    settings,
		tx:          tx.NoopManager{},
		logger:      hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Interactor) Start(ctx context.Context) (sessiondto.StartOutput, error) {
	var out sessiondto.StartOutput
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		_, err := i.activeStore.LoadActive(ctx)
		if err == nil {
			return apperrors.ErrAlreadyActive
		}
		if errors.Is(err, apperrors.ErrCorruptMarker) {
			return fmt.Errorf("%w: %w", apperrors.ErrAlreadyActive, err)
		}
		if !errors.Is(err, apperrors.ErrNotStarted) {
			return err
		}
		active, err := i.svc.Start(ctx)
		if err != nil {
			return err
		}
		if err := i.activeStore.SaveActive(ctx, active); err != nil {
			return err
		}
		out = sessiondto.StartOutput{SessionID: active.ID, StartedAt: active.StartedAt}
		return nil
	})
	return out, err
}

func (i *Interactor) Pause(ctx context.Context) (sessiondto.PauseOutput, error) {
	var out sessiondto.PauseOutput
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		active, err := i.activeStore.LoadActive(ctx)
		if err != nil {
			return err
		}
		updated, status, err := i.svc.Pause(ctx, active)
		if err != nil {
			return err
		}
		if err := i.activeStore.SaveActive(ctx, updated); err != nil {
			return err
		}
		open, _ := updated.OpenPause()
		out = sessiondto.PauseOutput{
			SessionID:    updated.ID,
			PausedAt:     open.Start,
			WorkedSoFar:  status.Working,
			BreakMinutes: i.settings.DefaultBreakMinutes,
		}
		return nil
	})
	return out, err
}

func (i *Interactor) Resume(ctx context.Context) (sessiondto.ResumeOutput, error) {
	var out sessiondto.ResumeOutput
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		active, err := i.activeStore.LoadActive(ctx)
		if err != nil {
			return err
		}
		updated, closed, err := i.svc.Resume(ctx, active)
		if err != nil {
			return err
		}
		if err := i.activeStore.SaveActive(ctx, updated); err != nil {
			return err
		}
		out = sessiondto.ResumeOutput{SessionID: updated.ID, ResumedAt: closed.Finish, PausedFor: closed.Duration(closed.Finish)}
		return nil
	})
	return out, err
}

func (i *Interactor) Finish(ctx context.Context, input sessiondto.FinishInput) (sessiondto.FinishOutput, error) {
	var out sessiondto.FinishOutput
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		active, err := i.activeStore.LoadActive(ctx)
		if err != nil {
			return err
		}
		done, err := i.svc.Finish(ctx, active)
		if err != nil {
			return err
		}
		out = sessiondto.FinishOutput{
			SessionID:         done.SessionID,
			StartedAt:         done.StartedAt,
			FinishedAt:        done.FinishedAt,
			Net:               done.Net,
			Paused:            done.Paused,
			Formatted:         domain.FormatDuration(done.Net),
			MinSessionSeconds: i.settings.MinSessionSeconds,
		}
		if done.NetSeconds() < float64(i.settings.MinSessionSeconds) {
			i.logger.Info("session discarded below threshold", "session", done.SessionID, "net_seconds", done.NetSeconds(), "min_seconds", i.settings.MinSessionSeconds)
			return i.activeStore.ClearActive(ctx)
		}

		description := sanitize.Description(input.Description)
		flower, err := i.flowers.Assign(ctx, flowerdto.AssignInput{NetSeconds: done.NetSeconds()})
		if err != nil {
			return err
		}
		appended, err := i.garden.Append(ctx, gardendto.SessionInput{
			StartTime:       done.StartedAt,
			EndTime:         done.FinishedAt,
			DurationSeconds: done.NetSeconds(),
			Description:     description,
			Flower:          flower.Art,
		})
		if err != nil {
			return err
		}
		if err := i.activeStore.ClearActive(ctx); err != nil {
			return err
		}
		out.Saved = true
		out.Description = description
		out.FlowerName = flower.Name
		out.FlowerArt = flower.Art
		out.TotalSessions = appended.TotalSessions

		if i.notes != nil {
			path, err := i.notes.AppendEntry(ctx, domain.FormatLogEntry(done, description))
			if err != nil {
				i.logger.Warn("append note entry failed", "error", err)
				out.NoteError = err.Error()
			}
			out.NotePath = path
		}
		return nil
	})
	return out, err
}

func (i *Interactor) Status(ctx context.Context) (sessiondto.StatusOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.StatusOutput{}, err
	}
	status, err := i.svc.Status(ctx, active)
	if err != nil {
		return sessiondto.StatusOutput{}, err
	}
	out := sessiondto.StatusOutput{
		SessionID: status.SessionID,
		StartedAt: status.StartedAt,
		Elapsed:   status.Elapsed,
		Working:   status.Working,
		Paused:    status.Paused,
		IsPaused:  status.IsPaused,
	}
	if i.flowers != nil {
		flower, err := i.flowers.Assign(ctx, flowerdto.AssignInput{NetSeconds: status.Working.Seconds()})
		if err == nil {
			out.FlowerArt = flower.Art
		}
	}
	return out, nil
}
