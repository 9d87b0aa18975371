package in

import (
	"context"

	"botanist/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context) (dto.StartOutput, error)
	Pause(ctx context.Context) (dto.PauseOutput, error)
	Resume(ctx context.Context) (dto.ResumeOutput, error)
	Finish(ctx context.Context, input dto.FinishInput) (dto.FinishOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
}
