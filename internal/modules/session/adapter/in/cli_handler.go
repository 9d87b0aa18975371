package in

import (
	"context"

	sessiondto "botanist/internal/modules/session/dto"
	sessionin "botanist/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context) (sessiondto.StartOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Pause(ctx context.Context) (sessiondto.PauseOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (sessiondto.ResumeOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Finish(ctx context.Context, description string) (sessiondto.FinishOutput, error) {
	return h.usecase.Finish(ctx, sessiondto.FinishInput{Description: description})
}

func (h CLIHandler) Status(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}
