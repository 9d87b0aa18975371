package in

import (
	"context"
	"io"

	gardendto "botanist/internal/modules/garden/dto"
	gardenin "botanist/internal/modules/garden/port/in"
)

type CLIHandler struct {
	usecase gardenin.Usecase
}

func NewCLIHandler(usecase gardenin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Garden(ctx context.Context) (gardendto.GardenOutput, error) {
	return h.usecase.Garden(ctx)
}

func (h CLIHandler) Export(ctx context.Context, w io.Writer) (gardendto.ExportOutput, error) {
	return h.usecase.Export(ctx, w)
}

func (h CLIHandler) Backups(ctx context.Context) ([]gardendto.BackupOutput, error) {
	return h.usecase.Backups(ctx)
}

func (h CLIHandler) Verify(ctx context.Context) (gardendto.VerifyOutput, error) {
	return h.usecase.Verify(ctx)
}
