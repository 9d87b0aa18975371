package in

import (
	"context"
	"io"

	"botanist/internal/modules/garden/dto"
)

type Usecase interface {
	Append(ctx context.Context, input dto.SessionInput) (dto.AppendOutput, error)
	Garden(ctx context.Context) (dto.GardenOutput, error)
	Export(ctx context.Context, w io.Writer) (dto.ExportOutput, error)
	Backups(ctx context.Context) ([]dto.BackupOutput, error)
	Verify(ctx context.Context) (dto.VerifyOutput, error)
}
