package in

import (
	"context"

	"botanist/internal/modules/flower/dto"
)

type Usecase interface {
	Assign(ctx context.Context, input dto.AssignInput) (dto.FlowerOutput, error)
	Samples(ctx context.Context) ([]dto.SampleOutput, error)
}
