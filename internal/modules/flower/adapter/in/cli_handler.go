package in

import (
	"context"

	flowerdto "botanist/internal/modules/flower/dto"
	flowerin "botanist/internal/modules/flower/port/in"
)

type CLIHandler struct {
	usecase flowerin.Usecase
}

func NewCLIHandler(usecase flowerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Samples(ctx context.Context) ([]flowerdto.SampleOutput, error) {
	return h.usecase.Samples(ctx)
}

func (h CLIHandler) Assign(ctx context.Context, netSeconds float64) (flowerdto.FlowerOutput, error) {
	return h.usecase.Assign(ctx, flowerdto.AssignInput{NetSeconds: netSeconds})
}
