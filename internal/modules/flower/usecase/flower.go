package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"botanist/internal/modules/flower/domain"
	flowerdto "botanist/internal/modules/flower/dto"
	flowerin "botanist/internal/modules/flower/port/in"
	"botanist/internal/modules/flower/service"
	apperrors "botanist/internal/platform/errors"
)

type Interactor struct {
	svc *service.FlowerService
}

func NewInteractor(svc *service.FlowerService) flowerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Assign(_ context.Context, input flowerdto.AssignInput) (flowerdto.FlowerOutput, error) {
	if input.NetSeconds < 0 || math.IsNaN(input.NetSeconds) {
		return flowerdto.FlowerOutput{}, fmt.Errorf("%w: net seconds must be non-negative", apperrors.ErrInvalidInput)
	}
	return toOutput(i.svc.Assign(input.NetSeconds)), nil
}

// Samples returns one flower from the middle of every tier.
func (i *Interactor) Samples(_ context.Context) ([]flowerdto.SampleOutput, error) {
	th := i.svc.Thresholds()
	tiers := []struct {
		label string
		at    time.Duration
	}{
		{fmt.Sprintf("< %d min", minutes(th.Seedling)), th.Seedling / 2},
		{fmt.Sprintf("%d-%d min", minutes(th.Seedling), minutes(th.Bud)), (th.Seedling + th.Bud) / 2},
		{fmt.Sprintf("%d-%d min", minutes(th.Bud), minutes(th.Bloom)), (th.Bud + th.Bloom) / 2},
		{fmt.Sprintf("%d-%d min", minutes(th.Bloom), minutes(th.Queen)), (th.Bloom + th.Queen) / 2},
		{fmt.Sprintf("%d+ min", minutes(th.Queen)), th.Queen},
	}
	out := make([]flowerdto.SampleOutput, 0, len(tiers))
	for _, tier := range tiers {
		out = append(out, flowerdto.SampleOutput{Label: tier.label, Flower: toOutput(i.svc.Assign(tier.at.Seconds()))})
	}
	return out, nil
}

func minutes(d time.Duration) int {
	return int(d / time.Minute)
}

func toOutput(f domain.Flower) flowerdto.FlowerOutput {
	return flowerdto.FlowerOutput{Name: f.Name, Art: f.Art}
}
