package service

import (
	"math/rand"
	"time"

	"botanist/internal/modules/flower/domain"
)

type FlowerService struct {
	thresholds domain.Thresholds
	pick       func(n int) int
}

// NewFlowerService takes the upper bound of each tier in minutes; a nil pick
// uses math/rand.
func NewFlowerService(seedlingMinutes, budMinutes, bloomMinutes, queenMinutes int, pick func(n int) int) *FlowerService {
	if pick == nil {
		pick = rand.Intn
	}
	return &FlowerService{
		thresholds: domain.Thresholds{
			Seedling: time.Duration(seedlingMinutes) * time.Minute,
			Bud:      time.Duration(budMinutes) * time.Minute,
			Bloom:    time.Duration(bloomMinutes) * time.Minute,
			Queen:    time.Duration(queenMinutes) * time.Minute,
		},
		pick: pick,
	}
}

func (s *FlowerService) Assign(netSeconds float64) domain.Flower {
	return domain.Assign(time.Duration(netSeconds*float64(time.Second)), s.thresholds, s.pick)
}

func (s *FlowerService) Thresholds() domain.Thresholds {
	return s.thresholds
}
