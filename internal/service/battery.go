package service

import (
	"context"
	"fmt"

	"teslamate-chat/internal/domain"
	"teslamate-chat/internal/repo"
)

// BatteryService implements business logic for the battery snapshot.
type BatteryService struct {
	repo repo.BatteryRepo
}

// NewBatteryService constructs a BatteryService backed by the provided repo.
func NewBatteryService(r repo.BatteryRepo) *BatteryService {
	return &BatteryService{repo: r}
}

// Latest returns the most recent battery reading for the car.
// Returns domain.ErrNotFound when TeslaMate has not recorded any position.
func (s *BatteryService) Latest(ctx context.Context, carID *int) (domain.BatteryStatus, error) {
	status, err := s.repo.Latest(ctx, carID)
	if err != nil {
		return domain.BatteryStatus{}, fmt.Errorf("service.BatteryService.Latest: %w", err)
	}
	return status, nil
}
