package service

import (
	"context"
	"fmt"
	"time"

	"teslamate-chat/internal/domain"
	"teslamate-chat/internal/repo"
)

// ChargingService implements business logic for charging aggregates.
type ChargingService struct {
	repo repo.ChargingRepo
	now  func() time.Time
}

// NewChargingService constructs a ChargingService backed by the provided repo.
func NewChargingService(r repo.ChargingRepo) *ChargingService {
	return &ChargingService{repo: r, now: time.Now}
}

// Stats aggregates charging sessions over the lookback window in days,
// clamped to the shared bounds. A window with no sessions yields zeros.
func (s *ChargingService) Stats(ctx context.Context, carID *int, days *int) (domain.ChargingStats, error) {
	window := domain.ClampLookbackDays(days)
	since := s.now().AddDate(0, 0, -window)

	agg, err := s.repo.StatsSince(ctx, carID, since)
	if err != nil {
		return domain.ChargingStats{}, fmt.Errorf("service.ChargingService.Stats: %w", err)
	}

	return domain.ChargingStats{
		PeriodDays:       window,
		Sessions:         agg.Sessions,
		TotalEnergyKwh:   round2(agg.TotalEnergyKwh),
		AvgEnergyKwh:     round2(agg.AvgEnergyKwh),
		TotalChargingHrs: round2(float64(agg.TotalMinutes) / 60),
		TotalCost:        round2(agg.TotalCost),
	}, nil
}
