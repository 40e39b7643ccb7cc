package service

import (
	"context"
	"fmt"
	"time"

	"teslamate-chat/internal/domain"
	"teslamate-chat/internal/repo"
)

// idealRangeBasisKm is the ideal-range figure a full battery corresponds to.
// Together with the configured pack capacity it scales range consumption
// into energy. Inherited constant; the estimate is approximate by nature.
const idealRangeBasisKm = 400.0

// EfficiencyService derives an energy-per-distance estimate from the
// ideal-range deltas TeslaMate records per drive.
type EfficiencyService struct {
	repo               repo.DriveRepo
	batteryCapacityKwh float64
	now                func() time.Time
}

// NewEfficiencyService constructs an EfficiencyService.
// batteryCapacityKwh comes from configuration (default 75).
func NewEfficiencyService(r repo.DriveRepo, batteryCapacityKwh float64) *EfficiencyService {
	return &EfficiencyService{repo: r, batteryCapacityKwh: batteryCapacityKwh, now: time.Now}
}

// Summary estimates average consumption over the lookback window in days.
// A window with no usable drives yields a zero summary, not an error.
func (s *EfficiencyService) Summary(ctx context.Context, carID *int, days *int) (domain.EfficiencySummary, error) {
	window := domain.ClampLookbackDays(days)
	since := s.now().AddDate(0, 0, -window)

	sample, err := s.repo.EfficiencySample(ctx, carID, since)
	if err != nil {
		return domain.EfficiencySummary{}, fmt.Errorf("service.EfficiencyService.Summary: %w", err)
	}

	summary := domain.EfficiencySummary{
		PeriodDays:      window,
		TotalDistanceKm: round2(sample.TotalKm),
		TripCount:       sample.TripCount,
	}
	if sample.TotalKm <= 0 || sample.RangeUsedKm <= 0 {
		return summary, nil
	}

	kwhPerKm := (sample.RangeUsedKm / sample.TotalKm) * (s.batteryCapacityKwh / idealRangeBasisKm)
	summary.AvgWhPerKm = round2(kwhPerKm * 1000)
	summary.AvgKwhPer100Km = round2(kwhPerKm * 100)
	return summary, nil
}
