package service

import (
	"context"
	"fmt"
	"time"

	"teslamate-chat/internal/domain"
	"teslamate-chat/internal/repo"
)

// kmPerMile converts kilometers to statute miles.
const kmPerMile = 1.60934

// DriveService implements business logic for drive listings and distance
// aggregates.
type DriveService struct {
	repo repo.DriveRepo
}

// NewDriveService constructs a DriveService backed by the provided DriveRepo.
func NewDriveService(r repo.DriveRepo) *DriveService {
	return &DriveService{repo: r}
}

// TotalDistance returns the lifetime driven distance in the requested unit
// ("km" or "mi") plus the recorded trip count.
// Returns domain.ErrValidation for an unknown unit.
func (s *DriveService) TotalDistance(ctx context.Context, carID *int, unit string) (domain.DistanceSummary, error) {
	if unit == "" {
		unit = "km"
	}
	if unit != "km" && unit != "mi" {
		return domain.DistanceSummary{}, fmt.Errorf("%w: unit must be km or mi, got %q", domain.ErrValidation, unit)
	}

	totalKm, trips, err := s.repo.TotalDistance(ctx, carID)
	if err != nil {
		return domain.DistanceSummary{}, fmt.Errorf("service.DriveService.TotalDistance: %w", err)
	}

	summary := domain.DistanceSummary{
		TotalDistance: round2(totalKm),
		Unit:          "kilometer",
		TotalTrips:    trips,
	}
	if unit == "mi" {
		summary.TotalDistance = round2(totalKm / kmPerMile)
		summary.Unit = "miles"
	}
	return summary, nil
}

// Recent returns the latest drives, clamping the requested limit to the
// shared row-limit bounds.
// Always returns a non-nil drive slice.
func (s *DriveService) Recent(ctx context.Context, carID *int, limit *int) (domain.RecentDrives, error) {
	drives, err := s.repo.Recent(ctx, carID, domain.ClampRowLimit(limit))
	if err != nil {
		return domain.RecentDrives{}, fmt.Errorf("service.DriveService.Recent: %w", err)
	}
	if drives == nil {
		drives = []domain.Drive{}
	}
	return domain.RecentDrives{Drives: drives, Count: len(drives)}, nil
}

// ByDateRange returns all drives starting within the inclusive calendar
// range [from, to] together with range totals.
// Returns domain.ErrValidation when to precedes from. An empty range is a
// valid zero-total result, not an error.
func (s *DriveService) ByDateRange(ctx context.Context, carID *int, from, to time.Time) (domain.DriveRange, error) {
	if to.Before(from) {
		return domain.DriveRange{}, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}

	drives, err := s.repo.ByDateRange(ctx, carID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return domain.DriveRange{}, fmt.Errorf("service.DriveService.ByDateRange: %w", err)
	}
	if drives == nil {
		drives = []domain.Drive{}
	}

	var (
		totalKm  float64
		totalMin int
	)
	for _, d := range drives {
		totalKm += d.DistanceKm
		totalMin += d.DurationMin
	}

	return domain.DriveRange{
		StartDate:        from.Format(dateLayout),
		EndDate:          to.Format(dateLayout),
		Drives:           drives,
		Count:            len(drives),
		TotalDistanceKm:  round2(totalKm),
		TotalDurationMin: totalMin,
	}, nil
}
