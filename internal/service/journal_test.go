package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teslamate-chat/internal/domain"
	"teslamate-chat/internal/repo"
	"teslamate-chat/internal/service"
)

// mockDriveRepo is a hand-written test double for repo.DriveRepo.
// Each method is a function field; set only the ones your test needs.
type mockDriveRepo struct {
	totalDistance    func(ctx context.Context, carID *int) (float64, int, error)
	recent           func(ctx context.Context, carID *int, limit int) ([]domain.Drive, error)
	byDateRange      func(ctx context.Context, carID *int, from, to time.Time) ([]domain.Drive, error)
	efficiencySample func(ctx context.Context, carID *int, since time.Time) (domain.EfficiencySample, error)
}

func (m *mockDriveRepo) TotalDistance(ctx context.Context, carID *int) (float64, int, error) {
	return m.totalDistance(ctx, carID)
}
func (m *mockDriveRepo) Recent(ctx context.Context, carID *int, limit int) ([]domain.Drive, error) {
	return m.recent(ctx, carID, limit)
}
func (m *mockDriveRepo) ByDateRange(ctx context.Context, carID *int, from, to time.Time) ([]domain.Drive, error) {
	return m.byDateRange(ctx, carID, from, to)
}
func (m *mockDriveRepo) EfficiencySample(ctx context.Context, carID *int, since time.Time) (domain.EfficiencySample, error) {
	return m.efficiencySample(ctx, carID, since)
}

// compile-time check: mockDriveRepo must satisfy repo.DriveRepo.
var _ repo.DriveRepo = (*mockDriveRepo)(nil)

// ---- helpers ---------------------------------------------------------------

// driveAt returns a drive starting at the given instant with the given
// distance, ending 30 minutes later.
func driveAt(id int, start time.Time, km float64, endLocation string) domain.Drive {
	end := start.Add(30 * time.Minute)
	return domain.Drive{
		ID:            id,
		CarID:         1,
		StartDate:     start,
		EndDate:       &end,
		DistanceKm:    km,
		DurationMin:   30,
		StartLocation: "Home",
		EndLocation:   endLocation,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ---- BuildJournalReport ----------------------------------------------------

func TestBuildJournalReport_SingleDayExample(t *testing.T) {
	// Three drives on 2026-01-05 with padding 2 km/day at 25 kr/mil:
	// 12.3 + 4.0 + 8.7 + 2 = 27.0 km = 2.70 mil → 67.50 kr.
	base := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	drives := []domain.Drive{
		driveAt(1, base, 12.3, "Office"),
		driveAt(2, base.Add(4*time.Hour), 4.0, "Store"),
		driveAt(3, base.Add(8*time.Hour), 8.7, "Home"),
	}

	report := service.BuildJournalReport(drives, service.JournalOptions{
		Start:      day(2026, 1, 5),
		End:        day(2026, 1, 5),
		PaddingKm:  2,
		RatePerMil: 25,
	})

	require.Len(t, report.Entries, 1)
	entry := report.Entries[0]
	assert.Equal(t, "2026-01-05", entry.Date)
	assert.Equal(t, "Måndag", entry.Weekday)
	assert.Equal(t, 25.0, entry.DrivenKm)
	assert.Equal(t, 27.0, entry.JournalKm)
	assert.Equal(t, 2.7, entry.Mil)
	assert.Equal(t, 67.5, entry.ReimbursementSek)
	assert.Equal(t, 3, entry.NumTrips)
	assert.Equal(t, 67.5, report.Summary.TotalReimbursementSek)
}

func TestBuildJournalReport_TwoDaysNoPadding(t *testing.T) {
	drives := []domain.Drive{
		driveAt(1, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), 10, "Office"),
		driveAt(2, time.Date(2026, 1, 6, 9, 0, 0, 0, time.UTC), 10, "Office"),
	}

	report := service.BuildJournalReport(drives, service.JournalOptions{
		Start:      day(2026, 1, 5),
		End:        day(2026, 1, 6),
		PaddingKm:  0,
		RatePerMil: 25,
	})

	require.Len(t, report.Entries, 2)
	assert.Equal(t, "2026-01-05", report.Entries[0].Date)
	assert.Equal(t, "2026-01-06", report.Entries[1].Date)
	assert.Equal(t, 20.0, report.Summary.TotalKm)
	assert.Equal(t, 2.0, report.Summary.TotalMil)
}

func TestBuildJournalReport_EmptyInput(t *testing.T) {
	report := service.BuildJournalReport(nil, service.JournalOptions{
		Start:      day(2026, 1, 5),
		End:        day(2026, 1, 12),
		PaddingKm:  3,
		RatePerMil: 25,
	})

	assert.NotNil(t, report.Entries)
	assert.Empty(t, report.Entries)
	assert.Equal(t, 0, report.Summary.TotalDays)
	assert.Equal(t, 0.0, report.Summary.TotalKm)
	assert.Equal(t, 0.0, report.Summary.TotalReimbursementSek)
}

func TestBuildJournalReport_PartitionIsDisjointCover(t *testing.T) {
	// Ten drives spread over four days: every drive must land in exactly
	// one entry, and the entry date must match the drive's start date.
	var drives []domain.Drive
	for i := 0; i < 10; i++ {
		start := time.Date(2026, 2, 1+i%4, 6+i, 0, 0, 0, time.UTC)
		drives = append(drives, driveAt(i+1, start, float64(i+1), "Office"))
	}

	report := service.BuildJournalReport(drives, service.JournalOptions{
		Start: day(2026, 2, 1), End: day(2026, 2, 4), RatePerMil: 25,
	})

	seen := make(map[int]string)
	for _, entry := range report.Entries {
		for _, d := range entry.Drives {
			_, dup := seen[d.ID]
			require.False(t, dup, "drive %d appears in more than one day", d.ID)
			seen[d.ID] = entry.Date
			assert.Equal(t, entry.Date, d.StartDate.UTC().Format("2006-01-02"))
		}
	}
	assert.Len(t, seen, len(drives))
}

func TestBuildJournalReport_TotalsIncludePaddingPerActiveDay(t *testing.T) {
	// Σ day totals = Σ drive distances + padding × days-with-drives.
	drives := []domain.Drive{
		driveAt(1, time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC), 12.5, "A"),
		driveAt(2, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), 12.5, "B"),
		driveAt(3, time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC), 30.0, "C"),
	}

	report := service.BuildJournalReport(drives, service.JournalOptions{
		Start: day(2026, 3, 2), End: day(2026, 3, 7), PaddingKm: 2.5, RatePerMil: 25,
	})

	require.Len(t, report.Entries, 2)
	assert.Equal(t, 55.0+2*2.5, report.Summary.TotalKm)

	var sumOfDays float64
	for _, e := range report.Entries {
		sumOfDays += e.JournalKm
	}
	assert.InDelta(t, report.Summary.TotalKm, sumOfDays, 0.01)
}

func TestBuildJournalReport_ReimbursementIsLinearInRate(t *testing.T) {
	drives := []domain.Drive{
		driveAt(1, time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC), 37.0, "A"),
	}

	for _, rate := range []float64{0, 18.5, 25, 90} {
		report := service.BuildJournalReport(drives, service.JournalOptions{
			Start: day(2026, 4, 1), End: day(2026, 4, 1), RatePerMil: rate,
		})
		assert.InDelta(t, 3.7*rate, report.Summary.TotalReimbursementSek, 0.01, "rate %v", rate)
	}
}

func TestBuildJournalReport_CorruptDriveExcludedButFlagged(t *testing.T) {
	good := driveAt(1, time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC), 10, "Office")
	bad := driveAt(2, time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC), 99, "Nowhere")
	before := bad.StartDate.Add(-time.Hour)
	bad.EndDate = &before // end precedes start: corrupt

	report := service.BuildJournalReport([]domain.Drive{good, bad}, service.JournalOptions{
		Start: day(2026, 1, 5), End: day(2026, 1, 5), RatePerMil: 25,
	})

	require.Len(t, report.Entries, 1)
	assert.Equal(t, 10.0, report.Entries[0].DrivenKm)
	require.Len(t, report.Anomalies, 1)
	assert.Equal(t, 2, report.Anomalies[0].DriveID)
}

func TestBuildJournalReport_MidnightBoundaryUsesStartDay(t *testing.T) {
	// A drive crossing midnight belongs to the day it started.
	start := time.Date(2026, 1, 5, 23, 30, 0, 0, time.UTC)
	end := start.Add(time.Hour) // ends 00:30 on the 6th
	d := driveAt(1, start, 20, "Office")
	d.EndDate = &end

	report := service.BuildJournalReport([]domain.Drive{d}, service.JournalOptions{
		Start: day(2026, 1, 5), End: day(2026, 1, 6), RatePerMil: 25,
	})

	require.Len(t, report.Entries, 1)
	assert.Equal(t, "2026-01-05", report.Entries[0].Date)
}

func TestBuildJournalReport_PartitionsInVehicleTimeZone(t *testing.T) {
	// 23:30 UTC on Jan 5 is already Jan 6 in Stockholm (UTC+1 in winter).
	stockholm, err := time.LoadLocation("Europe/Stockholm")
	require.NoError(t, err)

	d := driveAt(1, time.Date(2026, 1, 5, 23, 30, 0, 0, time.UTC), 15, "Office")

	report := service.BuildJournalReport([]domain.Drive{d}, service.JournalOptions{
		Start: day(2026, 1, 5), End: day(2026, 1, 6), Location: stockholm, RatePerMil: 25,
	})

	require.Len(t, report.Entries, 1)
	assert.Equal(t, "2026-01-06", report.Entries[0].Date)
}

func TestBuildJournalReport_DrivesOrderedWithinDay(t *testing.T) {
	base := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	drives := []domain.Drive{
		driveAt(3, base.Add(18*time.Hour), 5, "C"),
		driveAt(1, base.Add(8*time.Hour), 5, "A"),
		driveAt(2, base.Add(12*time.Hour), 5, "B"),
	}

	report := service.BuildJournalReport(drives, service.JournalOptions{
		Start: day(2026, 1, 5), End: day(2026, 1, 5), RatePerMil: 25,
	})

	require.Len(t, report.Entries, 1)
	got := report.Entries[0].Drives
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].ID, got[1].ID, got[2].ID})
}

// ---- destination inference -------------------------------------------------

func TestBuildJournalReport_DestinationIsLongestDrivesEnd(t *testing.T) {
	base := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	drives := []domain.Drive{
		driveAt(1, base, 5, "Store"),
		driveAt(2, base.Add(2*time.Hour), 42, "Client HQ"),
		driveAt(3, base.Add(6*time.Hour), 40, "Home"),
	}

	report := service.BuildJournalReport(drives, service.JournalOptions{
		Start: day(2026, 1, 5), End: day(2026, 1, 5), RatePerMil: 25,
	})

	require.Len(t, report.Entries, 1)
	assert.Equal(t, "Client HQ", report.Entries[0].Destination)
}

func TestBuildJournalReport_DestinationFallsBackWhenUnlabeled(t *testing.T) {
	base := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	drives := []domain.Drive{
		driveAt(1, base, 5, domain.UnknownLocation),
		driveAt(2, base.Add(2*time.Hour), 42, domain.UnknownLocation),
	}

	report := service.BuildJournalReport(drives, service.JournalOptions{
		Start: day(2026, 1, 5), End: day(2026, 1, 5), RatePerMil: 25,
	})

	require.Len(t, report.Entries, 1)
	assert.Equal(t, domain.MultipleStops, report.Entries[0].Destination)
}

func TestBuildJournalReport_DestinationFallsBackOnTooManyStops(t *testing.T) {
	base := time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC)
	labels := []string{"A", "B", "C", "D"} // four distinct ends: over the threshold
	var drives []domain.Drive
	for i, l := range labels {
		drives = append(drives, driveAt(i+1, base.Add(time.Duration(i)*2*time.Hour), 10, l))
	}

	report := service.BuildJournalReport(drives, service.JournalOptions{
		Start: day(2026, 1, 5), End: day(2026, 1, 5), RatePerMil: 25,
	})

	require.Len(t, report.Entries, 1)
	assert.Equal(t, domain.MultipleStops, report.Entries[0].Destination)
}

// ---- JournalService.Report -------------------------------------------------

func TestJournalService_Report_InvertedRange(t *testing.T) {
	svc := service.NewJournalService(&mockDriveRepo{}, time.UTC, 3, 25)

	_, err := svc.Report(context.Background(), nil, day(2026, 1, 10), day(2026, 1, 5), nil, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestJournalService_Report_NegativeRateRejected(t *testing.T) {
	svc := service.NewJournalService(&mockDriveRepo{}, time.UTC, 3, 25)

	bad := -1.0
	_, err := svc.Report(context.Background(), nil, day(2026, 1, 5), day(2026, 1, 10), &bad, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestJournalService_Report_UsesOverrides(t *testing.T) {
	r := &mockDriveRepo{
		byDateRange: func(_ context.Context, _ *int, from, to time.Time) ([]domain.Drive, error) {
			// The repo is asked for [from, to+1d) so the end day is included.
			assert.Equal(t, day(2026, 1, 5), from)
			assert.Equal(t, day(2026, 1, 7), to)
			return []domain.Drive{driveAt(1, day(2026, 1, 5).Add(9*time.Hour), 18, "Office")}, nil
		},
	}
	svc := service.NewJournalService(r, time.UTC, 3, 25)

	rate, padding := 18.5, 2.0
	report, err := svc.Report(context.Background(), nil, day(2026, 1, 5), day(2026, 1, 6), &rate, &padding)

	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, 20.0, report.Entries[0].JournalKm)
	assert.Equal(t, 18.5, report.Summary.RatePerMil)
	assert.Equal(t, 2.0, report.Summary.PaddingKmPerDay)
	assert.InDelta(t, 2.0*18.5, report.Summary.TotalReimbursementSek, 0.01)
}

func TestJournalService_Report_EmptyRangeIsZeroReport(t *testing.T) {
	r := &mockDriveRepo{
		byDateRange: func(_ context.Context, _ *int, _, _ time.Time) ([]domain.Drive, error) {
			return nil, nil
		},
	}
	svc := service.NewJournalService(r, time.UTC, 3, 25)

	report, err := svc.Report(context.Background(), nil, day(2026, 1, 5), day(2026, 1, 10), nil, nil)

	require.NoError(t, err)
	assert.Empty(t, report.Entries)
	assert.Equal(t, "2026-01-05", report.Period.Start)
	assert.Equal(t, "2026-01-10", report.Period.End)
}
