package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teslamate-chat/internal/domain"
	"teslamate-chat/internal/repo"
)

func TestDriveRepo_TotalDistance(t *testing.T) {
	tx := beginTx(t)
	ctx := context.Background()
	seedCar(t, tx, 1, "Bulldog")
	seedCar(t, tx, 2, "Spare")

	now := time.Now().UTC()
	seedDrive(t, tx, driveRow{carID: 1, start: now.Add(-2 * time.Hour), distance: ptr(12.5)})
	seedDrive(t, tx, driveRow{carID: 1, start: now.Add(-1 * time.Hour), distance: ptr(7.5)})
	seedDrive(t, tx, driveRow{carID: 2, start: now, distance: ptr(100.0)})

	r := repo.NewDriveRepo(tx)

	km, trips, err := r.TotalDistance(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 120.0, km)
	assert.Equal(t, 3, trips)

	km, trips, err = r.TotalDistance(ctx, ptr(1))
	require.NoError(t, err)
	assert.Equal(t, 20.0, km)
	assert.Equal(t, 2, trips)
}

func TestDriveRepo_Recent(t *testing.T) {
	tx := beginTx(t)
	ctx := context.Background()
	seedCar(t, tx, 1, "Bulldog")
	home := seedAddress(t, tx, "Home")
	office := seedAddress(t, tx, "Office")

	base := time.Date(2026, 8, 10, 6, 0, 0, 0, time.UTC)
	end := base.Add(30 * time.Minute)
	seedDrive(t, tx, driveRow{
		carID: 1, start: base, end: &end, distance: ptr(12.3), durationMin: ptr(30),
		startAddressID: &home, endAddressID: &office,
	})
	// Newer drive with no address rows and no distance column: the label
	// falls back to Unknown, the distance to the odometer delta.
	seedDrive(t, tx, driveRow{
		carID: 1, start: base.Add(3 * time.Hour),
		startKm: ptr(1000.0), endKm: ptr(1008.5),
	})

	drives, err := repo.NewDriveRepo(tx).Recent(ctx, nil, 10)
	require.NoError(t, err)
	require.Len(t, drives, 2)

	newest := drives[0]
	assert.Equal(t, domain.UnknownLocation, newest.StartLocation)
	assert.Equal(t, domain.UnknownLocation, newest.EndLocation)
	assert.Equal(t, 8.5, newest.DistanceKm)
	assert.Nil(t, newest.EndDate)

	older := drives[1]
	assert.Equal(t, "Home", older.StartLocation)
	assert.Equal(t, "Office", older.EndLocation)
	assert.Equal(t, 12.3, older.DistanceKm)
	assert.Equal(t, 30, older.DurationMin)
	require.NotNil(t, older.EndDate)
}

func TestDriveRepo_Recent_RespectsLimit(t *testing.T) {
	tx := beginTx(t)
	ctx := context.Background()
	seedCar(t, tx, 1, "Bulldog")

	base := time.Date(2026, 8, 10, 6, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedDrive(t, tx, driveRow{carID: 1, start: base.Add(time.Duration(i) * time.Hour), distance: ptr(1.0)})
	}

	drives, err := repo.NewDriveRepo(tx).Recent(ctx, nil, 3)
	require.NoError(t, err)
	require.Len(t, drives, 3)
	// Most recent first.
	assert.True(t, drives[0].StartDate.After(drives[1].StartDate))
	assert.True(t, drives[1].StartDate.After(drives[2].StartDate))
}

func TestDriveRepo_ByDateRange_BoundsAndOrder(t *testing.T) {
	tx := beginTx(t)
	ctx := context.Background()
	seedCar(t, tx, 1, "Bulldog")

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	toExclusive := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)

	seedDrive(t, tx, driveRow{carID: 1, start: from.Add(-time.Second), distance: ptr(1.0)}) // before
	inRange1 := seedDrive(t, tx, driveRow{carID: 1, start: from, distance: ptr(2.0)})       // boundary, included
	inRange2 := seedDrive(t, tx, driveRow{carID: 1, start: toExclusive.Add(-time.Second), distance: ptr(3.0)})
	seedDrive(t, tx, driveRow{carID: 1, start: toExclusive, distance: ptr(4.0)}) // boundary, excluded

	drives, err := repo.NewDriveRepo(tx).ByDateRange(ctx, nil, from, toExclusive)
	require.NoError(t, err)
	require.Len(t, drives, 2)
	// Ascending by start.
	assert.Equal(t, inRange1, drives[0].ID)
	assert.Equal(t, inRange2, drives[1].ID)
}

func TestDriveRepo_ByDateRange_FiltersByCar(t *testing.T) {
	tx := beginTx(t)
	ctx := context.Background()
	seedCar(t, tx, 1, "Bulldog")
	seedCar(t, tx, 2, "Spare")

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	seedDrive(t, tx, driveRow{carID: 1, start: from.Add(time.Hour), distance: ptr(2.0)})
	seedDrive(t, tx, driveRow{carID: 2, start: from.Add(2 * time.Hour), distance: ptr(3.0)})

	drives, err := repo.NewDriveRepo(tx).ByDateRange(ctx, ptr(2), from, from.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, drives, 1)
	assert.EqualValues(t, 2, drives[0].CarID)
}

func TestDriveRepo_EfficiencySample(t *testing.T) {
	tx := beginTx(t)
	ctx := context.Background()
	seedCar(t, tx, 1, "Bulldog")

	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	seedDrive(t, tx, driveRow{
		carID: 1, start: since.Add(time.Hour), distance: ptr(100.0),
		startRangeKm: ptr(400.0), endRangeKm: ptr(350.0),
	})
	seedDrive(t, tx, driveRow{
		carID: 1, start: since.Add(2 * time.Hour), distance: ptr(100.0),
		startRangeKm: ptr(350.0), endRangeKm: ptr(300.0),
	})
	// Zero-distance and pre-window drives are excluded from the sample.
	seedDrive(t, tx, driveRow{carID: 1, start: since.Add(3 * time.Hour), distance: ptr(0.0)})
	seedDrive(t, tx, driveRow{
		carID: 1, start: since.Add(-time.Hour), distance: ptr(500.0),
		startRangeKm: ptr(400.0), endRangeKm: ptr(100.0),
	})

	sample, err := repo.NewDriveRepo(tx).EfficiencySample(ctx, nil, since)
	require.NoError(t, err)
	assert.Equal(t, 200.0, sample.TotalKm)
	assert.Equal(t, 100.0, sample.RangeUsedKm)
	assert.Equal(t, 2, sample.TripCount)
}
