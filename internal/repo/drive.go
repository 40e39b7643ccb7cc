package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"teslamate-chat/internal/domain"
)

// driveColumns is the shared projection for drive listings: the drives row
// joined with both address labels. Distance falls back to the odometer delta
// when TeslaMate has not populated the distance column; missing labels become
// the Unknown placeholder (bound as @unknown).
const driveColumns = `
	SELECT d.id, d.car_id, d.start_date, d.end_date,
	       COALESCE(d.distance, d.end_km - d.start_km, 0)::float8,
	       COALESCE(d.duration_min, 0),
	       COALESCE(a1.display_name, @unknown),
	       COALESCE(a2.display_name, @unknown),
	       d.start_km::float8, d.end_km::float8,
	       d.start_ideal_range_km::float8, d.end_ideal_range_km::float8
	FROM drives d
	LEFT JOIN addresses a1 ON a1.id = d.start_address_id
	LEFT JOIN addresses a2 ON a2.id = d.end_address_id`

// DriveRepo defines the read operations over the TeslaMate drives table.
type DriveRepo interface {
	// TotalDistance returns the lifetime distance sum in km and the trip
	// count, optionally filtered to one car. No drives is a valid zero result.
	TotalDistance(ctx context.Context, carID *int) (totalKm float64, trips int, err error)

	// Recent returns the latest drives ordered by start_date descending.
	Recent(ctx context.Context, carID *int, limit int) ([]domain.Drive, error)

	// ByDateRange returns drives with start_date in [from, toExclusive),
	// ordered by start_date ascending.
	ByDateRange(ctx context.Context, carID *int, from, toExclusive time.Time) ([]domain.Drive, error)

	// EfficiencySample aggregates distance and ideal-range consumption for
	// drives with positive distance since the given instant.
	EfficiencySample(ctx context.Context, carID *int, since time.Time) (domain.EfficiencySample, error)
}

// pgDriveRepo is the Postgres implementation of DriveRepo.
type pgDriveRepo struct {
	db db
}

// NewDriveRepo constructs a DriveRepo backed by the provided db connection.
func NewDriveRepo(db db) DriveRepo {
	return &pgDriveRepo{db: db}
}

// TotalDistance sums the distance column across all recorded drives.
func (r *pgDriveRepo) TotalDistance(ctx context.Context, carID *int) (float64, int, error) {
	const q = `
		SELECT COALESCE(SUM(distance), 0)::float8, COUNT(*)
		FROM drives
		WHERE (@car_id::int IS NULL OR car_id = @car_id)`

	var (
		totalKm float64
		trips   int
	)
	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"car_id": carID})
	if err := row.Scan(&totalKm, &trips); err != nil {
		return 0, 0, fmt.Errorf("repo.DriveRepo.TotalDistance: %w", err)
	}
	return totalKm, trips, nil
}

// Recent returns the latest drives, most recent first.
func (r *pgDriveRepo) Recent(ctx context.Context, carID *int, limit int) ([]domain.Drive, error) {
	q := driveColumns + `
	WHERE (@car_id::int IS NULL OR d.car_id = @car_id)
	ORDER BY d.start_date DESC
	LIMIT @limit`

	args := pgx.NamedArgs{
		"car_id":  carID,
		"limit":   limit,
		"unknown": domain.UnknownLocation,
	}
	drives, err := r.queryDrives(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.DriveRepo.Recent: %w", err)
	}
	return drives, nil
}

// ByDateRange returns drives starting within [from, toExclusive), oldest first.
func (r *pgDriveRepo) ByDateRange(ctx context.Context, carID *int, from, toExclusive time.Time) ([]domain.Drive, error) {
	q := driveColumns + `
	WHERE d.start_date >= @from AND d.start_date < @to
	  AND (@car_id::int IS NULL OR d.car_id = @car_id)
	ORDER BY d.start_date ASC`

	args := pgx.NamedArgs{
		"car_id":  carID,
		"from":    from,
		"to":      toExclusive,
		"unknown": domain.UnknownLocation,
	}
	drives, err := r.queryDrives(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.DriveRepo.ByDateRange: %w", err)
	}
	return drives, nil
}

// EfficiencySample aggregates drives with positive distance since the cutoff.
func (r *pgDriveRepo) EfficiencySample(ctx context.Context, carID *int, since time.Time) (domain.EfficiencySample, error) {
	const q = `
		SELECT COALESCE(SUM(distance), 0)::float8,
		       COALESCE(SUM(start_ideal_range_km - end_ideal_range_km), 0)::float8,
		       COUNT(*)
		FROM drives
		WHERE start_date >= @since AND distance > 0
		  AND (@car_id::int IS NULL OR car_id = @car_id)`

	var s domain.EfficiencySample
	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"since": since, "car_id": carID})
	if err := row.Scan(&s.TotalKm, &s.RangeUsedKm, &s.TripCount); err != nil {
		return domain.EfficiencySample{}, fmt.Errorf("repo.DriveRepo.EfficiencySample: %w", err)
	}
	return s, nil
}

// queryDrives runs a driveColumns query and scans all rows.
func (r *pgDriveRepo) queryDrives(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Drive, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drives []domain.Drive
	for rows.Next() {
		d, err := scanDrive(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		drives = append(drives, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return drives, nil
}

// scanDrive maps one driveColumns row into a domain.Drive, converting the
// nullable columns and deriving RangeUsedKm when both range readings exist.
func scanDrive(s scanner) (domain.Drive, error) {
	var (
		d          domain.Drive
		endDate    pgtype.Timestamptz
		startKm    pgtype.Float8
		endKm      pgtype.Float8
		startRange pgtype.Float8
		endRange   pgtype.Float8
	)

	err := s.Scan(&d.ID, &d.CarID, &d.StartDate, &endDate,
		&d.DistanceKm, &d.DurationMin,
		&d.StartLocation, &d.EndLocation,
		&startKm, &endKm, &startRange, &endRange)
	if err != nil {
		return domain.Drive{}, err
	}

	if endDate.Valid {
		ed := endDate.Time
		d.EndDate = &ed
	}
	if startKm.Valid {
		v := startKm.Float64
		d.StartKm = &v
	}
	if endKm.Valid {
		v := endKm.Float64
		d.EndKm = &v
	}
	if startRange.Valid {
		v := startRange.Float64
		d.StartIdealRangeKm = &v
	}
	if endRange.Valid {
		v := endRange.Float64
		d.EndIdealRangeKm = &v
	}
	if startRange.Valid && endRange.Valid {
		used := startRange.Float64 - endRange.Float64
		d.RangeUsedKm = &used
	}

	return d, nil
}
