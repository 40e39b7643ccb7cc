package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"teslamate-chat/internal/domain"
)

// BatteryRepo reads the latest battery snapshot from the positions table.
type BatteryRepo interface {
	// Latest returns the most recent battery reading, optionally filtered to
	// one car. Returns domain.ErrNotFound when no position has been recorded.
	Latest(ctx context.Context, carID *int) (domain.BatteryStatus, error)
}

// pgBatteryRepo is the Postgres implementation of BatteryRepo.
type pgBatteryRepo struct {
	db db
}

// NewBatteryRepo constructs a BatteryRepo backed by the provided db connection.
func NewBatteryRepo(db db) BatteryRepo {
	return &pgBatteryRepo{db: db}
}

// Latest returns the newest positions row joined with its car.
func (r *pgBatteryRepo) Latest(ctx context.Context, carID *int) (domain.BatteryStatus, error) {
	const q = `
		SELECT p.battery_level::int, p.usable_battery_level::int,
		       p.rated_battery_range_km::float8, p.ideal_battery_range_km::float8,
		       p.est_battery_range_km::float8,
		       COALESCE(p.battery_heater, false), p.date,
		       COALESCE(c.name, ''), COALESCE(c.model, '')
		FROM positions p
		JOIN cars c ON c.id = p.car_id
		WHERE (@car_id::int IS NULL OR p.car_id = @car_id)
		ORDER BY p.date DESC
		LIMIT 1`

	var (
		b          domain.BatteryStatus
		level      pgtype.Int4
		usable     pgtype.Int4
		ratedKm    pgtype.Float8
		idealKm    pgtype.Float8
		estKm      pgtype.Float8
		recordedAt pgtype.Timestamptz
	)

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"car_id": carID})
	err := row.Scan(&level, &usable, &ratedKm, &idealKm, &estKm,
		&b.BatteryHeaterOn, &recordedAt, &b.CarName, &b.CarModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BatteryStatus{}, fmt.Errorf("repo.BatteryRepo.Latest: %w", domain.ErrNotFound)
		}
		return domain.BatteryStatus{}, fmt.Errorf("repo.BatteryRepo.Latest: %w", err)
	}

	if level.Valid {
		v := int(level.Int32)
		b.BatteryLevel = &v
	}
	if usable.Valid {
		v := int(usable.Int32)
		b.UsableBatteryLevel = &v
	}
	if ratedKm.Valid {
		v := ratedKm.Float64
		b.RatedRangeKm = &v
	}
	if idealKm.Valid {
		v := idealKm.Float64
		b.IdealRangeKm = &v
	}
	if estKm.Valid {
		v := estKm.Float64
		b.EstimatedRangeKm = &v
	}
	if recordedAt.Valid {
		v := recordedAt.Time
		b.LastUpdated = &v
	}

	return b, nil
}
