package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// ChargingAggregate is the raw aggregate over charging_processes rows.
// Minutes stay minutes here; the service converts to hours for presentation.
type ChargingAggregate struct {
	Sessions       int
	TotalEnergyKwh float64
	AvgEnergyKwh   float64
	TotalMinutes   int
	TotalCost      float64
}

// ChargingRepo reads aggregates from the charging_processes table.
type ChargingRepo interface {
	// StatsSince aggregates sessions with start_date >= since, optionally
	// filtered to one car. A window with no sessions is a zero aggregate.
	StatsSince(ctx context.Context, carID *int, since time.Time) (ChargingAggregate, error)
}

// pgChargingRepo is the Postgres implementation of ChargingRepo.
type pgChargingRepo struct {
	db db
}

// NewChargingRepo constructs a ChargingRepo backed by the provided db connection.
func NewChargingRepo(db db) ChargingRepo {
	return &pgChargingRepo{db: db}
}

// StatsSince aggregates charging sessions inside the lookback window.
func (r *pgChargingRepo) StatsSince(ctx context.Context, carID *int, since time.Time) (ChargingAggregate, error) {
	const q = `
		SELECT COUNT(*),
		       COALESCE(SUM(charge_energy_added), 0)::float8,
		       COALESCE(AVG(charge_energy_added), 0)::float8,
		       COALESCE(SUM(duration_min), 0)::int,
		       COALESCE(SUM(cost), 0)::float8
		FROM charging_processes
		WHERE start_date >= @since
		  AND (@car_id::int IS NULL OR car_id = @car_id)`

	var agg ChargingAggregate
	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"since": since, "car_id": carID})
	err := row.Scan(&agg.Sessions, &agg.TotalEnergyKwh, &agg.AvgEnergyKwh,
		&agg.TotalMinutes, &agg.TotalCost)
	if err != nil {
		return ChargingAggregate{}, fmt.Errorf("repo.ChargingRepo.StatsSince: %w", err)
	}
	return agg, nil
}
